package service

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/MKhiriev/grocy-sync/internal/adapter"
	"github.com/MKhiriev/grocy-sync/internal/config"
	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/internal/mock"
	"github.com/MKhiriev/grocy-sync/internal/store"
	"github.com/MKhiriev/grocy-sync/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// fakeGrocy is an in-memory Grocy server behind the adapter mock. Every
// write bumps the change timestamp like the real server does.
type fakeGrocy struct {
	mu sync.Mutex

	version  int
	items    []models.ShoppingListItem
	lists    []models.ShoppingList
	groups   []models.ProductGroup
	units    []models.QuantityUnit
	products []models.Product
	missing  []models.MissingItem

	offline     bool
	failUpdate  error
	failDelete  error
	failFetch   map[models.EntityType]error
	oracleHook  func(call int)
	fetchHook   func(ctx context.Context, entity models.EntityType) error
	oracleCalls int

	fetches map[models.EntityType]int
	updates []fakeUpdate
	deletes []int
}

type fakeUpdate struct {
	entity models.EntityType
	id     int
	fields map[string]any
}

func newFakeGrocy() *fakeGrocy {
	return &fakeGrocy{
		version: 1,
		items: []models.ShoppingListItem{
			{ID: 1, ShoppingListID: 1, ProductID: intPtr(10), Amount: 2, QuantityUnitID: intPtr(1), Done: 0},
			{ID: 2, ShoppingListID: 1, ProductID: intPtr(11), Amount: 1, QuantityUnitID: intPtr(1), Done: 1},
			{ID: 3, ShoppingListID: 1, Note: "batteries", Amount: 1, Done: 0},
			{ID: 4, ShoppingListID: 2, ProductID: intPtr(12), Amount: 1, Done: 0},
		},
		lists: []models.ShoppingList{
			{ID: 1, Name: "Shopping list", Description: "weekly"},
			{ID: 2, Name: "Hardware"},
		},
		groups: []models.ProductGroup{{ID: 1, Name: "Dairy"}, {ID: 2, Name: "Bakery"}},
		units:  []models.QuantityUnit{{ID: 1, Name: "Piece", NamePlural: "Pieces"}},
		products: []models.Product{
			{ID: 10, Name: "Milk", ProductGroupID: intPtr(1)},
			{ID: 11, Name: "Bread", ProductGroupID: intPtr(2)},
			{ID: 12, Name: "Nails"},
		},
		missing:   []models.MissingItem{{ID: 10, Name: "Milk", AmountMissing: 1}},
		failFetch: map[models.EntityType]error{},
		fetches:   map[models.EntityType]int{},
	}
}

func (f *fakeGrocy) changedTime() string {
	return fmt.Sprintf("2026-10-16 10:00:%02d", f.version)
}

// touch simulates a change made by another client.
func (f *fakeGrocy) touch(change func(f *fakeGrocy)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	change(f)
	f.version++
}

func (f *fakeGrocy) setOffline(offline bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.offline = offline
}

func (f *fakeGrocy) totalFetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.fetches {
		n += c
	}
	return n
}

func (f *fakeGrocy) updatesOf(entity models.EntityType) []fakeUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []fakeUpdate
	for _, u := range f.updates {
		if u.entity == entity {
			out = append(out, u)
		}
	}
	return out
}

func (f *fakeGrocy) deletedItems() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.deletes)
}

func (f *fakeGrocy) serverItem(id int) (models.ShoppingListItem, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.ShoppingListItem{}, false
}

func fakeFetch[T any](f *fakeGrocy, entity models.EntityType, records func() []T) func(context.Context) ([]T, error) {
	return func(ctx context.Context) ([]T, error) {
		if f.fetchHook != nil {
			if err := f.fetchHook(ctx, entity); err != nil {
				return nil, err
			}
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		if f.offline {
			return nil, adapter.ErrNetwork
		}
		if err := f.failFetch[entity]; err != nil {
			return nil, err
		}
		f.fetches[entity]++
		return slices.Clone(records()), nil
	}
}

// bind wires the fake into the adapter mock.
func (f *fakeGrocy) bind(m *mock.MockServerAdapter) {
	m.EXPECT().GetDBChangedTime(gomock.Any()).DoAndReturn(func(context.Context) (string, error) {
		f.mu.Lock()
		f.oracleCalls++
		call, hook := f.oracleCalls, f.oracleHook
		f.mu.Unlock()
		if hook != nil {
			hook(call)
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		if f.offline {
			return "", adapter.ErrNetwork
		}
		return f.changedTime(), nil
	}).AnyTimes()

	m.EXPECT().GetShoppingListItems(gomock.Any()).DoAndReturn(
		fakeFetch(f, models.EntityShoppingListItems, func() []models.ShoppingListItem {
			items := slices.Clone(f.items)
			for i := range items {
				items[i].DoneSynced = models.NotPending
			}
			return items
		})).AnyTimes()
	m.EXPECT().GetShoppingLists(gomock.Any()).DoAndReturn(
		fakeFetch(f, models.EntityShoppingLists, func() []models.ShoppingList { return f.lists })).AnyTimes()
	m.EXPECT().GetProductGroups(gomock.Any()).DoAndReturn(
		fakeFetch(f, models.EntityProductGroups, func() []models.ProductGroup { return f.groups })).AnyTimes()
	m.EXPECT().GetQuantityUnits(gomock.Any()).DoAndReturn(
		fakeFetch(f, models.EntityQuantityUnits, func() []models.QuantityUnit { return f.units })).AnyTimes()
	m.EXPECT().GetProducts(gomock.Any()).DoAndReturn(
		fakeFetch(f, models.EntityProducts, func() []models.Product { return f.products })).AnyTimes()
	m.EXPECT().GetMissingProducts(gomock.Any()).DoAndReturn(
		fakeFetch(f, models.EntityVolatileMissing, func() []models.MissingItem { return f.missing })).AnyTimes()

	m.EXPECT().UpdateObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entity models.EntityType, id int, fields map[string]any) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.offline {
				return adapter.ErrNetwork
			}
			f.updates = append(f.updates, fakeUpdate{entity: entity, id: id, fields: fields})
			if f.failUpdate != nil {
				return f.failUpdate
			}
			switch entity {
			case models.EntityShoppingListItems:
				for i := range f.items {
					if f.items[i].ID == id {
						f.items[i].Done = fields["done"].(int)
					}
				}
			case models.EntityShoppingLists:
				for i := range f.lists {
					if f.lists[i].ID == id {
						f.lists[i].Description = fields["description"].(string)
					}
				}
			}
			f.version++
			return nil
		}).AnyTimes()

	m.EXPECT().DeleteObject(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entity models.EntityType, id int) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.offline {
				return adapter.ErrNetwork
			}
			if entity == models.EntityShoppingListItems {
				f.deletes = append(f.deletes, id)
			}
			if f.failDelete != nil {
				return f.failDelete
			}
			switch entity {
			case models.EntityShoppingListItems:
				f.items = slices.DeleteFunc(f.items, func(it models.ShoppingListItem) bool { return it.ID == id })
			case models.EntityShoppingLists:
				f.lists = slices.DeleteFunc(f.lists, func(l models.ShoppingList) bool { return l.ID == id })
			}
			f.version++
			return nil
		}).AnyTimes()

	m.EXPECT().CreateObject(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.EntityType, fields map[string]any) (int, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.offline {
				return 0, adapter.ErrNetwork
			}
			id := 0
			for _, it := range f.items {
				id = max(id, it.ID)
			}
			id++
			item := models.ShoppingListItem{
				ID:             id,
				ShoppingListID: fields["shopping_list_id"].(int),
				Amount:         fields["amount"].(float64),
				Note:           fields["note"].(string),
			}
			if p, ok := fields["product_id"].(int); ok {
				item.ProductID = intPtr(p)
			}
			f.items = append(f.items, item)
			f.version++
			return id, nil
		}).AnyTimes()

	m.EXPECT().AddMissingProducts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, listID int) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.offline {
				return adapter.ErrNetwork
			}
			id := 100
			for _, missing := range f.missing {
				id++
				f.items = append(f.items, models.ShoppingListItem{
					ID: id, ShoppingListID: listID, ProductID: intPtr(missing.ID), Amount: missing.AmountMissing,
				})
			}
			f.version++
			return nil
		}).AnyTimes()

	m.EXPECT().ClearShoppingList(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, listID int) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.offline {
				return adapter.ErrNetwork
			}
			f.items = slices.DeleteFunc(f.items, func(it models.ShoppingListItem) bool {
				return it.ShoppingListID == listID
			})
			f.version++
			return nil
		}).AnyTimes()
}

type harness struct {
	svc   *shoppingListService
	fake  *fakeGrocy
	repo  store.ShoppingListRepository
	prefs store.Preferences
}

// newHarness wires the service to a real SQLite cache, an in-memory
// preference store and the fake server.
func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := testContext()

	db, err := store.NewConnectSQLite(ctx, config.ClientDB{DSN: filepath.Join(t.TempDir(), "cache.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	prefs, err := store.NewBadgerPreferences("", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { prefs.Close() })

	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	fake := newFakeGrocy()
	fake.bind(mockAdapter)

	repo := store.NewShoppingListRepository(db, logger.Nop())
	svc := NewShoppingListService(mockAdapter, repo, prefs, logger.Nop()).(*shoppingListService)
	require.NoError(t, svc.Load(ctx))

	return &harness{svc: svc, fake: fake, repo: repo, prefs: prefs}
}

// position returns the view position of the item with the given id.
func position(t *testing.T, v *models.ShoppingListView, id int) int {
	t.Helper()
	for i, it := range v.Items {
		if it.ID == id {
			return i
		}
	}
	t.Fatalf("item %d is not in the view", id)
	return -1
}

func viewItem(t *testing.T, v *models.ShoppingListView, id int) models.ViewItem {
	t.Helper()
	it, _ := v.ItemAt(position(t, v, id))
	return it
}

// drainNotices returns every notice queued so far.
func drainNotices(svc *shoppingListService) []models.Notice {
	var out []models.Notice
	for {
		select {
		case n := <-svc.Notices():
			out = append(out, n)
		default:
			return out
		}
	}
}

func noticeMessages(notices []models.Notice) []string {
	out := make([]string, 0, len(notices))
	for _, n := range notices {
		out = append(out, n.Message)
	}
	return out
}
