package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/grocy-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewSnapshot() models.Snapshot {
	return models.Snapshot{
		Items: []models.ShoppingListItem{
			{ID: 1, ShoppingListID: 1, ProductID: intPtr(10), Amount: 2, QuantityUnitID: intPtr(1)},
			{ID: 2, ShoppingListID: 1, ProductID: intPtr(11), Amount: 1, QuantityUnitID: intPtr(1), Done: 1},
			{ID: 3, ShoppingListID: 1, Note: "batteries", Amount: 1},
			{ID: 4, ShoppingListID: 1, ProductID: intPtr(13), Amount: 1},
			{ID: 5, ShoppingListID: 2, ProductID: intPtr(12), Amount: 1},
			{ID: 6, ShoppingListID: 1, ProductID: intPtr(99), Note: "unknown product", Amount: 1},
		},
		Lists: []models.ShoppingList{
			{ID: 1, Name: "Shopping list", Description: "weekly"},
			{ID: 2, Name: "Hardware"},
		},
		Groups: []models.ProductGroup{{ID: 1, Name: "dairy"}, {ID: 2, Name: "Bakery"}},
		Units:  []models.QuantityUnit{{ID: 1, Name: "Piece", NamePlural: "Pieces"}},
		Products: []models.Product{
			{ID: 10, Name: "Milk", Description: "semi skimmed", ProductGroupID: intPtr(1)},
			{ID: 11, Name: "Bread", ProductGroupID: intPtr(2)},
			{ID: 12, Name: "Nails"},
			{ID: 13, Name: "butter", ProductGroupID: intPtr(1)},
		},
		Missing: []models.MissingItem{{ID: 10, Name: "Milk", AmountMissing: 1}},
	}
}

func itemIDs(items []models.ViewItem) []int {
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestBuildView_GroupsAndOrder(t *testing.T) {
	v := buildView(viewState{snapshot: viewSnapshot(), listID: 1, loaded: true})

	require.Len(t, v.Groups, 3)
	assert.Equal(t, "Bakery", v.Groups[0].Name)
	assert.Equal(t, "dairy", v.Groups[1].Name)
	assert.Equal(t, "", v.Groups[2].Name, "ungrouped items come last")

	assert.Equal(t, []int{4, 1}, itemIDs(v.Groups[1].Items), "sorted case-insensitively by name")
	assert.Equal(t, []int{2, 4, 1, 3, 6}, itemIDs(v.Items))
}

func TestBuildView_ResolvesNamesAndUnits(t *testing.T) {
	v := buildView(viewState{snapshot: viewSnapshot(), listID: 1})

	milk := viewItem(t, v, 1)
	assert.Equal(t, "Milk", milk.Name)
	assert.Equal(t, "semi skimmed", milk.Description)
	assert.Equal(t, "Pieces", milk.Unit)
	assert.True(t, milk.Missing)

	bread := viewItem(t, v, 2)
	assert.Equal(t, "Piece", bread.Unit)
	assert.False(t, bread.Missing)

	assert.Equal(t, "batteries", viewItem(t, v, 3).Name)
	assert.Equal(t, "unknown product", viewItem(t, v, 6).Name, "unknown product falls back to the note")
	assert.Equal(t, "", viewItem(t, v, 4).Unit)
}

func TestBuildView_List(t *testing.T) {
	v := buildView(viewState{snapshot: viewSnapshot(), listID: 1})
	require.NotNil(t, v.List)
	assert.Equal(t, "Shopping list", v.List.Name)
	assert.Equal(t, "weekly", v.Notes)

	other := buildView(viewState{snapshot: viewSnapshot(), listID: 2})
	assert.Equal(t, []int{5}, itemIDs(other.Items))

	unknown := buildView(viewState{snapshot: viewSnapshot(), listID: 7})
	assert.Nil(t, unknown.List)
	assert.Empty(t, unknown.Items)
}

func TestBuildView_FilterAndSearch(t *testing.T) {
	tests := []struct {
		name   string
		filter models.FilterState
		search string
		want   []int
	}{
		{name: "everything", want: []int{2, 4, 1, 3, 6}},
		{name: "missing", filter: models.FilterMissing, want: []int{1}},
		{name: "undone", filter: models.FilterUndone, want: []int{4, 1, 3, 6}},
		{name: "search name", search: "bre", want: []int{2}},
		{name: "search description", search: "skimmed", want: []int{1}},
		{name: "search note", search: "batt", want: []int{3}},
		{name: "search and filter", filter: models.FilterUndone, search: "b", want: []int{4, 3}},
		{name: "no match", search: "zzz", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := buildView(viewState{snapshot: viewSnapshot(), listID: 1, filter: tt.filter, search: tt.search})
			assert.Equal(t, tt.want, itemIDs(v.Items))
			assert.Equal(t, tt.filter, v.Filter)
		})
	}
}

func TestBuildView_CountersIgnoreFilter(t *testing.T) {
	v := buildView(viewState{snapshot: viewSnapshot(), listID: 1, filter: models.FilterMissing, search: "milk"})

	assert.Equal(t, 1, v.MissingCount)
	assert.Equal(t, 4, v.UndoneCount)
}

func TestBuildView_Flags(t *testing.T) {
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		phase       models.SyncPhase
		wantLoading bool
	}{
		{models.PhaseIdle, false},
		{models.PhaseCheckingTimestamp, true},
		{models.PhaseDownloading, true},
		{models.PhaseReconciling, true},
		{models.PhasePushingMutations, true},
		{models.PhaseTidyingUp, true},
		{models.PhaseOffline, false},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			v := buildView(viewState{listID: 1, phase: tt.phase, offline: true, loaded: true, now: now})
			assert.Equal(t, tt.wantLoading, v.Loading)
			assert.Equal(t, tt.phase, v.Phase)
			assert.True(t, v.Offline)
			assert.True(t, v.Loaded)
			assert.Equal(t, now, v.PublishedAt)
		})
	}
}

func TestShoppingListView_ItemAt(t *testing.T) {
	v := buildView(viewState{snapshot: viewSnapshot(), listID: 1})

	it, ok := v.ItemAt(0)
	require.True(t, ok)
	assert.Equal(t, 2, it.ID)

	_, ok = v.ItemAt(len(v.Items))
	assert.False(t, ok)

	var nilView *models.ShoppingListView
	_, ok = nilView.ItemAt(0)
	assert.False(t, ok)
}
