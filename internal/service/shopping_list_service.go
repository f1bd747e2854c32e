// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/grocy-sync/internal/adapter"
	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/internal/metrics"
	"github.com/MKhiriev/grocy-sync/internal/queue"
	"github.com/MKhiriev/grocy-sync/internal/store"
	"github.com/MKhiriev/grocy-sync/models"
)

const noticeBuffer = 16

// viewEntityTypes must all have been downloaded once before the view counts
// as loaded.
var viewEntityTypes = []models.EntityType{
	models.EntityShoppingListItems,
	models.EntityShoppingLists,
	models.EntityProductGroups,
	models.EntityQuantityUnits,
}

type shoppingListService struct {
	adapter  adapter.ServerAdapter
	repo     store.ShoppingListRepository
	prefs    store.Preferences
	validate *validator.Validate
	logger   *logger.Logger

	// mu guards every field below and serialises cache and preference
	// writes.
	mu             sync.Mutex
	snapshot       models.Snapshot
	selectedListID int
	filter         models.FilterState
	search         string
	loaded         bool
	offline        bool
	phase          models.SyncPhase
	cycle          uint64
	current        *queue.Queue

	view atomic.Pointer[models.ShoppingListView]

	subsMu sync.Mutex
	subs   map[chan *models.ShoppingListView]struct{}

	notices chan models.Notice
	now     func() time.Time
}

// NewShoppingListService creates the sync engine. Call Load before use.
func NewShoppingListService(
	serverAdapter adapter.ServerAdapter,
	repo store.ShoppingListRepository,
	prefs store.Preferences,
	logger *logger.Logger,
) ShoppingListService {
	return &shoppingListService{
		adapter:        serverAdapter,
		repo:           repo,
		prefs:          prefs,
		validate:       validator.New(),
		logger:         logger.WithComponent("shopping_list"),
		selectedListID: models.DefaultShoppingListID,
		subs:           make(map[chan *models.ShoppingListView]struct{}),
		notices:        make(chan models.Notice, noticeBuffer),
		now:            time.Now,
	}
}

func (s *shoppingListService) Load(ctx context.Context) error {
	ctx = s.withLogger(ctx)
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		log.Err(err).Str("func", "shoppingListService.Load").Msg("failed to load cache")
		return err
	}
	s.snapshot = snap

	listID, err := s.prefs.SelectedListID(ctx)
	if err != nil {
		return err
	}
	multi, err := s.prefs.FeatureEnabled(ctx, models.FeatureMultipleShoppingLists)
	if err != nil {
		return err
	}
	if !multi && listID != models.DefaultShoppingListID {
		log.Info().
			Str("func", "shoppingListService.Load").
			Int("list_id", listID).
			Msg("multiple shopping lists disabled, resetting selection")
		listID = models.DefaultShoppingListID
		if err = s.prefs.SetSelectedListID(ctx, listID); err != nil {
			return err
		}
	}
	s.selectedListID = listID

	if err = s.refreshLoadedLocked(ctx); err != nil {
		return err
	}

	s.publishLocked()
	return nil
}

func (s *shoppingListService) View() *models.ShoppingListView {
	return s.view.Load()
}

func (s *shoppingListService) Subscribe() (<-chan *models.ShoppingListView, func()) {
	ch := make(chan *models.ShoppingListView, 1)
	if v := s.view.Load(); v != nil {
		ch <- v
	}

	s.subsMu.Lock()
	s.subs[ch] = struct{}{}
	s.subsMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, ch)
			s.subsMu.Unlock()
		})
	}
}

func (s *shoppingListService) Notices() <-chan models.Notice {
	return s.notices
}

func (s *shoppingListService) Phase() models.SyncPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *shoppingListService) SetFilter(filter models.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
	s.publishLocked()
}

func (s *shoppingListService) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = strings.ToLower(strings.TrimSpace(query))
	s.publishLocked()
}

func (s *shoppingListService) IsDataLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *shoppingListService) QuantityUnit(id int) (models.QuantityUnit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.QuantityUnit(id)
}

func (s *shoppingListService) SelectedList() (models.ShoppingList, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.List(s.selectedListID)
}

func (s *shoppingListService) ShoppingLists() []models.ShoppingList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.snapshot.Lists)
}

// withLogger attaches the service logger to ctx so that the repository and
// queue log through it.
func (s *shoppingListService) withLogger(ctx context.Context) context.Context {
	return s.logger.WithContext(ctx)
}

// notify queues a notice. A full buffer drops the notice.
func (s *shoppingListService) notify(n models.Notice) {
	select {
	case s.notices <- n:
	default:
		s.logger.Warn().
			Str("func", "shoppingListService.notify").
			Str("message", n.Message).
			Msg("notice buffer full, dropping notice")
	}
}

// reloadLocked replaces the in-memory snapshot with the cache content.
func (s *shoppingListService) reloadLocked(ctx context.Context) error {
	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return err
	}
	s.snapshot = snap
	return nil
}

func (s *shoppingListService) refreshLoadedLocked(ctx context.Context) error {
	for _, entity := range viewEntityTypes {
		ts, err := s.prefs.LastSynced(ctx, entity)
		if err != nil {
			return err
		}
		if ts == "" {
			s.loaded = false
			return nil
		}
	}
	s.loaded = true
	return nil
}

func (s *shoppingListService) setOfflineLocked(offline bool) {
	s.offline = offline
	metrics.SetOffline(offline)
}

// publishLocked builds a view of the current state and hands it to readers.
func (s *shoppingListService) publishLocked() {
	v := buildView(viewState{
		snapshot: s.snapshot,
		listID:   s.selectedListID,
		filter:   s.filter,
		search:   s.search,
		loaded:   s.loaded,
		offline:  s.offline,
		phase:    s.phase,
		now:      s.now(),
	})
	s.view.Store(v)

	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for ch := range s.subs {
		// keep only the newest view in the buffer
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}
