package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/grocy-sync/internal/app"
	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/internal/queue"
	"github.com/MKhiriev/grocy-sync/models"
)

func (s *shoppingListService) SelectList(ctx context.Context, listID int) error {
	ctx = s.withLogger(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if listID == s.selectedListID {
		return nil
	}
	if _, ok := s.snapshot.List(listID); !ok {
		s.notify(models.Notice{Kind: models.NoticeError, Message: app.MsgUndefinedError})
		return fmt.Errorf("%w: list %d", ErrNoListSelected, listID)
	}
	multi, err := s.prefs.FeatureEnabled(ctx, models.FeatureMultipleShoppingLists)
	if err != nil {
		return err
	}
	if !multi && listID != models.DefaultShoppingListID {
		s.notify(models.Notice{Kind: models.NoticeError, Message: app.MsgUndefinedError})
		return fmt.Errorf("%w: multiple shopping lists are disabled", ErrUndefined)
	}

	if err = s.prefs.SetSelectedListID(ctx, listID); err != nil {
		s.notify(noticeForError(err))
		return err
	}
	s.selectedListID = listID
	s.publishLocked()
	return nil
}

// itemAt resolves a view position to the cached item it shows.
func (s *shoppingListService) itemAt(position int) (models.ShoppingListItem, error) {
	viewItem, ok := s.view.Load().ItemAt(position)
	if !ok {
		s.notify(models.Notice{Kind: models.NoticeError, Message: app.MsgUndefinedError})
		return models.ShoppingListItem{}, fmt.Errorf("%w: no item at position %d", ErrUndefined, position)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.snapshot.Item(viewItem.ID)
	if !ok {
		s.notify(models.Notice{Kind: models.NoticeError, Message: app.MsgUndefinedError})
		return models.ShoppingListItem{}, fmt.Errorf("%w: item %d is no longer cached", ErrUndefined, viewItem.ID)
	}
	return item, nil
}

func (s *shoppingListService) ToggleItemAt(ctx context.Context, position int) error {
	ctx = s.withLogger(ctx)
	log := logger.FromContext(ctx)

	item, err := s.itemAt(position)
	if err != nil {
		return err
	}
	toggled := item.ToggleDone()

	s.mu.Lock()
	offline := s.offline
	s.mu.Unlock()

	if offline {
		return s.storeItem(ctx, toggled)
	}

	err = s.adapter.UpdateObject(ctx, models.EntityShoppingListItems, toggled.ID, map[string]any{"done": toggled.Done})
	switch {
	case err == nil:
		return s.storeItem(ctx, toggled.Confirmed())
	case isConnectivityError(err):
		log.Info().Err(err).
			Str("func", "shoppingListService.ToggleItemAt").
			Int("item_id", toggled.ID).
			Msg("server unreachable, keeping change as pending")
		s.mu.Lock()
		s.phase = models.PhaseOffline
		s.setOfflineLocked(true)
		s.mu.Unlock()
		s.notify(noticeForError(err))
		return s.storeItem(ctx, toggled)
	default:
		log.Err(err).
			Str("func", "shoppingListService.ToggleItemAt").
			Int("item_id", toggled.ID).
			Msg("failed to toggle item")
		s.notify(models.Notice{Kind: models.NoticeError, Message: app.MsgUndefinedError})
		return err
	}
}

// storeItem writes item to the cache and republishes.
func (s *shoppingListService) storeItem(ctx context.Context, item models.ShoppingListItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.UpsertItems(ctx, item); err != nil {
		s.notify(noticeForError(err))
		return err
	}
	if err := s.reloadLocked(ctx); err != nil {
		s.notify(noticeForError(err))
		return err
	}
	s.publishLocked()
	return nil
}

func (s *shoppingListService) DeleteItemAt(ctx context.Context, position int) error {
	ctx = s.withLogger(ctx)

	item, err := s.itemAt(position)
	if err != nil {
		return err
	}

	if err = s.adapter.DeleteObject(ctx, models.EntityShoppingListItems, item.ID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "shoppingListService.DeleteItemAt").
			Int("item_id", item.ID).
			Msg("failed to delete item")
		s.notify(models.Notice{Kind: models.NoticeError, Message: app.MsgUndefinedError})
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.repo.DeleteItems(ctx, item.ID); err != nil {
		s.notify(noticeForError(err))
		return err
	}
	if err = s.reloadLocked(ctx); err != nil {
		return err
	}
	s.publishLocked()
	return nil
}

// selectedList returns the selected list or notifies that it is unknown.
func (s *shoppingListService) selectedList() (models.ShoppingList, error) {
	list, ok := s.SelectedList()
	if !ok {
		s.notify(models.Notice{Kind: models.NoticeError, Message: app.MsgUndefinedError})
		return models.ShoppingList{}, ErrNoListSelected
	}
	return list, nil
}

func (s *shoppingListService) ClearDoneItems(ctx context.Context) error {
	ctx = s.withLogger(ctx)
	log := logger.FromContext(ctx)

	list, err := s.selectedList()
	if err != nil {
		return err
	}

	var done []int
	s.mu.Lock()
	for _, it := range s.snapshot.Items {
		if it.ShoppingListID == list.ID && it.IsDone() {
			done = append(done, it.ID)
		}
	}
	s.mu.Unlock()

	q := queue.New(
		queue.WithName("clear_done"),
		queue.WithLogger(log),
	)
	for _, id := range done {
		if err = q.Append(func(ctx context.Context) error {
			return s.adapter.DeleteObject(ctx, models.EntityShoppingListItems, id)
		}); err != nil {
			return err
		}
	}

	var clearErr error
	if !q.IsEmpty() {
		q.Start(ctx)
		clearErr = q.Wait(ctx)
	}
	if clearErr != nil {
		log.Err(clearErr).Str("func", "shoppingListService.ClearDoneItems").Msg("failed to clear done items")
		s.notify(models.Notice{Kind: models.NoticeError, Message: app.MsgUndefinedError})
	} else {
		s.notify(models.Notice{Kind: models.NoticeInfo, Message: fmt.Sprintf(app.MsgShoppingListCleared, list.Name)})
	}

	return errors.Join(clearErr, s.Sync(ctx))
}

func (s *shoppingListService) AddMissingProducts(ctx context.Context) error {
	ctx = s.withLogger(ctx)

	list, err := s.selectedList()
	if err != nil {
		return err
	}

	if err = s.adapter.AddMissingProducts(ctx, list.ID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "shoppingListService.AddMissingProducts").
			Int("list_id", list.ID).
			Msg("failed to add missing products")
		s.notify(models.Notice{Kind: models.NoticeError, Message: app.MsgUndefinedError})
		return err
	}
	s.notify(models.Notice{Kind: models.NoticeInfo, Message: fmt.Sprintf(app.MsgAddedMissingProducts, list.Name)})

	return s.Sync(ctx)
}

func (s *shoppingListService) SaveNotes(ctx context.Context, notes string) error {
	ctx = s.withLogger(ctx)

	list, err := s.selectedList()
	if err != nil {
		return err
	}

	err = s.adapter.UpdateObject(ctx, models.EntityShoppingLists, list.ID, map[string]any{"description": notes})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "shoppingListService.SaveNotes").
			Int("list_id", list.ID).
			Msg("failed to save notes")
		s.notify(models.Notice{Kind: models.NoticeError, Message: app.MsgUndefinedError})
	}

	return errors.Join(err, s.Sync(ctx))
}

func (s *shoppingListService) DeleteSelectedList(ctx context.Context) error {
	ctx = s.withLogger(ctx)
	log := logger.FromContext(ctx)

	list, err := s.selectedList()
	if err != nil {
		return err
	}

	if err = s.adapter.ClearShoppingList(ctx, list.ID); err != nil {
		log.Err(err).Str("func", "shoppingListService.DeleteSelectedList").Int("list_id", list.ID).Msg("failed to clear list")
		s.notify(models.Notice{Kind: models.NoticeError, Message: app.MsgUndefinedError})
		return err
	}

	if err = s.adapter.DeleteObject(ctx, models.EntityShoppingLists, list.ID); err != nil {
		log.Err(err).Str("func", "shoppingListService.DeleteSelectedList").Int("list_id", list.ID).Msg("failed to delete list")
		s.notify(models.Notice{Kind: models.NoticeError, Message: app.MsgUndefinedError})
		return errors.Join(err, s.Sync(ctx))
	}
	s.notify(models.Notice{Kind: models.NoticeInfo, Message: fmt.Sprintf(app.MsgShoppingListDeleted, list.Name)})

	s.mu.Lock()
	s.snapshot.Lists = removeList(s.snapshot.Lists, list.ID)
	if err = s.prefs.SetSelectedListID(ctx, models.DefaultShoppingListID); err != nil {
		s.mu.Unlock()
		return err
	}
	s.selectedListID = models.DefaultShoppingListID
	s.publishLocked()
	s.mu.Unlock()

	// the cycle refetches the lists and tidies up the items of the deleted one
	return s.Sync(ctx)
}

func removeList(lists []models.ShoppingList, id int) []models.ShoppingList {
	kept := make([]models.ShoppingList, 0, len(lists))
	for _, l := range lists {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	return kept
}

func (s *shoppingListService) AddItem(ctx context.Context, item models.NewShoppingListItem) (int, error) {
	ctx = s.withLogger(ctx)

	if err := s.validate.Struct(item); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidItemRequest, err)
	}

	s.mu.Lock()
	listID := s.selectedListID
	s.mu.Unlock()

	fields := map[string]any{
		"shopping_list_id": listID,
		"amount":           item.Amount,
		"note":             item.Note,
	}
	if item.ProductID != nil {
		fields["product_id"] = *item.ProductID
	}
	if item.QuantityUnitID != nil {
		fields["qu_id"] = *item.QuantityUnitID
	}

	id, err := s.adapter.CreateObject(ctx, models.EntityShoppingListItems, fields)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "shoppingListService.AddItem").
			Int("list_id", listID).
			Msg("failed to add item")
		s.notify(models.Notice{Kind: models.NoticeError, Message: app.MsgUndefinedError})
		return 0, err
	}
	s.notify(models.Notice{Kind: models.NoticeInfo, Message: app.MsgItemAdded})

	return id, s.Sync(ctx)
}
