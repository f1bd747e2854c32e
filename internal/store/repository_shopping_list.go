package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/models"
)

// insertBatchSize bounds the rows of one multi-row INSERT below SQLite's
// host parameter limit.
const insertBatchSize = 500

type shoppingListRepository struct {
	*DB
	logger *logger.Logger
}

func NewShoppingListRepository(db *DB, logger *logger.Logger) ShoppingListRepository {
	return &shoppingListRepository{
		DB:     db,
		logger: logger,
	}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *shoppingListRepository) LoadSnapshot(ctx context.Context) (models.Snapshot, error) {
	var (
		snap models.Snapshot
		err  error
	)

	if snap.Items, err = r.selectItems(ctx, r.DB, false); err != nil {
		return models.Snapshot{}, err
	}
	if snap.Lists, err = selectAll(ctx, r, tableLists, listColumns, scanList); err != nil {
		return models.Snapshot{}, err
	}
	if snap.Groups, err = selectAll(ctx, r, tableGroups, groupColumns, scanGroup); err != nil {
		return models.Snapshot{}, err
	}
	if snap.Units, err = selectAll(ctx, r, tableUnits, unitColumns, scanUnit); err != nil {
		return models.Snapshot{}, err
	}
	if snap.Products, err = selectAll(ctx, r, tableProducts, productColumns, scanProduct); err != nil {
		return models.Snapshot{}, err
	}
	if snap.Missing, err = selectAll(ctx, r, tableMissing, missingColumns, scanMissing); err != nil {
		return models.Snapshot{}, err
	}

	return snap, nil
}

func (r *shoppingListRepository) PersistSnapshot(ctx context.Context, fetched models.Snapshot, types models.EntitySet) (models.Reconciliation, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "shoppingListRepository.PersistSnapshot").
			Msg("failed to begin transaction")
		return models.Reconciliation{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	pending, err := r.selectItems(ctx, tx, true)
	if err != nil {
		return models.Reconciliation{}, err
	}

	var server []models.ShoppingListItem
	if types.Has(models.EntityShoppingListItems) {
		server = fetched.Items
	} else {
		server = serverViewOfPending(pending)
	}

	rec := reconcile(pending, server)
	for _, dropped := range rec.Dropped {
		log.Warn().
			Str("func", "shoppingListRepository.PersistSnapshot").
			Int("item_id", dropped.ID).
			Int("done", dropped.Done).
			Int("done_synced", dropped.DoneSynced).
			Msg("dropping pending change superseded by the server")
	}

	if types.Has(models.EntityShoppingListItems) {
		if err = r.replaceTable(ctx, tx, tableItems); err != nil {
			return models.Reconciliation{}, err
		}
		if err = r.replaceItems(ctx, tx, mergePending(fetched.Items, rec)); err != nil {
			return models.Reconciliation{}, err
		}
	} else if len(pending) != len(rec.Pending) {
		// items were not downloaded; still settle local rows whose pending
		// state was resolved
		if err = r.replaceItems(ctx, tx, settledItems(pending, rec)); err != nil {
			return models.Reconciliation{}, err
		}
	}

	if err = r.persistReferenceData(ctx, tx, fetched, types); err != nil {
		return models.Reconciliation{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "shoppingListRepository.PersistSnapshot").
			Msg("failed to commit snapshot")
		return models.Reconciliation{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "shoppingListRepository.PersistSnapshot").
		Strs("types", entityNames(types)).
		Int("pending", len(rec.Pending)).
		Int("dropped", len(rec.Dropped)).
		Msg("snapshot persisted")

	return rec, nil
}

func (r *shoppingListRepository) UpsertItems(ctx context.Context, items ...models.ShoppingListItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.replaceItems(ctx, r.DB, items)
}

func (r *shoppingListRepository) DeleteItems(ctx context.Context, ids ...int) error {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildDeleteItemsQuery(ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "shoppingListRepository.DeleteItems").
			Ints("ids", ids).
			Msg("failed to delete shopping list items")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// reconcile splits pending local items against the server view.
func reconcile(pending, server []models.ShoppingListItem) models.Reconciliation {
	byID := make(map[int]models.ShoppingListItem, len(server))
	for _, it := range server {
		byID[it.ID] = it
	}

	rec := models.Reconciliation{ServerItems: make(map[int]models.ShoppingListItem)}
	for _, local := range pending {
		remote, ok := byID[local.ID]
		switch {
		case !ok, remote.Done != local.DoneSynced:
			rec.Dropped = append(rec.Dropped, local)
		case remote.Done == local.Done:
			// toggled back to the server value, nothing to push
		default:
			rec.Pending = append(rec.Pending, local)
			rec.ServerItems[local.ID] = remote
		}
	}

	return rec
}

// serverViewOfPending reconstructs the server copy of pending items from
// their shadow.
func serverViewOfPending(pending []models.ShoppingListItem) []models.ShoppingListItem {
	server := make([]models.ShoppingListItem, 0, len(pending))
	for _, it := range pending {
		it.Done = it.DoneSynced
		server = append(server, it.Confirmed())
	}
	return server
}

// mergePending lays the still pending local state over the fresh server
// items. Everything else is taken from the server as is.
func mergePending(server []models.ShoppingListItem, rec models.Reconciliation) []models.ShoppingListItem {
	pending := make(map[int]models.ShoppingListItem, len(rec.Pending))
	for _, it := range rec.Pending {
		pending[it.ID] = it
	}

	merged := make([]models.ShoppingListItem, 0, len(server))
	for _, it := range server {
		if local, ok := pending[it.ID]; ok {
			it.Done = local.Done
			it.DoneSynced = local.DoneSynced
		} else {
			it = it.Confirmed()
		}
		merged = append(merged, it)
	}
	return merged
}

// settledItems returns the rows to rewrite when items were not downloaded:
// dropped and no-op pending items fall back to their server state.
func settledItems(pending []models.ShoppingListItem, rec models.Reconciliation) []models.ShoppingListItem {
	still := make(map[int]struct{}, len(rec.Pending))
	for _, it := range rec.Pending {
		still[it.ID] = struct{}{}
	}

	var settled []models.ShoppingListItem
	for _, it := range pending {
		if _, ok := still[it.ID]; ok {
			continue
		}
		if it.Done != it.DoneSynced {
			it.Done = it.DoneSynced
		}
		settled = append(settled, it.Confirmed())
	}
	return settled
}

func (r *shoppingListRepository) persistReferenceData(ctx context.Context, tx *sql.Tx, fetched models.Snapshot, types models.EntitySet) error {
	type replacement struct {
		entity models.EntityType
		count  int
		build  func(from, to int) (string, []any, error)
	}

	replacements := []replacement{
		{models.EntityShoppingLists, len(fetched.Lists), func(from, to int) (string, []any, error) {
			return buildInsertListsQuery(fetched.Lists[from:to])
		}},
		{models.EntityProductGroups, len(fetched.Groups), func(from, to int) (string, []any, error) {
			return buildInsertGroupsQuery(fetched.Groups[from:to])
		}},
		{models.EntityQuantityUnits, len(fetched.Units), func(from, to int) (string, []any, error) {
			return buildInsertUnitsQuery(fetched.Units[from:to])
		}},
		{models.EntityProducts, len(fetched.Products), func(from, to int) (string, []any, error) {
			return buildInsertProductsQuery(fetched.Products[from:to])
		}},
		{models.EntityVolatileMissing, len(fetched.Missing), func(from, to int) (string, []any, error) {
			return buildInsertMissingQuery(fetched.Missing[from:to])
		}},
	}

	for _, rep := range replacements {
		if !types.Has(rep.entity) {
			continue
		}
		table := entityTable(rep.entity)
		if err := r.replaceTable(ctx, tx, table); err != nil {
			return err
		}
		for from := 0; from < rep.count; from += insertBatchSize {
			to := min(from+insertBatchSize, rep.count)
			query, args, err := rep.build(from, to)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				logger.FromContext(ctx).Err(err).
					Str("func", "shoppingListRepository.persistReferenceData").
					Str("table", table).
					Msg("failed to insert snapshot rows")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
	}

	return nil
}

// replaceTable empties table ahead of a wholesale snapshot insert.
func (r *shoppingListRepository) replaceTable(ctx context.Context, tx *sql.Tx, table string) error {
	query, args, err := buildDeleteAllQuery(table)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "shoppingListRepository.replaceTable").
			Str("table", table).
			Msg("failed to clear table")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *shoppingListRepository) replaceItems(ctx context.Context, q queryer, items []models.ShoppingListItem) error {
	for chunk := range slices.Chunk(items, insertBatchSize) {
		query, args, err := buildReplaceItemsQuery(chunk)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = q.ExecContext(ctx, query, args...); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "shoppingListRepository.replaceItems").
				Int("items", len(chunk)).
				Msg("failed to write shopping list items")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}

func (r *shoppingListRepository) selectItems(ctx context.Context, q queryer, pendingOnly bool) ([]models.ShoppingListItem, error) {
	build := func() (string, []any, error) { return buildSelectAllQuery(tableItems, itemColumns) }
	if pendingOnly {
		build = buildSelectPendingItemsQuery
	}

	query, args, err := build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return queryRows(ctx, q, "shoppingListRepository.selectItems", query, args, scanItem)
}

func selectAll[T any](ctx context.Context, r *shoppingListRepository, table string, columns []string, scan func(rowScanner) (T, error)) ([]T, error) {
	query, args, err := buildSelectAllQuery(table, columns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return queryRows(ctx, r.DB, "shoppingListRepository.selectAll", query, args, scan)
}

func queryRows[T any](ctx context.Context, q queryer, fn, query string, args []any, scan func(rowScanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, scanErr := scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		out = append(out, v)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return out, nil
}

func entityNames(types models.EntitySet) []string {
	names := make([]string, 0, len(types))
	for _, t := range types.Types() {
		names = append(names, t.String())
	}
	return names
}
