package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/grocy-sync/models"
)

const (
	tableItems    = "shopping_list_items"
	tableLists    = "shopping_lists"
	tableGroups   = "product_groups"
	tableUnits    = "quantity_units"
	tableProducts = "products"
	tableMissing  = "missing_items"
)

var (
	itemColumns    = []string{"id", "shopping_list_id", "product_id", "note", "amount", "qu_id", "done", "done_synced"}
	listColumns    = []string{"id", "name", "description"}
	groupColumns   = []string{"id", "name", "description"}
	unitColumns    = []string{"id", "name", "name_plural"}
	productColumns = []string{"id", "name", "description", "product_group_id", "qu_id_purchase"}
	missingColumns = []string{"id", "name", "amount_missing", "is_partly_in_stock"}
)

// psql is the statement builder for SQLite ("?" placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// entityTable maps an entity type to its cache table.
func entityTable(entity models.EntityType) string {
	switch entity {
	case models.EntityShoppingListItems:
		return tableItems
	case models.EntityShoppingLists:
		return tableLists
	case models.EntityProductGroups:
		return tableGroups
	case models.EntityQuantityUnits:
		return tableUnits
	case models.EntityProducts:
		return tableProducts
	case models.EntityVolatileMissing:
		return tableMissing
	default:
		return ""
	}
}

func buildSelectAllQuery(table string, columns []string) (string, []any, error) {
	return psql.Select(columns...).From(table).OrderBy("id").ToSql()
}

func buildSelectPendingItemsQuery() (string, []any, error) {
	return psql.Select(itemColumns...).
		From(tableItems).
		Where(sq.NotEq{"done_synced": models.NotPending}).
		OrderBy("id").
		ToSql()
}

func buildDeleteAllQuery(table string) (string, []any, error) {
	return psql.Delete(table).ToSql()
}

func buildDeleteItemsQuery(ids []int) (string, []any, error) {
	return psql.Delete(tableItems).Where(sq.Eq{"id": ids}).ToSql()
}

// buildReplaceItemsQuery builds one INSERT OR REPLACE for all items.
func buildReplaceItemsQuery(items []models.ShoppingListItem) (string, []any, error) {
	q := psql.Replace(tableItems).Columns(itemColumns...)
	for _, it := range items {
		q = q.Values(it.ID, it.ShoppingListID, it.ProductID, it.Note, it.Amount, it.QuantityUnitID, it.Done, it.DoneSynced)
	}
	return q.ToSql()
}

func buildInsertListsQuery(lists []models.ShoppingList) (string, []any, error) {
	q := psql.Insert(tableLists).Columns(listColumns...)
	for _, l := range lists {
		q = q.Values(l.ID, l.Name, l.Description)
	}
	return q.ToSql()
}

func buildInsertGroupsQuery(groups []models.ProductGroup) (string, []any, error) {
	q := psql.Insert(tableGroups).Columns(groupColumns...)
	for _, g := range groups {
		q = q.Values(g.ID, g.Name, g.Description)
	}
	return q.ToSql()
}

func buildInsertUnitsQuery(units []models.QuantityUnit) (string, []any, error) {
	q := psql.Insert(tableUnits).Columns(unitColumns...)
	for _, u := range units {
		q = q.Values(u.ID, u.Name, u.NamePlural)
	}
	return q.ToSql()
}

func buildInsertProductsQuery(products []models.Product) (string, []any, error) {
	q := psql.Insert(tableProducts).Columns(productColumns...)
	for _, p := range products {
		q = q.Values(p.ID, p.Name, p.Description, p.ProductGroupID, p.QuantityUnitIDPurchase)
	}
	return q.ToSql()
}

func buildInsertMissingQuery(missing []models.MissingItem) (string, []any, error) {
	q := psql.Insert(tableMissing).Columns(missingColumns...)
	for _, m := range missing {
		q = q.Values(m.ID, m.Name, m.AmountMissing, m.IsPartlyInStock)
	}
	return q.ToSql()
}
