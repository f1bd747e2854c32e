package store

import (
	"database/sql"

	"github.com/MKhiriev/grocy-sync/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func scanItem(row rowScanner) (models.ShoppingListItem, error) {
	var (
		it        models.ShoppingListItem
		productID sql.NullInt64
		unitID    sql.NullInt64
	)
	err := row.Scan(&it.ID, &it.ShoppingListID, &productID, &it.Note, &it.Amount, &unitID, &it.Done, &it.DoneSynced)
	it.ProductID = nullableInt(productID)
	it.QuantityUnitID = nullableInt(unitID)
	return it, err
}

func scanList(row rowScanner) (models.ShoppingList, error) {
	var l models.ShoppingList
	err := row.Scan(&l.ID, &l.Name, &l.Description)
	return l, err
}

func scanGroup(row rowScanner) (models.ProductGroup, error) {
	var g models.ProductGroup
	err := row.Scan(&g.ID, &g.Name, &g.Description)
	return g, err
}

func scanUnit(row rowScanner) (models.QuantityUnit, error) {
	var u models.QuantityUnit
	err := row.Scan(&u.ID, &u.Name, &u.NamePlural)
	return u, err
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		p       models.Product
		groupID sql.NullInt64
		unitID  sql.NullInt64
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &groupID, &unitID)
	p.ProductGroupID = nullableInt(groupID)
	p.QuantityUnitIDPurchase = nullableInt(unitID)
	return p, err
}

func scanMissing(row rowScanner) (models.MissingItem, error) {
	var m models.MissingItem
	err := row.Scan(&m.ID, &m.Name, &m.AmountMissing, &m.IsPartlyInStock)
	return m, err
}
