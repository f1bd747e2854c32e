package models

// NotPending is the doneSynced sentinel of an item without unsynced local state.
const NotPending = -1

// DefaultShoppingListID is the id of the first and, with multi-list support
// disabled, the only shopping list.
const DefaultShoppingListID = 1

// ShoppingListItem is a single row on a shopping list.
type ShoppingListItem struct {
	// ID is the server-assigned identifier.
	ID int `json:"id" validate:"required,gt=0"`

	// ShoppingListID references the list the item belongs to.
	ShoppingListID int `json:"shopping_list_id" validate:"required,gt=0"`

	// ProductID references a product, nil for free-text items.
	ProductID *int `json:"product_id"`

	// Note is the free text of the item.
	Note string `json:"note"`

	// Amount is the wanted amount in the unit referenced by QuantityUnitID.
	Amount float64 `json:"amount" validate:"gte=0"`

	// QuantityUnitID references the unit of Amount.
	QuantityUnitID *int `json:"qu_id"`

	// Done is 1 when the item is checked off, 0 otherwise.
	Done int `json:"done" validate:"oneof=0 1"`

	// DoneSynced is the last Done value known to be on the server while a
	// local change is pending, or NotPending. Never sent to the server.
	DoneSynced int `json:"-"`
}

// IsDone reports whether the item is checked off.
func (i ShoppingListItem) IsDone() bool {
	return i.Done != 0
}

// IsPending reports whether the item carries an unsynced local change.
func (i ShoppingListItem) IsPending() bool {
	return i.DoneSynced != NotPending
}

// ToggleDone flips the done state. The prior value is snapshotted into
// DoneSynced only when no local change is pending yet.
func (i ShoppingListItem) ToggleDone() ShoppingListItem {
	if i.DoneSynced == NotPending {
		i.DoneSynced = i.Done
	}
	if i.Done == 0 {
		i.Done = 1
	} else {
		i.Done = 0
	}
	return i
}

// Confirmed returns the item with its pending marker cleared.
func (i ShoppingListItem) Confirmed() ShoppingListItem {
	i.DoneSynced = NotPending
	return i
}

// ShoppingList is a named shopping list.
type ShoppingList struct {
	ID          int    `json:"id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// ProductGroup groups products for display.
type ProductGroup struct {
	ID          int    `json:"id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// QuantityUnit is a unit of measure.
type QuantityUnit struct {
	ID         int    `json:"id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required"`
	NamePlural string `json:"name_plural"`
}

// Product is an entry of the product catalogue.
type Product struct {
	ID                     int    `json:"id" validate:"required,gt=0"`
	Name                   string `json:"name" validate:"required"`
	Description            string `json:"description"`
	ProductGroupID         *int   `json:"product_group_id"`
	QuantityUnitIDPurchase *int   `json:"qu_id_purchase"`
}

// MissingItem is a product whose stock is below its minimum amount.
type MissingItem struct {
	ID              int     `json:"id" validate:"required,gt=0"`
	Name            string  `json:"name"`
	AmountMissing   float64 `json:"amount_missing"`
	IsPartlyInStock int     `json:"is_partly_in_stock"`
}

// NewShoppingListItem is the input of adding an item to the selected list.
// Either a product or a note is required.
type NewShoppingListItem struct {
	ProductID      *int    `validate:"required_without=Note,omitempty,gt=0"`
	Note           string  `validate:"required_without=ProductID"`
	Amount         float64 `validate:"gt=0"`
	QuantityUnitID *int    `validate:"omitempty,gt=0"`
}
