package models

// Snapshot is the full cached state of all entity types. A Snapshot value is
// never mutated after it has been handed out; the cache reloads a fresh one
// after every write.
type Snapshot struct {
	Items    []ShoppingListItem
	Lists    []ShoppingList
	Groups   []ProductGroup
	Units    []QuantityUnit
	Products []Product
	Missing  []MissingItem
}

// ListIDs returns the ids of all cached shopping lists.
func (s Snapshot) ListIDs() []int {
	ids := make([]int, 0, len(s.Lists))
	for _, l := range s.Lists {
		ids = append(ids, l.ID)
	}
	return ids
}

// List returns the shopping list with the given id.
func (s Snapshot) List(id int) (ShoppingList, bool) {
	for _, l := range s.Lists {
		if l.ID == id {
			return l, true
		}
	}
	return ShoppingList{}, false
}

// QuantityUnit returns the unit with the given id.
func (s Snapshot) QuantityUnit(id int) (QuantityUnit, bool) {
	for _, u := range s.Units {
		if u.ID == id {
			return u, true
		}
	}
	return QuantityUnit{}, false
}

// Item returns the item with the given id.
func (s Snapshot) Item(id int) (ShoppingListItem, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return ShoppingListItem{}, false
}

// Reconciliation is the outcome of persisting a freshly downloaded snapshot
// against the locally cached one.
type Reconciliation struct {
	// Pending are local items whose done state still has to be pushed.
	Pending []ShoppingListItem

	// ServerItems maps item ids to the authoritative server copy the pending
	// change is merged into after a successful push.
	ServerItems map[int]ShoppingListItem

	// Dropped are pending local items that could not be reconciled because
	// the server copy changed concurrently or no longer exists.
	Dropped []ShoppingListItem
}
