// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EntityType identifies one resource type mirrored from the Grocy server.
// Every entity type has its own persisted last-synced timestamp and its own
// fetcher; snapshots of a type are always replaced as a whole.
type EntityType int

const (
	// EntityShoppingListItems are the rows of all shopping lists.
	EntityShoppingListItems EntityType = iota + 1

	// EntityShoppingLists are the shopping lists themselves.
	EntityShoppingLists

	// EntityProductGroups are the groups items are sorted under.
	EntityProductGroups

	// EntityQuantityUnits are the units item amounts are expressed in.
	EntityQuantityUnits

	// EntityProducts is the product catalogue referenced by items.
	EntityProducts

	// EntityVolatileMissing are the products below their minimum stock
	// amount, taken from the volatile stock endpoint.
	EntityVolatileMissing
)

// AllEntityTypes lists every entity type in the order fetches are enqueued.
var AllEntityTypes = []EntityType{
	EntityShoppingListItems,
	EntityShoppingLists,
	EntityProductGroups,
	EntityQuantityUnits,
	EntityProducts,
	EntityVolatileMissing,
}

// String returns a short stable name used in logs, metrics and preference keys.
func (e EntityType) String() string {
	switch e {
	case EntityShoppingListItems:
		return "shopping_list_items"
	case EntityShoppingLists:
		return "shopping_lists"
	case EntityProductGroups:
		return "product_groups"
	case EntityQuantityUnits:
		return "quantity_units"
	case EntityProducts:
		return "products"
	case EntityVolatileMissing:
		return "volatile_missing"
	default:
		return "unknown"
	}
}

// ObjectName returns the Grocy generic-entity name used in /api/objects/{name}
// routes. The volatile entity has no object route and returns "".
func (e EntityType) ObjectName() string {
	switch e {
	case EntityShoppingListItems:
		return "shopping_list"
	case EntityShoppingLists:
		return "shopping_lists"
	case EntityProductGroups:
		return "product_groups"
	case EntityQuantityUnits:
		return "quantity_units"
	case EntityProducts:
		return "products"
	default:
		return ""
	}
}

// EntitySet is a small set of entity types.
type EntitySet map[EntityType]struct{}

// NewEntitySet builds a set from the given types.
func NewEntitySet(types ...EntityType) EntitySet {
	set := make(EntitySet, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

// Has reports whether t is in the set.
func (s EntitySet) Has(t EntityType) bool {
	_, ok := s[t]
	return ok
}

// Types returns the members of the set in [AllEntityTypes] order.
func (s EntitySet) Types() []EntityType {
	types := make([]EntityType, 0, len(s))
	for _, t := range AllEntityTypes {
		if s.Has(t) {
			types = append(types, t)
		}
	}
	return types
}
