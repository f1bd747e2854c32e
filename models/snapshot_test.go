package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Items: []ShoppingListItem{
			{ID: 1, ShoppingListID: 1, Note: "bread", Amount: 1},
			{ID: 7, ShoppingListID: 2, Note: "nails", Amount: 3},
		},
		Lists: []ShoppingList{
			{ID: 1, Name: "Shopping list"},
			{ID: 2, Name: "Hardware"},
		},
		Units: []QuantityUnit{
			{ID: 3, Name: "Piece", NamePlural: "Pieces"},
		},
	}
}

func TestSnapshot_ListIDs(t *testing.T) {
	assert.Equal(t, []int{1, 2}, testSnapshot().ListIDs())
	assert.Empty(t, Snapshot{}.ListIDs())
}

func TestSnapshot_Lookups(t *testing.T) {
	s := testSnapshot()

	list, ok := s.List(2)
	assert.True(t, ok)
	assert.Equal(t, "Hardware", list.Name)
	_, ok = s.List(9)
	assert.False(t, ok)

	item, ok := s.Item(7)
	assert.True(t, ok)
	assert.Equal(t, "nails", item.Note)
	_, ok = s.Item(2)
	assert.False(t, ok)

	unit, ok := s.QuantityUnit(3)
	assert.True(t, ok)
	assert.Equal(t, "Pieces", unit.NamePlural)
	// нулевой id не должен совпадать с пустой записью
	_, ok = s.QuantityUnit(0)
	assert.False(t, ok)
}
