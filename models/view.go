package models

import "time"

// FilterState selects which subset of the selected list is shown.
type FilterState int

const (
	// FilterNothing shows every item.
	FilterNothing FilterState = iota
	// FilterMissing shows items whose product is below minimum stock.
	FilterMissing
	// FilterUndone shows items that are not checked off.
	FilterUndone
)

// String returns the name of the filter as used on the command line.
func (f FilterState) String() string {
	switch f {
	case FilterMissing:
		return "missing"
	case FilterUndone:
		return "undone"
	default:
		return "all"
	}
}

// ParseFilterState parses the command-line name of a filter.
func ParseFilterState(s string) (FilterState, bool) {
	switch s {
	case "", "all":
		return FilterNothing, true
	case "missing":
		return FilterMissing, true
	case "undone":
		return FilterUndone, true
	default:
		return FilterNothing, false
	}
}

// ViewItem is one shopping list item resolved for display.
type ViewItem struct {
	ShoppingListItem

	// Name is the product name, or the note of a free-text item.
	Name string
	// Description is the product description, if any.
	Description string
	// Unit is the resolved quantity unit name, empty when unknown.
	Unit string
	// Missing is set when the product is below its minimum stock amount.
	Missing bool
}

// ItemGroup is a product group with the items filed under it.
type ItemGroup struct {
	Name  string
	Items []ViewItem
}

// ShoppingListView is the immutable, filtered and grouped state handed to the
// presentation layer after every settle point.
type ShoppingListView struct {
	ListID int
	List   *ShoppingList

	Groups []ItemGroup
	// Items holds the items of Groups flattened in display order. Positions
	// passed back by the presentation layer index into this slice.
	Items []ViewItem
	Notes string

	Filter FilterState
	Search string

	MissingCount int
	UndoneCount  int

	Loaded  bool
	Loading bool
	Offline bool
	Phase   SyncPhase

	PublishedAt time.Time
}

// ItemAt returns the item at the given display position.
func (v *ShoppingListView) ItemAt(position int) (ViewItem, bool) {
	if v == nil || position < 0 || position >= len(v.Items) {
		return ViewItem{}, false
	}
	return v.Items[position], true
}

// NoticeKind classifies one-shot messages for the presentation layer.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeConnectivity
	NoticeError
)

// Notice is a one-shot user-visible message.
type Notice struct {
	Kind    NoticeKind
	Message string
}
