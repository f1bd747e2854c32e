package service

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/grocy-sync/models"
)

type viewState struct {
	snapshot models.Snapshot
	listID   int
	filter   models.FilterState
	search   string
	loaded   bool
	offline  bool
	phase    models.SyncPhase
	now      time.Time
}

// buildView filters the items of the selected list, resolves their product,
// unit and group, and groups them by product group name. Ungrouped items
// come last. Counters cover the whole list regardless of filter and search.
func buildView(st viewState) *models.ShoppingListView {
	snap := st.snapshot

	products := make(map[int]models.Product, len(snap.Products))
	for _, p := range snap.Products {
		products[p.ID] = p
	}
	groups := make(map[int]string, len(snap.Groups))
	for _, g := range snap.Groups {
		groups[g.ID] = g.Name
	}
	units := make(map[int]models.QuantityUnit, len(snap.Units))
	for _, u := range snap.Units {
		units[u.ID] = u
	}
	missing := make(map[int]struct{}, len(snap.Missing))
	for _, m := range snap.Missing {
		missing[m.ID] = struct{}{}
	}

	v := &models.ShoppingListView{
		ListID:      st.listID,
		Filter:      st.filter,
		Search:      st.search,
		Loaded:      st.loaded,
		Loading:     st.phase != models.PhaseIdle && st.phase != models.PhaseOffline,
		Offline:     st.offline,
		Phase:       st.phase,
		PublishedAt: st.now,
	}
	if list, ok := snap.List(st.listID); ok {
		v.List = &list
		v.Notes = list.Description
	}

	grouped := make(map[string][]models.ViewItem)
	for _, it := range snap.Items {
		if it.ShoppingListID != st.listID {
			continue
		}

		vi := models.ViewItem{ShoppingListItem: it, Name: it.Note}
		groupName := ""
		if it.ProductID != nil {
			if p, ok := products[*it.ProductID]; ok {
				vi.Name = p.Name
				vi.Description = p.Description
				if p.ProductGroupID != nil {
					groupName = groups[*p.ProductGroupID]
				}
			}
			_, vi.Missing = missing[*it.ProductID]
		}
		if it.QuantityUnitID != nil {
			if u, ok := units[*it.QuantityUnitID]; ok {
				vi.Unit = u.Name
				if it.Amount != 1 && u.NamePlural != "" {
					vi.Unit = u.NamePlural
				}
			}
		}

		if vi.Missing {
			v.MissingCount++
		}
		if !it.IsDone() {
			v.UndoneCount++
		}

		if !matchesSearch(vi, st.search) || !matchesFilter(vi, st.filter) {
			continue
		}
		grouped[groupName] = append(grouped[groupName], vi)
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		if name != "" {
			names = append(names, name)
		}
	}
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	if _, ok := grouped[""]; ok {
		names = append(names, "")
	}

	for _, name := range names {
		items := grouped[name]
		slices.SortStableFunc(items, func(a, b models.ViewItem) int {
			if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
		v.Groups = append(v.Groups, models.ItemGroup{Name: name, Items: items})
		v.Items = append(v.Items, items...)
	}

	return v
}

func matchesSearch(item models.ViewItem, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name), search) ||
		strings.Contains(strings.ToLower(item.Description), search)
}

func matchesFilter(item models.ViewItem, filter models.FilterState) bool {
	switch filter {
	case models.FilterMissing:
		return item.Missing
	case models.FilterUndone:
		return !item.IsDone()
	default:
		return true
	}
}
