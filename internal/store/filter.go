package store

import "strings"

// FilteredItems is the derived view over the data list: items whose
// serialized text contains the query (case-insensitive) and whose fields
// match every non-empty filter exactly. With no query and no filters the full
// list is returned in original order.
func (s *Store) FilteredItems() []DataItem {
	snap := s.Snapshot()
	return FilterItems(snap.Items, snap.SearchQuery, snap.Filters)
}

// FilterItems applies query and field filters to a list of items.
func FilterItems(items []DataItem, query string, filters map[string]string) []DataItem {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]DataItem, 0, len(items))
	for _, item := range items {
		if query != "" && !strings.Contains(strings.ToLower(serialize(item)), query) {
			continue
		}
		if !matchesFilters(item, filters) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// serialize flattens an item's fields into one searchable string.
func serialize(item DataItem) string {
	return strings.Join([]string{item.ID, item.Name, item.Category, item.Status}, " ")
}

// matchesFilters checks every non-empty filter entry against the item's
// corresponding field.
func matchesFilters(item DataItem, filters map[string]string) bool {
	for field, want := range filters {
		if want == "" {
			continue
		}
		if fieldValue(item, field) != want {
			return false
		}
	}
	return true
}

func fieldValue(item DataItem, field string) string {
	switch strings.ToLower(field) {
	case "id":
		return item.ID
	case "name":
		return item.Name
	case "category":
		return item.Category
	case "status":
		return item.Status
	default:
		return ""
	}
}
