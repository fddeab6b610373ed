package ui

import "strings"

// RouteKind selects which view a route mounts.
type RouteKind int

const (
	RouteList RouteKind = iota
	RouteCreate
	RouteEdit
)

// Route is a parsed navigation target. ItemID is set only for edits
// and stays an opaque string end to end.
type Route struct {
	Kind   RouteKind
	ItemID string
}

// ListRoute returns the default route.
func ListRoute() Route { return Route{Kind: RouteList} }

// CreateRoute returns the new-item route.
func CreateRoute() Route { return Route{Kind: RouteCreate} }

// EditRoute returns the edit route for an item id.
func EditRoute(id string) Route { return Route{Kind: RouteEdit, ItemID: id} }

// ParseRoute maps a fragment-style location to a route. Recognized
// patterns are items, items/new, and items/edit/<id>; everything else
// normalizes to the list route. The leading "#/" is optional.
func ParseRoute(fragment string) Route {
	s := strings.TrimSpace(fragment)
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(s, "/")
	s = strings.TrimSuffix(s, "/")

	parts := strings.Split(s, "/")
	if parts[0] != "items" {
		return ListRoute()
	}
	switch {
	case len(parts) == 1:
		return ListRoute()
	case len(parts) == 2 && parts[1] == "new":
		return CreateRoute()
	case len(parts) == 3 && parts[1] == "edit" && parts[2] != "":
		return EditRoute(parts[2])
	}
	return ListRoute()
}

// String renders the route back to fragment form.
func (r Route) String() string {
	switch r.Kind {
	case RouteCreate:
		return "#/items/new"
	case RouteEdit:
		return "#/items/edit/" + r.ItemID
	default:
		return "#/items"
	}
}
