// Package navigation defines the two screens of the catalog browser, the
// route addressing scheme between them and a linear back stack.
//
// Routes are written as "list" and "detail/{id}", where id is the decimal
// form of a book identifier. Over HTTP the same routes are served at "/list"
// and "/detail/{id}".
package navigation

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var ErrUnknownRoute = errors.New("unknown route")

// Screen identifies which view a route shows.
type Screen int

const (
	List Screen = iota
	Detail
)

func (s Screen) String() string {
	switch s {
	case List:
		return "list"
	case Detail:
		return "detail"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Route is a navigation destination. ID is only meaningful for Detail and
// holds the identifier text as requested, which may not resolve to a book.
type Route struct {
	Screen Screen
	ID     string
}

// ListRoute returns the start destination.
func ListRoute() Route {
	return Route{Screen: List}
}

// DetailRoute returns the detail destination for a book identifier.
func DetailRoute(id int) Route {
	return Route{Screen: Detail, ID: strconv.Itoa(id)}
}

// String returns the route in its canonical form, e.g. "detail/3".
func (r Route) String() string {
	if r.Screen == Detail {
		return "detail/" + r.ID
	}
	return "list"
}

// Path returns the URL path the HTTP router serves this route at. The detail
// id is path-escaped so it comes back unchanged as the :id parameter.
func (r Route) Path() string {
	if r.Screen == Detail {
		return "/detail/" + escapeSegment(r.ID)
	}
	return "/list"
}

// escapeSegment escapes id as a single path segment. PathEscape leaves dots
// alone, so "." and ".." are spelled out or redirects would clean them away.
func escapeSegment(id string) string {
	if id == "." || id == ".." {
		return strings.Repeat("%2E", len(id))
	}
	return url.PathEscape(id)
}

// Parse reads a route written as "list" or "detail/{id}". A leading slash is
// ignored and an empty path means the list. The detail id is kept verbatim;
// resolving it is the caller's job.
func Parse(path string) (Route, error) {
	p := strings.TrimPrefix(path, "/")

	if p == "" || p == "list" {
		return ListRoute(), nil
	}

	if id, ok := strings.CutPrefix(p, "detail/"); ok {
		if id == "" || strings.Contains(id, "/") {
			return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
		}
		return Route{Screen: Detail, ID: id}, nil
	}

	return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
}
