package lifecycle

import (
	"fmt"
	"net/url"
	"strconv"

	"netbound/internal/domain"
)

// Page is one bounded slice of a filtered result set plus the navigation
// links needed to walk the rest of it. Pages are built per request and never
// persisted.
type Page[T any] struct {
	Items []T
	Links []Link
}

// Link is a navigation reference on a page.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// Paginate slices the filtered result list according to the page request. The
// marker names the first element of a forward page; a reverse page is the run
// of elements immediately before the marker. An absent marker starts at the
// corresponding end of the list. A marker that is not in the result set is a
// client error.
func Paginate[T any](items []T, id func(T) string, q Query) (*Page[T], error) {
	start := 0
	if q.Reverse {
		start = len(items)
	}
	if q.Marker != "" {
		idx := -1
		for i, item := range items {
			if id(item) == q.Marker {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("marker %q not in result set: %w", q.Marker, domain.ErrInvalidInput)
		}
		start = idx
	}

	var lo, hi int
	if q.Reverse {
		hi = start
		lo = hi - q.Limit
		if lo < 0 {
			lo = 0
		}
	} else {
		lo = start
		hi = lo + q.Limit
		if hi > len(items) {
			hi = len(items)
		}
	}

	page := &Page[T]{Items: items[lo:hi]}
	if hi < len(items) {
		page.Links = append(page.Links, Link{
			Rel:  "next",
			Href: pageHref(q.Base, q.Limit, id(items[hi]), false),
		})
	}
	if lo > 0 && hi > lo {
		page.Links = append(page.Links, Link{
			Rel:  "previous",
			Href: pageHref(q.Base, q.Limit, id(items[lo]), true),
		})
	}
	return page, nil
}

func pageHref(base *url.URL, limit int, marker string, reverse bool) string {
	u := url.URL{}
	if base != nil {
		u = *base
	}
	vals := u.Query()
	vals.Set("limit", strconv.Itoa(limit))
	vals.Set("marker", marker)
	if reverse {
		vals.Set("page_reverse", "true")
	} else {
		vals.Del("page_reverse")
	}
	u.RawQuery = vals.Encode()
	return u.String()
}
