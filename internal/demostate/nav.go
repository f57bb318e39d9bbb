package demostate

import (
	"net/http"
	"net/url"
)

// NavContext is the navigation-context port: the controller reads query
// parameters from it and may ask it to rewrite the visible location without
// adding a history entry.
type NavContext interface {
	Query() url.Values
	// ReplaceLocation rewrites the visible location with the given query
	// (history.replaceState semantics — no new history entry).
	ReplaceLocation(q url.Values)
}

// RequestNav adapts an *http.Request to the NavContext port. The rewritten
// location is surfaced to the SPA through the X-Replace-Location response
// header; the frontend axios interceptor applies it via history.replaceState.
type RequestNav struct {
	req *http.Request
	w   http.ResponseWriter
}

func NewRequestNav(w http.ResponseWriter, r *http.Request) *RequestNav {
	return &RequestNav{req: r, w: w}
}

func (n *RequestNav) Query() url.Values {
	return n.req.URL.Query()
}

func (n *RequestNav) ReplaceLocation(q url.Values) {
	loc := *n.req.URL
	loc.RawQuery = q.Encode()
	n.w.Header().Set("X-Replace-Location", loc.RequestURI())
}

// stripParams returns a copy of q with the named parameters removed.
func stripParams(q url.Values, names []string) url.Values {
	out := url.Values{}
	for k, vs := range q {
		out[k] = vs
	}
	for _, name := range names {
		out.Del(name)
	}
	return out
}
