package router

import (
	"net/http"
	"strings"
)

// Router dispatches on exact (method, path) pairs, plus a single prefix
// rule for the product-by-id lookup. A known path hit with the wrong
// method answers the same 404 as an unknown path; there is no 405.
type Router struct {
	routes   map[routeKey]http.HandlerFunc
	prefixes []prefixRoute
	notFound http.HandlerFunc
}

type routeKey struct {
	method string
	path   string
}

type prefixRoute struct {
	method  string
	prefix  string
	handler func(w http.ResponseWriter, r *http.Request, rest string)
}

// New creates a router that answers unmatched requests with notFound.
func New(notFound http.HandlerFunc) *Router {
	return &Router{
		routes:   make(map[routeKey]http.HandlerFunc),
		notFound: notFound,
	}
}

// Handle registers an exact-match route.
func (rt *Router) Handle(method, path string, h http.HandlerFunc) {
	rt.routes[routeKey{method: method, path: path}] = h
}

// HandlePrefix registers a prefix route. The path segment after the last
// "/" is handed to the handler as-is, with no decoding or validation.
func (rt *Router) HandlePrefix(method, prefix string, h func(http.ResponseWriter, *http.Request, string)) {
	rt.prefixes = append(rt.prefixes, prefixRoute{method: method, prefix: prefix, handler: h})
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := rt.routes[routeKey{method: r.Method, path: r.URL.Path}]; ok {
		h(w, r)
		return
	}
	for _, p := range rt.prefixes {
		if r.Method == p.method && strings.HasPrefix(r.URL.Path, p.prefix) {
			rest := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
			p.handler(w, r, rest)
			return
		}
	}
	rt.notFound(w, r)
}
