package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
)

// chiRouter adapts any chi.Router; groups and subroutes wrap their own chi.Router
type chiRouter struct{ r chi.Router }

// AdaptChi wraps a chi router
func AdaptChi(r chi.Router) Router { return chiRouter{r: r} }

// NewRouter returns a fresh chi-backed Router
func NewRouter() Router { return AdaptChi(chi.NewRouter()) }

func (c chiRouter) Get(p string, h Handler) { c.r.Method(stdhttp.MethodGet, p, stdhttp.HandlerFunc(h)) }
func (c chiRouter) Post(p string, h Handler) {
	c.r.Method(stdhttp.MethodPost, p, stdhttp.HandlerFunc(h))
}
func (c chiRouter) Delete(p string, h Handler) {
	c.r.Method(stdhttp.MethodDelete, p, stdhttp.HandlerFunc(h))
}

func (c chiRouter) Handle(p string, h stdhttp.Handler)              { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(stdhttp.Handler) stdhttp.Handler) { c.r.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Mux() stdhttp.Handler { return c.r }
