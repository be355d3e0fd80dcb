package modkit

import (
	"net/http"
	"strings"

	phttp "almanac/internal/platform/net/http"
)

// Built is the resolved option set a module keeps
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
	Extra  func(phttp.Router)
}

// Build applies defaults first, then opts, so callers can override a module's name or prefix
func Build(defaults []Option, opts ...Option) Built {
	var c buildCfg
	for _, o := range defaults {
		o(&c)
	}
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:   c.name,
		Prefix: NormalizePrefix(c.prefix),
		Mw:     append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:  c.ports,
		Extra:  c.register,
	}
}

// Mount routes register under b.Prefix with the module middlewares applied
// an empty prefix registers on r directly inside a group
func (b Built) Mount(r phttp.Router, register func(phttp.Router)) {
	mount := func(rr phttp.Router) {
		if len(b.Mw) > 0 {
			rr.Use(b.Mw...)
		}
		register(rr)
		if b.Extra != nil {
			b.Extra(rr)
		}
	}
	if b.Prefix == "" {
		r.Group(mount)
		return
	}
	r.Route(b.Prefix, mount)
}

// NormalizePrefix trims spaces and slashes and leaves a single leading slash
// blank and "/" both normalize to ""
func NormalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
