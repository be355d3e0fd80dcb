// Package httpkit mounts module routers under the versioned API with a shared middleware stack
package httpkit

import (
	"compress/flate"
	"net/http"
	"strings"
	"time"

	"almanac/internal/platform/metrics"
	phttp "almanac/internal/platform/net/http"
	"almanac/internal/platform/net/middleware"
)

// Router re-exports the platform router seam so modules import one package
type Router = phttp.Router

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout time.Duration
	Slow    time.Duration
	CORS    middleware.CORSOptions
	Metrics *metrics.Metrics // nil skips request metrics
}

// CommonStack returns the baseline API middleware in order
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if len(o.CORS.AllowedOrigins) == 0 {
		o.CORS.AllowedOrigins = []string{"*"}
	}
	stack := []func(http.Handler) http.Handler{
		middleware.RealIP(),
		middleware.RequestID(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.RecoverJSON,
	}
	if o.Metrics != nil {
		stack = append(stack, middleware.Metrics(o.Metrics))
	}
	return append(stack,
		middleware.CORS(o.CORS),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(o.Timeout),
	)
}

// MountAPI mounts a subrouter under /api/{version}, applies mw, then calls mount
//
//	httpkit.MountAPI(r, "v1", httpkit.CommonStack(opts), func(api httpkit.Router) {
//	  remap.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	prefix := "/api/" + strings.Trim(version, "/")
	r.Route(prefix, func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 is MountAPI for v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
