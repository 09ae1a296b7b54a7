package httpkit

import (
	"net/http"
	"time"

	"reviewtrust/internal/platform/net/middleware"
)

// CommonStack is the per-scope stack mounted on /api/v1
func CommonStack(cors middleware.CORSOptions, throttle int) []func(http.Handler) http.Handler {
	mw := []func(http.Handler) http.Handler{
		middleware.CORS(cors),
		middleware.StripSlashes(),
		middleware.AllowContentType("application/json"),
	}
	if throttle > 0 {
		mw = append(mw, middleware.Throttle(throttle))
	}
	return mw
}

// RootStack is what the server mounts before any route
func RootStack(timeout, slow time.Duration) []func(http.Handler) http.Handler {
	return middleware.Defaults(timeout, middleware.AccessLogOptions{Slow: slow})
}
