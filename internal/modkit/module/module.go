// Package module holds the Module contract and a bootstrap port registry
package module

import phttp "reviewtrust/internal/platform/net/http"

// Module is what the API server mounts
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
