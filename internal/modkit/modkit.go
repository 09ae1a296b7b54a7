// Package modkit wires API modules: shared deps, build options and the Module contract
package modkit

import "reviewtrust/internal/modkit/module"

// Module mounts routes and exposes ports for cross wiring
type Module = module.Module

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
