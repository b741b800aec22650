// Package registry provides the dependency registry and controller factory.
//
// The Registry stores singleton dependency instances keyed by their exact Go
// type, and named controller constructors. Building a controller picks the
// first registered constructor whose full parameter list is satisfiable from
// the registry and invokes it with those instances, so view documents can
// reference controllers without knowing how they are assembled.
//
// Registries are cheap to clone. The engine clones the shared registry for
// every load and adds the load's own property store, keeping concurrent and
// repeated loads isolated from each other.
package registry
