// Package registry holds the stack registry: the read-only table of known
// (language, framework, service) stack definitions and named extension
// modules. A Registry is built once from a manifest.Document and never
// mutated afterwards, so it can be shared between goroutines freely.
package registry
