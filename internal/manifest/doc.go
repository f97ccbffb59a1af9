// Package manifest reads stack registry documents. A document is YAML or
// JSON; it is validated against an embedded JSON Schema and its version is
// checked against the range this build understands before anything else
// looks at it.
package manifest
