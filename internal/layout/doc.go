// Package layout checks a project tree against the registry's domain layout
// conventions: a <domain>/<service>/ hierarchy where every service carries
// the required subdirectories and certain names never appear at the root.
package layout
