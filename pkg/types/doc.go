// Package types defines the entity types for the Shelf catalog system:
// field schemas, item types, item instances, and projects, together with
// the Store interface, configuration, and standard error types.
package types
