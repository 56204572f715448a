// Package scene keeps the set of scenes known to the engine and reports
// lookups of unknown scene ids with *NotFoundError.
package scene
