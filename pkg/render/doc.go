// Package render declares the renderer contract consumed by the engine and
// the error kind for graphics-API failures.
package render
