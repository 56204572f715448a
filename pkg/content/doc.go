// Package content holds the loader contract used to produce texture, sound
// or text content on demand, and the error kind reported when it fails.
package content
