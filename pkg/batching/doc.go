// Package batching collects render items into fixed-capacity batches whose
// size follows the batch-size reactable.
//
// A Buffer subscribes to the batch-size channel when created. On every
// announcement it sets its capacity to the new size, growing its storage so
// at least that many items fit before the next Flush. Items already queued
// are kept.
package batching
