package reactable

import "github.com/dmitrymomot/enginekit/pkg/observable"

// BatchSizeReactable announces changes of the geometry batch capacity.
// Subscribers must be able to hold at least the announced number of items
// before the next draw submission. Use NewBatchSizeReactable to create one.
type BatchSizeReactable struct {
	channel[BatchSizeData]
}

// NewBatchSizeReactable creates the batch size channel.
func NewBatchSizeReactable(opts ...observable.Option) *BatchSizeReactable {
	return &BatchSizeReactable{channel: newChannel[BatchSizeData](BatchSizeChannel, opts)}
}

// OnBatchSizeChanged pushes the new size. Zero is rejected before delivery.
func (r *BatchSizeReactable) OnBatchSizeChanged(data BatchSizeData) error {
	if data.BatchSize() == 0 {
		return ErrZeroBatchSize
	}
	return r.push(data)
}
