package observable

import (
	"errors"
	"fmt"
)

// ErrDeliveryFailed is matched by every *DeliveryError.
var ErrDeliveryFailed = errors.New("observable: delivery failed")

// DeliveryError is returned by Push when an observer fails.
type DeliveryError struct {
	Channel        string
	SubscriptionID string
	Err            error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("observable: delivery on channel %s to subscription %s failed: %v", e.Channel, e.SubscriptionID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func (e *DeliveryError) Is(target error) bool {
	return target == ErrDeliveryFailed
}
