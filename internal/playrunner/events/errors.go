package events

// PublisherClosedError indicates that the publisher has been closed.
type PublisherClosedError struct{}

func (e PublisherClosedError) Error() string {
	return "publisher is closed"
}

// SubscriberClosedError indicates that the subscriber has been closed.
type SubscriberClosedError struct{}

func (e SubscriberClosedError) Error() string {
	return "subscriber is closed"
}

var (
	ErrPublisherClosed  = PublisherClosedError{}
	ErrSubscriberClosed = SubscriberClosedError{}
)
