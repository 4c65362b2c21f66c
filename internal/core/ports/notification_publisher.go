package ports

import "context"

// Notification topics fanned out to interested parties. Delivery is
// fire-and-forget, at most once; the core never waits for confirmation.
const (
	TopicJobAvailable   = "moveout.job.available"
	TopicOrderCreated   = "moveout.order.created"
	TopicOrderCancelled = "moveout.order.cancelled"
	TopicArrivalSignal  = "moveout.job.arrival-requested"
	TopicJobCompleted   = "moveout.job.completed"
)

// NotificationPublisher publishes domain events to a topic. Publish errors
// are logged by callers, never propagated into command results.
type NotificationPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}
