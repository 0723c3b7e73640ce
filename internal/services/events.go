package services

import "go.uber.org/zap"

// Routing keys of published catalog events.
const (
	EventProductCreated   = "product.created"
	EventProductUpdated   = "product.updated"
	EventProductDeleted   = "product.deleted"
	EventProductFeatured  = "product.featured"
	EventCategoryCreated  = "category.created"
	EventCategoryRenamed  = "category.renamed"
	EventCategoryDeleted  = "category.deleted"
	EventContactSubmitted = "contact.submitted"
	EventNewsletterJoined = "newsletter.subscribed"
)

// EventPublisher sends domain events. *rabbitmq.Client satisfies it.
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// publish is best-effort: a nil publisher or a broker failure never fails
// the calling operation.
func publish(events EventPublisher, routingKey string, payload interface{}) {
	if events == nil {
		return
	}
	if err := events.Publish(routingKey, payload); err != nil {
		zap.S().Warnw("failed to publish event", "routing_key", routingKey, "error", err)
	}
}
