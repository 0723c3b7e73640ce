package jobs

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"
)

// AuditQueue receives a copy of every catalog event for the audit log.
const AuditQueue = "catalog.audit"

// LogEvent writes a consumed catalog event to the audit log. Bodies that are
// not JSON objects are rejected.
func LogEvent(msg amqp.Delivery) error {
	var payload map[string]interface{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(msg.Body, &payload); err != nil {
		return fmt.Errorf("undecodable %s event: %w", msg.RoutingKey, err)
	}
	zap.L().Info("catalog event",
		zap.String("routing_key", msg.RoutingKey),
		zap.Time("published_at", msg.Timestamp),
		zap.Any("payload", payload),
	)
	return nil
}
