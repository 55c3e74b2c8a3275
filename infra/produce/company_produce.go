package produce

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	CompanyExchange = "company.events"

	RoutingKeyDocumentAdded   = "company.document.added"
	RoutingKeyDocumentRemoved = "company.document.removed"
	RoutingKeyLogoUpdated     = "company.logo.updated"
)

// CompanyEventService publishes company mutation events for downstream
// consumers (search indexing, audit). Publishing is best-effort: callers log
// failures and move on.
type CompanyEventService struct {
	channel *amqp.Channel
}

type CompanyEventMessage struct {
	CompanyID  uuid.UUID `json:"company_id"`
	Bucket     string    `json:"bucket,omitempty"`
	ObjectName string    `json:"object_name,omitempty"`
	URL        string    `json:"url,omitempty"`
	Timestamp  int64     `json:"timestamp"`
}

func InitCompanyEventService(channel *amqp.Channel) *CompanyEventService {
	service := &CompanyEventService{
		channel: channel,
	}

	err := channel.ExchangeDeclare(
		CompanyExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare company exchange: " + err.Error())
	}

	return service
}

func (s *CompanyEventService) PublishDocumentAdded(ctx context.Context, companyID uuid.UUID, bucket, objectName, url string) error {
	return s.publish(ctx, RoutingKeyDocumentAdded, CompanyEventMessage{
		CompanyID:  companyID,
		Bucket:     bucket,
		ObjectName: objectName,
		URL:        url,
		Timestamp:  time.Now().Unix(),
	})
}

func (s *CompanyEventService) PublishDocumentRemoved(ctx context.Context, companyID uuid.UUID, bucket, objectName string) error {
	return s.publish(ctx, RoutingKeyDocumentRemoved, CompanyEventMessage{
		CompanyID:  companyID,
		Bucket:     bucket,
		ObjectName: objectName,
		Timestamp:  time.Now().Unix(),
	})
}

func (s *CompanyEventService) PublishLogoUpdated(ctx context.Context, companyID uuid.UUID, url string) error {
	return s.publish(ctx, RoutingKeyLogoUpdated, CompanyEventMessage{
		CompanyID: companyID,
		URL:       url,
		Timestamp: time.Now().Unix(),
	})
}

func (s *CompanyEventService) publish(ctx context.Context, routingKey string, message CompanyEventMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(
		ctx,
		CompanyExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
}
