package facades

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/imfops/gadget-api/internal/logger"
	"github.com/imfops/gadget-api/internal/models"
)

// Lifecycle event types published to the audit topic.
const (
	EventGadgetCreated              = "gadget.created"
	EventGadgetDecommissioned       = "gadget.decommissioned"
	EventGadgetSelfDestructInitiated = "gadget.self_destruct_initiated"
	EventGadgetDestroyed            = "gadget.destroyed"
)

// KafkaWriter is the subset of kafka.Writer used by the facade.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// gadgetEvent is the JSON payload written to the topic.
type gadgetEvent struct {
	Type     string    `json:"type"`
	GadgetID string    `json:"gadgetId"`
	Codename string    `json:"codename"`
	Status   string    `json:"status"`
	At       time.Time `json:"at"`
}

// GadgetEventsKafkaFacade publishes gadget lifecycle events to Kafka.
type GadgetEventsKafkaFacade struct {
	writer KafkaWriter
}

// NewGadgetEventsKafkaFacade creates a new facade with a Kafka writer.
func NewGadgetEventsKafkaFacade(writer KafkaWriter) *GadgetEventsKafkaFacade {
	return &GadgetEventsKafkaFacade{writer: writer}
}

// Publish writes one lifecycle event for the gadget. The gadget id is the
// message key, so events for one gadget stay ordered within a partition.
func (f *GadgetEventsKafkaFacade) Publish(ctx context.Context, event string, gadget *models.GadgetDB) error {
	payload, err := json.Marshal(gadgetEvent{
		Type:     event,
		GadgetID: gadget.GadgetID.String(),
		Codename: gadget.Codename,
		Status:   gadget.Status,
		At:       time.Now().UTC(),
	})
	if err != nil {
		logger.Log.Errorw("failed to marshal gadget event", "event", event, "error", err)
		return err
	}

	err = f.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(gadget.GadgetID.String()),
		Value: payload,
	})
	if err != nil {
		logger.Log.Errorw("failed to publish gadget event",
			"event", event, "gadgetID", gadget.GadgetID, "error", err)
		return err
	}

	return nil
}
