package facades

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/imfops/gadget-api/internal/models"
)

func TestGadgetEventsKafkaFacade_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gadgetID := uuid.New()
	gadget := &models.GadgetDB{
		GadgetID: gadgetID,
		Codename: "The Kraken",
		Status:   models.StatusDestroyed,
	}

	t.Run("message is keyed by gadget id", func(t *testing.T) {
		mockWriter := NewMockKafkaWriter(ctrl)

		var captured kafka.Message
		mockWriter.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				captured = msgs[0]
				return nil
			})

		facade := NewGadgetEventsKafkaFacade(mockWriter)
		err := facade.Publish(context.Background(), EventGadgetDestroyed, gadget)
		assert.NoError(t, err)

		assert.Equal(t, gadgetID.String(), string(captured.Key))

		var event gadgetEvent
		assert.NoError(t, json.Unmarshal(captured.Value, &event))
		assert.Equal(t, EventGadgetDestroyed, event.Type)
		assert.Equal(t, gadgetID.String(), event.GadgetID)
		assert.Equal(t, "The Kraken", event.Codename)
		assert.Equal(t, models.StatusDestroyed, event.Status)
		assert.False(t, event.At.IsZero())
	})

	t.Run("writer error is returned", func(t *testing.T) {
		mockWriter := NewMockKafkaWriter(ctrl)
		mockWriter.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(errors.New("broker unreachable"))

		facade := NewGadgetEventsKafkaFacade(mockWriter)
		err := facade.Publish(context.Background(), EventGadgetCreated, gadget)
		assert.EqualError(t, err, "broker unreachable")
	})
}
