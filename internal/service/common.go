package service

import (
	"context"
	"errors"

	"github.com/alimikegami/e-bazaar/internal/dto"
	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseID decodes a hex object id, reporting invalid when it is malformed.
func parseID(id string, invalid error) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, invalid
	}

	return objectID, nil
}

// resolveReference turns a missing referenced document into invalid while
// leaving store faults untouched.
func resolveReference(err error, invalid error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return invalid
	}

	return err
}

func publish(ctx context.Context, publisher EventPublisher, key, eventType string, data interface{}) {
	err := publisher.Publish(ctx, key, dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "publish").Str("event_type", eventType).Msg("failed to publish event")
	}
}
