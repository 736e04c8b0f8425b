package sessionRepo

import (
	"context"
	"fmt"

	"recreio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Watch opens a change stream over the active-sessions collection and
// delivers events on the returned channel. Cancelling the context stops
// delivery and closes the channel.
func (r *MongoSessionRepo) Watch(ctx context.Context) (<-chan SessionEvent, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": bson.A{"insert", "update", "replace", "delete"}},
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := r.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open session change stream: %w", err)
	}

	events := make(chan SessionEvent)
	go func() {
		defer close(events)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var change struct {
				OperationType string                 `bson:"operationType"`
				FullDocument  *models.ActiveSession  `bson:"fullDocument"`
				DocumentKey   bson.M                 `bson:"documentKey"`
			}
			if err := stream.Decode(&change); err != nil {
				continue
			}

			event := SessionEvent{
				Type:    change.OperationType,
				Session: change.FullDocument,
			}
			if change.FullDocument != nil {
				event.SessionID = change.FullDocument.ID
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}
