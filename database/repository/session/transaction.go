package sessionRepo

import (
	"context"
	"errors"
	"fmt"

	"recreio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CancelWithRestock deletes the session and returns every consumed quantity
// to product stock. Both sides commit as one transaction, so a cancelled
// session can never leave inventory half-restored.
func (r *MongoSessionRepo) CancelWithRestock(ctx context.Context, id string) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		var session models.ActiveSession
		if err := r.coll.FindOne(sc, bson.M{"id": id}).Decode(&session); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrNotFound
			}
			return fmt.Errorf("load session failed: %w", err)
		}

		for _, item := range session.Consumption {
			_, err := r.productColl.UpdateOne(sc,
				bson.M{"id": item.ProductID},
				bson.M{"$inc": bson.M{"stock": item.Quantity}},
			)
			if err != nil {
				return fmt.Errorf("restock product %s failed: %w", item.ProductID, err)
			}
		}

		result, err := r.coll.DeleteOne(sc, bson.M{"id": id})
		if err != nil {
			return fmt.Errorf("delete session failed: %w", err)
		}
		if result.DeletedCount == 0 {
			return ErrNotFound
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("cancellation transaction failed: %w", err)
	}

	return nil
}
