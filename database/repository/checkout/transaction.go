package checkoutRepo

import (
	"context"
	"fmt"

	"recreio/database"
	"recreio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCheckoutRepo implements CheckoutRepository using MongoDB. It spans the
// three collections a settlement touches.
type MongoCheckoutRepo struct {
	sessionColl *mongo.Collection
	saleColl    *mongo.Collection
	couponColl  *mongo.Collection
}

// NewMongoCheckoutRepo creates a new instance of CheckoutRepository using MongoDB.
func NewMongoCheckoutRepo() CheckoutRepository {
	db := database.DB()
	return &MongoCheckoutRepo{
		sessionColl: db.Collection("active_sessions"),
		saleColl:    db.Collection("sales"),
		couponColl:  db.Collection("coupons"),
	}
}

// CommitSettlement commits the settlement as one transaction. Stock is never
// touched here: consumption-time adjustments own that field.
func (r *MongoCheckoutRepo) CommitSettlement(ctx context.Context, commit SettlementCommit) error {
	client := r.sessionColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if commit.Sale != nil {
			if _, err := r.saleColl.InsertOne(sc, commit.Sale); err != nil {
				return fmt.Errorf("insert sale record failed: %w", err)
			}
		}

		if commit.CouponID != "" {
			result, err := r.couponColl.UpdateOne(sc,
				bson.M{"id": commit.CouponID},
				bson.M{"$inc": bson.M{"uses": 1}},
			)
			if err != nil {
				return fmt.Errorf("increment coupon usage failed: %w", err)
			}
			if result.MatchedCount == 0 {
				return fmt.Errorf("coupon %s no longer exists", commit.CouponID)
			}
		}

		if commit.Close {
			result, err := r.sessionColl.DeleteOne(sc, bson.M{"id": commit.SessionID})
			if err != nil {
				return fmt.Errorf("delete session failed: %w", err)
			}
			if result.DeletedCount == 0 {
				return fmt.Errorf("session %s no longer exists", commit.SessionID)
			}
			return nil
		}

		if commit.Continue == nil {
			return fmt.Errorf("continuation missing for open settlement")
		}

		set := bson.M{
			"consumption":          []models.ConsumptionItem{},
			"maxTime":              commit.Continue.MaxTime,
			"isInitialPaymentMade": true,
		}
		if commit.Continue.MarkCouponCounted {
			set["isCouponUsageCounted"] = true
		}
		update := bson.M{
			"$set": set,
			"$inc": bson.M{"totalPaidSoFar": commit.Continue.AmountPaid},
		}

		result, err := r.sessionColl.UpdateOne(sc, bson.M{"id": commit.SessionID}, update)
		if err != nil {
			return fmt.Errorf("update session failed: %w", err)
		}
		if result.MatchedCount == 0 {
			return fmt.Errorf("session %s no longer exists", commit.SessionID)
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
		return fmt.Errorf("settlement transaction failed: %w", err)
	}

	return nil
}
