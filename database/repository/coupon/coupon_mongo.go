package couponRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"recreio/database"
	"recreio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no coupon matches the given ID or code.
var ErrNotFound = errors.New("coupon not found")

// MongoCouponRepo implements CouponRepository using MongoDB.
type MongoCouponRepo struct {
	coll *mongo.Collection
}

// NewMongoCouponRepo creates a new instance of CouponRepository using MongoDB.
func NewMongoCouponRepo() CouponRepository {
	coll := database.DB().Collection("coupons")
	repo := &MongoCouponRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCouponRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a coupon by its unique ID.
func (r *MongoCouponRepo) GetByID(id string) (*models.Coupon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var coupon models.Coupon
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&coupon)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get coupon with id %s: %w", id, err)
	}
	return &coupon, nil
}

// GetByCode retrieves a coupon by code. Codes are stored upper-cased.
func (r *MongoCouponRepo) GetByCode(code string) (*models.Coupon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var coupon models.Coupon
	err := r.coll.FindOne(ctx, bson.M{"code": strings.ToUpper(code)}).Decode(&coupon)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get coupon with code %s: %w", code, err)
	}
	return &coupon, nil
}

// GetAll retrieves all coupons ordered by code.
func (r *MongoCouponRepo) GetAll() ([]models.Coupon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	defer cursor.Close(ctx)

	var coupons []models.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, fmt.Errorf("failed to decode coupons: %w", err)
	}
	return coupons, nil
}

// Create inserts a new coupon document with a fresh usage counter.
func (r *MongoCouponRepo) Create(coupon *models.Coupon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	coupon.Code = strings.ToUpper(coupon.Code)
	coupon.Uses = 0

	_, err := r.coll.InsertOne(ctx, coupon)
	if err != nil {
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

// Update modifies an existing coupon document. The uses counter is owned by
// the settlement transaction and is never written here.
func (r *MongoCouponRepo) Update(coupon *models.Coupon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"code":          strings.ToUpper(coupon.Code),
		"discountType":  coupon.DiscountType,
		"discountValue": coupon.DiscountValue,
		"status":        coupon.Status,
		"usageLimit":    coupon.UsageLimit,
		"validUntil":    coupon.ValidUntil,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": coupon.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update coupon with id %s: %w", coupon.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a coupon document by its ID.
func (r *MongoCouponRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete coupon with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
