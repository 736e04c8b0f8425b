package settingsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recreio/database"
	"recreio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsDocID is the fixed ID of the singleton settings document.
const settingsDocID = "main"

// Default rates used when the venue has not configured pricing yet.
const (
	defaultFirstHourRate      = 30.00
	defaultAdditionalHourRate = 15.00
	defaultFullAfternoonRate  = 50.00
)

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	return &MongoSettingsRepo{coll: database.DB().Collection("settings")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func defaultSettings() *models.Settings {
	return &models.Settings{
		ID:                 settingsDocID,
		FirstHourRate:      defaultFirstHourRate,
		AdditionalHourRate: defaultAdditionalHourRate,
		FullAfternoonRate:  defaultFullAfternoonRate,
	}
}

// Get retrieves the settings document, creating it with defaults on first
// access.
func (r *MongoSettingsRepo) Get() (*models.Settings, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var settings models.Settings
	err := r.coll.FindOne(ctx, bson.M{"id": settingsDocID}).Decode(&settings)
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	defaults := defaultSettings()
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx,
		bson.M{"id": settingsDocID},
		bson.M{"$setOnInsert": defaults},
		opts,
	); err != nil {
		return nil, fmt.Errorf("failed to seed default settings: %w", err)
	}
	return defaults, nil
}

// Update merges the given rates into the settings document.
func (r *MongoSettingsRepo) Update(settings *models.Settings) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"firstHourRate":      settings.FirstHourRate,
		"additionalHourRate": settings.AdditionalHourRate,
		"fullAfternoonRate":  settings.FullAfternoonRate,
	}}

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": settingsDocID}, update, opts); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}

// SetLogoURL stores the uploaded brand logo reference.
func (r *MongoSettingsRepo) SetLogoURL(url string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx,
		bson.M{"id": settingsDocID},
		bson.M{"$set": bson.M{"logoUrl": url}},
		opts,
	); err != nil {
		return fmt.Errorf("failed to update logo url: %w", err)
	}
	return nil
}
