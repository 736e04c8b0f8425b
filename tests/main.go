// Seed tool: wipes and repopulates the catalogue, coupons and settings
// with demo data for manual testing. Run against a scratch database only.
package main

import (
	"context"
	"log"
	"time"

	"recreio/config"
	"recreio/database"
	"recreio/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	productColl := db.Collection("products")
	couponColl := db.Collection("coupons")
	settingsColl := db.Collection("settings")

	for _, coll := range []string{"products", "coupons", "settings"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	products := []interface{}{
		models.Product{ID: uuid.New().String(), Name: "Água mineral", Price: 4.00, Stock: 48, MinStock: 12},
		models.Product{ID: uuid.New().String(), Name: "Suco de caixinha", Price: 6.50, Stock: 36, MinStock: 10},
		models.Product{ID: uuid.New().String(), Name: "Pipoca", Price: 8.00, Stock: 24, MinStock: 6},
		models.Product{ID: uuid.New().String(), Name: "Bala de goma", Price: 5.00, Stock: 40, MinStock: 10},
		models.Product{ID: uuid.New().String(), Name: "Meia antiderrapante", Price: 15.00, Stock: 20, MinStock: 5},
	}
	if _, err := productColl.InsertMany(ctx, products); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	expiry := time.Now().AddDate(0, 3, 0)
	coupons := []interface{}{
		models.Coupon{
			ID:            uuid.New().String(),
			Code:          "BEMVINDO10",
			DiscountType:  models.DiscountPercentage,
			DiscountValue: 10,
			Status:        models.CouponActive,
			UsageLimit:    100,
			ValidUntil:    &expiry,
		},
		models.Coupon{
			ID:            uuid.New().String(),
			Code:          "MEIAHORA",
			DiscountType:  models.DiscountFreeTime,
			DiscountValue: 30,
			Status:        models.CouponActive,
		},
		models.Coupon{
			ID:            uuid.New().String(),
			Code:          "ANIVERSARIO",
			DiscountType:  models.DiscountFixed,
			DiscountValue: 20,
			Status:        models.CouponActive,
			UsageLimit:    50,
		},
	}
	if _, err := couponColl.InsertMany(ctx, coupons); err != nil {
		log.Fatalf("Failed to seed coupons: %v", err)
	}

	settings := models.Settings{
		ID:                 "main",
		FirstHourRate:      30.00,
		AdditionalHourRate: 15.00,
		FullAfternoonRate:  50.00,
	}
	if _, err := settingsColl.InsertOne(ctx, settings); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}

	log.Printf("Seeded %d products, %d coupons and default settings", len(products), len(coupons))
}
