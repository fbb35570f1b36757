package models

import "time"

// Product is a catalog entry. ID is the storefront-facing auto-increment
// identifier, distinct from the Mongo _id.
type Product struct {
	ID        int64     `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name" binding:"required"`
	Image     string    `bson:"image" json:"image"`
	Category  string    `bson:"category" json:"category"`
	NewPrice  float64   `bson:"new_price" json:"new_price"`
	OldPrice  float64   `bson:"old_price" json:"old_price"`
	Date      time.Time `bson:"date" json:"date"`
	Available bool      `bson:"available" json:"available"`
}
