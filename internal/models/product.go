package models

import "time"

// Product is a catalog entry. ID is the stable business key ("royal_timepieces_1"),
// distinct from whatever internal id the active backend assigns. Price is in
// minor currency units.
type Product struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Category    string    `json:"category" bson:"category"`
	Type        string    `json:"type" bson:"type"`
	Price       int64     `json:"price" bson:"price"`
	Currency    string    `json:"currency" bson:"currency"`
	Description string    `json:"description" bson:"description"`
	Image       string    `json:"image" bson:"image"`
	Badge       string    `json:"badge" bson:"badge"`
	InStock     bool      `json:"in_stock" bson:"in_stock"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
