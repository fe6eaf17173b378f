package models

import "time"

// OrderStatusPending is the only status order creation ever produces;
// there is no transition logic.
const OrderStatusPending = "pending"

// Order references a user weakly (the id is not validated against the user
// list) and carries its line items as opaque JSON objects: whatever shape
// the client sent is echoed back and persisted as-is.
type Order struct {
	ID          string           `json:"id,omitempty" bson:"-"`
	UserID      string           `json:"user_id" bson:"user_id"`
	Items       []map[string]any `json:"items" bson:"items"`
	TotalAmount int64            `json:"total_amount" bson:"total_amount"`
	Currency    string           `json:"currency" bson:"currency"`
	Status      string           `json:"status" bson:"status"`
	CreatedAt   time.Time        `json:"created_at" bson:"created_at"`
}
