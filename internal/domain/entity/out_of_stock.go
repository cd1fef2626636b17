package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OutOfStockRequest represents a reorder request for a product that ran out.
// quantityToOrder is deliberately free-form ("5 kg", "2 crates"), so it stays
// a non-empty string rather than a number.
type OutOfStockRequest struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductType     string             `json:"productType" bson:"productType" validate:"required"`
	ProductBrand    string             `json:"productBrand" bson:"productBrand" validate:"required"`
	ProductName     string             `json:"productName" bson:"productName" validate:"required"`
	QuantityToOrder string             `json:"quantityToOrder" bson:"quantityToOrder" validate:"required"`
	NetRatePerUnit  *float64           `json:"netRatePerUnit" bson:"netRatePerUnit" validate:"required"`
	RequestDate     string             `json:"requestDate" bson:"requestDate" validate:"required,iso8601"`
}
