// Package entity contains the core business objects of the project.
package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item represents a stocked grocery product.
//
// The numeric fields are pointers so that an explicit zero survives the
// presence check: `weightPerUnit: 0` is a valid payload, a missing field is not.
type Item struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductType    string             `json:"productType" bson:"productType" validate:"required"`
	ProductBrand   string             `json:"productBrand" bson:"productBrand" validate:"required"`
	ProductName    string             `json:"productName" bson:"productName" validate:"required"`
	WeightPerUnit  *float64           `json:"weightPerUnit" bson:"weightPerUnit" validate:"required"`
	PricePerUnit   *float64           `json:"pricePerUnit" bson:"pricePerUnit" validate:"required"`
	SellingPrice   *float64           `json:"sellingPrice" bson:"sellingPrice" validate:"required"`
	ExpirationDate string             `json:"expirationDate" bson:"expirationDate" validate:"required,iso8601"`
}
