package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductStatus string

const (
	ProductActive       ProductStatus = "active"
	ProductInactive     ProductStatus = "inactive"
	ProductDiscontinued ProductStatus = "discontinued"
	ProductDraft        ProductStatus = "draft"
)

// Inventory counters are independently randomized; reserved may exceed
// quantity (a documented relaxation carried over from the reference data).
type Inventory struct {
	Quantity          int `json:"quantity" bson:"quantity"`
	Reserved          int `json:"reserved" bson:"reserved"`
	LowStockThreshold int `json:"lowStockThreshold" bson:"lowStockThreshold"`
}

type Specifications struct {
	Weight string `json:"weight" bson:"weight"`
	Color  string `json:"color" bson:"color"`
	Brand  string `json:"brand" bson:"brand"`
}

type Ratings struct {
	Average float64 `json:"average" bson:"average"`
	Count   int     `json:"count" bson:"count"`
}

type Product struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	SKU            string             `json:"sku" bson:"sku"`
	Name           string             `json:"name" bson:"name"`
	Description    string             `json:"description" bson:"description"`
	Category       string             `json:"category" bson:"category"`
	Subcategory    *string            `json:"subcategory" bson:"subcategory"`
	Price          float64            `json:"price" bson:"price"`
	Currency       string             `json:"currency" bson:"currency"`
	Inventory      Inventory          `json:"inventory" bson:"inventory"`
	Images         []string           `json:"images" bson:"images"`
	Tags           []string           `json:"tags" bson:"tags"`
	Specifications Specifications     `json:"specifications" bson:"specifications"`
	Ratings        Ratings            `json:"ratings" bson:"ratings"`
	Status         ProductStatus      `json:"status" bson:"status"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductCategory links one product to one category. The (productId,
// categoryId) pair is unique across the collection and at most one link per
// product carries IsPrimary.
type ProductCategory struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id"`
	ProductID  primitive.ObjectID `json:"productId" bson:"productId"`
	CategoryID primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	IsPrimary  bool               `json:"isPrimary" bson:"isPrimary"`
	SortOrder  int                `json:"sortOrder" bson:"sortOrder"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
