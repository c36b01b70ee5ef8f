package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryStatus string

const (
	CategoryActive   CategoryStatus = "active"
	CategoryInactive CategoryStatus = "inactive"
)

type CategorySEO struct {
	MetaTitle       string   `json:"metaTitle" bson:"metaTitle"`
	MetaDescription string   `json:"metaDescription" bson:"metaDescription"`
	Keywords        []string `json:"keywords" bson:"keywords"`
}

// Category is one node of the category forest. ParentID is nil for roots and
// otherwise references a category generated earlier, so the graph is acyclic.
type Category struct {
	ID          primitive.ObjectID  `json:"_id" bson:"_id"`
	Name        string              `json:"name" bson:"name"`
	Slug        string              `json:"slug" bson:"slug"`
	Description string              `json:"description" bson:"description"`
	ParentID    *primitive.ObjectID `json:"parentId" bson:"parentId"`
	Image       string              `json:"image" bson:"image"`
	SortOrder   int                 `json:"sortOrder" bson:"sortOrder"`
	Featured    bool                `json:"featured" bson:"featured"`
	Status      CategoryStatus      `json:"status" bson:"status"`
	SEO         CategorySEO         `json:"seo" bson:"seo"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt" bson:"updatedAt"`
}
