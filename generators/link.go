package generators

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"datagen/faker"
	"datagen/models"
)

// NewProductCategory builds the link record for one (product, category)
// pair. Pair dedupe and the at-most-one-primary rule belong to the
// coordinator, not here.
func NewProductCategory(f *faker.Faker, productID, categoryID primitive.ObjectID) models.ProductCategory {
	return models.ProductCategory{
		ID:         NewID(),
		ProductID:  productID,
		CategoryID: categoryID,
		IsPrimary:  f.Bool(),
		SortOrder:  f.IntBetween(0, 100),
		CreatedAt:  f.PastTime(historyWindow),
	}
}
