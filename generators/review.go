package generators

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"datagen/faker"
	"datagen/models"
)

var reviewStatuses = []string{
	string(models.ReviewPending),
	string(models.ReviewApproved),
	string(models.ReviewRejected),
	string(models.ReviewSpam),
}

// PurchaseIndex maps a user to the set of products appearing in that user's
// order history. It is built once after all orders exist and read-only from
// then on.
type PurchaseIndex map[primitive.ObjectID]map[primitive.ObjectID]struct{}

// BuildPurchaseIndex flattens every order's line items in one pass.
func BuildPurchaseIndex(orders []models.Order) PurchaseIndex {
	idx := make(PurchaseIndex)
	for _, o := range orders {
		byUser, ok := idx[o.CustomerID]
		if !ok {
			byUser = make(map[primitive.ObjectID]struct{})
			idx[o.CustomerID] = byUser
		}
		for _, item := range o.Items {
			byUser[item.ProductID] = struct{}{}
		}
	}
	return idx
}

// Contains reports whether userID has ordered productID.
func (idx PurchaseIndex) Contains(userID, productID primitive.ObjectID) bool {
	byUser, ok := idx[userID]
	if !ok {
		return false
	}
	_, ok = byUser[productID]
	return ok
}

// NewProductReview builds one review for the (product, user) pair, or
// reports ok=false without touching anything when the pair was already
// reviewed. Verified is a pure membership test against the purchase index.
func NewProductReview(f *faker.Faker, productID, userID primitive.ObjectID, purchases PurchaseIndex, pairs *PairRegistry) (models.ProductReview, bool) {
	if !pairs.Add(productID, userID) {
		return models.ProductReview{}, false
	}

	title := f.Sentence(6)
	if len(title) > 100 {
		title = title[:100]
	}
	images := make([]string, f.IntBetween(0, 3))
	for i := range images {
		images[i] = f.ImageURL()
	}

	return models.ProductReview{
		ID:        NewID(),
		ProductID: productID,
		UserID:    userID,
		Rating:    f.IntBetween(1, 5),
		Title:     title,
		Content:   f.Text(500),
		Verified:  purchases.Contains(userID, productID),
		Helpful: models.HelpfulVotes{
			Yes: f.IntBetween(0, 50),
			No:  f.IntBetween(0, 20),
		},
		Status:    models.ReviewStatus(f.Pick(reviewStatuses)),
		Images:    images,
		CreatedAt: f.PastTime(historyWindow),
		UpdatedAt: f.PastTime(historyWindow),
	}, true
}
