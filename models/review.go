package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
	ReviewSpam     ReviewStatus = "spam"
)

type HelpfulVotes struct {
	Yes int `json:"yes" bson:"yes"`
	No  int `json:"no" bson:"no"`
}

// ProductReview is one user's review of one product. The (productId, userId)
// pair is unique across the collection. Verified is true exactly when the
// user's order history contains the product.
type ProductReview struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Rating    int                `json:"rating" bson:"rating"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Verified  bool               `json:"verified" bson:"verified"`
	Helpful   HelpfulVotes       `json:"helpful" bson:"helpful"`
	Status    ReviewStatus       `json:"status" bson:"status"`
	Images    []string           `json:"images" bson:"images"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
