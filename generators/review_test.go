package generators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datagen/faker"
	"datagen/generators"
	"datagen/models"
)

func TestBuildPurchaseIndex(t *testing.T) {
	user1, user2 := generators.NewID(), generators.NewID()
	prodA, prodB, prodC := generators.NewID(), generators.NewID(), generators.NewID()

	orders := []models.Order{
		{CustomerID: user1, Items: []models.OrderItem{{ProductID: prodA}, {ProductID: prodB}}},
		{CustomerID: user1, Items: []models.OrderItem{{ProductID: prodA}}},
		{CustomerID: user2, Items: []models.OrderItem{{ProductID: prodC}}},
	}

	idx := generators.BuildPurchaseIndex(orders)
	assert.True(t, idx.Contains(user1, prodA))
	assert.True(t, idx.Contains(user1, prodB))
	assert.False(t, idx.Contains(user1, prodC))
	assert.True(t, idx.Contains(user2, prodC))
	assert.False(t, idx.Contains(user2, prodA))
	assert.False(t, idx.Contains(generators.NewID(), prodA))
}

func TestNewProductReviewVerifiedFlag(t *testing.T) {
	f := faker.New(51)
	user := generators.NewID()
	purchased := generators.NewID()
	unpurchased := generators.NewID()

	idx := generators.BuildPurchaseIndex([]models.Order{
		{CustomerID: user, Items: []models.OrderItem{{ProductID: purchased}}},
	})
	pairs := generators.NewPairRegistry()

	verified, ok := generators.NewProductReview(f, purchased, user, idx, pairs)
	require.True(t, ok)
	assert.True(t, verified.Verified)

	unverified, ok := generators.NewProductReview(f, unpurchased, user, idx, pairs)
	require.True(t, ok)
	assert.False(t, unverified.Verified)
}

func TestNewProductReviewDuplicatePairIsNoop(t *testing.T) {
	f := faker.New(53)
	product, user := generators.NewID(), generators.NewID()
	idx := generators.PurchaseIndex{}
	pairs := generators.NewPairRegistry()

	_, ok := generators.NewProductReview(f, product, user, idx, pairs)
	require.True(t, ok)

	_, ok = generators.NewProductReview(f, product, user, idx, pairs)
	assert.False(t, ok)
	assert.Equal(t, 1, pairs.Len())
}

func TestNewProductReviewFieldBounds(t *testing.T) {
	f := faker.New(57)
	idx := generators.PurchaseIndex{}
	pairs := generators.NewPairRegistry()

	for i := 0; i < 100; i++ {
		r, ok := generators.NewProductReview(f, generators.NewID(), generators.NewID(), idx, pairs)
		require.True(t, ok)
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.LessOrEqual(t, len(r.Title), 100)
		assert.LessOrEqual(t, len(r.Images), 3)
		assert.GreaterOrEqual(t, r.Helpful.Yes, 0)
		assert.LessOrEqual(t, r.Helpful.Yes, 50)
		assert.LessOrEqual(t, r.Helpful.No, 20)
	}
}
