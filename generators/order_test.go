package generators_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datagen/faker"
	"datagen/generators"
	"datagen/models"
)

func makeUsers(t *testing.T, f *faker.Faker, n int) []models.User {
	t.Helper()
	emails := generators.NewRegistry()
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		u, err := generators.NewUser(f, emails)
		require.NoError(t, err)
		users = append(users, u)
	}
	return users
}

func makeProducts(t *testing.T, f *faker.Faker, n int) []models.Product {
	t.Helper()
	skus := generators.NewRegistry()
	products := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		p, err := generators.NewProduct(f, skus)
		require.NoError(t, err)
		products = append(products, p)
	}
	return products
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func TestLineSubtotalFormula(t *testing.T) {
	assert.Equal(t, 59.97, generators.LineSubtotal(19.99, 3))
	assert.Equal(t, 10.0, generators.LineSubtotal(10.0, 1))
	assert.Equal(t, 0.3, generators.LineSubtotal(0.1, 3))
}

func TestNewOrderItemUsesProductFields(t *testing.T) {
	f := faker.New(21)
	products := makeProducts(t, f, 1)

	item := generators.NewOrderItem(f, products[0])
	assert.Equal(t, products[0].ID, item.ProductID)
	assert.Equal(t, products[0].SKU, item.SKU)
	assert.Equal(t, products[0].Name, item.Name)
	assert.Equal(t, products[0].Price, item.Price)
	assert.GreaterOrEqual(t, item.Quantity, 1)
	assert.LessOrEqual(t, item.Quantity, 5)
	assert.Equal(t, generators.LineSubtotal(item.Price, item.Quantity), item.Subtotal)
}

func TestNewOrderMoneyInvariants(t *testing.T) {
	f := faker.New(23)
	users := makeUsers(t, f, 20)
	products := makeProducts(t, f, 30)
	orderNumbers := generators.NewRegistry()

	for i := 0; i < 200; i++ {
		o, err := generators.NewOrder(f, users, products, orderNumbers)
		require.NoError(t, err)

		require.NotEmpty(t, o.Items)
		assert.LessOrEqual(t, len(o.Items), 5)

		var sum float64
		seenProducts := map[string]bool{}
		for _, item := range o.Items {
			assert.Equal(t, generators.LineSubtotal(item.Price, item.Quantity), item.Subtotal)
			assert.False(t, seenProducts[item.ProductID.Hex()], "items must reference distinct products")
			seenProducts[item.ProductID.Hex()] = true
			sum += item.Subtotal
		}
		assert.Equal(t, sum, o.Subtotal, "subtotal is the exact sum of item subtotals")
		assert.Equal(t, round2(o.Subtotal+o.Tax+o.Shipping-o.Discount), o.TotalAmount)
		assert.Equal(t, o.TotalAmount, o.Payment.Amount)
	}
}

func TestNewOrderDateInvariants(t *testing.T) {
	f := faker.New(29)
	users := makeUsers(t, f, 10)
	products := makeProducts(t, f, 10)
	orderNumbers := generators.NewRegistry()

	var sawDelivered, sawUndated bool
	for i := 0; i < 300; i++ {
		o, err := generators.NewOrder(f, users, products, orderNumbers)
		require.NoError(t, err)

		switch o.Status {
		case models.OrderDelivered:
			require.NotNil(t, o.ShippedDate)
			require.NotNil(t, o.DeliveredDate)
			assert.True(t, o.ShippedDate.After(o.OrderDate))
			assert.True(t, o.DeliveredDate.After(*o.ShippedDate))
			sawDelivered = true
		case models.OrderShipped:
			require.NotNil(t, o.ShippedDate)
			assert.True(t, o.ShippedDate.After(o.OrderDate))
			assert.Nil(t, o.DeliveredDate)
		default:
			assert.Nil(t, o.ShippedDate)
			assert.Nil(t, o.DeliveredDate)
			sawUndated = true
		}
	}
	assert.True(t, sawDelivered, "300 draws should include a delivered order")
	assert.True(t, sawUndated)
}

func TestNewOrderNumbersUnique(t *testing.T) {
	f := faker.New(31)
	users := makeUsers(t, f, 5)
	products := makeProducts(t, f, 5)
	orderNumbers := generators.NewRegistry()

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		o, err := generators.NewOrder(f, users, products, orderNumbers)
		require.NoError(t, err)
		assert.False(t, seen[o.OrderNumber])
		seen[o.OrderNumber] = true
	}
}
