package sink_test

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"datagen/apperrors"
	"datagen/faker"
	"datagen/generators"
	"datagen/models"
	"datagen/sink"
)

func generateOrders(t *testing.T, n int) []models.Order {
	t.Helper()
	f := faker.New(201)
	emails := generators.NewRegistry()
	skus := generators.NewRegistry()
	orderNumbers := generators.NewRegistry()

	var users []models.User
	for i := 0; i < 10; i++ {
		u, err := generators.NewUser(f, emails)
		require.NoError(t, err)
		users = append(users, u)
	}
	var products []models.Product
	for i := 0; i < 10; i++ {
		p, err := generators.NewProduct(f, skus)
		require.NoError(t, err)
		products = append(products, p)
	}

	orders := make([]models.Order, 0, n)
	for i := 0; i < n; i++ {
		o, err := generators.NewOrder(f, users, products, orderNumbers)
		require.NoError(t, err)
		orders = append(orders, o)
	}
	return orders
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestWriteOneObjectPerLine(t *testing.T) {
	orders := generateOrders(t, 25)
	path := filepath.Join(t.TempDir(), "orders.json")

	require.NoError(t, sink.Write(path, orders))

	lines := readLines(t, path)
	require.Len(t, lines, 25)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), "each line must be a complete JSON object")
	}
}

// Each written line, parsed back, must reproduce the in-memory record with
// no precision loss on the two-decimal money fields.
func TestWriteRoundTrip(t *testing.T) {
	orders := generateOrders(t, 10)
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, sink.Write(path, orders))

	lines := readLines(t, path)
	require.Len(t, lines, len(orders))

	for i, line := range lines {
		var parsed models.Order
		require.NoError(t, json.Unmarshal([]byte(line), &parsed))

		assert.Equal(t, orders[i].ID, parsed.ID)
		assert.Equal(t, orders[i].OrderNumber, parsed.OrderNumber)
		assert.Equal(t, orders[i].CustomerID, parsed.CustomerID)
		assert.Equal(t, orders[i].Subtotal, parsed.Subtotal)
		assert.Equal(t, orders[i].Tax, parsed.Tax)
		assert.Equal(t, orders[i].Shipping, parsed.Shipping)
		assert.Equal(t, orders[i].Discount, parsed.Discount)
		assert.Equal(t, orders[i].TotalAmount, parsed.TotalAmount)
		require.Len(t, parsed.Items, len(orders[i].Items))
		for j, item := range parsed.Items {
			assert.Equal(t, orders[i].Items[j].Price, item.Price)
			assert.Equal(t, orders[i].Items[j].Subtotal, item.Subtotal)
		}
		assert.True(t, orders[i].OrderDate.Equal(parsed.OrderDate))

		// Re-encoding the parsed record must reproduce the written line.
		again, err := json.Marshal(parsed)
		require.NoError(t, err)
		assert.JSONEq(t, line, string(again))
	}
}

func TestWriteFailsWithIOError(t *testing.T) {
	err := sink.Write(filepath.Join(t.TempDir(), "missing", "orders.json"), generateOrders(t, 1))
	assert.True(t, errors.Is(err, apperrors.ErrIO))
}

func TestWriteDatasetEmitsAllCollections(t *testing.T) {
	counts := generators.Counts{
		Users: 20, Categories: 15, Products: 10, Orders: 10, Reviews: 12,
		CategoryLevels: 2, RootCategories: 5,
	}
	c := generators.NewCoordinator(faker.New(211), counts, zap.NewNop())
	ds, err := c.Generate()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, sink.WriteDataset(dir, ds, zap.NewNop()))

	expected := map[string]int{
		sink.UsersFile:             len(ds.Users),
		sink.CategoriesFile:        len(ds.Categories),
		sink.ProductsFile:          len(ds.Products),
		sink.ProductCategoriesFile: len(ds.ProductCategories),
		sink.OrdersFile:            len(ds.Orders),
		sink.ProductReviewsFile:    len(ds.Reviews),
	}
	for file, want := range expected {
		lines := readLines(t, filepath.Join(dir, file))
		assert.Len(t, lines, want, "unexpected record count in %s", file)
	}
}
