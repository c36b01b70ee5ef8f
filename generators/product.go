package generators

import (
	"fmt"
	"math"

	"datagen/faker"
	"datagen/models"
)

var productStatuses = []string{
	string(models.ProductActive),
	string(models.ProductInactive),
	string(models.ProductDiscontinued),
	string(models.ProductDraft),
}

var productDepartments = []string{
	"electronics", "clothing", "books", "home", "sports", "beauty", "toys",
	"automotive",
}

var currencies = []string{"USD", "VND", "EUR", "GBP"}

var colors = []string{"Red", "Blue", "Green", "Black", "White"}

// round2 rounds to two decimal places, the precision of every money field.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NewProduct builds one product with a SKU guaranteed fresh against skus.
// Inventory counters are independently randomized; no cross-field invariant
// (such as reserved <= quantity) is enforced.
func NewProduct(f *faker.Faker, skus *Registry) (models.Product, error) {
	sku, err := NewUniqueCode(SKUFunc(f), skus)
	if err != nil {
		return models.Product{}, err
	}

	images := make([]string, f.IntBetween(1, 5))
	for i := range images {
		images[i] = f.ImageURL()
	}

	p := models.Product{
		ID:          NewID(),
		SKU:         sku,
		Name:        f.CapitalizedWord() + " " + f.CapitalizedWord() + " Product",
		Description: f.Text(500),
		Category:    f.Pick(productDepartments),
		Price:       round2(f.Float64Between(10, 500)),
		Currency:    f.Pick(currencies),
		Inventory: models.Inventory{
			Quantity:          f.IntBetween(0, 1000),
			Reserved:          f.IntBetween(0, 50),
			LowStockThreshold: f.IntBetween(5, 20),
		},
		Images: images,
		Tags:   f.Words(f.IntBetween(0, 10)),
		Specifications: models.Specifications{
			Weight: fmt.Sprintf("%.2f kg", f.Float64Between(0.1, 10)),
			Color:  f.Pick(colors),
			Brand:  f.Company(),
		},
		Ratings: models.Ratings{
			Count: f.IntBetween(0, 100),
		},
		Status:    models.ProductStatus(f.Pick(productStatuses)),
		CreatedAt: f.PastTime(historyWindow),
		UpdatedAt: f.PastTime(historyWindow),
	}
	if f.Bool() {
		sub := f.CapitalizedWord()
		p.Subcategory = &sub
	}
	if f.Bool() {
		p.Ratings.Average = math.Round(f.Float64Between(0, 5)*10) / 10
	}
	return p, nil
}
