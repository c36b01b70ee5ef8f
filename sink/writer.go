// Package sink serializes the finished dataset: newline-delimited JSON
// files on disk, with optional upload to S3.
package sink

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"datagen/apperrors"
	"datagen/generators"
)

// Collection file names, one per generated collection.
const (
	UsersFile             = "users.json"
	CategoriesFile        = "categories.json"
	ProductsFile          = "products.json"
	ProductCategoriesFile = "product_categories.json"
	OrdersFile            = "orders.json"
	ProductReviewsFile    = "product_reviews.json"
)

// Write serializes records to path, one self-contained JSON object per
// line. The file is closed on every exit path; a failure mid-write leaves a
// truncated file, which is acceptable for a best-effort batch tool.
func Write[T any](path string, records []T) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.IO("create "+path, err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for i := range records {
		if err := enc.Encode(records[i]); err != nil {
			f.Close()
			return apperrors.IO("write "+path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return apperrors.IO("flush "+path, err)
	}
	if err := f.Close(); err != nil {
		return apperrors.IO("close "+path, err)
	}
	return nil
}

// WriteDataset flushes all six collections into dir. Files written before a
// failure stay on disk; nothing is rolled back.
func WriteDataset(dir string, ds *generators.Dataset, log *zap.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.IO("create output dir "+dir, err)
	}

	steps := []struct {
		file  string
		write func(string) error
		count int
	}{
		{UsersFile, func(p string) error { return Write(p, ds.Users) }, len(ds.Users)},
		{CategoriesFile, func(p string) error { return Write(p, ds.Categories) }, len(ds.Categories)},
		{ProductsFile, func(p string) error { return Write(p, ds.Products) }, len(ds.Products)},
		{ProductCategoriesFile, func(p string) error { return Write(p, ds.ProductCategories) }, len(ds.ProductCategories)},
		{OrdersFile, func(p string) error { return Write(p, ds.Orders) }, len(ds.Orders)},
		{ProductReviewsFile, func(p string) error { return Write(p, ds.Reviews) }, len(ds.Reviews)},
	}
	for _, step := range steps {
		path := filepath.Join(dir, step.file)
		if err := step.write(path); err != nil {
			return err
		}
		log.Info("wrote collection", zap.String("file", path), zap.Int("records", step.count))
	}
	return nil
}
