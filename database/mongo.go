// Package database loads the generated dataset straight into MongoDB, for
// runs that want live collections instead of (or on top of) the JSONL
// files.
package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"datagen/apperrors"
	"datagen/generators"
)

const insertBatchSize = 500

// Loader wraps a mongo client bound to one database.
type Loader struct {
	client *mongo.Client
	db     string
	log    *zap.Logger
}

func NewLoader(ctx context.Context, uri, db string, log *zap.Logger) (*Loader, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, apperrors.IO("mongo connect", err)
	}
	return &Loader{client: client, db: db, log: log}, nil
}

func (l *Loader) Close(ctx context.Context) error {
	return l.client.Disconnect(ctx)
}

// Load inserts all six collections. Collections inserted before a failure
// stay in place; nothing is rolled back.
func (l *Loader) Load(ctx context.Context, ds *generators.Dataset) error {
	if err := l.insert(ctx, "users", toDocs(ds.Users)); err != nil {
		return err
	}
	if err := l.insert(ctx, "categories", toDocs(ds.Categories)); err != nil {
		return err
	}
	if err := l.insert(ctx, "products", toDocs(ds.Products)); err != nil {
		return err
	}
	if err := l.insert(ctx, "product_categories", toDocs(ds.ProductCategories)); err != nil {
		return err
	}
	if err := l.insert(ctx, "orders", toDocs(ds.Orders)); err != nil {
		return err
	}
	return l.insert(ctx, "product_reviews", toDocs(ds.Reviews))
}

func (l *Loader) insert(ctx context.Context, collection string, docs []interface{}) error {
	coll := l.client.Database(l.db).Collection(collection)
	for start := 0; start < len(docs); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(docs) {
			end = len(docs)
		}
		if _, err := coll.InsertMany(ctx, docs[start:end]); err != nil {
			return apperrors.IO("insert into "+collection, err)
		}
	}
	l.log.Info("loaded collection", zap.String("collection", collection), zap.Int("records", len(docs)))
	return nil
}

func toDocs[T any](records []T) []interface{} {
	docs := make([]interface{}, len(records))
	for i := range records {
		docs[i] = records[i]
	}
	return docs
}
