package sink

import (
	"context"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"datagen/apperrors"
)

var collectionFiles = []string{
	UsersFile,
	CategoriesFile,
	ProductsFile,
	ProductCategoriesFile,
	OrdersFile,
	ProductReviewsFile,
}

// Uploader pushes the emitted dataset files to an S3 bucket.
type Uploader struct {
	client *s3.Client
	bucket string
	log    *zap.Logger
}

// NewUploader builds an uploader from the default AWS config chain
// (env, shared config, instance role).
func NewUploader(ctx context.Context, bucket string, log *zap.Logger) (*Uploader, error) {
	cfg, err := awscfg.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, apperrors.IO("load aws config", err)
	}
	return &Uploader{client: s3.NewFromConfig(cfg), bucket: bucket, log: log}, nil
}

// UploadDataset uploads every collection file from dir under keyPrefix.
func (u *Uploader) UploadDataset(ctx context.Context, dir, keyPrefix string) error {
	for _, name := range collectionFiles {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			return apperrors.IO("open "+path, err)
		}
		key := keyPrefix + "/" + name
		_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(u.bucket),
			Key:         aws.String(key),
			Body:        f,
			ContentType: aws.String("application/x-ndjson"),
		})
		f.Close()
		if err != nil {
			return apperrors.IO("upload s3://"+u.bucket+"/"+key, err)
		}
		u.log.Info("uploaded collection", zap.String("bucket", u.bucket), zap.String("key", key))
	}
	return nil
}
