package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/yeremiapane/food-order-app/utils"
)

// StorageService uploads images to the object store and hands back their
// public URL. The bucket is provisioned on first use.
type StorageService struct {
	client  *minio.Client
	baseURL string
	bucket  string
}

func NewStorageService(client *minio.Client, baseURL, bucket string) *StorageService {
	return &StorageService{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		bucket:  bucket,
	}
}

// Upload stores the bytes under objectName and returns the public URL.
func (s *StorageService) Upload(ctx context.Context, data []byte, objectName string) (string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}

	_, err := s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", categorizeUploadError(err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, objectName)
	utils.InfoLogger.Printf("uploaded object to %s", url)
	return url, nil
}

func (s *StorageService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return categorizeUploadError(err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return categorizeUploadError(err)
	}
	utils.InfoLogger.Printf("created missing bucket %s", s.bucket)
	return nil
}

// categorizeUploadError folds the storage backend's failure modes into one
// UploadError with a sub-cause: remote rejection, truncated stream, or
// transport trouble.
func categorizeUploadError(err error) error {
	resp := minio.ToErrorResponse(err)
	switch {
	case resp.Code != "":
		return utils.UploadError("object store rejected the upload: "+resp.Message, err)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return utils.UploadError("upload stream ended early", err)
	default:
		return utils.UploadError("object store transport failure", err)
	}
}
