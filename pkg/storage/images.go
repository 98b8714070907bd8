// Package storage implements the vehicle image store on top of any
// S3-compatible object storage backend.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Vinaypenke01/Elite-Cars/pkg/logger"
)

// keyPrefix namespaces every image object under its vehicle.
const keyPrefix = "cars"

// ErrBadObjectURL is returned when an image URL cannot be mapped back to
// a storage object key. No remote call is made in that case.
var ErrBadObjectURL = errors.New("image URL does not map to a storage object")

// ObjectAPI is the slice of the S3 client the store needs. Tests inject
// an in-memory fake.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// ImageFile is one image payload to upload.
type ImageFile struct {
	Data        []byte
	Ext         string // file extension without the dot ("jpg")
	ContentType string
}

type ImageStore struct {
	client  ObjectAPI
	bucket  string
	baseURL string
	log     *logger.Logger
	now     func() time.Time
}

func NewImageStore(client ObjectAPI, bucket, publicBaseURL string, log *logger.Logger) *ImageStore {
	return &ImageStore{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(publicBaseURL, "/"),
		log:     log,
		now:     time.Now,
	}
}

// objectKey builds the storage key for one image. The timestamp
// component keeps a re-upload at the same index from overwriting the
// prior object.
func (s *ImageStore) objectKey(vehicleID string, index int, ext string) string {
	ts := s.now().UnixMilli()
	return fmt.Sprintf("%s/%s/%s_%d_%d.%s", keyPrefix, vehicleID, vehicleID, index, ts, ext)
}

func (s *ImageStore) publicURL(key string) string {
	return s.baseURL + "/" + key
}

// UploadOne writes a single image and returns its public URL.
func (s *ImageStore) UploadOne(ctx context.Context, file ImageFile, vehicleID string, index int) (string, error) {
	if vehicleID == "" {
		return "", errors.New("vehicle id is required")
	}
	if len(file.Data) == 0 {
		return "", errors.New("image data is empty")
	}

	ext := strings.TrimPrefix(file.Ext, ".")
	if ext == "" {
		ext = "jpg"
	}

	key := s.objectKey(vehicleID, index, ext)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file.Data),
		ContentType: aws.String(file.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image %s: %w", key, err)
	}

	return s.publicURL(key), nil
}

// UploadMany fans the uploads out concurrently and returns URLs in the
// input order regardless of completion order. All uploads are allowed to
// settle; the first failure fails the batch as a whole. Objects already
// written by a partially failed batch are not cleaned up.
func (s *ImageStore) UploadMany(ctx context.Context, files []ImageFile, vehicleID string) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}

	urls := make([]string, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	wg.Add(len(files))
	for i, file := range files {
		go func(i int, file ImageFile) {
			defer wg.Done()
			urls[i], errs[i] = s.UploadOne(ctx, file, vehicleID, i)
		}(i, file)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			s.log.Warn("Image batch upload failed; earlier uploads are not rolled back",
				"vehicle_id", vehicleID,
				"failed_index", i,
				"batch_size", len(files),
				"error", err,
			)
			return nil, err
		}
	}

	return urls, nil
}

// DeleteByURL reverses the object key from a public image URL and
// deletes the object. A URL that does not parse into a key under the
// image prefix fails with ErrBadObjectURL before any remote call.
func (s *ImageStore) DeleteByURL(ctx context.Context, imageURL string) error {
	key, err := s.KeyFromURL(imageURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %w", key, err)
	}

	return nil
}

// KeyFromURL extracts the storage key from a public image URL. It
// accepts both path-style URLs (/{bucket}/cars/...) and base-URL or
// virtual-hosted ones (/cars/...).
func (s *ImageStore) KeyFromURL(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrBadObjectURL, imageURL)
	}

	path := strings.TrimPrefix(u.EscapedPath(), "/")
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}

	segments := strings.Split(path, "/")
	if len(segments) > 0 && segments[0] == s.bucket {
		segments = segments[1:]
	}

	// cars/{vehicleID}/{file}
	if len(segments) != 3 || segments[0] != keyPrefix || segments[1] == "" || segments[2] == "" {
		return "", fmt.Errorf("%w: %q", ErrBadObjectURL, imageURL)
	}

	return strings.Join(segments, "/"), nil
}
