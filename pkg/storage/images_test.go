package storage

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Vinaypenke01/Elite-Cars/pkg/logger"
)

type fakeObjectAPI struct {
	mu          sync.Mutex
	puts        []string
	deletes     []string
	putDelay    map[int]time.Duration
	failKeyPart string
}

func (f *fakeObjectAPI) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	key := *params.Key

	f.mu.Lock()
	idx := len(f.puts)
	f.puts = append(f.puts, key)
	delay := f.putDelay[idx]
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if f.failKeyPart != "" && strings.Contains(key, f.failKeyPart) {
		return nil, errors.New("simulated upload failure")
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func newTestStore(api ObjectAPI) *ImageStore {
	log := logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT})
	store := NewImageStore(api, "elitecars-images", "https://storage.example.com/elitecars-images", log)
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return store
}

func testFiles(n int) []ImageFile {
	files := make([]ImageFile, n)
	for i := range files {
		files[i] = ImageFile{Data: []byte{0xFF, 0xD8, byte(i)}, Ext: "jpg", ContentType: "image/jpeg"}
	}
	return files
}

func TestUploadOne_KeyAndURL(t *testing.T) {
	fake := &fakeObjectAPI{}
	store := newTestStore(fake)

	url, err := store.UploadOne(context.Background(), testFiles(1)[0], "abc123", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "https://storage.example.com/elitecars-images/cars/abc123/abc123_2_1700000000000.jpg"
	if url != want {
		t.Errorf("expected URL %q, got %q", want, url)
	}
	if len(fake.puts) != 1 || fake.puts[0] != "cars/abc123/abc123_2_1700000000000.jpg" {
		t.Errorf("unexpected object keys: %v", fake.puts)
	}
}

func TestUploadMany_PreservesInputOrder(t *testing.T) {
	// The first upload is the slowest so it completes last.
	fake := &fakeObjectAPI{putDelay: map[int]time.Duration{0: 30 * time.Millisecond}}
	store := newTestStore(fake)

	urls, err := store.UploadMany(context.Background(), testFiles(5), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 5 {
		t.Fatalf("expected 5 URLs, got %d", len(urls))
	}
	for i, url := range urls {
		marker := "_" + string(rune('0'+i)) + "_"
		if !strings.Contains(url, marker) {
			t.Errorf("URL at position %d does not carry index %d: %q", i, i, url)
		}
	}
}

func TestUploadMany_FirstFailureFailsBatch(t *testing.T) {
	fake := &fakeObjectAPI{failKeyPart: "_3_"}
	store := newTestStore(fake)

	urls, err := store.UploadMany(context.Background(), testFiles(5), "abc123")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if urls != nil {
		t.Errorf("expected nil URLs on batch failure, got %v", urls)
	}
	// Every upload was attempted; the batch does not abort mid-flight.
	if len(fake.puts) != 5 {
		t.Errorf("expected 5 upload attempts, got %d", len(fake.puts))
	}
}

func TestUploadMany_Empty(t *testing.T) {
	store := newTestStore(&fakeObjectAPI{})
	urls, err := store.UploadMany(context.Background(), nil, "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 0 {
		t.Errorf("expected no URLs, got %v", urls)
	}
}

func TestDeleteByURL(t *testing.T) {
	fake := &fakeObjectAPI{}
	store := newTestStore(fake)

	err := store.DeleteByURL(context.Background(), "https://storage.example.com/elitecars-images/cars/abc123/abc123_0_1700000000000.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.deletes) != 1 || fake.deletes[0] != "cars/abc123/abc123_0_1700000000000.jpg" {
		t.Errorf("unexpected deletes: %v", fake.deletes)
	}
}

func TestDeleteByURL_BadURLMakesNoRemoteCall(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"not a URL", "::not-a-url::"},
		{"relative path", "/cars/abc123/img.jpg"},
		{"foreign prefix", "https://storage.example.com/elitecars-images/avatars/abc123/img.jpg"},
		{"missing file segment", "https://storage.example.com/elitecars-images/cars/abc123"},
		{"empty vehicle segment", "https://storage.example.com/elitecars-images/cars//img.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeObjectAPI{}
			store := newTestStore(fake)

			err := store.DeleteByURL(context.Background(), tt.url)
			if !errors.Is(err, ErrBadObjectURL) {
				t.Errorf("expected ErrBadObjectURL, got %v", err)
			}
			if len(fake.deletes) != 0 {
				t.Errorf("expected no remote calls, got %v", fake.deletes)
			}
		})
	}
}

func TestKeyFromURL_PathStyle(t *testing.T) {
	store := newTestStore(&fakeObjectAPI{})

	key, err := store.KeyFromURL("http://localhost:9000/elitecars-images/cars/abc123/abc123_1_1700000000000.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "cars/abc123/abc123_1_1700000000000.png" {
		t.Errorf("unexpected key: %q", key)
	}
}
