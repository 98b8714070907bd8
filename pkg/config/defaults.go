package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "elitecars"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // multipart image uploads

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultSessionTTL        = 24 * time.Hour
	DefaultMinPasswordLength = 6

	DefaultStorageRegion    = "us-east-1"
	DefaultStorageBucket    = "elitecars-images"
	DefaultStoragePathStyle = true

	DefaultSoldDisplayLimit = 10

	DefaultPaginationLimit = 100
)
