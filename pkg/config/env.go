package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvJWTSecret         = "JWT_SECRET"
	EnvSessionTTL        = "SESSION_TTL"
	EnvMinPasswordLength = "MIN_PASSWORD_LENGTH"

	EnvStorageEndpoint  = "STORAGE_ENDPOINT"
	EnvStorageRegion    = "STORAGE_REGION"
	EnvStorageBucket    = "STORAGE_BUCKET"
	EnvStorageAccessKey = "STORAGE_ACCESS_KEY"
	EnvStorageSecretKey = "STORAGE_SECRET_KEY"
	EnvStoragePublicURL = "STORAGE_PUBLIC_URL"
	EnvStoragePathStyle = "STORAGE_PATH_STYLE"

	EnvSoldDisplayLimit = "SOLD_DISPLAY_LIMIT"
)
