package constant

import (
	"time"
)

const (
	RequestParamID          = "id"
	RequestParamGuests      = "guests"
	RequestParamCategory    = "category"
	RequestParamFoodType    = "foodType"
	RequestMaxBodySizeBytes = 1 << 20 // 1 MB
)

const (
	// DateFormat is the ISO-8601 layout used for every timestamp leaving the service.
	DateFormat = time.RFC3339Nano
	// CalendarDateFormat is the YYYY-MM-DD layout of check-in and check-out dates.
	CalendarDateFormat = "2006-01-02"
)

const DaysPerWeek = 7

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelStoreScopeName      = "store"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"
	OtelS3ScopeName         = "s3"

	OtelEntityAttributeKey  = "entity"
	OtelRecordAttributeKey  = "record.id"
	OtelStorageAttributeKey = "storage"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorSaveFailed           = "Failed to save data."
	ResponseErrorFetchBookings        = "Failed to fetch bookings"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	StoreBackendFile     = "file"
	StoreBackendMemory   = "memory"
	StoreBackendS3       = "s3"
	StoreBackendPostgres = "postgres"
)

const (
	Asterix = "*"
	Empty   = ""
)
