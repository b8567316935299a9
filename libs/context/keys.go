package context

import "errors"

// CTXKey - a type for context keys
type CTXKey string

const (
	// DatastoreCTXKey - the context key for getting the datastore
	DatastoreCTXKey CTXKey = "datastore"
	// RODatastoreCTXKey - the context key for getting the read only datastore
	RODatastoreCTXKey CTXKey = "ro_datastore"
	// DatabaseTransactionCTXKey - context key for database transactions
	DatabaseTransactionCTXKey CTXKey = "db_tx"
	// DatabaseMigrationsURLCTXKey - context key for the database migrations url
	DatabaseMigrationsURLCTXKey CTXKey = "database_migrations_url"
	// ServiceKey - the key used for service context
	ServiceKey CTXKey = "service"
	// EnvironmentCTXKey - the key used for the runtime environment
	EnvironmentCTXKey CTXKey = "environment"
	// LoggerCTXKey - the key used for the process logger
	LoggerCTXKey CTXKey = "logger"
	// LogLevelCTXKey - context key for application logging level
	LogLevelCTXKey CTXKey = "log_level"
	// LogWriterCTXKey - context key overriding the log writer
	LogWriterCTXKey CTXKey = "log_writer"
	// DebugLoggingCTXKey - context key for debug logging
	DebugLoggingCTXKey CTXKey = "debug_logging"

	// VersionCTXKey - context key for version of code
	VersionCTXKey CTXKey = "version"
	// CommitCTXKey - context key for the commit of the code
	CommitCTXKey CTXKey = "commit"
	// BuildTimeCTXKey - context key for the build time of code
	BuildTimeCTXKey CTXKey = "build_time"

	// KafkaBrokersCTXKey - context key for the kafka broker list
	KafkaBrokersCTXKey CTXKey = "kafka_brokers"
	// Kafka509CertCTXKey - context key for the kafka tls client certificate
	Kafka509CertCTXKey CTXKey = "kafka_x509_cert"

	// CustodianServerCTXKey - the context key for getting the custodian server
	CustodianServerCTXKey CTXKey = "custodian_server"
	// CustodianAccessTokenCTXKey - the context key for the custodian access token
	CustodianAccessTokenCTXKey CTXKey = "custodian_access_token"
	// CustodyAccountCTXKey - the context key for the account holding distribution reserves
	CustodyAccountCTXKey CTXKey = "custody_account"

	// AdminAccessTokensCTXKey - the context key for tokens granted the admin role
	AdminAccessTokensCTXKey CTXKey = "admin_access_tokens"
	// SuperAdminAccessTokensCTXKey - the context key for tokens granted the super admin role
	SuperAdminAccessTokensCTXKey CTXKey = "super_admin_access_tokens"

	// RootCacheExpiryDurationCTXKey - context key for campaign root cache expiry
	RootCacheExpiryDurationCTXKey CTXKey = "root_cache_expiry"
	// RootCachePurgeDurationCTXKey - context key for campaign root cache purge
	RootCachePurgeDurationCTXKey CTXKey = "root_cache_purge"

	// RateLimitPerMinuteCTXKey - the context key for getting the rate limit
	RateLimitPerMinuteCTXKey CTXKey = "rate_limit_per_min"
	// RateLimiterBurstCTXKey - context key for allowing a bursting rate limiter
	RateLimiterBurstCTXKey CTXKey = "rate_limit_burst"
	// RateLimiterRedisAddrCTXKey - the context key for the redis instance backing the rate limiter
	RateLimiterRedisAddrCTXKey CTXKey = "rate_limiter_redis_addr"
)

var (
	// ErrNotInContext - error you get when you ask for something not in the context.
	ErrNotInContext = errors.New("failed to get value from context")
	// ErrValueWrongType - error you get when you ask for something, and it is not the type you expected
	ErrValueWrongType = errors.New("context value of wrong type")
)
