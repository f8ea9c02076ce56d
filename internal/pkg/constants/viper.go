package constants

// viper keys
const (
	ViperServerAddrKey            = "server.addr"
	ViperServerShutdownTimeoutKey = "server.shutdown_timeout"

	ViperDatabaseDSNKey            = "database.dsn"
	ViperDatabaseMaxConnsKey       = "database.max_conns"
	ViperDatabaseConnectRetriesKey = "database.connect_retries"

	ViperAPIBaseURLKey = "api.base_url"

	ViperCORSAllowOriginsKey = "cors.allow_origins"

	ViperLogLevelKey       = "log.level"
	ViperLogDevelopmentKey = "log.development"

	ViperMetricsEnabledKey = "metrics.enabled"
)
