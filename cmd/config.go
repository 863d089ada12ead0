package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Empty KafkaHost disables event publication.
	KafkaHost          string
	KafkaOrderTopic    string
	KafkaDeliveryTopic string

	// Empty RedisAddr disables the tracking cache.
	RedisAddr        string
	RedisPassword    string
	RedisDB          string
	TrackingCacheTTL string

	JWTAccessSecret  string
	JWTRefreshSecret string
	JWTAccessTTL     string
	JWTRefreshTTL    string

	// Six-field cron expression for the agent stats reconciliation job.
	AgentStatsSchedule string

	// Credentials for the admin account seeded at startup.
	// Empty AdminEmail disables the seed.
	AdminEmail    string
	AdminPassword string
}
