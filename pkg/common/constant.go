package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyHACCPDBType string = "HACCP_DB_TYPE"
	EnvKeyHACCPDbPath string = "HACCP_DB_PATH"
	EnvKeyHACCPDbDSN  string = "HACCP_DB_DSN"

	EnvKeyHACCPLogDir string = "HACCP_LOG_DIR"

	EnvKeyHACCPHttpHostPort string = "HACCP_HTTP_HOST_PORT"
	EnvKeyHACCPGrpcHostPort string = "HACCP_GRPC_HOST_PORT"

	EnvKeyHACCPDefaultRate  string = "HACCP_DEFAULT_RATE"
	EnvKeyHACCPDefaultBurst string = "HACCP_DEFAULT_BURST"

	EnvKeyHACCPNotifyTimeout string = "HACCP_NOTIFY_TIMEOUT"

	EnvKeyHACCPSmtpHost     string = "HACCP_SMTP_HOST"
	EnvKeyHACCPSmtpPort     string = "HACCP_SMTP_PORT"
	EnvKeyHACCPSmtpUser     string = "HACCP_SMTP_USER"
	EnvKeyHACCPSmtpPassword string = "HACCP_SMTP_PASSWORD"
	EnvKeyHACCPSmtpFrom     string = "HACCP_SMTP_FROM"

	EnvKeyHACCPTelegramToken  string = "HACCP_TELEGRAM_TOKEN"
	EnvKeyHACCPTelegramChatID string = "HACCP_TELEGRAM_CHAT_ID"

	EnvKeyHACCPMqttBroker   string = "HACCP_MQTT_BROKER"
	EnvKeyHACCPMqttTopic    string = "HACCP_MQTT_TOPIC"
	EnvKeyHACCPMqttClientID string = "HACCP_MQTT_CLIENT_ID"

	LoggerNameHACCPCore     string = "haccp_core"
	LoggerNameNotifier      string = "notifier"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameMqttIngestor  string = "mqtt_ingestor"

	LoggerFieldHACCPCategory    string = "category"
	LoggerCategoryHACCPReading  string = "reading"
	LoggerCategoryHACCPAlert    string = "alert"
	LoggerCategoryHACCPCatalog  string = "catalog"
	LoggerCategoryHACCPAudit    string = "audit"
	LoggerCategoryHACCPDispatch string = "dispatch"
	LoggerCategoryHACCPAdmin    string = "admin"

	HeaderActorUserID string = "X-User-ID"
)
