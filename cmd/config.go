package cmd

type Config struct {
	AppEnv                string
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	KafkaHost             string
	KafkaOrderStatusTopic string
	RetentionDays         string
	PurgeBatchSize        string
}
