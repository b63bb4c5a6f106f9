package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort   string
	MetricsPort   string
	APIURL        string
	Environment   string
	MongoDBConfig MongoDBConfig
	JWTSecret     string
	UploadDir     string
	KafkaConfig   KafkaConfig
	TracingConfig TracingConfig
	SMTPConfig    SMTPConfig
}

type MongoDBConfig struct {
	ConnectionString string
	DBName           string
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
}

type TracingConfig struct {
	CollectorHost string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

const (
	defaultServicePort = "3000"
	defaultAPIURL      = "/api/v1"
	defaultDBName      = "E-Bazaar"
	defaultUploadDir   = "public/uploads"
	defaultSMTPPort    = 587
)

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", defaultServicePort),
		MetricsPort: os.Getenv("METRICS_PORT"),
		APIURL:      getEnv("API_URL", defaultAPIURL),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			ConnectionString: os.Getenv("CONNECTION_STRING"),
			DBName:           getEnv("DB_NAME", defaultDBName),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		UploadDir: getEnv("UPLOAD_DIR", defaultUploadDir),
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     defaultSMTPPort,
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			Sender:   os.Getenv("SMTP_SENDER"),
		},
	}

	if smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	return &conf
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
