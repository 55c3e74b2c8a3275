package config

import (
	"os"
	"strconv"
	"strings"
)

type EnvConfig struct {
	Postgres struct {
		Host     string
		Database string
		Username string
		Password string
		Port     string
	}
	JWT struct {
		SecretKey string
		Algorithm string
	}
	CORS struct {
		AllowDomains string
		GlobalDomain string
	}
	Redis struct {
		Password  string
		Database  int
		RedisHost string
		RedisPort string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Endpoint     string
		RootUser     string
		RootPassword string
		Region       string
		BaseURI      string
		UseSSL       bool
	}
	ExternalService struct {
		AddressServiceURL string
		UserServiceURL    string
		GatewayBaseURI    string
	}
	Otel struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Environment struct {
		Mode  string
		Group string
	}
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.Host = os.Getenv("PGPOOL_HOST")
	config.Postgres.Database = os.Getenv("PGPOOL_DB")
	config.Postgres.Username = os.Getenv("PGPOOL_USER")
	config.Postgres.Password = os.Getenv("PGPOOL_PASSWORD")
	config.Postgres.Port = os.Getenv("PGPOOL_PORT")
	if config.Postgres.Port == "" {
		config.Postgres.Port = "5432"
	}

	// JWT
	config.JWT.SecretKey = os.Getenv("JWT_SECRET_KEY")
	config.JWT.Algorithm = os.Getenv("JWT_ALGORITHM")
	if config.JWT.Algorithm == "" {
		config.JWT.Algorithm = "HS256"
	}

	config.CORS.AllowDomains = os.Getenv("ALLOWED_DOMAINS")
	config.CORS.GlobalDomain = os.Getenv("GLOBAL_DOMAIN")

	// Redis
	config.Redis.Password = os.Getenv("REDIS_PASSWORD")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))
	config.Redis.RedisHost = os.Getenv("REDIS_HOST")
	config.Redis.RedisPort = os.Getenv("REDIS_PORT")
	if config.Redis.RedisPort == "" {
		config.Redis.RedisPort = "6379"
	}

	// RabbitMQ
	config.RabbitMQ.Host = os.Getenv("RABBITMQ_HOST")
	if config.RabbitMQ.Host == "" {
		config.RabbitMQ.Host = "localhost"
	}
	config.RabbitMQ.Port = os.Getenv("RABBITMQ_PORT")
	if config.RabbitMQ.Port == "" {
		config.RabbitMQ.Port = "5672"
	}
	config.RabbitMQ.Username = os.Getenv("RABBITMQ_USER")
	if config.RabbitMQ.Username == "" {
		config.RabbitMQ.Username = "guest"
	}
	config.RabbitMQ.Password = os.Getenv("RABBITMQ_PASSWORD")
	if config.RabbitMQ.Password == "" {
		config.RabbitMQ.Password = "guest"
	}

	// MinIO
	config.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	config.Minio.RootUser = os.Getenv("MINIO_USERNAME")
	config.Minio.RootPassword = os.Getenv("MINIO_PASSWORD")
	config.Minio.Region = os.Getenv("MINIO_REGION")
	if config.Minio.Region == "" {
		config.Minio.Region = "europe"
	}
	config.Minio.BaseURI = os.Getenv("MINIO_BASE_URI")
	if config.Minio.BaseURI == "" {
		config.Minio.BaseURI = "http://localhost:9000"
	}
	config.Minio.UseSSL = strings.EqualFold(os.Getenv("MINIO_USE_SSL"), "true")

	// External services
	config.ExternalService.AddressServiceURL = os.Getenv("ADDRESS_API_URI")
	if config.ExternalService.AddressServiceURL == "" {
		config.ExternalService.AddressServiceURL = "http://localhost:8081/api/v1/address"
	}
	config.ExternalService.UserServiceURL = os.Getenv("USER_API_URI")
	if config.ExternalService.UserServiceURL == "" {
		config.ExternalService.UserServiceURL = "http://localhost:8082/api/v1/user"
	}
	config.ExternalService.GatewayBaseURI = os.Getenv("GATEWAY_BASE_URI")
	if config.ExternalService.GatewayBaseURI == "" {
		config.ExternalService.GatewayBaseURI = "http://localhost:8090"
	}

	// OpenTelemetry
	otlpEndpoint := os.Getenv("OTLP_ENDPOINT")
	otlpEndpoint = strings.TrimPrefix(otlpEndpoint, "https://")
	otlpEndpoint = strings.TrimPrefix(otlpEndpoint, "http://")
	config.Otel.OTLPEndpoint = otlpEndpoint
	config.Otel.ServiceName = os.Getenv("SERVICE_NAME")
	if config.Otel.ServiceName == "" {
		config.Otel.ServiceName = "company-service"
	}

	config.Environment.Mode = os.Getenv("DEPLOY_ENV")
	if config.Environment.Mode == "" {
		config.Environment.Mode = "development"
	}
	config.Environment.Group = os.Getenv("GROUP_NAME")
	if config.Environment.Group == "" {
		config.Environment.Group = "local"
	}

	return &config
}
