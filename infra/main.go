package infra

import (
	"github.com/careerlink/company-service/config"
	"github.com/careerlink/company-service/infra/produce"
)

type Infra struct {
	Postgres       *PostgresClient
	Redis          *RedisClient
	Logger         *LoggerClient
	RabbitMQ       *RabbitMQClient
	Minio          *MinioClient
	AddressService *AddressService
	UserService    *UserService
	Produce        *produce.Produce
}

var infraInstance *Infra

func InitInfra(cfg *config.Config) *Infra {
	if infraInstance != nil {
		return infraInstance
	}

	postgres := InitPostgresClient(cfg.EnvConfig)
	if postgres == nil {
		panic("Failed to initialize Postgres service")
	}

	redis := InitRedisClient(cfg.EnvConfig)
	if redis == nil {
		panic("Failed to initialize Redis service")
	}

	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	rabbitMQ := InitRabbitMQClient(cfg.EnvConfig)
	if rabbitMQ == nil {
		panic("Failed to initialize RabbitMQ service")
	}

	minio := InitMinioClient(cfg.EnvConfig)
	if minio == nil {
		panic("Failed to initialize MinIO service")
	}

	addressService := InitAddressService(cfg.EnvConfig)
	if addressService == nil {
		panic("Failed to initialize Address service")
	}

	userService := InitUserService(cfg.EnvConfig)
	if userService == nil {
		panic("Failed to initialize User service")
	}

	produceService := produce.InitProduce(rabbitMQ.Channel)
	if produceService == nil {
		panic("Failed to initialize Produce service")
	}

	infraInstance = &Infra{
		Postgres:       postgres,
		Redis:          redis,
		Logger:         logger,
		RabbitMQ:       rabbitMQ,
		Minio:          minio,
		AddressService: addressService,
		UserService:    userService,
		Produce:        produceService,
	}

	return infraInstance
}

func GetClient() *Infra {
	if infraInstance == nil {
		panic("Infra not initialized. Call InitInfra() first.")
	}
	return infraInstance
}
