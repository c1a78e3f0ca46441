package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP           HTTP
	Logger         Logger
	Postgres       Postgres
	Kafka          Kafka
	Redis          Redis
	S3             S3
	Mailer         Mailer
	Groq           Groq
	Nilvera        Nilvera
	Veriban        Veriban
	Jobs           Jobs
	AuthServiceURL string `env:"AUTH_SERVICE_URL"`
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers              []string `env:"KAFKA_BROKERS"`
	ConsumerID           string   `env:"KAFKA_CONSUMER_ID" envDefault:"erp"`
	InvoiceReceivedTopic string   `env:"KAFKA_INVOICE_RECEIVED_TOPIC" envDefault:"einvoice.received"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type S3 struct {
	Endpoint     string `env:"S3_ENDPOINT" envDefault:"http://localhost:9000"`
	Region       string `env:"S3_REGION" envDefault:"us-east-1"`
	Bucket       string `env:"S3_BUCKET" envDefault:"erp-reports"`
	AccessKey    string `env:"S3_ACCESS_KEY"`
	SecretKey    string `env:"S3_SECRET_KEY"`
	UsePathStyle bool   `env:"S3_USE_PATH_STYLE" envDefault:"true"`
}

type Mailer struct {
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"465"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"ERP"`
}

type Groq struct {
	BaseURL string        `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com"`
	APIKey  string        `env:"GROQ_API_KEY" envDefault:""`
	Model   string        `env:"GROQ_MODEL" envDefault:"llama-3.3-70b-versatile"`
	Timeout time.Duration `env:"GROQ_TIMEOUT" envDefault:"60s"`
}

type Nilvera struct {
	TestURL       string        `env:"NILVERA_TEST_URL" envDefault:"https://apitest.nilvera.com"`
	ProdURL       string        `env:"NILVERA_PROD_URL" envDefault:"https://api.nilvera.com"`
	Timeout       time.Duration `env:"NILVERA_TIMEOUT" envDefault:"30s"`
	RetryAttempts int           `env:"NILVERA_RETRY_ATTEMPTS" envDefault:"2"`
}

type Veriban struct {
	Timeout       time.Duration `env:"VERIBAN_TIMEOUT" envDefault:"60s"`
	RetryAttempts int           `env:"VERIBAN_RETRY_ATTEMPTS" envDefault:"1"`
	SessionTTL    time.Duration `env:"VERIBAN_SESSION_TTL" envDefault:"6h"`
}

type Jobs struct {
	TransferCheckEnabled  bool          `env:"JOB_TRANSFER_CHECK_ENABLED" envDefault:"true"`
	TransferCheckInterval time.Duration `env:"JOB_TRANSFER_CHECK_INTERVAL" envDefault:"15m"`
	IncomingSyncEnabled   bool          `env:"JOB_INCOMING_SYNC_ENABLED" envDefault:"true"`
	IncomingSyncInterval  time.Duration `env:"JOB_INCOMING_SYNC_INTERVAL" envDefault:"1h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
