package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the API. Values come from the
// process environment; a local .env file is loaded first when present.
type Config struct {
	Environment string `env:"ENVIRONMENT" env-default:"development"`
	ServerPort  string `env:"SERVER_PORT" env-default:"8080"`
	GinMode     string `env:"GIN_MODE" env-default:"debug"`

	DBHost     string `env:"DB_HOST" env-default:"127.0.0.1"`
	DBPort     string `env:"DB_PORT" env-default:"3306"`
	DBDatabase string `env:"DB_DATABASE" env-default:"internship_noc"`
	DBUsername string `env:"DB_USERNAME" env-default:"root"`
	DBPassword string `env:"DB_PASSWORD"`
	DebugSQL   bool   `env:"DEBUG_SQL"`

	JWTSecret      string `env:"JWT_SECRET" env-required:"true"`
	JWTExpireHours int    `env:"JWT_EXPIRE_HOURS" env-default:"24"`

	UploadPath string `env:"UPLOAD_PATH" env-default:"./uploads"`

	// OfficialEmailDomain is the institutional mail domain student
	// applications must use.
	OfficialEmailDomain string `env:"OFFICIAL_EMAIL_DOMAIN" env-default:"muj.manipal.edu"`

	// Redis is optional; login rate limiting is skipped when RedisAddr
	// is empty.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	SMTPHost          string `env:"SMTP_HOST"`
	SMTPPort          int    `env:"SMTP_PORT" env-default:"587"`
	SMTPUser          string `env:"SMTP_USER"`
	SMTPPass          string `env:"SMTP_PASS"`
	SMTPFrom          string `env:"SMTP_FROM"`
	SMTPSkipTLSVerify bool   `env:"SMTP_SKIP_TLS_VERIFY"`
}

// App is the loaded application configuration.
var App *Config

// MustLoad reads the .env file (if any) and the environment into App.
// The process exits when a required value is missing.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read configuration: %v", err)
	}

	App = &cfg
	return App
}
