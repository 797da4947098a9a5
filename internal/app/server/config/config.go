package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress  = "localhost:8080"
	defaultAuthTimeout = 2 // секунды на проверку токена у провайдера
)

type Config struct {
	Env    string
	DB     db
	Server server
	Auth   auth
	Logger logger
}

type defaultConfig struct {
	RunAddress  string
	DatabaseURI string
	Migrations  string
	JWKSURL     string
	Issuer      string
	AuthTimeout int
	LogLevel    string
	Env         string
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type auth struct {
	// JWKSURL — адрес ключей провайдера идентификации, которым
	// подписаны bearer-токены.
	JWKSURL string `env:"AUTH_JWKS_URL"`
	Issuer  string `env:"AUTH_ISSUER"`
	// TimeoutSeconds — жёсткий бюджет на разрешение subject при
	// необязательной аннотации ответа.
	TimeoutSeconds int `env:"AUTH_TIMEOUT_SECONDS"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	d := defaultConfig{
		RunAddress:  viper.GetString("run_address"),
		DatabaseURI: viper.GetString("database_uri"),
		Migrations:  viper.GetString("migrations_path"),
		JWKSURL:     viper.GetString("auth_jwks_url"),
		Issuer:      viper.GetString("auth_issuer"),
		AuthTimeout: viper.GetInt("auth_timeout_seconds"),
		LogLevel:    viper.GetString("log_level"),
		Env:         viper.GetString("app_env"),
	}
	if d.RunAddress == "" {
		d.RunAddress = defaultRunAddress
	}
	if d.Migrations == "" {
		d.Migrations = "migrations"
	}
	if d.AuthTimeout <= 0 {
		d.AuthTimeout = defaultAuthTimeout
	}

	config := Config{
		Env: d.Env,
		DB: db{
			DatabaseURI: d.DatabaseURI,
			Migrations:  d.Migrations,
		},
		Server: server{RunAddress: d.RunAddress},
		Auth: auth{
			JWKSURL:        d.JWKSURL,
			Issuer:         d.Issuer,
			TimeoutSeconds: d.AuthTimeout,
		},
		Logger: logger{LogLevel: d.LogLevel},
	}

	return &config
}
