package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	MLService MLService
	JWT       JWT
	CORS      CORS

	// CompletionTimezone is the IANA zone used to stamp completed_at on
	// finished tests, so completion times follow the deployment's audience
	// rather than wherever the server happens to run.
	CompletionTimezone string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type MLService struct {
	URL     string
	Timeout time.Duration
}

type JWT struct {
	Secret string
	// ExpireMinutes <= 0 means tokens do not expire.
	ExpireMinutes int
}

type CORS struct {
	Origins []string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ML_SERVICE_URL", "https://burnoutml.onrender.com")
	viper.SetDefault("ML_SERVICE_TIMEOUT_SECONDS", 30)
	viper.SetDefault("JWT_EXPIRE_MINUTES", 0)
	viper.SetDefault("COMPLETION_TIMEZONE", "America/Lima")
	viper.SetDefault("CORS_ORIGINS", "*")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.MLService.URL = viper.GetString("ML_SERVICE_URL")
	config.MLService.Timeout = time.Duration(viper.GetInt("ML_SERVICE_TIMEOUT_SECONDS")) * time.Second

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.ExpireMinutes = viper.GetInt("JWT_EXPIRE_MINUTES")

	config.CORS.Origins = strings.Split(viper.GetString("CORS_ORIGINS"), ",")
	config.CompletionTimezone = viper.GetString("COMPLETION_TIMEZONE")

	log.Info().Str("port", config.Server.Port).Str("ml_url", config.MLService.URL).Msg("Config loaded")
	return &config, nil
}
