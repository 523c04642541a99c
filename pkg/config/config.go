package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/spf13/viper"
)

type AppConfig struct {
	AppPort        int
	RecommenderURL string
	SessionTTLMin  int
	AllowedOrigin  string
}

var (
	lock      = &sync.Mutex{}
	appConfig *AppConfig
)

func GetConfig() (*AppConfig, error) {
	if appConfig != nil {
		return appConfig, nil
	}

	lock.Lock()
	defer lock.Unlock()

	if appConfig != nil {
		return appConfig, nil
	}

	cfg, err := initConfig()
	if err != nil {
		return nil, err
	}
	appConfig = cfg
	return appConfig, nil
}

func initConfig() (*AppConfig, error) {
	var finalConfig AppConfig

	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetConfigName("app.config")
	viper.SetConfigType("json")
	if err := viper.ReadInConfig(); err != nil {
		finalConfig.AppPort = getEnvIntOrDefault("APP_PORT", 8080)
		finalConfig.RecommenderURL = getEnvOrDefault("RECOMMENDER_URL", "http://localhost:8000/recommend")
		finalConfig.SessionTTLMin = getEnvIntOrDefault("SESSION_TTL_MINUTES", 60)
		finalConfig.AllowedOrigin = getEnvOrDefault("ALLOWED_ORIGIN", "*")
		return &finalConfig, nil
	}

	finalConfig.AppPort = viper.GetInt("server.port")
	finalConfig.RecommenderURL = viper.GetString("recommender.url")
	finalConfig.SessionTTLMin = viper.GetInt("session.ttl_minutes")
	finalConfig.AllowedOrigin = viper.GetString("server.allowed_origin")

	return &finalConfig, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
