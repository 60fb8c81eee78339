package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	StripeKey string
	RedisAddr string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "5000"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:    getEnv("DB_NAME", "bistroDB"),
		JWTSecret: getEnv("ACCESS_TOKEN_SECRET", "verysecretkey"),
		StripeKey: getEnv("PAYMENT_SECRET_KEY", ""),
		RedisAddr: getEnv("REDIS_ADDR", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
