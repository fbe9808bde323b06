package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration
}

func LoadConfig() *Config {
	// .env is optional; in containers everything comes from the real env.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	ttlHours := 24
	if v, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24")); err == nil && v > 0 {
		ttlHours = v
	}

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "canteen.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(ttlHours) * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
