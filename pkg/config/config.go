package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	DEFAULT_PORT = "8080"

	PLANT_COLLECTION = "plant"

	DEFAULT_LIST_LIMIT = 50

	WRITE_RATE_LIMIT     = 30
	WRITE_RATE_WINDOW_MS = 60_000
)

type EnvVars struct {
	DATABASE_URL  string
	DATABASE_NAME string
	REDIS_URL     string
	PORT          string
}

var ENV *EnvVars

func init() {

	prod := os.Getenv("ENV") == "prod"

	if !prod {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using process environment")
		}
	}

	ENV = &EnvVars{
		DATABASE_URL:  os.Getenv("DATABASE_URL"),
		DATABASE_NAME: os.Getenv("DATABASE_NAME"),
		REDIS_URL:     os.Getenv("REDIS_URL"),
		PORT:          os.Getenv("PORT"),
	}

	if ENV.PORT == "" {
		ENV.PORT = DEFAULT_PORT
	}

}
