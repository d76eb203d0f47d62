package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/mkarlsen/BloxClicker_Go/internal/database"
)

// Wipes the persisted save for the configured backend. The next server start
// begins from the default state.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	switch getEnv("SAVE_BACKEND", "file") {
	case "postgres":
		resetPostgres()
	default:
		resetFile()
	}

	log.Println("✅ Save reset complete!")
}

func resetFile() {
	path := getEnv("SAVE_PATH", "saves/blox_clicker.json")
	log.Printf("Removing save file %s...\n", path)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Println("No save file found, nothing to do.")
			return
		}
		log.Fatalf("Failed to remove save file: %v", err)
	}
	log.Println("Save file removed.")
}

func resetPostgres() {
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "bloxclicker"),
	)

	pool, err := database.NewPool(connString, 2, 30*time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	saveKey := getEnv("SAVE_KEY", "bloxSim_save_v1")

	log.Printf("Deleting save row %s...\n", saveKey)
	tag, err := pool.Exec(context.Background(), `DELETE FROM saves WHERE save_key = $1`, saveKey)
	if err != nil {
		log.Fatalf("Failed to delete save: %v", err)
	}
	if tag.RowsAffected() == 0 {
		log.Println("No save row found, nothing to do.")
		return
	}
	log.Println("Save row deleted.")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
