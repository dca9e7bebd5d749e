package main

import (
	"os"

	"github.com/joho/godotenv"
	_ "github.com/marcboeker/go-duckdb"
)

func main() {

	// env from .env when present, for KASSA_DB and friends
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
