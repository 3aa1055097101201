package main

import (
	"github.com/joho/godotenv"

	"github.com/priyadarshn/lokal/cmd"
)

func main() {
	// .env is optional; env vars still override a missing file.
	_ = godotenv.Load()
	cmd.Execute()
}
