package main

import (
	"github.com/joho/godotenv"
	"github.com/nutscript/helix-logs/internal/app"
)

func main() {
	_ = godotenv.Load()

	app.Run()
}
