package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
