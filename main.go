package main

import (
	"context"
	"os"

	"github.com/ytget/mediaplayer/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	os.Exit(cli.Execute(context.Background(), version, os.Args[1:], os.Stderr))
}
