package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dhanamorganics/storefront/internal/admincli"
)

// Default server base URL; can be overridden with the DHANAM_SERVER env var
// or the -server flag.
var serverBaseURL = "http://localhost:8080"

func main() {
	serverFlag := flag.String("server", "", "storefront server base URL")
	flag.Parse()

	if env := os.Getenv("DHANAM_SERVER"); env != "" {
		serverBaseURL = strings.TrimRight(env, "/")
	}
	if *serverFlag != "" {
		serverBaseURL = strings.TrimRight(*serverFlag, "/")
	}

	if flag.NArg() == 0 {
		fmt.Println("usage: admin [-server URL] <command> [args]")
		os.Exit(1)
	}

	app := admincli.NewApp(serverBaseURL)
	if err := app.Run(context.Background(), flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
