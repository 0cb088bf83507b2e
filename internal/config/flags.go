package config

import (
	"flag"
	"os"
	"time"

	"github.com/dhanamorganics/storefront/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., ":8080")
//	-m string     storage backend: memory|file|postgres
//	-f string     directory for the file backend
//	-d string     PostgreSQL DSN
//	-s string     session token HMAC secret key
//	-t int        session validity, hours
//	-fee float    flat shipping fee
//	-free float   free-shipping threshold (subtotal above it ships free)
//	-u string     S3 root user
//	-p string     S3 root password
//	-b string     S3 bucket name
//	-g string     S3 region
//	-e string     S3 base endpoint (empty disables image uploads)
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with flags defined elsewhere.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-m", "-f", "-d", "-s", "-t", "-fee", "-free", "-u", "-p", "-b", "-g", "-e",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.StorageBackend, "m", config.StorageBackend, "storage backend (memory|file|postgres)")
	fs.StringVar(&config.FileStorageDir, "f", config.FileStorageDir, "file backend directory")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Hours()), "session_validity_duration (in hours)")

	fs.Float64Var(&config.ShippingFee, "fee", config.ShippingFee, "flat shipping fee")
	fs.Float64Var(&config.FreeShippingThreshold, "free", config.FreeShippingThreshold, "free shipping threshold")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Hour
}
