// Package config provides configuration management for stock-sync.
//
// It loads an optional .env file with godotenv and then reads environment
// variables through Viper. Defaults live next to each field in `default`
// struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key and upload body limit (SERVER_PORT, SERVER_API_KEY, ...)
//   - Log: logging level and format
//   - Archive: backend, upload/record roots, retention and sweep schedule
//   - Storage: S3/MinIO credentials and bucket, used by the s3 archive backend
//   - Database: optional ledger database (sqlite or mysql)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Archive.RetentionDays)
package config
