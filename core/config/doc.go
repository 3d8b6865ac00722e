// Package config provides configuration management for the catalog engine.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for the persistent cache
//   - Storage: S3/MinIO credentials for manifest snapshots
//   - Log: Logging level and format
//   - Cache: cache backend selection
//   - Sources: per-adapter settings (manifest, scraper, synthetic)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
