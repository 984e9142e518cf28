// Package config provides configuration management for SpeedTab.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags
// of each partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP bridge settings (host, port, API key)
//   - Log: Logging level and format
//   - Tab: Location and source of the tab configuration, file watching
//   - Storage: S3/MinIO credentials and bucket settings
//   - Permissions: Requesters holding every command permission
//
// The tab override document itself is not read here; see feature/tab/tabconfig.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Tab.Path())
package config
