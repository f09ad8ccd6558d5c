// Package config provides layered configuration for the watchcli tool.
//
// # Configuration Sources
//
// Configuration is assembled from three layers, later layers winning:
//
//	1. Struct defaults (Default)
//	2. A YAML config file (explicit path, or the first default location)
//	3. Environment variables with the WATCH_ prefix
//
// Command-line flags are applied on top by the CLI after Load returns.
//
// # Environment Variables
//
//	WATCH_INPUT_PATH=viewing_history.csv
//	WATCH_OUTPUT_DIR=reports
//	WATCH_OUTPUT_EXCEL=true
//	WATCH_LOGGING_LEVEL=debug
//
// # Validation
//
// The merged configuration is validated once at load time (struct tags
// plus cross-field rules); components receive already-validated values
// and never re-check them.
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return err
//	}
//	logger, err := infrastructure.InitializeLogger(cfg.Logging)
package config
