package config

// defaultHTTPAddress is used when no listen address was configured by any
// source.
const defaultHTTPAddress = ":8080"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup, filling in defaults where a
// missing value has an obvious one.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "":
		cfg.Storage.DB.Driver = "pgx"
	case "pgx", "sqlite3":
	default:
		return ErrUnsupportedDBDriver
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	return nil
}
