package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Store backends
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Port        int
	DatabaseURL string
	StoreType   string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pollboard", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.StoreType, "t", "", "Store type (postgres or memory)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = StorePostgres
		}
	}
	if cfg.StoreType != StorePostgres && cfg.StoreType != StoreMemory {
		return Config{}, fmt.Errorf("unknown store type %q (use postgres or memory)", cfg.StoreType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	// The memory store needs no URL
	if cfg.DatabaseURL == "" && cfg.StoreType == StorePostgres {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	return cfg, nil
}
