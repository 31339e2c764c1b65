// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

Flags take precedence over environment variables:

  - -p / PORT: server port (default 8080)
  - -d / DATABASE_URL: PostgreSQL connection string
  - -t / STORE_TYPE: "postgres" (default) or "memory"

The postgres backend requires a database URL; the memory backend does
not. main loads an optional .env file (via godotenv) before parsing, so
local development can keep settings out of the shell.
*/
package cliparse
