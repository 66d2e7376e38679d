// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - ConstituenciesFile, PartiesFile, ResultsFile: default answers for the
    file name prompts (optional)
  - Strict: reject results files with an incomplete last block or unknown
    list ids (default: false, the incomplete block is dropped)
  - Debug: verbose logging
  - LogFile, LogMaxSizeMB, LogMaxBackups: rotated JSON log file

# Sources

Later sources override earlier ones:

 1. defaults
 2. elections.toml, or the file named by -config / ELECTIONS_CONFIG
 3. environment variables, after .env has been loaded
 4. command-line flags

# CLI Flags

	-c       Constituencies file
	-p       Parties file
	-r       Results file
	-strict  Strict results decoding
	-debug   Debug logging
	-log     Log file
	-config  Config file

# Environment Variables

	ELECTIONS_CONSTITUENCIES → -c
	ELECTIONS_PARTIES        → -p
	ELECTIONS_RESULTS        → -r
	ELECTIONS_STRICT         → -strict
	ELECTIONS_DEBUG          → -debug
	ELECTIONS_LOG_FILE       → -log
	ELECTIONS_CONFIG         → -config

# Config File

	[files]
	constituencies = "kjordaemi.txt"
	parties = "flokkar.txt"
	results = "urslit.txt"

	[decode]
	strict = false

	[log]
	file = "elections.log"
	debug = false
	max_size_mb = 5
	max_backups = 3

# Validation

ParseFlags returns an error for unknown flags, a boolean environment
variable that does not parse, or a config file that was named explicitly
but cannot be read.
*/
package cliparse
