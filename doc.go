// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the election results console.

The program loads a constituencies file, a parties file and a results file
and prints them as tables on request.

# Starting

	go run . -c kjordaemi.txt -p flokkar.txt -r urslit.txt

The file flags only set the default answers for the file name prompts.

# Input Files

Constituencies, one "Name;Electors" per line:

	Riverside;400
	Lakeside;250

Parties, one "ListId;Party" per line:

	A;Alpha
	B;Beta

Results, a constituency name followed by one "ListId;Votes" line per party:

	Riverside
	A;120
	B;80

# Configuration

Settings are read from, in increasing priority: elections.toml (or
-config), the environment (a .env file is loaded if present), flags.

  - ELECTIONS_CONSTITUENCIES (-c): default constituencies file
  - ELECTIONS_PARTIES (-p): default parties file
  - ELECTIONS_RESULTS (-r): default results file
  - ELECTIONS_STRICT (-strict): reject incomplete results blocks
  - ELECTIONS_DEBUG (-debug): log everything to the terminal
  - ELECTIONS_LOG_FILE (-log): JSON log file, rotated
  - ELECTIONS_CONFIG (-config): config file path

# Architecture

  - cliparse: configuration
  - logging: slog handlers
  - models: directories and report types
  - loader: reading the three files
  - election: results decoding and vote arithmetic
  - report: table rendering
  - session: loaded datasets
  - console: menu loop
*/
package main
