// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/afero"

	"github.com/AronAlberts/HR-elections/cliparse"
	"github.com/AronAlberts/HR-elections/models"
)

// File names used by the fixtures
const (
	ConstituenciesFile = "constituencies.txt"
	PartiesFile        = "parties.txt"
	ResultsFile        = "results.txt"
)

// Riverside/Lakeside dataset: totals 200 and 100, Riverside turnout 50%
const (
	Constituencies = "Riverside;400\nLakeside;250\n"
	Parties        = "A;Alpha\nB;Beta\n"
	Results        = "Riverside\nA;120\nB;80\nLakeside\nA;50\nB;50\n"
)

// SetupTestFS creates an in-memory filesystem holding the given files
func SetupTestFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	return fs
}

// SetupElectionFS creates an in-memory filesystem with the standard dataset
func SetupElectionFS(t *testing.T) afero.Fs {
	t.Helper()

	return SetupTestFS(t, map[string]string{
		ConstituenciesFile: Constituencies,
		PartiesFile:        Parties,
		ResultsFile:        Results,
	})
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		ConfigPath:         cliparse.DefaultConfigPath,
		ConstituenciesFile: ConstituenciesFile,
		PartiesFile:        PartiesFile,
		ResultsFile:        ResultsFile,
	}
}

// DiscardLogger returns a logger that drops every record
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// PartyDirectory builds a party directory from id, name pairs
func PartyDirectory(t *testing.T, pairs ...string) models.PartyDirectory {
	t.Helper()

	if len(pairs)%2 != 0 {
		t.Fatalf("PartyDirectory needs id/name pairs, got %d values", len(pairs))
	}

	var dir models.PartyDirectory
	for i := 0; i < len(pairs); i += 2 {
		dir.Set(pairs[i], pairs[i+1])
	}
	return dir
}

// ConstituencyDirectory builds a constituency directory
func ConstituencyDirectory(t *testing.T, electors map[string]int, order ...string) models.ConstituencyDirectory {
	t.Helper()

	var dir models.ConstituencyDirectory
	for _, name := range order {
		n, ok := electors[name]
		if !ok {
			t.Fatalf("no elector count for %s", name)
		}
		dir.Set(name, n)
	}
	return dir
}
