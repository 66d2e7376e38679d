// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package loader

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"vimagination.zapto.org/dos2unix"

	"github.com/AronAlberts/HR-elections/election"
	"github.com/AronAlberts/HR-elections/models"
)

// ReadLines reads a whole file and splits it into lines.
// The file is closed before any parsing happens.
func ReadLines(fs afero.Fs, path string) ([]string, error) {
	data, err := readFile(fs, path)
	if err != nil {
		return nil, err
	}
	return splitLines(data), nil
}

func readFile(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", election.ErrFileUnavailable, err)
	}
	defer f.Close()

	// Files exported on Windows end their lines with \r\n
	data, err := io.ReadAll(dos2unix.DOS2Unix(f))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read %s: %w", election.ErrFileUnavailable, path, err)
	}
	return string(data), nil
}

// splitLines splits on newlines without producing an empty last line for a
// terminating newline
func splitLines(data string) []string {
	if data == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(data, "\n"), "\n")
}

// LoadParties reads a "ListId;PartyName" file
func LoadParties(fs afero.Fs, path string) (models.PartyDirectory, error) {
	var parties models.PartyDirectory

	err := readKeyValues(fs, path, func(key, value string) error {
		parties.Set(key, value)
		return nil
	})
	if err != nil {
		return models.PartyDirectory{}, err
	}

	return parties, nil
}

// LoadConstituencies reads a "Name;ElectorCount" file
func LoadConstituencies(fs afero.Fs, path string) (models.ConstituencyDirectory, error) {
	var constituencies models.ConstituencyDirectory

	err := readKeyValues(fs, path, func(key, value string) error {
		electors, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || electors < 0 {
			return fmt.Errorf("%w: elector count %q", election.ErrMalformedRecord, value)
		}
		constituencies.Set(key, electors)
		return nil
	})
	if err != nil {
		return models.ConstituencyDirectory{}, err
	}

	return constituencies, nil
}

// LoadResults reads a results file and decodes it against the party directory
func LoadResults(fs afero.Fs, path string, parties models.PartyDirectory, opts election.DecodeOptions) (models.ResultsTable, error) {
	// Checked before touching the file, the stride would be meaningless
	if parties.Len() == 0 {
		return models.ResultsTable{}, election.ErrEmptyPartyDirectory
	}

	lines, err := ReadLines(fs, path)
	if err != nil {
		return models.ResultsTable{}, err
	}

	return election.Decode(lines, parties, opts)
}

// readKeyValues calls fn for every "Key;Value" line. Blank lines are skipped.
func readKeyValues(fs afero.Fs, path string, fn func(key, value string) error) error {
	lines, err := ReadLines(fs, path)
	if err != nil {
		return err
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, found := strings.Cut(line, models.Separator)
		if !found {
			return &election.RecordError{Line: i + 1, Text: line, Err: election.ErrMalformedRecord}
		}

		if err := fn(key, value); err != nil {
			return &election.RecordError{Line: i + 1, Text: line, Err: err}
		}
	}

	return nil
}
