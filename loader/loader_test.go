// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package loader

import (
	"errors"
	"slices"
	"testing"

	"github.com/AronAlberts/HR-elections/election"
	"github.com/AronAlberts/HR-elections/models"
	"github.com/AronAlberts/HR-elections/testutil"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := testutil.SetupTestFS(t, map[string]string{"f.txt": tt.content})

			got, err := ReadLines(fs, "f.txt")
			if err != nil {
				t.Fatalf("ReadLines() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ReadLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadLines_Missing(t *testing.T) {
	fs := testutil.SetupTestFS(t, nil)

	_, err := ReadLines(fs, "missing.txt")
	if !errors.Is(err, election.ErrFileUnavailable) {
		t.Errorf("ReadLines() error = %v, want ErrFileUnavailable", err)
	}
}

func TestLoadParties(t *testing.T) {
	fs := testutil.SetupTestFS(t, map[string]string{
		"parties.txt": "B;Beta\nA;Alpha\n\nC;Gamma;Delta\n",
	})

	dir, err := LoadParties(fs, "parties.txt")
	if err != nil {
		t.Fatalf("LoadParties() error = %v", err)
	}

	if got := dir.Keys(); !slices.Equal(got, []string{"B", "A", "C"}) {
		t.Errorf("Keys() = %v, want [B A C]", got)
	}
	if name, _ := dir.Get("C"); name != "Gamma;Delta" {
		t.Errorf("Get(C) = %q, want everything after the first separator", name)
	}
}

func TestLoadParties_Malformed(t *testing.T) {
	fs := testutil.SetupTestFS(t, map[string]string{"parties.txt": "A;Alpha\nBeta\n"})

	_, err := LoadParties(fs, "parties.txt")
	if !errors.Is(err, election.ErrMalformedRecord) {
		t.Fatalf("LoadParties() error = %v, want ErrMalformedRecord", err)
	}

	var recErr *election.RecordError
	if !errors.As(err, &recErr) || recErr.Line != 2 {
		t.Errorf("expected RecordError on line 2, got %v", err)
	}
}

func TestLoadConstituencies(t *testing.T) {
	fs := testutil.SetupElectionFS(t)

	dir, err := LoadConstituencies(fs, testutil.ConstituenciesFile)
	if err != nil {
		t.Fatalf("LoadConstituencies() error = %v", err)
	}

	if dir.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", dir.Len())
	}
	if n, _ := dir.Get("Riverside"); n != 400 {
		t.Errorf("Get(Riverside) = %d, want 400", n)
	}
}

func TestLoadConstituencies_BadCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"text", "Riverside;lots\n"},
		{"negative", "Riverside;-4\n"},
		{"missing separator", "Riverside 400\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := testutil.SetupTestFS(t, map[string]string{"c.txt": tt.content})

			_, err := LoadConstituencies(fs, "c.txt")
			if !errors.Is(err, election.ErrMalformedRecord) {
				t.Errorf("LoadConstituencies() error = %v, want ErrMalformedRecord", err)
			}
		})
	}
}

func TestLoadResults(t *testing.T) {
	fs := testutil.SetupElectionFS(t)
	parties := testutil.PartyDirectory(t, "A", "Alpha", "B", "Beta")

	table, err := LoadResults(fs, testutil.ResultsFile, parties, election.DecodeOptions{})
	if err != nil {
		t.Fatalf("LoadResults() error = %v", err)
	}

	total, err := election.TotalVotes(table, "Riverside")
	if err != nil || total != 200 {
		t.Errorf("TotalVotes(Riverside) = %d, %v; want 200", total, err)
	}
}

func TestLoadResults_Errors(t *testing.T) {
	fs := testutil.SetupElectionFS(t)
	parties := testutil.PartyDirectory(t, "A", "Alpha", "B", "Beta")

	tests := []struct {
		name    string
		path    string
		parties models.PartyDirectory
		wantErr error
	}{
		{"missing file", "nope.txt", parties, election.ErrFileUnavailable},
		{"no parties", testutil.ResultsFile, models.PartyDirectory{}, election.ErrEmptyPartyDirectory},
		{"no parties and missing file", "nope.txt", models.PartyDirectory{}, election.ErrEmptyPartyDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadResults(fs, tt.path, tt.parties, election.DecodeOptions{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadResults() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadResults_CRLF(t *testing.T) {
	fs := testutil.SetupTestFS(t, map[string]string{
		"results.txt": "Riverside\r\nA;120\r\nB;80\r\n",
	})
	parties := testutil.PartyDirectory(t, "A", "Alpha", "B", "Beta")

	table, err := LoadResults(fs, "results.txt", parties, election.DecodeOptions{Strict: true})
	if err != nil {
		t.Fatalf("LoadResults() error = %v", err)
	}
	if !table.Has("Riverside") {
		t.Errorf("expected Riverside without carriage return, got keys %q", table.Keys())
	}
}
