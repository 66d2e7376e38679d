// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/AronAlberts/HR-elections/cliparse"
	"github.com/AronAlberts/HR-elections/election"
	"github.com/AronAlberts/HR-elections/loader"
	"github.com/AronAlberts/HR-elections/models"
)

var (
	ErrNotLoaded            = errors.New("not loaded")
	ErrReferenceDataMissing = errors.New("constituencies and parties must be loaded first")
)

// Session holds the datasets loaded during one run of the program.
// Each dataset is set by its first successful load and never replaced.
type Session struct {
	ID string

	fs  afero.Fs
	cfg cliparse.Config
	log *slog.Logger

	constituencies *models.ConstituencyDirectory
	parties        *models.PartyDirectory
	results        *models.ResultsTable
}

func New(fs afero.Fs, cfg cliparse.Config, logger *slog.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		ID:  id,
		fs:  fs,
		cfg: cfg,
		log: logger.With("session", id),
	}
}

// Config returns the configuration the session was created with
func (s *Session) Config() cliparse.Config {
	return s.cfg
}

// Constituencies returns the loaded constituency directory
func (s *Session) Constituencies() (models.ConstituencyDirectory, error) {
	if s.constituencies == nil {
		return models.ConstituencyDirectory{}, fmt.Errorf("constituencies %w", ErrNotLoaded)
	}
	return *s.constituencies, nil
}

// Parties returns the loaded party directory
func (s *Session) Parties() (models.PartyDirectory, error) {
	if s.parties == nil {
		return models.PartyDirectory{}, fmt.Errorf("parties %w", ErrNotLoaded)
	}
	return *s.parties, nil
}

// Results returns the loaded results table
func (s *Session) Results() (models.ResultsTable, error) {
	if s.results == nil {
		return models.ResultsTable{}, fmt.Errorf("results %w", ErrNotLoaded)
	}
	return *s.results, nil
}

// LoadConstituencies reads the constituency file unless it is already loaded
func (s *Session) LoadConstituencies(path string) (models.ConstituencyDirectory, error) {
	if s.constituencies != nil {
		return *s.constituencies, nil
	}

	dir, err := loader.LoadConstituencies(s.fs, path)
	if err != nil {
		s.log.Warn("constituencies load failed", "path", path, "error", err)
		return models.ConstituencyDirectory{}, err
	}

	s.constituencies = &dir
	s.log.Info("constituencies loaded", "path", path, "count", dir.Len())
	return dir, nil
}

// LoadParties reads the party file unless it is already loaded
func (s *Session) LoadParties(path string) (models.PartyDirectory, error) {
	if s.parties != nil {
		return *s.parties, nil
	}

	dir, err := loader.LoadParties(s.fs, path)
	if err != nil {
		s.log.Warn("parties load failed", "path", path, "error", err)
		return models.PartyDirectory{}, err
	}

	s.parties = &dir
	s.log.Info("parties loaded", "path", path, "count", dir.Len())
	return dir, nil
}

// LoadResults reads the results file unless it is already loaded.
// Both reference directories must be loaded first.
func (s *Session) LoadResults(path string) (models.ResultsTable, error) {
	if s.results != nil {
		return *s.results, nil
	}

	if s.constituencies == nil || s.parties == nil {
		s.log.Warn("results load refused", "path", path, "error", ErrReferenceDataMissing)
		return models.ResultsTable{}, ErrReferenceDataMissing
	}

	opts := election.DecodeOptions{Strict: s.cfg.Strict}
	table, err := loader.LoadResults(s.fs, path, *s.parties, opts)
	if err != nil {
		s.log.Warn("results load failed", "path", path, "strict", opts.Strict, "error", err)
		return models.ResultsTable{}, err
	}

	s.results = &table
	s.log.Info("results loaded",
		"path", path,
		"constituencies", table.Len(),
		"stride", election.Stride(*s.parties),
	)
	return table, nil
}

// Report computes the results report of one constituency
func (s *Session) Report(constituency string) (models.ConstituencyReport, error) {
	results, err := s.Results()
	if err != nil {
		return models.ConstituencyReport{}, err
	}

	// Both are present whenever results are
	parties, _ := s.Parties()
	constituencies, _ := s.Constituencies()

	report, err := election.Summarize(results, parties, constituencies, constituency)
	if err != nil {
		s.log.Info("report unavailable", "constituency", constituency, "error", err)
		return models.ConstituencyReport{}, err
	}

	s.log.Debug("report computed",
		"constituency", report.Constituency,
		"total_votes", report.TotalVotes,
		"turnout", report.Turnout.String(),
	)
	return report, nil
}
