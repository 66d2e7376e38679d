// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package loader reads the constituency, party and results files from an
// afero.Fs. Missing files are reported as election.ErrFileUnavailable.
package loader
