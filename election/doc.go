// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election decodes results files and computes the figures shown in
the reports.

# Results Format

A results file is a flat list of lines. Each constituency occupies one
block of Stride(parties) lines:

	Riverside
	A;120
	B;80
	Lakeside
	A;50
	B;50

Decode turns the lines into a ResultsTable. Vote counts stay as text until
they are consumed:

	table, err := election.Decode(lines, parties, election.DecodeOptions{})

A trailing partial block is dropped unless DecodeOptions.Strict is set.

# Aggregation

	total, err := election.TotalVotes(table, "Riverside")   // 200
	pct, err := election.Turnout(total, 400)                // 50.0
	share, err := election.Ratio(120, total)                // 60.0

Summarize bundles these into a models.ConstituencyReport. Divisions by zero
do not fail a report, they yield an invalid models.Percentage.

# Errors

Failures wrap one of the sentinel errors (ErrFileUnavailable,
ErrEmptyPartyDirectory, ErrMalformedRecord, ErrNotFound,
ErrInvalidElectorCount, ErrInvalidTotal, ErrInvalidVoteCount,
ErrIncompleteBlock, ErrUnknownList) and can be tested with errors.Is.
*/
package election
