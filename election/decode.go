// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"strings"

	"github.com/AronAlberts/HR-elections/models"
)

// DecodeOptions controls how strictly a results file is checked
type DecodeOptions struct {
	// Strict rejects trailing partial blocks and list ids that are not in
	// the party directory. Without it a trailing partial block is dropped.
	Strict bool
}

// Stride returns the number of lines in one results block: the
// constituency name followed by one line per party list.
func Stride(parties models.PartyDirectory) int {
	return parties.Len() + 1
}

// Decode rebuilds the results table from the lines of a results file.
//
// The file has no delimiters between constituencies. Every block is one
// name line followed by exactly parties.Len() "ListId;VoteCount" lines, so
// block boundaries are derived from the size of the party directory.
func Decode(lines []string, parties models.PartyDirectory, opts DecodeOptions) (models.ResultsTable, error) {
	var table models.ResultsTable

	if parties.Len() == 0 {
		return table, ErrEmptyPartyDirectory
	}

	stride := Stride(parties)
	if opts.Strict && len(lines)%stride != 0 {
		return table, &StrideError{Lines: len(lines), Stride: stride}
	}

	// Trailing lines that do not fill a block are never looked at
	blocks := len(lines) / stride
	for b := 0; b < blocks; b++ {
		start := b * stride
		name := lines[start]

		records := make([]models.VoteRecord, 0, stride-1)
		for i := start + 1; i < start+stride; i++ {
			rec, err := parseVoteRecord(lines[i])
			if err != nil {
				return models.ResultsTable{}, &RecordError{Line: i + 1, Text: lines[i], Err: err}
			}
			if opts.Strict && !parties.Has(rec.ListID) {
				return models.ResultsTable{}, &RecordError{Line: i + 1, Text: lines[i], Err: ErrUnknownList}
			}
			records = append(records, rec)
		}

		table.Set(name, records)
	}

	return table, nil
}

// parseVoteRecord splits "ListId;VoteCount" into its two fields
func parseVoteRecord(line string) (models.VoteRecord, error) {
	fields := strings.Split(line, models.Separator)
	if len(fields) != 2 {
		return models.VoteRecord{}, ErrMalformedRecord
	}
	return models.VoteRecord{ListID: fields[0], Votes: fields[1]}, nil
}
