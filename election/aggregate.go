// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AronAlberts/HR-elections/models"
)

// VoteCount parses the vote count of a single record
func VoteCount(rec models.VoteRecord) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(rec.Votes))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: list %s: %q", ErrInvalidVoteCount, rec.ListID, rec.Votes)
	}
	return n, nil
}

// TotalVotes sums the votes cast in a constituency.
// Returns ErrNotFound if the constituency is not in the results table.
func TotalVotes(results models.ResultsTable, constituency string) (int, error) {
	records, ok := results.Get(constituency)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, constituency)
	}
	return sumVotes(records)
}

func sumVotes(records []models.VoteRecord) (int, error) {
	total := 0
	for _, rec := range records {
		n, err := VoteCount(rec)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// Turnout returns total as a percentage of electors
func Turnout(total, electors int) (float64, error) {
	if electors <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidElectorCount, electors)
	}
	return float64(total) / float64(electors) * 100, nil
}

// Ratio returns votes as a percentage of total
func Ratio(votes, total int) (float64, error) {
	if total == 0 {
		return 0, ErrInvalidTotal
	}
	return float64(votes) / float64(total) * 100, nil
}

// TotalElectors sums the elector counts of every constituency
func TotalElectors(constituencies models.ConstituencyDirectory) int {
	sum := 0
	for _, name := range constituencies.Keys() {
		n, _ := constituencies.Get(name)
		sum += n
	}
	return sum
}

// TurnoutFor builds the turnout summary of one constituency
func TurnoutFor(results models.ResultsTable, constituencies models.ConstituencyDirectory, constituency string) (models.TurnoutReport, error) {
	total, err := TotalVotes(results, constituency)
	if err != nil {
		return models.TurnoutReport{}, err
	}

	report := models.TurnoutReport{
		Constituency: constituency,
		TotalVotes:   total,
	}

	// A constituency missing from the reference data has no turnout
	if name, ok := Resolve(constituencies, constituency); ok {
		electors, _ := constituencies.Get(name)
		report.Turnout = percentage(Turnout(total, electors))
	}

	return report, nil
}

// Summarize computes everything shown in a constituency results table.
// The query is matched with Resolve, so surrounding whitespace and
// differently composed accents are tolerated.
func Summarize(results models.ResultsTable, parties models.PartyDirectory, constituencies models.ConstituencyDirectory, query string) (models.ConstituencyReport, error) {
	name, ok := Resolve(results, query)
	if !ok {
		return models.ConstituencyReport{}, fmt.Errorf("%w: %s", ErrNotFound, strings.TrimSpace(query))
	}

	turnout, err := TurnoutFor(results, constituencies, name)
	if err != nil {
		return models.ConstituencyReport{}, err
	}

	report := models.ConstituencyReport{TurnoutReport: turnout}
	if ref, ok := Resolve(constituencies, name); ok {
		report.Electors, _ = constituencies.Get(ref)
	}

	records, _ := results.Get(name)
	report.Lines = make([]models.ResultLine, 0, len(records))
	for _, rec := range records {
		// Already validated by TotalVotes
		votes, _ := VoteCount(rec)
		party, _ := parties.Get(rec.ListID)
		report.Lines = append(report.Lines, models.ResultLine{
			ListID: rec.ListID,
			Party:  party,
			Votes:  votes,
			Ratio:  percentage(Ratio(votes, turnout.TotalVotes)),
		})
	}

	return report, nil
}

func percentage(v float64, err error) models.Percentage {
	if err != nil {
		return models.Percentage{}
	}
	return models.Percentage{Value: v, Valid: true}
}
