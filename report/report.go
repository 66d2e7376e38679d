// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rivo/uniseg"

	"github.com/AronAlberts/HR-elections/election"
	"github.com/AronAlberts/HR-elections/models"
)

// Column widths
const (
	constituencyWidth = 20
	electorsWidth     = 10

	listWidth  = 6
	partyWidth = 26

	resultListWidth = 10
	votesWidth      = 10
	ratioWidth      = 10
)

// Constituencies writes the constituency table with the elector total
func Constituencies(w io.Writer, dir models.ConstituencyDirectory) error {
	var t table
	width := constituencyWidth + electorsWidth

	t.blank()
	t.row(left("Constituency", constituencyWidth), right("Electorals", electorsWidth))
	t.rule(width)
	for _, name := range dir.Keys() {
		electors, _ := dir.Get(name)
		t.row(left(name, constituencyWidth), right(number(electors), electorsWidth))
	}
	t.rule(width)
	t.row(left("Total:", constituencyWidth), right(number(election.TotalElectors(dir)), electorsWidth))

	return t.flush(w)
}

// Parties writes the list id / party name table
func Parties(w io.Writer, dir models.PartyDirectory) error {
	var t table

	t.blank()
	t.row(left("List", listWidth), right("Party", partyWidth))
	t.rule(listWidth + partyWidth)
	for _, id := range dir.Keys() {
		name, _ := dir.Get(id)
		t.row(left(id, listWidth), right(name, partyWidth))
	}

	return t.flush(w)
}

// Results writes the results table of one constituency
func Results(w io.Writer, r models.ConstituencyReport) error {
	var t table
	width := resultListWidth + partyWidth + votesWidth + ratioWidth

	// Header
	t.blank()
	t.row(r.Constituency)
	t.row(
		left("List", resultListWidth),
		right("Party", partyWidth),
		right("Votes", votesWidth),
		right("Ratio", ratioWidth),
	)
	t.rule(width)

	// Body
	for _, line := range r.Lines {
		t.row(
			left(line.ListID, resultListWidth),
			right(line.Party, partyWidth),
			right(number(line.Votes), votesWidth),
			right(line.Ratio.String(), ratioWidth),
		)
	}

	// Footer
	total := models.Percentage{Value: 100, Valid: r.TotalVotes > 0}
	t.rule(width)
	t.row(
		left("Total:", resultListWidth+partyWidth),
		right(number(r.TotalVotes), votesWidth),
		right(total.String(), ratioWidth),
	)
	t.row(
		left("Turnout:", resultListWidth+partyWidth+votesWidth),
		right(r.Turnout.String(), ratioWidth),
	)

	return t.flush(w)
}

// table buffers a whole table so it is written with a single call
type table struct {
	b strings.Builder
}

func (t *table) row(cells ...string) {
	for _, c := range cells {
		t.b.WriteString(c)
	}
	t.b.WriteByte('\n')
}

func (t *table) blank() {
	t.b.WriteByte('\n')
}

func (t *table) rule(width int) {
	t.row(strings.Repeat("-", width))
}

func (t *table) flush(w io.Writer) error {
	_, err := io.WriteString(w, t.b.String())
	return err
}

func number(n int) string {
	return humanize.Comma(int64(n))
}

// left pads s on the right up to width terminal columns
func left(s string, width int) string {
	return s + padding(s, width)
}

// right pads s on the left up to width terminal columns
func right(s string, width int) string {
	return padding(s, width) + s
}

func padding(s string, width int) string {
	n := width - uniseg.StringWidth(s)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
