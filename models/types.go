// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "fmt"

// Field separator used by every input file
const Separator = ";"

// Directory is a string-keyed map that remembers the order in which keys
// were first inserted. The zero value is ready to use.
type Directory[V any] struct {
	keys   []string
	values map[string]V
}

// Set stores v under key. A key that already exists keeps its position and
// takes the new value.
func (d *Directory[V]) Set(key string, v V) {
	if d.values == nil {
		d.values = make(map[string]V)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

// Get returns the value stored under key
func (d Directory[V]) Get(key string) (V, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present
func (d Directory[V]) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Keys returns the keys in insertion order
func (d Directory[V]) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of keys
func (d Directory[V]) Len() int {
	return len(d.keys)
}

// Reference data

// list id -> party name
type PartyDirectory = Directory[string]

// constituency name -> number of electors
type ConstituencyDirectory = Directory[int]

// Results data

// VoteRecord is one "ListId;VoteCount" line of a results file.
// Votes is kept as the raw text and parsed when it is consumed.
type VoteRecord struct {
	ListID string
	Votes  string
}

// constituency name -> vote records in file order
type ResultsTable = Directory[[]VoteRecord]

// Derived report types

// Percentage is a ratio or turnout that may be undefined (division by zero)
type Percentage struct {
	Value float64
	Valid bool
}

// String formats the value with one decimal, or "n/a" when undefined
func (p Percentage) String() string {
	if !p.Valid {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", p.Value)
}

type TurnoutReport struct {
	Constituency string
	TotalVotes   int
	Turnout      Percentage
}

type ResultLine struct {
	ListID string
	Party  string // empty when the list id is not in the party directory
	Votes  int
	Ratio  Percentage
}

type ConstituencyReport struct {
	TurnoutReport
	Electors int // 0 when the constituency is not in the constituency directory
	Lines    []ResultLine
}
