// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report renders the console tables.

# Tables

  - Constituencies: name and elector count, with a total row
  - Parties: list id and party name
  - Results: per-list votes and ratio for one constituency, with total and
    turnout rows

Columns are padded by terminal width rather than byte length, so names like
"Suðvesturkjördæmi" stay aligned. Integers are grouped with thousands
separators. Undefined percentages are printed as "n/a".

# Example

	report.Results(os.Stdout, rep)

	Riverside
	List                           Party     Votes     Ratio
	--------------------------------------------------------
	A                              Alpha       120      60.0
	B                               Beta        80      40.0
	--------------------------------------------------------
	Total:                                     200     100.0
	Turnout:                                            50.0
*/
package report
