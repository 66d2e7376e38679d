// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the data held by a reporting session and the derived
values handed to the report renderer.

# Directories

All keyed data is stored in a Directory, an ordered string-keyed map:

  - PartyDirectory: list id → party name
  - ConstituencyDirectory: constituency name → elector count
  - ResultsTable: constituency name → []VoteRecord (file order)

Directories are built once by the loader and are not modified afterwards.

# Report Types

Values computed on demand by the election package:

  - TurnoutReport: constituency, total votes, turnout
  - ConstituencyReport: TurnoutReport plus per-list ResultLine rows
  - Percentage: a ratio or turnout, Valid is false when it is undefined

# Constants

	Separator = ";"
*/
package models
