// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session keeps track of which datasets have been loaded.

# Lifecycle

A Session starts empty. Each Load method reads its file on the first
successful call and returns the cached value afterwards; a failed load
leaves the dataset unloaded so the user can try again with another file.

	sess := session.New(afero.NewOsFs(), cfg, logger)
	sess.LoadConstituencies("kjordaemi.txt")
	sess.LoadParties("flokkar.txt")
	sess.LoadResults("urslit.txt")
	rep, err := sess.Report("Reykjavík suður")

# Errors

  - ErrNotLoaded: the requested dataset has not been loaded
  - ErrReferenceDataMissing: LoadResults called before both directories
  - errors from the election and loader packages pass through unchanged
*/
package session
