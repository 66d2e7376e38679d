// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package console implements the interactive menu.

# Menu

	1. Show constituencies
	2. Show parties
	3. Show results
	9. Quit

Any other answer shows the menu again. End of input quits.

The first time a table is requested its file name is asked for and the file
is loaded; later requests reuse the loaded data. Show results needs the
constituencies and parties to be loaded and asks for a constituency name
every time.

# Actions

NewMenu builds the choice → Action table. Each Action is wrapped with
WithLogging, which records the action name, duration and error.
*/
package console
