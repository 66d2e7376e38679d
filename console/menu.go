// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

// Menu choices
const (
	ShowConstituencies = "1"
	ShowParties        = "2"
	ShowResults        = "3"
	Quit               = "9"
)

const menuText = `
1. Show constituencies
2. Show parties
3. Show results
9. Quit

Select an action: `

// NewMenu maps each menu choice to its action
func NewMenu(c *Console) map[string]Action {
	menu := make(map[string]Action)

	menu[ShowConstituencies] = WithLogging(c.log, "show constituencies", c.showConstituencies)
	menu[ShowParties] = WithLogging(c.log, "show parties", c.showParties)
	menu[ShowResults] = WithLogging(c.log, "show results", c.showResults)

	return menu
}
