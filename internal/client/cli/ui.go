package cli

import (
	"github.com/dmitrijs2005/backoffice/internal/client/config"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// ChooseUI resolves config.UIAuto: the TUI when fd is a terminal, the REPL
// otherwise. Explicit choices are returned as is.
func ChooseUI(ui string, fd int) string {
	if ui != config.UIAuto {
		return ui
	}
	if isTerminal(fd) {
		return config.UITUI
	}
	return config.UIREPL
}
