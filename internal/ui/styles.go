package ui

import (
	"strings"

	"github.com/pterm/pterm"
)

func Separator() {
	pterm.Println(pterm.Gray(strings.Repeat("-", 40)))
}

func PrintTitle(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	style.Printfln("# "+format, a...)
}
