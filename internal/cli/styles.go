package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type AnsiColor string

const (
	AnsiWhite  AnsiColor = "7"
	AnsiRed    AnsiColor = "9"
	AnsiOrange AnsiColor = "166"
	AnsiYellow AnsiColor = "3"
	AnsiGreen  AnsiColor = "2"
	AnsiBlue   AnsiColor = "33"
)

var (
	styleBold  = lipgloss.NewStyle().Bold(true)
	styleFaded = lipgloss.NewStyle().Faint(true)

	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color(AnsiGreen))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color(AnsiYellow))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color(AnsiRed))
)

func PrintTitle(text string) {
	fmt.Println(styleBold.Render(text))
}

func PrintHint(text string) {
	fmt.Println(styleFaded.Render(text))
}

func PrintSuccess(text string) {
	fmt.Println(styleSuccess.Render("✅ " + text))
}

func PrintWarning(text string) {
	fmt.Println(styleWarning.Render("⚠️ " + text))
}

func PrintError(text string) {
	fmt.Println(styleError.Render("❌ " + text))
}
