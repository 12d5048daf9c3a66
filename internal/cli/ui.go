package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/graphcanvas/pkg/graph"
)

// =============================================================================
// Styles
// =============================================================================

// Terminal palette. Yellow and red match the editor's edge-start and
// selection highlights.
var (
	colorAccent = lipgloss.Color("36")  // teal: titles, spinner, commands
	colorOK     = lipgloss.Color("35")  // green: success, cache hits
	colorWarn   = lipgloss.Color("220") // amber: warnings
	colorErr    = lipgloss.Color("167") // soft red: errors
	colorText   = lipgloss.Color("255")
	colorMuted  = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleTitle renders section headings such as operation sets.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
	// StyleValue renders names, paths and counts.
	StyleValue = lipgloss.NewStyle().Foreground(colorText)
	// StyleWarning renders warning text.
	StyleWarning = lipgloss.NewStyle().Foreground(colorWarn)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorOK)
	styleIconError   = lipgloss.NewStyle().Foreground(colorErr)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorMuted)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)

	styleKey      = lipgloss.NewStyle().Foreground(colorMuted).Width(20)
	styleCached   = lipgloss.NewStyle().Foreground(colorOK)
	styleComputed = lipgloss.NewStyle().Foreground(colorMuted)
	styleCommand  = lipgloss.NewStyle().Foreground(colorAccent)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cache hit"
	iconFresh   = "computed"
)

// =============================================================================
// Status Lines
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(StyleWarning.Render(iconWarning + " " + fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints "  → path" under a success line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// formatKeyValue pads key to a column, as in `cache stats`.
func formatKeyValue(key, value string) string {
	return styleKey.Render(key) + " " + StyleValue.Render(value)
}

// =============================================================================
// Graph Summaries
// =============================================================================

// printStats prints the summary line for a generated or transformed graph.
func printStats(d graph.Data, cached bool) {
	fmt.Println(formatStats(d, cached))
}

// formatStats summarises d as "N vertices · M edges · max degree D" followed
// by whether the result came from the operation cache.
func formatStats(d graph.Data, cached bool) string {
	maxDegree := 0
	for _, v := range d {
		maxDegree = max(maxDegree, v.Degree())
	}
	parts := []string{
		fmt.Sprintf("%d vertices", len(d)),
		fmt.Sprintf("%d edges", d.EdgeCount()),
	}
	if len(d) > 0 {
		parts = append(parts, fmt.Sprintf("max degree %d", maxDegree))
	}

	status := styleComputed.Render(iconFresh)
	if cached {
		status = styleCached.Render(iconCached)
	}
	return "  " + StyleDim.Render(strings.Join(parts, " · ")+" · ") + status
}

// printNextSteps suggests follow-up commands for a graph file just written.
func printNextSteps(path string) {
	printNextStep("Draw it", appName+" render "+path)
	printNextStep("Edit it", appName+" edit "+path)
}

func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}
