package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Delete this file? [y/N]: ")
func promptConfirm(prompt string) bool {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	var response string

	_, _ = fmt.Scanln(&response)

	return response == "y" || response == "Y"
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	// Make path absolute
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

// printEmptyResult prints a "no results" message with a create hint
// resourceType: "appointments", etc.
// createCmd: the command to create the resource
func printEmptyResult(w io.Writer, resourceType, createCmd string) {
	_, _ = fmt.Fprintf(w, "No %s found.\n", resourceType)
	_, _ = fmt.Fprintf(w, "Create one with: %s\n", createCmd)
}

// orDefault returns fallback when s is empty
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}

// centerString centers a string in a field of given display width
func centerString(s string, width int) string {
	sw := lipgloss.Width(s)
	if sw >= width {
		return s
	}

	padding := (width - sw) / 2

	return fmt.Sprintf("%*s%s%*s", padding, "", s, width-sw-padding, "")
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(r[:maxLen])
	}

	return string(r[:maxLen-3]) + "..."
}

// boxWidth is the standard width for info boxes
const boxWidth = 64

// printBoxHeader prints the top border of an info box with a title
func printBoxHeader(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════════╗")
	_, _ = fmt.Fprintf(w, "║%s║\n", centerString(truncateString(title, boxWidth-2), boxWidth-2))
	_, _ = fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════╣")
}

// printBoxLine prints a line inside an info box with label and value.
// Widths are measured in terminal cells so accented names keep the border aligned.
func printBoxLine(w io.Writer, label, value string) {
	const inner = boxWidth - 2

	content := fmt.Sprintf("  %s: %s", label, value)

	maxRunes := inner
	for lipgloss.Width(content) > inner && maxRunes > 0 {
		content = truncateString(content, maxRunes)
		maxRunes--
	}

	padding := max(inner-lipgloss.Width(content), 0)

	_, _ = fmt.Fprintf(w, "║%s%*s║\n", content, padding, "")
}

// printBoxFooter prints the bottom border of an info box
func printBoxFooter(w io.Writer) {
	_, _ = fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════════╝")
}

// printInfoBox prints a complete info box with title and key-value pairs
func printInfoBox(w io.Writer, title string, items map[string]string, order []string) {
	printBoxHeader(w, title)

	for _, key := range order {
		if val, ok := items[key]; ok {
			printBoxLine(w, key, val)
		}
	}

	printBoxFooter(w)
}
