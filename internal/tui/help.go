package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ranwar/GyroCompassSimulator/internal/keybinds"
	"github.com/sahilm/fuzzy"
)

// helpEntry is one line of the help modal
type helpEntry struct {
	Section     string
	Keys        string
	Description string
}

// String is the text the fuzzy search matches against
func (e helpEntry) String() string {
	return fmt.Sprintf("%-18s %s", e.Keys, e.Description)
}

// helpSections pairs each help heading with its keybinding context
var helpSections = []struct {
	title   string
	context keybinds.Context
}{
	{"COMPASS", keybinds.ContextNormal},
	{"HEADING FIELD", keybinds.ContextInput},
	{"HELP", keybinds.ContextHelp},
	{"EVERYWHERE", keybinds.ContextGlobal},
}

// helpEntries lists every binding of the registry, one entry per action
func helpEntries(registry *keybinds.Registry) []helpEntry {
	var entries []helpEntry

	for _, section := range helpSections {
		var keys []string
		var current keybinds.Action
		flush := func() {
			if len(keys) == 0 {
				return
			}
			entries = append(entries, helpEntry{
				Section:     section.title,
				Keys:        strings.Join(keys, ", "),
				Description: keybinds.GetActionInfo(current).Description,
			})
			keys = nil
		}

		for _, b := range registry.ListBindings(section.context) {
			if b.Context != section.context || b.Action == keybinds.ActionNoOp {
				continue
			}
			if b.Action != current {
				flush()
				current = b.Action
			}
			key := b.Key
			if key == " " {
				key = "space"
			}
			keys = append(keys, key)
		}
		flush()
	}

	return entries
}

// filterHelpEntries returns the entries fuzzy-matching query, best first
func filterHelpEntries(entries []helpEntry, query string) []helpEntry {
	if query == "" {
		return entries
	}

	data := make([]string, len(entries))
	for i, e := range entries {
		data[i] = e.String()
	}

	var filtered []helpEntry
	for _, match := range fuzzy.Find(query, data) {
		filtered = append(filtered, entries[match.Index])
	}
	return filtered
}

// helpText formats entries under their section headings
func helpText(entries []helpEntry) string {
	var sb strings.Builder
	section := ""
	for _, e := range entries {
		if e.Section != section {
			if section != "" {
				sb.WriteString("\n")
			}
			section = e.Section
			sb.WriteString(styleLabel.Render(section))
			sb.WriteString("\n")
		}
		sb.WriteString("  ")
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// updateHelpView refreshes the help viewport content
func (m *Model) updateHelpView() {
	entries := filterHelpEntries(helpEntries(m.keybinds), m.helpSearchQuery)

	if len(entries) == 0 {
		m.helpView.SetContent(fmt.Sprintf("No matches found for: %s\n\nPress ESC to clear search", m.helpSearchQuery))
		return
	}

	if m.helpSearchQuery != "" {
		// Ranked results read better without section headings
		lines := make([]string, len(entries))
		for i, e := range entries {
			lines[i] = e.String() + "  " + styleSubtle.Render(strings.ToLower(e.Section))
		}
		m.helpView.SetContent(strings.Join(lines, "\n"))
		return
	}

	m.helpView.SetContent(helpText(entries))
}

// renderHelp renders the help screen
func (m *Model) renderHelp() string {
	// Build title
	title := styleTitle.Render("Keyboard Shortcuts")

	// Build footer with search info if active
	var footer string
	if m.helpSearchActive {
		footer = styleWarning.Render("Search: "+m.helpSearchQuery+"█") + " | ESC: cancel"
	} else if m.helpSearchQuery != "" {
		footer = styleSubtle.Render("Search: "+m.helpSearchQuery) + " | /: search | ESC: clear"
	} else {
		footer = "↑/↓ j/k: scroll | /: search | ESC/?: close"
	}

	// Footer stays outside the viewport so it is always visible
	fullContent := title + "\n\n" + m.helpView.View() + "\n\n" + styleSubtle.Render(footer)

	helpView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(max(m.width-ModalWidthMarginNarrow, 20)).
		Height(max(m.height-ModalHeightMarginMed, 5)).
		Padding(1, 2).
		Render(fullContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpView,
	)
}
