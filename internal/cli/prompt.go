package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ranwar/GyroCompassSimulator/internal/heading"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1).MarginLeft(2)
)

// customChoice marks the "type a heading" escape from the selector
const customChoice = -1

type item struct {
	cardinal heading.Cardinal
}

func (i item) FilterValue() string {
	return i.cardinal.Letter() + " " + i.cardinal.String()
}

func (i item) Title() string {
	return fmt.Sprintf("%s  %s", i.cardinal.PresetLabel(), i.cardinal)
}

func (i item) Description() string { return "" }

type selectorModel struct {
	list     list.Model
	choice   int
	chosen   bool
	quitting bool
}

func (m selectorModel) Init() tea.Cmd {
	return nil
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(item); ok {
				m.choice = int(i.cardinal)
				m.chosen = true
			}
			m.quitting = true
			return m, tea.Quit

		case "c", "C":
			// Custom input mode
			m.choice = customChoice
			m.chosen = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectorModel) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("↑/↓: navigate • enter: select • c: custom heading • q/ctrl+c: cancel")
	return fmt.Sprintf("%s\n\n%s", m.list.View(), help)
}

// PromptForHeading shows an interactive list of the quick set headings.
// Pressing c asks for any heading instead.
func PromptForHeading() (heading.Heading, error) {
	items := make([]list.Item, 0, len(heading.Cardinals))
	for _, c := range heading.Cardinals {
		items = append(items, item{cardinal: c})
	}

	const defaultWidth = 60
	const listHeight = 10

	l := list.New(items, itemDelegate{}, defaultWidth, listHeight)
	l.Title = "Select a heading"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle

	p := tea.NewProgram(selectorModel{list: l})
	finalModel, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(selectorModel)
	if !result.chosen {
		return 0, fmt.Errorf("selection cancelled")
	}
	if result.choice == customChoice {
		return promptForCustomHeading(os.Stdin, os.Stderr)
	}

	return heading.Cardinal(result.choice).Heading(), nil
}

// itemDelegate is a custom list item delegate
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.Title())

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// promptForCustomHeading reads one heading from r
func promptForCustomHeading(r io.Reader, w io.Writer) (heading.Heading, error) {
	fmt.Fprint(w, "\nEnter heading in degrees: ")
	value, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && value == "" {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}
	raw, err := heading.Parse(value)
	if err != nil {
		return 0, err
	}
	return heading.Normalize(raw), nil
}

// IsInteractive checks if stdin is a terminal (not piped)
func IsInteractive() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
