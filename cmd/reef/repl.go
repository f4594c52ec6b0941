package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"reef/internal/diag"
	"reef/internal/diagfmt"
	"reef/internal/parser"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive reef parsing session",
	Long: `Repl parses one submission per line against a single long-lived working
set, so variables declared on earlier lines stay in scope. Nothing is
executed; diagnostics and the parsed statements are shown instead.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func runRepl(cmd *cobra.Command, _ []string) error {
	model := newReplModel(maxDiagnostics(cmd))
	_, err := tea.NewProgram(model).Run()
	return err
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

type replModel struct {
	input   textinput.Model
	set     *parser.ParserWorkingSet
	maxDiag int
	history []string
	lineNo  int
	done    bool
}

func newReplModel(maxDiag int) *replModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("reef> ")
	ti.Focus()

	return &replModel{
		input:   ti,
		set:     parser.NewWorkingSet(),
		maxDiag: maxDiag,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit(m.input.Value())
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses one line into the session's working set and records the
// rendered outcome.
func (m *replModel) submit(line string) {
	m.history = append(m.history, m.input.Prompt+line)
	if strings.TrimSpace(line) == "" {
		return
	}
	m.lineNo++

	bag := diag.NewBag(m.maxDiag)
	name := fmt.Sprintf("repl:%d", m.lineNo)
	block, _ := m.set.ParseFile(name, []byte(line), parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	if bag.Len() > 0 {
		bag.Sort()
		var sb strings.Builder
		diagfmt.Pretty(&sb, bag, m.set.Files(), diagfmt.PrettyOpts{})
		m.history = append(m.history, errStyle.Render(strings.TrimRight(sb.String(), "\n")))
		return
	}

	var sb strings.Builder
	_ = diagfmt.FormatBlockPretty(&sb, block, m.set.Files())
	m.history = append(m.history, okStyle.Render(strings.TrimRight(sb.String(), "\n")))
}

func (m *replModel) View() string {
	var sb strings.Builder
	sb.WriteString(faintStyle.Render("reef repl (parse only, ctrl+d to quit)"))
	sb.WriteString("\n")
	for _, h := range m.history {
		sb.WriteString(h)
		sb.WriteString("\n")
	}
	if m.done {
		return sb.String()
	}
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(faintStyle.Render(fmt.Sprintf("%d submissions, %d files registered", m.lineNo, m.set.Files().Len())))
	sb.WriteString("\n")
	return sb.String()
}
