package dialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wudi/printkit/document"
	"github.com/wudi/printkit/layout"
	"github.com/wudi/printkit/paper"
	"github.com/wudi/printkit/printjob"
)

type field int

const (
	fieldPrinter field = iota
	fieldDPI
	fieldColor
	fieldPaper
	fieldOrientation
	fieldCopies
	fieldRange
	fieldPrint
)

var fieldLabels = map[field]string{
	fieldPrinter:     "Printer",
	fieldDPI:         "Quality (DPI)",
	fieldColor:       "Color Mode",
	fieldPaper:       "Paper Size",
	fieldOrientation: "Orientation",
	fieldCopies:      "Copies",
	fieldRange:       "Page Range",
	fieldPrint:       "Print Document",
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1).Reverse(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle    = lipgloss.NewStyle().Width(16)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	okStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// PrintFunc submits the session's current job. The terminal dialog calls it
// from a command so the event loop keeps running while CUPS is contacted.
type PrintFunc func(ctx context.Context, s *Session) (printjob.Result, error)

type printDoneMsg struct {
	result printjob.Result
	err    error
}

// Model is the bubbletea model for the terminal print dialog.
type Model struct {
	session *Session
	print   PrintFunc

	fields      []field
	focus       int
	printers    []string
	printerIdx  int
	resolutions []int
	dpiIdx      int
	colorIdx    int
	paperIdx    int
	orientIdx   int
	rangeAll    bool
	rangeInput  textinput.Model
	status      string
	failed      bool
	printing    bool
}

// NewModel builds the dialog model. printers and resolutions come from the
// print system probe; print performs the actual submission.
func NewModel(session *Session, printers []string, resolutions []int, print PrintFunc) Model {
	input := textinput.New()
	input.Placeholder = "e.g. 3 or 3-5"
	input.CharLimit = 16
	input.Width = 12

	fields := []field{fieldPrinter, fieldDPI, fieldColor, fieldPaper}
	if session.Capabilities().Orientation {
		fields = append(fields, fieldOrientation)
	}
	fields = append(fields, fieldCopies, fieldRange, fieldPrint)

	m := Model{
		session:     session,
		print:       print,
		fields:      fields,
		printers:    printers,
		resolutions: resolutions,
		rangeAll:    true,
		rangeInput:  input,
	}
	for i, dpi := range resolutions {
		if dpi == session.DPI() {
			m.dpiIdx = i
		}
	}
	m.apply()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// apply pushes the widget state into the session, which recomputes the
// selection.
func (m *Model) apply() {
	if len(m.printers) > 0 {
		m.session.SetPrinter(m.printers[m.printerIdx])
	}
	if len(m.resolutions) > 0 {
		m.session.SetDPI(m.resolutions[m.dpiIdx])
	}
	if m.colorIdx == 1 {
		m.session.SetColorMode(document.Grayscale)
	} else {
		m.session.SetColorMode(document.Color)
	}
	m.session.SetPaper(paper.Presets[m.paperIdx])
	if m.orientIdx == 1 {
		m.session.SetOrientation(layout.Landscape)
	} else {
		m.session.SetOrientation(layout.Portrait)
	}
	if m.rangeAll {
		m.session.SelectAllPages()
	} else {
		m.session.SetRangeText(m.rangeInput.Value())
	}
}

func (m *Model) cycle(delta int) {
	switch m.fields[m.focus] {
	case fieldPrinter:
		m.printerIdx = wrap(m.printerIdx+delta, len(m.printers))
	case fieldDPI:
		m.dpiIdx = wrap(m.dpiIdx+delta, len(m.resolutions))
	case fieldColor:
		m.colorIdx = wrap(m.colorIdx+delta, 2)
	case fieldPaper:
		m.paperIdx = wrap(m.paperIdx+delta, len(paper.Presets))
	case fieldOrientation:
		m.orientIdx = wrap(m.orientIdx+delta, 2)
	case fieldCopies:
		if n := m.session.Copies() + delta; n >= 1 {
			m.session.SetCopies(n)
		}
	case fieldRange:
		m.rangeAll = !m.rangeAll
		if m.rangeAll {
			m.rangeInput.Blur()
		} else {
			m.rangeInput.Focus()
		}
	}
	m.apply()
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case printDoneMsg:
		m.printing = false
		if msg.err != nil {
			m.failed = true
			m.status = msg.err.Error()
		} else {
			m.failed = false
			m.status = fmt.Sprintf("sent %d page(s) to printer", len(msg.result.Printed))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.fields[m.focus] == fieldRange && !m.rangeAll && msg.String() == "q" {
				break // let "q" reach the range input
			}
			return m, tea.Quit
		case "up", "shift+tab":
			m.focus = wrap(m.focus-1, len(m.fields))
			return m, nil
		case "down", "tab":
			m.focus = wrap(m.focus+1, len(m.fields))
			return m, nil
		case "left":
			m.cycle(-1)
			return m, nil
		case "right":
			m.cycle(1)
			return m, nil
		case "enter":
			if m.fields[m.focus] == fieldPrint && !m.printing {
				m.printing = true
				m.status = "sending document to printer..."
				m.failed = false
				return m, func() tea.Msg {
					result, err := m.print(context.Background(), m.session)
					return printDoneMsg{result: result, err: err}
				}
			}
			return m, nil
		case "pgup":
			m.session.Preview.Prev()
			return m, nil
		case "pgdown":
			m.session.Preview.Next()
			return m, nil
		}

		if m.fields[m.focus] == fieldRange && !m.rangeAll {
			var cmd tea.Cmd
			m.rangeInput, cmd = m.rangeInput.Update(msg)
			m.apply()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) value(f field) string {
	switch f {
	case fieldPrinter:
		if len(m.printers) == 0 {
			return "(none found)"
		}
		return m.printers[m.printerIdx]
	case fieldDPI:
		if len(m.resolutions) == 0 {
			return "-"
		}
		return fmt.Sprintf("%d", m.resolutions[m.dpiIdx])
	case fieldColor:
		return m.session.ColorMode().String()
	case fieldPaper:
		return m.session.Paper().Name
	case fieldOrientation:
		return m.session.Orientation().String()
	case fieldCopies:
		return fmt.Sprintf("%d", m.session.Copies())
	case fieldRange:
		if m.rangeAll {
			return fmt.Sprintf("All Pages (%d)", m.session.PageCount())
		}
		return m.rangeInput.View()
	}
	return ""
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Print Document"))
	b.WriteString("\n\n")
	for i, f := range m.fields {
		cursor := "  "
		line := fmt.Sprintf("%s %s", labelStyle.Render(fieldLabels[f]), m.value(f))
		if f == fieldPrint {
			line = "[ " + fieldLabels[f] + " ]"
		}
		if i == m.focus {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + dimStyle.Render(m.session.Preview.PageLabel()) + "\n")
	if m.status != "" {
		style := okStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status) + "\n")
	}
	b.WriteString(dimStyle.Render("↑/↓ select · ←/→ change · pgup/pgdn preview · enter print · q quit"))
	return b.String()
}
