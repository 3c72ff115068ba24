// internal/tui/tui.go

// Package tui implements `promstats explore`, an interactive browser for
// series files: pick a series, read its summary, and evaluate ad-hoc
// quantiles against it.
package tui

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/promstats/internal/aggregate"
	"github.com/mwiater/promstats/internal/config"
	"github.com/mwiater/promstats/internal/report"
	"github.com/mwiater/promstats/internal/samples"
	"github.com/mwiater/promstats/internal/stats"
)

// viewState represents the current state of the explorer's view.
type viewState int

const (
	// viewLoading is shown while the series file is read.
	viewLoading viewState = iota
	// viewSeriesSelector lists the series in the file.
	viewSeriesSelector
	// viewDetail shows one series' summary and the quantile prompt.
	viewDetail
)

// queryEntry is one evaluated ad-hoc quantile.
type queryEntry struct {
	input  string
	result stats.Result
	err    error
}

// model is the Bubble Tea model for the explorer.
type model struct {
	config config.Config
	path   string
	state  viewState
	err    error

	series   []samples.Series
	selected int
	summary  aggregate.Summary
	queries  []queryEntry

	seriesList list.Model
	viewport   viewport.Model
	textArea   textarea.Model
	spinner    spinner.Model

	width, height int
	loadStarted   time.Time
}

// item is one series in the selector list.
type item struct {
	title string
	desc  string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

// seriesReadyMsg is sent once the series file has been decoded.
type seriesReadyMsg struct{ series []samples.Series }

// seriesLoadErr is sent when the series file cannot be read.
type seriesLoadErr error

// initialModel sets up the spinner, list, viewport and textarea components.
func initialModel(path string, cfg config.Config) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ta := textarea.New()
	ta.Placeholder = "0.95"
	ta.Prompt = "Quantile: "
	ta.ShowLineNumbers = false
	ta.CharLimit = 32
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetEnabled(false)

	seriesList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	seriesList.Title = fmt.Sprintf("Series in %s", path)

	return &model{
		config:      cfg,
		path:        path,
		state:       viewLoading,
		spinner:     s,
		textArea:    ta,
		seriesList:  seriesList,
		viewport:    viewport.New(100, 10),
		loadStarted: time.Now(),
	}
}

// loadSeriesCmd reads the series file off the UI goroutine.
func loadSeriesCmd(path string) tea.Cmd {
	return func() tea.Msg {
		series, err := samples.Load(path)
		if err != nil {
			return seriesLoadErr(err)
		}
		return seriesReadyMsg{series: series}
	}
}

// Init starts the spinner and the file load.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadSeriesCmd(m.path))
}

// Update handles key presses, window resizes and load results.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.state != viewDetail && m.seriesList.FilterState() != list.Filtering {
				return m, tea.Quit
			}
		case "tab", "esc":
			if m.state == viewDetail {
				m.state = viewSeriesSelector
				m.textArea.Blur()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.seriesList.SetSize(msg.Width-2, msg.Height-4)
		m.textArea.SetWidth(msg.Width - 3)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 6

	case seriesReadyMsg:
		m.series = msg.series
		items := make([]list.Item, len(msg.series))
		for i, s := range msg.series {
			items[i] = item{title: s.Name(), desc: fmt.Sprintf("%d samples", len(s.Samples))}
		}
		m.seriesList.SetItems(items)
		m.state = viewSeriesSelector
		log.Printf("loaded %d series from %s", len(msg.series), m.path)
		return m, nil

	case seriesLoadErr:
		m.err = msg
		return m, nil
	}

	switch m.state {
	case viewLoading:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case viewSeriesSelector:
		// enter while typing a filter only applies the filter
		filtering := m.seriesList.FilterState() == list.Filtering
		m.seriesList, cmd = m.seriesList.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" && !filtering {
			if _, ok := m.seriesList.SelectedItem().(item); ok {
				m.selectSeries(m.seriesList.Index())
				cmds = append(cmds, m.textArea.Focus())
			}
		}

	case viewDetail:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)

		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			m.evaluate(strings.TrimSpace(m.textArea.Value()))
			m.textArea.Reset()
			break
		}
		m.textArea, cmd = m.textArea.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// selectSeries switches to the detail view for series i.
func (m *model) selectSeries(i int) {
	m.selected = i
	m.summary = aggregate.Summarize(m.series[i], m.config.Quantiles)
	m.queries = nil
	m.state = viewDetail
}

// evaluate runs an ad-hoc quantile against the selected series.
func (m *model) evaluate(input string) {
	if input == "" {
		return
	}
	entry := queryEntry{input: input}
	q, err := samples.ParseValue(input)
	if err != nil {
		entry.err = err
	} else {
		entry.result = stats.Quantile(m.series[m.selected].Samples, q)
	}
	m.queries = append(m.queries, entry)
	m.viewport.GotoBottom()
}

// View renders the explorer for its current state.
func (m *model) View() string {
	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewLoading:
		timer := fmt.Sprintf("%.1f", time.Since(m.loadStarted).Seconds())
		return fmt.Sprintf("\n  %s Reading %s... %ss\n", m.spinner.View(), m.path, timer)
	case viewSeriesSelector:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.seriesList.View())
	case viewDetail:
		return m.detailView()
	default:
		return "Unknown state"
	}
}

// detailView renders the summary table, the quantile history and the prompt.
func (m *model) detailView() string {
	var builder strings.Builder

	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	help := lipgloss.NewStyle().Faint(true).Render(" (tab to go back, ctrl+c to quit)")
	builder.WriteString(headerStyle.Render(m.summary.Name) + help + "\n\n")

	var body strings.Builder
	_ = report.SummaryTable(&body, []aggregate.Summary{m.summary}, m.config.Precision)

	if len(m.queries) > 0 {
		body.WriteString("\n")
		queryStyle := lipgloss.NewStyle().Bold(true)
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		for _, e := range m.queries {
			if e.err != nil {
				body.WriteString(queryStyle.Render("q="+e.input) + " " + errStyle.Render(e.err.Error()) + "\n")
				continue
			}
			body.WriteString(fmt.Sprintf("%s %s (%s)\n", queryStyle.Render("q="+e.input), e.result, e.result.Kind))
		}
	}

	m.viewport.SetContent(body.String())
	builder.WriteString(m.viewport.View())
	builder.WriteString("\n" + m.textArea.View())
	return builder.String()
}

// Start runs the explorer on the series file at path and blocks until the
// user quits. With cfg.Debug set, log output goes to debug.log.
func Start(path string, cfg config.Config) error {
	if cfg.Debug {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
	}

	p := tea.NewProgram(initialModel(path, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running explorer: %w", err)
	}
	return nil
}
