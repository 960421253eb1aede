package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-defectsim/pkg/config"
	"github.com/dd0wney/cluso-defectsim/pkg/model"
	"github.com/dd0wney/cluso-defectsim/pkg/sampling"
	"github.com/dd0wney/cluso-defectsim/pkg/simulation"
	"github.com/dd0wney/cluso-defectsim/pkg/stats"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF00FF")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 2)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	summaryBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type view int

const (
	recordsView view = iota
	summaryView
)

type keyMap struct {
	Tab  key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch view"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type appModel struct {
	view     view
	table    table.Model
	summary  stats.Summary
	severity *model.CategoricalDistribution
	priority *model.CategoricalDistribution
	count    int
}

func newAppModel(records []simulation.DefectRecord, severity, priority *model.CategoricalDistribution) appModel {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Severity", Width: 10},
		{Title: "Priority", Width: 10},
		{Title: "Hops", Width: 6},
		{Title: "Treatment", Width: 10},
		{Title: "Path", Width: 60},
	}

	rows := make([]table.Row, len(records))
	for i, r := range records {
		path := make([]string, len(r.Path))
		for j, s := range r.Path {
			path[j] = string(s)
		}
		rows[i] = table.Row{
			r.ID.String()[:8],
			severity.DisplayName(r.Severity),
			priority.DisplayName(r.Priority),
			fmt.Sprintf("%d", r.Hops),
			fmt.Sprintf("%.3f", r.TotalDuration),
			strings.Join(path, " → "),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	return appModel{
		view:     recordsView,
		table:    t,
		summary:  stats.Summarize(records),
		severity: severity,
		priority: priority,
		count:    len(records),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Tab):
			if m.view == recordsView {
				m.view = summaryView
			} else {
				m.view = recordsView
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🐛 Cluso DefectSim"))
	b.WriteString("\n")

	tabs := []string{"Records", "Summary"}
	var rendered []string
	for i, tab := range tabs {
		if view(i) == m.view {
			rendered = append(rendered, activeTabStyle.Render(tab))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(tab))
		}
	}
	b.WriteString(contentStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...)))
	b.WriteString("\n")

	switch m.view {
	case recordsView:
		b.WriteString(contentStyle.Render(m.table.View()))
	case summaryView:
		text := stats.FormatSummary(m.summary, m.severity, m.priority)
		b.WriteString(contentStyle.Render(summaryBoxStyle.Render(text)))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: switch view • ↑/↓: scroll • q: quit"))
	b.WriteString("\n")

	return b.String()
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML model file (empty = built-in reference model)")
		count      = flag.Int("count", 200, "Number of defects to generate")
		seed       = flag.Int64("seed", 1, "Random seed")
	)
	flag.Parse()

	var (
		m        *model.TransitionModel
		severity *model.CategoricalDistribution
		priority *model.CategoricalDistribution
	)

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if m, err = cfg.BuildModel(); err != nil {
			log.Fatalf("Failed to build model: %v", err)
		}
		if severity, err = cfg.BuildSeverity(); err != nil {
			log.Fatalf("Failed to build severity distribution: %v", err)
		}
		if priority, err = cfg.BuildPriority(); err != nil {
			log.Fatalf("Failed to build priority distribution: %v", err)
		}
	} else {
		m = model.ReferenceModel()
		severity = model.ReferenceSeverity()
		priority = model.ReferencePriority()
	}

	if report := m.Validate(); !report.Valid {
		log.Fatalf("Model is invalid: %d states fail the probability sum check", len(report.Failures))
	}

	gen := simulation.NewGenerator(m, severity, priority, sampling.NewSource(*seed), simulation.GeneratorOptions{Seed: *seed})
	records, err := gen.Generate(*count)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	if _, err := tea.NewProgram(newAppModel(records, severity, priority), tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("TUI failed: %v", err)
	}
}
