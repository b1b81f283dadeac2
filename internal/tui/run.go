// Package tui shows a simulation in progress with a bubbletea program.
package tui

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/motorsim/internal/motor"
	"github.com/san-kum/motorsim/internal/viz"
)

const barWidth = 50

type progressMsg float64

type doneMsg struct {
	res *motor.Result
}

// Model runs one simulation. The engine goroutine reports progress over a
// channel and polls the cancel flag at every step.
type Model struct {
	motor    *motor.Motor
	name     string
	units    viz.DisplayUnits
	bar      progress.Model
	percent  float64
	steps    int
	progress chan float64
	cancel   *atomic.Bool
	result   *motor.Result
}

func New(m *motor.Motor, name string, u viz.DisplayUnits) Model {
	return Model{
		motor:    m,
		name:     name,
		units:    u,
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth)),
		progress: make(chan float64, 1),
		cancel:   &atomic.Bool{},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.simulate, m.waitForProgress)
}

func (m Model) simulate() tea.Msg {
	res := m.motor.Simulate(func(p float64) bool {
		select {
		case m.progress <- p:
		default:
		}
		return m.cancel.Load()
	})
	close(m.progress)
	return doneMsg{res: res}
}

func (m Model) waitForProgress() tea.Msg {
	p, ok := <-m.progress
	if !ok {
		return nil
	}
	return progressMsg(p)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.result != nil {
			return m, tea.Quit
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.cancel.Store(true)
		}
		return m, nil

	case progressMsg:
		m.percent = float64(msg)
		m.steps++
		return m, m.waitForProgress

	case doneMsg:
		m.result = msg.res
		if m.cancel.Load() {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(viz.Title.Render("motorsim ▸ "+m.name) + "\n\n")

	if m.result == nil {
		sb.WriteString(m.bar.ViewAs(m.percent) + "\n")
		status := "burning"
		if m.cancel.Load() {
			status = "cancelling"
		}
		sb.WriteString(viz.Subtle.Render(fmt.Sprintf("%s · %d updates", status, m.steps)) + "\n\n")
		sb.WriteString(viz.KeyHint.Render("q to cancel") + "\n")
		return sb.String()
	}

	res := m.result
	sb.WriteString(viz.RenderStatus(res) + "\n")
	if res.Len() > 0 {
		sb.WriteString(viz.MetricLabel.Render("thrust ") + viz.Sparkline(res.Force, barWidth) + "\n\n")
		sb.WriteString(viz.RenderStats(res.Stats(), m.units) + "\n")
	}
	sb.WriteString(viz.RenderAlerts(res.Alerts) + "\n\n")
	sb.WriteString(viz.KeyHint.Render("press any key to exit") + "\n")
	return sb.String()
}

// Result is the finished run, or nil while it is still going.
func (m Model) Result() *motor.Result { return m.result }

// Run blocks until the run ends and the user leaves the view.
func Run(m *motor.Motor, name string, u viz.DisplayUnits) (*motor.Result, error) {
	final, err := tea.NewProgram(New(m, name, u)).Run()
	if err != nil {
		return nil, err
	}
	return final.(Model).Result(), nil
}
