// Package viz renders walk runs in the terminal: a live bubbletea
// view and asciigraph plot helpers for the CLI.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/quadsim/internal/engine"
	"github.com/san-kum/quadsim/internal/robot"
)

const (
	canvasWidth  = 60
	canvasHeight = 20
	sparkWindow  = 120
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

type TickMsg time.Time

// Model drives the live walk view: one engine step per frame tick.
type Model struct {
	eng     *engine.Engine
	cfg     engine.Config
	dt      float64
	running bool
	arrived bool
	failed  error

	last       engine.StepResult
	energyHist []float64
}

func NewModel(eng *engine.Engine, cfg engine.Config, dt float64) Model {
	return Model{
		eng:        eng,
		cfg:        cfg,
		dt:         dt,
		running:    true,
		energyHist: make([]float64, 0, sparkWindow),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			eng, err := engine.New(m.cfg)
			if err == nil {
				m.eng = eng
				m.arrived = false
				m.failed = nil
				m.last = engine.StepResult{}
				m.energyHist = m.energyHist[:0]
				m.running = true
			}
		}
	case TickMsg:
		if m.running && m.failed == nil {
			r, err := m.eng.SimulateStep(m.dt)
			if err != nil {
				m.failed = err
				m.running = false
			} else {
				m.last = r
				m.arrived = r.Arrived
				m.energyHist = append(m.energyHist, m.eng.EnergyTotal())
				if len(m.energyHist) > sparkWindow {
					m.energyHist = m.energyHist[1:]
				}
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	canvas := canvasStyle.Render(renderTrail(m.eng.HistoryWindow(), m.eng.Goal(), canvasWidth, canvasHeight))

	var s strings.Builder
	s.WriteString(headerStyle.Render("QUADSIM WALK") + "\n")

	status := "WALKING"
	if m.failed != nil {
		status = errStyle.Render("FAILED: " + m.failed.Error())
	} else if m.arrived {
		status = "ARRIVED"
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.energyHist) > 1 {
		chart := asciigraph.Plot(m.energyHist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	pose := m.eng.Pose()
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d", m.eng.StepCount())) + "\n")
	s.WriteString(labelStyle.Render("Pose") + valueStyle.Render(fmt.Sprintf("(%.2f, %.2f, %.2f)", pose.X, pose.Y, pose.Z)) + "\n")
	s.WriteString(labelStyle.Render("Goal") + valueStyle.Render(fmt.Sprintf("(%.2f, %.2f, %.2f)", m.eng.Goal().X, m.eng.Goal().Y, m.eng.Goal().Z)) + "\n")
	s.WriteString(labelStyle.Render("Distance") + valueStyle.Render(fmt.Sprintf("%.3f", m.eng.Goal().Sub(pose).Norm())) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.2f", m.eng.EnergyTotal())) + "\n")
	s.WriteString(labelStyle.Render("Scans") + valueStyle.Render(fmt.Sprintf("%d", m.eng.Scans())) + "\n")
	s.WriteString(labelStyle.Render("Obstacles") + valueStyle.Render(fmt.Sprintf("%d", m.last.Obstacles)) + "\n")

	s.WriteString(helpStyle.Render("\n──────────────────\nSP:Pause R:Reset Q:Quit"))

	stats := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, stats)
}

// renderTrail draws the bounded movement history top-down (X right,
// Y up), the current pose as @ and the goal as X.
func renderTrail(history []robot.Vec3, goal robot.Vec3, width, height int) string {
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	minX, maxX := goal.X, goal.X
	minY, maxY := goal.Y, goal.Y
	for _, p := range history {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	place := func(p robot.Vec3, c rune) {
		px := int(float64(width-1) * (p.X - minX) / rangeX)
		py := int(float64(height-1) * (p.Y - minY) / rangeY)
		py = height - 1 - py
		if px >= 0 && px < width && py >= 0 && py < height {
			grid[py][px] = c
		}
	}

	for _, p := range history {
		place(p, '.')
	}
	place(goal, 'X')
	if len(history) > 0 {
		place(history[len(history)-1], '@')
	}

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", width) + "┐\n")
	for _, row := range grid {
		b.WriteString("│" + string(row) + "│\n")
	}
	b.WriteString("└" + strings.Repeat("─", width) + "┘")
	return b.String()
}
