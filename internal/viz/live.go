package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/phaniraghava1234/propeller-model/internal/disk"
	"github.com/phaniraghava1234/propeller-model/internal/metrics"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps through an rpm sweep one operating point per tick and
// charts thrust and efficiency as they accumulate.
type Model struct {
	disk     *disk.Model
	coeffs   []float64
	rpms     []float64
	velocity float64
	rho      float64

	next    int
	last    metrics.Point
	thrust  []float64
	eta     []float64
	failed  int
	running bool
}

// NewModel prepares an interactive sweep over the rpm sequence at fixed
// loading coefficients.
func NewModel(m *disk.Model, coeffs, rpms []float64, velocity, rho float64) Model {
	return Model{
		disk:     m,
		coeffs:   coeffs,
		rpms:     rpms,
		velocity: velocity,
		rho:      rho,
		thrust:   make([]float64, 0, len(rpms)),
		eta:      make([]float64, 0, len(rpms)),
		running:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and advances the sweep.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step evaluates the next operating point.
func (m *Model) step() {
	if m.next >= len(m.rpms) {
		m.running = false
		return
	}

	one := metrics.SweepSequential(m.disk, m.coeffs, m.rpms[m.next:m.next+1], m.velocity, m.rho)
	pt := one.Point(0)
	m.next++
	m.last = pt

	if pt.Err != nil {
		m.failed++
		return
	}
	m.thrust = append(m.thrust, pt.Thrust)
	m.eta = append(m.eta, pt.Eta)
}

func (m *Model) reset() {
	m.next = 0
	m.last = metrics.Point{}
	m.thrust = m.thrust[:0]
	m.eta = m.eta[:0]
	m.failed = 0
	m.running = true
}

// View renders the charts and the latest operating point.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("RPM SWEEP") + "\n")

	status := "RUNNING"
	if m.next >= len(m.rpms) {
		status = "DONE"
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(fmt.Sprintf("%s  %d/%d points\n", status, m.next, len(m.rpms)))

	if len(m.thrust) > 1 {
		chart := asciigraph.Plot(m.thrust, asciigraph.Height(7), asciigraph.Width(50), asciigraph.Caption("Thrust [N]"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if len(m.eta) > 1 {
		chart := asciigraph.Plot(m.eta, asciigraph.Height(7), asciigraph.Width(50), asciigraph.Caption("Efficiency"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.last.RPM > 0 && m.last.Err == nil {
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("RPM") + valueStyle.Render(fmt.Sprintf("%.0f", m.last.RPM)) + "\n")
		s.WriteString(labelStyle.Render("Thrust") + valueStyle.Render(fmt.Sprintf("%.3f N", m.last.Thrust)) + "\n")
		s.WriteString(labelStyle.Render("Power") + valueStyle.Render(fmt.Sprintf("%.1f W", m.last.Power)) + "\n")
		s.WriteString(labelStyle.Render("Eta") + valueStyle.Render(fmt.Sprintf("%.4f", m.last.Eta)) + "\n")
	}
	if m.failed > 0 {
		s.WriteString(warnStyle.Render(fmt.Sprintf("\n%d points failed", m.failed)) + "\n")
	}

	s.WriteString(helpStyle.Render("\nSP:Pause R:Restart Q:Quit"))
	return s.String()
}
