package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/musclelab/internal/config"
	"github.com/san-kum/musclelab/internal/experiment"
)

const (
	graphWidth  = 72
	graphHeight = 8
)

// slider is one adjustable stimulus parameter with its range and step.
type slider struct {
	name string
	min  float64
	max  float64
	step float64
	val  float64
}

func (s *slider) adjust(dir float64) {
	s.val += dir * s.step
	if s.val < s.min {
		s.val = s.min
	}
	if s.val > s.max {
		s.val = s.max
	}
}

// Model is the interactive lab: three stimulus sliders, re-solving the
// whole run synchronously on every change and redrawing the trace panels.
type Model struct {
	sliders     []slider
	cursor      int
	integrators []string
	integIdx    int
	excitations []string
	excIdx      int
	reg         *experiment.Registry

	activation []float64
	drive      []float64
	force      []float64
	metrics    map[string]float64
	runErr     error
	showHelp   bool
}

func NewModel() Model {
	m := Model{
		sliders: []slider{
			{name: "pulse duration", min: 0, max: 0.9, step: 0.05, val: 0.2},
			{name: "pulse amplitude", min: 0, max: 1, step: 0.05, val: 1.0},
			{name: "total duration", min: 0.5, max: 2, step: 0.1, val: 1.0},
		},
		integrators: []string{"rk4", "rk45", "euler"},
		excitations: []string{"pulse", "train", "ramp", "constant"},
		reg:         experiment.NewRegistry(),
	}
	m.solve()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.sliders)-1 {
				m.cursor++
			}
		case "left", "h":
			m.sliders[m.cursor].adjust(-1)
			m.solve()
		case "right", "l":
			m.sliders[m.cursor].adjust(1)
			m.solve()
		case "i":
			m.integIdx = (m.integIdx + 1) % len(m.integrators)
			m.solve()
		case "e":
			m.excIdx = (m.excIdx + 1) % len(m.excitations)
			m.solve()
		case "r":
			m.sliders[0].val = 0.2
			m.sliders[1].val = 1.0
			m.sliders[2].val = 1.0
			m.integIdx, m.excIdx = 0, 0
			m.solve()
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

// solve recomputes the full run from a(0)=0. Everything happens inline in
// the event handler; the next keypress waits for this one to finish.
func (m *Model) solve() {
	cfg := config.DefaultConfig()
	cfg.Excitation = m.excitations[m.excIdx]
	cfg.Integrator = m.integrators[m.integIdx]
	cfg.Duration = m.sliders[2].val
	cfg.Stimulus.Amplitude = m.sliders[1].val
	cfg.Stimulus.Duration = m.sliders[0].val
	if cfg.Excitation == "train" {
		cfg.Stimulus.Duration = m.sliders[0].val / 4
		cfg.Stimulus.Period = m.sliders[0].val
	}
	if cfg.Excitation == "ramp" {
		cfg.Stimulus.Rise = m.sliders[0].val
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(m.reg); err != nil {
		m.runErr = err
		return
	}

	out, err := exp.Run(context.Background())
	if err != nil {
		m.runErr = err
		return
	}
	m.runErr = nil

	m.activation = downsample(out.Activation.Trace(0), graphWidth*2)
	m.drive = downsample(out.Activation.Drives, graphWidth*2)
	m.force = downsample(out.Forces.Force, graphWidth*2)
	m.metrics = out.Activation.Metrics
}

// downsample picks every k-th sample so a 10k-point trace fits a terminal
// graph without flattening the pulse.
func downsample(data []float64, maxPoints int) []float64 {
	if len(data) <= maxPoints {
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}
	stride := len(data) / maxPoints
	out := make([]float64, 0, maxPoints)
	for i := 0; i < len(data); i += stride {
		out = append(out, data[i])
	}
	return out
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("MUSCLELAB") + "\n")
	b.WriteString(subStyle.Render("hill-type excitation-activation dynamics") + "\n\n")

	for i, s := range m.sliders {
		bar := renderBar(s)
		line := fmt.Sprintf("%s %s %6.3f", labelStyle.Render(s.name), bar, s.val)
		if i == m.cursor {
			b.WriteString(activeStyle.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("integrator") + valueStyle.Render(m.integrators[m.integIdx]))
	b.WriteString("   " + labelStyle.Render("excitation") + valueStyle.Render(m.excitations[m.excIdx]) + "\n")

	if m.runErr != nil {
		b.WriteString("\n" + errStyle.Render("error: "+m.runErr.Error()) + "\n")
		return b.String()
	}

	if len(m.activation) > 1 {
		chart := asciigraph.Plot(m.activation,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("activation a(t)"),
		)
		b.WriteString(graphStyle.Render(chart) + "\n")
	}
	if len(m.drive) > 1 {
		chart := asciigraph.Plot(m.drive,
			asciigraph.Height(4),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("excitation u(t)"),
		)
		b.WriteString(graphStyle.Render(chart) + "\n")
	}
	if len(m.force) > 1 {
		chart := asciigraph.Plot(m.force,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("musculotendon force"),
		)
		b.WriteString(forceGraphStyle.Render(chart) + "\n")
	}

	if len(m.metrics) > 0 {
		b.WriteString("\n")
		for _, name := range []string{"peak_activation", "rise_time", "decay_time", "activation_impulse"} {
			if v, ok := m.metrics[name]; ok {
				b.WriteString(labelStyle.Render(name) + valueStyle.Render(fmt.Sprintf("%.5f", v)) + "\n")
			}
		}
	}

	if m.showHelp {
		b.WriteString(helpStyle.Render("\nj/k select  h/l adjust  i integrator  e excitation  r reset  q quit"))
	} else {
		b.WriteString(helpStyle.Render("\n? help  q quit"))
	}
	return b.String()
}

func renderBar(s slider) string {
	const width = 20
	ratio := 0.0
	if s.max > s.min {
		ratio = (s.val - s.min) / (s.max - s.min)
	}
	filled := int(ratio*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

func RunInteractive() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
