package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heinemichael/geometry2/geomsg"
	"github.com/heinemichael/geometry2/msg"
	"github.com/heinemichael/geometry2/static"
	"github.com/heinemichael/geometry2/tf"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectPair modelState = iota
	statePairDetail
)

type interactiveModel struct {
	err       error
	sceneFile string
	src       *static.Source
	buf       *tf.Buffer
	pairs     []msg.TransformStamped
	selected  int
	probe     textinput.Model
	result    string
	resultErr error
	state     modelState
}

func newInteractiveModel(sceneFile string) *interactiveModel {
	return &interactiveModel{
		sceneFile: sceneFile,
		state:     stateSelectPair,
	}
}

type loadedMsg struct {
	err   error
	src   *static.Source
	buf   *tf.Buffer
	pairs []msg.TransformStamped
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadScene
}

func (m *interactiveModel) loadScene() tea.Msg {
	src, err := static.LoadFile(m.sceneFile)
	if err != nil {
		return loadedMsg{err: err}
	}

	return loadedMsg{
		src:   src,
		buf:   tf.NewWithRegistry(src, newRegistry()),
		pairs: src.Transforms(),
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectPair && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectPair && m.selected < len(m.pairs)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectPair:
				if len(m.pairs) == 0 {
					return m, nil
				}
				m.prepareProbe()
				m.state = statePairDetail

			case statePairDetail:
				m.runProbe()
			}

		case "esc":
			if m.state == statePairDetail {
				m.state = stateSelectPair
				m.result = ""
				m.resultErr = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.src = msg.src
		m.buf = msg.buf
		m.pairs = msg.pairs
	}

	if m.state == statePairDetail {
		var cmd tea.Cmd
		m.probe, cmd = m.probe.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareProbe() {
	ti := textinput.New()
	ti.Placeholder = "x y z"
	ti.Prompt = "probe point: "
	ti.Width = 40
	ti.Focus()
	m.probe = ti
	m.result = ""
	m.resultErr = nil
}

// runProbe transforms a point typed as "x y z" in the pair's child frame
// into the pair's frame through the facade.
func (m *interactiveModel) runProbe() {
	fields := strings.Fields(m.probe.Value())
	if len(fields) == 0 {
		return
	}
	if len(fields) != 3 {
		m.resultErr = fmt.Errorf("need three coordinates, got %d", len(fields))
		return
	}

	var coords [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			m.resultErr = fmt.Errorf("coordinate %d: %v", i, err)
			return
		}
		coords[i] = v
	}

	pair := m.pairs[m.selected]
	point := tf.Stamp(msg.PointStamped{
		Point: msg.Point{X: coords[0], Y: coords[1], Z: coords[2]},
	}, pair.ChildFrameID, time.Time{})

	got, err := tf.TransformAs[msg.PointStamped](context.Background(), m.buf, point, pair.FrameID, 0)
	if err != nil {
		m.resultErr = err
		return
	}

	m.resultErr = nil
	m.result = fmt.Sprintf("(%.3f, %.3f, %.3f) in %q", got.Point.X, got.Point.Y, got.Point.Z, pair.FrameID)
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if len(m.pairs) == 0 {
		return "Loading scene..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("tfecho"))
	b.WriteString(" ")
	b.WriteString(m.sceneFile)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectPair:
		b.WriteString("Select a transform:\n\n")
		for i, pair := range m.pairs {
			line := formatPair(pair)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • q quit"))

	case statePairDetail:
		pair := m.pairs[m.selected]
		t := pair.Transform.Translation
		q := pair.Transform.Rotation
		roll, pitch, yaw := geomsg.RPY(q)

		b.WriteString(funcStyle.Render(formatPair(pair)))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "  %s (%.3f, %.3f, %.3f)\n", typeStyle.Render("translation:"), t.X, t.Y, t.Z)
		fmt.Fprintf(&b, "  %s    (%.3f, %.3f, %.3f, %.3f)\n", typeStyle.Render("rotation:"), q.X, q.Y, q.Z, q.W)
		fmt.Fprintf(&b, "  %s         (%.3f, %.3f, %.3f)\n", typeStyle.Render("rpy:"), roll, pitch, yaw)
		b.WriteString("\n")
		b.WriteString(m.probe.View())
		b.WriteString("\n")
		if m.resultErr != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.resultErr)))
			b.WriteString("\n")
		} else if m.result != "" {
			b.WriteString(resultStyle.Render(m.result))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter probe • esc back • q quit"))
	}

	return b.String()
}

func formatPair(pair msg.TransformStamped) string {
	return fmt.Sprintf("%s <- %s", pair.FrameID, pair.ChildFrameID)
}

func runInteractive(sceneFile string) error {
	p := tea.NewProgram(newInteractiveModel(sceneFile), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
