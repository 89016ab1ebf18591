// internal/tui/app.go
//
// Terminal watch simulator: the development stand-in for the device's widget
// collaborator. It resolves the match screen schema against the simulated
// watch metrics, scales the resulting rects to terminal cells, and maps keys
// to scoring taps so a full match can be played without hardware.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trystan2k/padelbuddy-sub002/device"
	"github.com/trystan2k/padelbuddy-sub002/layout"
	"github.com/trystan2k/padelbuddy-sub002/render"
	"github.com/trystan2k/padelbuddy-sub002/scoring"
	"github.com/trystan2k/padelbuddy-sub002/session"
)

// Styles groups the lipgloss styling for the simulator panels.
type Styles struct {
	Header lipgloss.Style
	PanelA lipgloss.Style
	PanelB lipgloss.Style
	Footer lipgloss.Style
	Status lipgloss.Style
}

func newStyles() *Styles {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Align(lipgloss.Center)
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center),
		PanelA: panel,
		PanelB: panel,
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Align(lipgloss.Center),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("160")),
	}
}

// Simulator is the bubbletea model driving the watch preview.
type Simulator struct {
	session *session.Session
	metrics device.Metrics

	width  int
	height int
	status string
	canvas string

	styles *Styles
}

var _ render.Painter = (*Simulator)(nil)

// New creates a simulator over an existing scoring session.
func New(sess *session.Session, metrics device.Metrics) *Simulator {
	return &Simulator{
		session: sess,
		metrics: metrics,
		styles:  newStyles(),
	}
}

func (s *Simulator) Init() tea.Cmd {
	return nil
}

func (s *Simulator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Simulator) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s.status = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return s, tea.Quit
	case "a", "left":
		if err := s.session.Tap(scoring.TeamA); err != nil {
			s.status = err.Error()
		}
	case "b", "right":
		if err := s.session.Tap(scoring.TeamB); err != nil {
			s.status = err.Error()
		}
	case "u", "backspace":
		if err := s.session.Undo(); err != nil {
			s.status = err.Error()
		}
	case "n":
		s.session.NewMatch("Team A", "Team B", 0)
	}
	return s, nil
}

func (s *Simulator) View() string {
	state, ok := s.session.State()
	if !ok {
		return "no match in progress - press n to start one, q to quit\n"
	}

	frame := layout.Resolve(layout.MatchScreen(), s.metrics)
	vm := render.BuildViewModel(state)
	if err := s.Paint(frame, vm); err != nil {
		return fmt.Sprintf("paint failed: %v\n", err)
	}
	return s.canvas
}

// Paint renders one frame: the resolved section rects are scaled from watch
// pixels to terminal cells and filled with the view-model's strings.
func (s *Simulator) Paint(frame layout.Result, vm render.ViewModel) error {
	termW, termH := s.width, s.height
	if termW <= 0 {
		termW = 60
	}
	if termH <= 0 {
		termH = 20
	}

	header := frame.Sections["header"]
	body := frame.Sections["body"]
	footer := frame.Sections["footer"]

	headerText := fmt.Sprintf("Set %d  %s", vm.SetNumber, vm.SetSummary)
	if vm.InTieBreak {
		headerText += "  TIE-BREAK"
	}
	if vm.Finished {
		headerText = fmt.Sprintf("WINNER: %s  %s", vm.Winner, vm.SetSummary)
	}

	headerView := s.styles.Header.
		Width(scale(header.W, s.metrics.Width, termW)).
		Render(headerText)

	bodyH := scale(body.H, s.metrics.Height, termH)
	if bodyH < 5 {
		bodyH = 5
	}
	panelW := scale(body.W/2, s.metrics.Width, termW) - 1
	if panelW < 10 {
		panelW = 10
	}

	panelA := s.styles.PanelA.Width(panelW).Height(bodyH - 2).
		Render(teamPanel(vm.TeamA))
	panelB := s.styles.PanelB.Width(panelW).Height(bodyH - 2).
		Render(teamPanel(vm.TeamB))
	bodyView := lipgloss.JoinHorizontal(lipgloss.Top, panelA, " ", panelB)

	footerText := "a/b: point  u: undo  n: new match  q: quit"
	if s.status != "" {
		footerText = s.styles.Status.Render(s.status)
	}
	footerView := s.styles.Footer.
		Width(scale(footer.W, s.metrics.Width, termW)).
		Render(footerText)

	s.canvas = lipgloss.JoinVertical(lipgloss.Left, headerView, bodyView, footerView) + "\n"
	return nil
}

func teamPanel(team render.TeamView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", team.Label)
	fmt.Fprintf(&b, "%s\n\n", team.Points)
	fmt.Fprintf(&b, "games %d  sets %d", team.Games, team.Sets)
	return b.String()
}

// scale maps a watch-pixel dimension onto terminal cells.
func scale(v, watchDim, termDim int) int {
	if watchDim <= 0 {
		return v
	}
	scaled := v * termDim / watchDim
	if scaled < 1 && v > 0 {
		return 1
	}
	return scaled
}
