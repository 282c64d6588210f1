package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gobwas/glob"
	"github.com/goccy/go-json"
	"github.com/juju/errors"

	"github.com/glopal/services/internal/service"
)

const notAvailable = "N/A"

// Colors
var (
	colorID      = lipgloss.Color("11")
	colorName    = lipgloss.Color("14")
	colorStart   = lipgloss.Color("10")
	colorStop    = lipgloss.Color("9")
	colorRestart = lipgloss.Color("13")
	colorMuted   = lipgloss.Color("8")
)

// Styles
var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().Foreground(colorStart)
	ErrorStyle   = lipgloss.NewStyle().Foreground(colorStop)
	NoticeStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

// Filter keeps the services whose name matches pattern. An empty pattern
// keeps everything.
func Filter(services []service.Service, pattern string) ([]service.Service, error) {
	if pattern == "" {
		return services, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.NewNotValid(err, "invalid --match pattern "+pattern)
	}
	var out []service.Service
	for _, s := range services {
		if g.Match(s.Name) {
			out = append(out, s)
		}
	}
	return out, nil
}

// Box renders one service as a bordered block.
func Box(s service.Service) string {
	line := func(c lipgloss.Color, label, value string) string {
		return lipgloss.NewStyle().Foreground(c).Render(label + ": " + value)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		line(colorID, "ID", fmt.Sprint(s.ID)),
		line(colorName, "Name", s.Name),
		line(colorStart, "Start Command", service.Deref(s.StartCommand, notAvailable)),
		line(colorStop, "Stop Command", service.Deref(s.StopCommand, notAvailable)),
		line(colorRestart, "Restart Command", service.Deref(s.RestartCommand, notAvailable)),
	)
	return BoxStyle.Render(body)
}

// Table writes every service as a box.
func Table(w io.Writer, services []service.Service) error {
	boxes := make([]string, len(services))
	for i, s := range services {
		boxes[i] = Box(s)
	}
	_, err := fmt.Fprintln(w, strings.Join(boxes, "\n"))
	return err
}

// JSON writes services as indented JSON, in the registry's own shape.
func JSON(w io.Writer, services []service.Service) error {
	if services == nil {
		services = []service.Service{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(services)
}
