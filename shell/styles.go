package shell

import "github.com/charmbracelet/lipgloss"

// Styles decorates non-success results. Only single-line messages are
// styled; command output such as file content is always written verbatim.
type Styles struct {
	Error   lipgloss.Style
	Notice  lipgloss.Style
	enabled bool
}

// DefaultStyles colors failures red and notices orange
func DefaultStyles() Styles {
	return Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		enabled: true,
	}
}

// PlainStyles leaves every message untouched
func PlainStyles() Styles {
	return Styles{}
}

func (s Styles) render(res Result, informational bool) string {
	if !s.enabled || res.Err == nil {
		return res.Text
	}
	if informational {
		return s.Notice.Render(res.Text)
	}
	return s.Error.Render(res.Text)
}
