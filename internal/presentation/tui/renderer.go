package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/flux/internal/app"
	"github.com/charmbracelet/glamour"
)

// Renderer turns markdown into terminal output.
type Renderer func(string) (string, error)

// NewRenderer returns a Renderer backed by glamour.
// It detects light/dark backgrounds automatically.
func NewRenderer() Renderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return PlainRenderer
	}
	return r.Render
}

// PlainRenderer returns markdown unchanged. Used for non-terminal output.
func PlainRenderer(markdown string) (string, error) {
	return markdown, nil
}

// StateMarkdown describes the demo state the way the user view shows it.
func StateMarkdown(s app.State, loading bool) string {
	var sb strings.Builder
	sb.WriteString("## User\n\n")
	if loading {
		sb.WriteString("_加载中..._\n\n")
	} else {
		sb.WriteString(fmt.Sprintf("- **Id:** %d\n", s.UserInfo.ID))
		sb.WriteString(fmt.Sprintf("- **Name:** %s\n\n", s.UserInfo.Name))
	}
	sb.WriteString(fmt.Sprintf("## Counter\n\n- **Count:** %d\n", s.Count))
	return sb.String()
}
