package output

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
)

// Highlight renders text as a fenced code block in the given language. When
// color output is off, or rendering fails, text is returned unchanged.
func Highlight(text, language string) string {
	if color.NoColor || language == "" {
		return text
	}

	var sb strings.Builder
	sb.WriteString("```")
	sb.WriteString(language)
	sb.WriteString("\n")
	sb.WriteString(text)
	sb.WriteString("\n```")

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return text
	}

	out, err := renderer.Render(sb.String())
	if err != nil {
		return text
	}

	return strings.Trim(out, "\n")
}
