package ui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// HighlightJSON renders a JSON payload with syntax colors, for showing raw
// helper responses in the log viewer.
func HighlightJSON(payload string) string {
	return strings.TrimRight(highlightCode(payload, "json"), "\n")
}

// HighlightLogLine colors a structured log line by severity and highlights
// any trailing JSON payload.
func HighlightLogLine(line string) string {
	var styled string
	switch {
	case strings.Contains(line, "level=ERROR"):
		styled = StatusErrorStyle.Render(line)
	case strings.Contains(line, "level=WARN"):
		styled = lipglossWarn(line)
	case strings.Contains(line, "level=DEBUG"):
		styled = LabelStyle.Render(line)
	default:
		styled = line
	}

	// Structured lines sometimes carry a JSON payload at the end; highlight
	// it separately so braces and keys stand out.
	if idx := strings.Index(line, " {"); idx >= 0 && strings.HasSuffix(strings.TrimSpace(line), "}") {
		head := line[:idx+1]
		tail := line[idx+1:]
		return LabelStyle.Render(head) + HighlightJSON(tail)
	}
	return styled
}

func lipglossWarn(line string) string {
	return StatusLoadingStyle.Foreground(ColorWarning).Render(line)
}
