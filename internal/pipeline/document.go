package pipeline

import "strings"

// DefaultTitle is the document title used when none is configured.
const DefaultTitle = "Feedback from European Dojo"

// DefaultStylesheet is the inline stylesheet used when none is configured.
// Each line carries the two-space indent of the <style> element.
const DefaultStylesheet = `  body {font-family: helvetica, arial, sans-serif; }
  dl {
    margin: 0.5em 0;
  }
  dt { color: #666; }
  dd { margin-bottom: 0.5em; }
`

const (
	shellTitleOpen = "\n<!DOCTYPE html>\n<html>\n<head>\n  <title>"
	shellMeta      = "</title>\n  <meta http-equiv=\"Content-Type\" content=\"text/html; charset=utf-8\" />\n  <style type=\"text/css\">\n"
	shellBodyOpen  = "  </style>\n</head>\n<body>\n"
	shellClose     = "</body>\n</html>"
)

// Shell is the fixed HTML5 document around the report body. Only the
// title and the stylesheet can vary; the structure cannot.
type Shell struct {
	Title      string // plain text, escaped on output
	Stylesheet string // CSS placed inside <style>
}

// DefaultShell returns the shell with the default title and stylesheet.
func DefaultShell() Shell {
	return Shell{Title: DefaultTitle, Stylesheet: DefaultStylesheet}
}

// Assemble wraps body in the document shell. Empty fields fall back to
// the defaults, so the zero Shell behaves like DefaultShell.
func (s Shell) Assemble(body string) string {
	title := s.Title
	if title == "" {
		title = DefaultTitle
	}
	css := s.Stylesheet
	if css == "" {
		css = DefaultStylesheet
	} else {
		css = sanitizeCSS(css)
		if !strings.HasSuffix(css, "\n") {
			css += "\n"
		}
	}

	var b strings.Builder
	b.Grow(len(shellTitleOpen) + len(title) + len(shellMeta) + len(css) + len(shellBodyOpen) + len(body) + len(shellClose))
	b.WriteString(shellTitleOpen)
	b.WriteString(EscapeHTML(title))
	b.WriteString(shellMeta)
	b.WriteString(css)
	b.WriteString(shellBodyOpen)
	b.WriteString(body)
	b.WriteString(shellClose)
	return b.String()
}

// AssembleDocument wraps body in the default shell.
func AssembleDocument(body string) string {
	return DefaultShell().Assemble(body)
}

// ComposeBody places an optional rendered intro above the report,
// separated from it by a horizontal rule.
func ComposeBody(introHTML, report string) string {
	if introHTML == "" {
		return report
	}
	if !strings.HasSuffix(introHTML, "\n") {
		introHTML += "\n"
	}
	return introHTML + rowSeparator + report
}

// sanitizeCSS escapes "</" so a stylesheet cannot close the <style>
// element and inject markup.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
