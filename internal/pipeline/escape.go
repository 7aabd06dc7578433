package pipeline

import "strings"

// lineSeparator joins escaped lines of one cell. The caller wraps the
// result in <div>...</div>, so each line becomes its own block.
const lineSeparator = "</div><div>"

// htmlEscaper replaces &, < and >. strings.Replacer matches at each
// position against the original text only, so an inserted entity is never
// escaped again; the result equals replacing & first, then <, then >.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML escapes &, < and > in s. Quotes are left alone: escaped text
// is only ever placed in element content, never inside an attribute.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// ProcessText escapes each line of s independently and joins the lines
// with "</div><div>".
func ProcessText(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = EscapeHTML(line)
	}
	return strings.Join(lines, lineSeparator)
}
