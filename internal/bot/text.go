// internal/bot/text.go
package bot

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// SanitizeInput collapses every run of whitespace (including non-breaking
// spaces some clients send) to a single space.
func SanitizeInput(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

func fixEncoding(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	// старые клиенты шлют windows-1251
	decoder := charmap.Windows1251.NewDecoder()
	fixed, err := decoder.String(s)
	if err == nil && utf8.ValidString(fixed) {
		return fixed
	}

	return strings.ToValidUTF8(s, "")
}

// parseCommand splits "/cancel Netflix" into ("/cancel", "Netflix"). A
// "@botname" suffix on the command is dropped.
func parseCommand(text string) (cmd, arg string) {
	text = SanitizeInput(fixEncoding(text))
	cmd, arg, _ = strings.Cut(text, " ")
	if at := strings.IndexByte(cmd, '@'); at > 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}
