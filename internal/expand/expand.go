// Package expand implements input tokenization and option macro
// expansion.
//
// Tokenization follows the POSIX-style quoting rules of anmitsu/go-shlex:
// unquoted whitespace separates tokens, single- and double-quoted regions
// keep embedded whitespace, and a backslash escapes the next character
// outside single quotes.
//
// Macro expansion replaces each occurrence of $(Name) with the string
// value of the named option. A "$$" pair shields the following text from
// macro scanning and collapses to a single "$" once, after substitution,
// so the collapse can never produce a new expandable macro.
package expand

import (
	"strings"

	"github.com/anmitsu/go-shlex"

	"cmdshell/pkg/shelltypes"
)

// Tokenize splits a raw input line into an argument vector. A quoting
// error (for example an unterminated quote) is reported as a status
// error.
func Tokenize(line string) ([]string, error) {
	args, err := shlex.Split(line, true)
	if err != nil {
		return nil, shelltypes.Statusf("syntax error: %v", err)
	}
	return args, nil
}

// Source resolves option names to their current string values.
type Source interface {
	OptionValue(name string) (value string, ok bool)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(name string) (string, bool)

// OptionValue calls f.
func (f SourceFunc) OptionValue(name string) (string, bool) { return f(name) }

// Expand substitutes option macros in text. An unknown option name or an
// unterminated reference aborts the whole expansion with a status error.
// Substituted values are not rescanned, so an option value containing a
// macro pattern stays literal.
func Expand(text string, src Source) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var b strings.Builder
	for i := 0; i < len(text); {
		if text[i] != '$' {
			b.WriteByte(text[i])
			i++
			continue
		}
		// "$$" shields the next character from macro scanning. Keep the
		// pair for now; the collapse pass below folds it to one "$".
		if i+1 < len(text) && text[i+1] == '$' {
			b.WriteString("$$")
			i += 2
			continue
		}
		if i+1 < len(text) && text[i+1] == '(' {
			end := strings.IndexByte(text[i+2:], ')')
			if end < 0 {
				return "", shelltypes.Statusf("malformed option reference in %q", text)
			}
			name := text[i+2 : i+2+end]
			value, ok := src.OptionValue(name)
			if !ok {
				return "", shelltypes.Statusf("unknown option %q", name)
			}
			b.WriteString(value)
			i += end + 3
			continue
		}
		// A lone "$" not starting a macro is literal.
		b.WriteByte('$')
		i++
	}

	// One collapse pass, after substitution.
	return strings.ReplaceAll(b.String(), "$$", "$"), nil
}
