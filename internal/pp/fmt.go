package pp

import (
	"fmt"
	"io"
	"strings"
)

type formatter struct {
	writer    io.Writer
	emoji     bool
	indent    int
	hintShown map[Hint]bool
	verbosity Verbosity
}

// New creates a new pretty printer.
func New(writer io.Writer, emoji bool, verbosity Verbosity) PP {
	return formatter{
		writer:    writer,
		emoji:     emoji,
		indent:    0,
		hintShown: map[Hint]bool{},
		verbosity: verbosity,
	}
}

// SetEmoji sets whether emojis should be printed.
func (f formatter) SetEmoji(emoji bool) PP {
	f.emoji = emoji
	return f
}

// SetVerbosity sets messages of what verbosity levels should be printed.
func (f formatter) SetVerbosity(v Verbosity) PP {
	f.verbosity = v
	return f
}

// IsShowing checks whether a message of verbosity level v will be printed.
func (f formatter) IsShowing(v Verbosity) bool {
	return v >= f.verbosity
}

// Indent returns a new printer that indents the messages more than the input printer.
// The hint registry is shared with the input printer.
func (f formatter) Indent() PP {
	f.indent++
	return f
}

func (f formatter) output(v Verbosity, emoji Emoji, msg string) {
	if v < f.verbosity {
		return
	}

	prefix := strings.Repeat(indentPrefix, f.indent)
	if f.emoji {
		prefix += string(emoji) + " "
	}

	fmt.Fprintln(f.writer, prefix+strings.TrimSuffix(msg, "\n"))
}

// Infof formats and sends a message at the level [Info].
func (f formatter) Infof(emoji Emoji, format string, args ...any) {
	f.output(Info, emoji, fmt.Sprintf(format, args...))
}

// Noticef formats and sends a message at the level [Notice].
func (f formatter) Noticef(emoji Emoji, format string, args ...any) {
	f.output(Notice, emoji, fmt.Sprintf(format, args...))
}

// SuppressHint marks the hint as already shown.
func (f formatter) SuppressHint(hint Hint) {
	f.hintShown[hint] = true
}

// Hintf calls [formatter.Infof] with the emoji [EmojiHint], at most once per hint.
func (f formatter) Hintf(hint Hint, format string, args ...any) {
	if f.hintShown[hint] {
		return
	}
	f.Infof(EmojiHint, format, args...)
	f.hintShown[hint] = true
}
