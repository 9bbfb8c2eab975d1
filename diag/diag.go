// Package diag writes the console diagnostics of a conversion run. Progress
// messages are always written; per pixel and per glyph lines only in debug
// mode.
package diag

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Logger struct {
	w     io.Writer
	debug bool
	art   bool
}

// New returns a logger writing to w. Glyph art uses block characters when w
// is a terminal and '#'/'.' otherwise.
func New(w io.Writer, debug bool) *Logger {
	art := false
	if f, ok := w.(*os.File); ok {
		art = term.IsTerminal(int(f.Fd()))
	}

	return &Logger{w: w, debug: debug, art: art}
}

// Debug reports whether debug lines are written. A nil logger is silent.
func (l *Logger) Debug() bool {
	return l != nil && l.debug
}

func (l *Logger) Printf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	fmt.Fprintf(l.w, format+"\n", args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Debug() {
		return
	}
	fmt.Fprintf(l.w, format+"\n", args...)
}

// Dump pretty prints v as JSON in debug mode.
func (l *Logger) Dump(v interface{}) {
	if !l.Debug() {
		return
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(l.w, "%+v\n", v)
		return
	}
	fmt.Fprintf(l.w, "%s\n", string(jsonBytes))
}

// Art writes glyph rows made of '#' (ink) and '.' (background) in debug
// mode, indented by two spaces.
func (l *Logger) Art(rows []string) {
	if !l.Debug() {
		return
	}

	for _, row := range rows {
		if l.art {
			row = artReplacer.Replace(row)
		}
		fmt.Fprintf(l.w, "  %s\n", row)
	}
}

var artReplacer = strings.NewReplacer("#", "\u2588", ".", " ")
