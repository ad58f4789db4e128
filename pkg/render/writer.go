package render

import (
	"fmt"
	"io"
	"strings"
)

// stickyWriter remembers the first write error and turns later writes into
// no-ops, so rendering code can write freely and check once. It also tracks
// whether output currently ends at the start of a line.
type stickyWriter struct {
	w         io.Writer
	err       error
	lineStart bool
}

func (s *stickyWriter) str(v string) {
	if s.err != nil || v == "" {
		return
	}
	_, s.err = io.WriteString(s.w, v)
	s.lineStart = strings.HasSuffix(v, "\n")
}

func (s *stickyWriter) printf(format string, args ...any) {
	s.str(fmt.Sprintf(format, args...))
}
