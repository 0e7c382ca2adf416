package incfg

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Load reads configuration text from rd line by line and applies each
// key=value pair to its registered option.
//
// Blank lines and lines starting with '#' are skipped. Space characters
// outside the first and last double quote of a line are stripped; spaces
// inside a quoted span are preserved, which lets quoted string values keep
// interior and edge spacing. The first '=' splits key from value.
//
// Loading stops at the first error. Options assigned by earlier lines keep
// their new values; there is no rollback.
func (r *Registry) Load(rd io.Reader) error {
	sc := bufio.NewScanner(rd)
	linenum := 0
	applied := 0
	for sc.Scan() {
		linenum++
		line := sc.Text()
		if isSkippableLine(line) {
			continue
		}
		line = stripOuterSpaces(line)

		eq := strings.IndexByte(line, '=')
		if eq <= 0 {
			return fmt.Errorf("%w: parse error at line %d: no key found (<key>=<value> expected)", ErrLoad, linenum)
		}
		key := line[:eq]
		value := line[eq+1:]

		opt, ok := r.Lookup(key)
		if !ok {
			return fmt.Errorf("%w: unexpected key %q at line %d", ErrLoad, key, linenum)
		}
		if err := opt.Parse(value); err != nil {
			return fmt.Errorf("config error for key %q at line %d: %w", key, linenum, err)
		}
		applied++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: reading input: %v", ErrLoad, err)
	}

	r.logger().Debug("applied %d option(s) from %d line(s)", applied, linenum)
	return nil
}

// LoadString applies a configuration string, using the same format and error
// behavior as Load.
func (r *Registry) LoadString(s string) error {
	return r.Load(strings.NewReader(s))
}

// isSkippableLine reports whether a raw input line is blank or a comment.
func isSkippableLine(line string) bool {
	if line == "" {
		return true
	}
	switch line[0] {
	case '#', 0, '\n', '\r':
		return true
	}
	return false
}

// stripOuterSpaces removes space characters occurring before the first
// double quote and after the last double quote of line. A line without
// quotes loses all its spaces.
func stripOuterSpaces(line string) string {
	first := strings.IndexByte(line, '"')
	if first < 0 {
		return strings.ReplaceAll(line, " ", "")
	}
	last := strings.LastIndexByte(line, '"')
	head := strings.ReplaceAll(line[:first], " ", "")
	tail := strings.ReplaceAll(line[last+1:], " ", "")
	return head + line[first:last+1] + tail
}
