package incfg

import "errors"

var (
	// ErrParse reports a value that could not be decoded into the declared
	// type of its option. Loaders wrap it with the key name and, for text
	// input, the line number.
	ErrParse = errors.New("string parse error")

	// ErrLoad reports a structural problem in a configuration source: a
	// malformed command-line token, a missing value, an unknown key, or a
	// line without a key=value shape.
	ErrLoad = errors.New("configuration load error")

	// ErrNotFound indicates the configuration file does not exist. Callers
	// can treat it as non-fatal on a first run.
	ErrNotFound = errors.New("config file not found")
)
