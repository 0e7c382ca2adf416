package incfg

import (
	"fmt"
	"strings"
)

// LoadArgs applies command-line arguments to the registry. The first element
// is the program name and is skipped; calling LoadArgs with fewer than two
// elements is a no-op.
//
// Every argument must be a --NAME flag for a declared option. A boolean
// option is set to true by its mere presence and consumes no value token;
// any other type consumes exactly the next token as its value. A missing
// value, a value token that itself starts with "--", an unknown key, or a
// token without the leading dashes all fail with ErrLoad. Decoding failures
// carry ErrParse. As with Load, earlier assignments are kept when a later
// token fails.
func (r *Registry) LoadArgs(args []string) error {
	if len(args) < 2 {
		return nil
	}

	for i := 1; i < len(args); i++ {
		tok := args[i]
		if len(tok) < 3 || !strings.HasPrefix(tok, "--") {
			return fmt.Errorf("%w: invalid configuration option %q", ErrLoad, tok)
		}
		key := tok[2:]

		opt, ok := r.Lookup(key)
		if !ok {
			return fmt.Errorf("%w: unexpected key %q", ErrLoad, key)
		}

		if opt.IsBool() {
			if err := opt.Parse("true"); err != nil {
				return err
			}
			r.logger().Debug("command line set %s=true", key)
			continue
		}

		if i+1 >= len(args) {
			return fmt.Errorf("%w: a value is expected for configuration option %q", ErrLoad, key)
		}
		i++
		value := args[i]
		if len(value) > 1 && strings.HasPrefix(value, "--") {
			return fmt.Errorf("%w: %q is an invalid value for key %q", ErrLoad, value, key)
		}
		if err := opt.Parse(value); err != nil {
			return fmt.Errorf("invalid value %q for key %q: %w", value, key, err)
		}
		r.logger().Debug("command line set %s=%s", key, value)
	}
	return nil
}
