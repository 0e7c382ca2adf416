package incfg

import (
	"fmt"
	"os"
	"strings"
)

// EnvTransformFunc converts an option name to the environment variable name
// checked by LoadEnv.
type EnvTransformFunc func(name string) string

// defaultEnvTransform upper-cases the option name and replaces dashes with
// underscores, e.g. "log-file" becomes "LOG_FILE".
func defaultEnvTransform(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// LoadEnv applies environment variables to the registry. For every declared
// option the variable prefix + transformed name is consulted; set variables
// are decoded exactly like text-format values, so boolean variables must
// hold "true" or "false" and string variables may be quoted but do not need
// to be. Unset variables leave their options untouched.
func (r *Registry) LoadEnv(prefix string) error {
	return r.LoadEnvTransform(prefix, defaultEnvTransform)
}

// LoadEnvTransform is LoadEnv with a custom name transformation.
func (r *Registry) LoadEnvTransform(prefix string, transform EnvTransformFunc) error {
	if transform == nil {
		transform = defaultEnvTransform
	}

	applied := 0
	for _, opt := range r.Options() {
		envName := prefix + transform(opt.Name())
		value, ok := os.LookupEnv(envName)
		if !ok {
			continue
		}
		if err := opt.Parse(value); err != nil {
			return fmt.Errorf("environment variable %s for key %q: %w", envName, opt.Name(), err)
		}
		applied++
	}

	r.logger().Debug("applied %d option(s) from environment prefix %q", applied, prefix)
	return nil
}
