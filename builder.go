package incfg

import "errors"

// Builder assembles a multi-source load over a registry: first the
// configuration file, then environment variables, then command-line
// arguments, later sources overriding earlier ones. Declared defaults are
// already in place before the Builder runs.
type Builder struct {
	reg       *Registry
	file      string
	envPrefix string
	useEnv    bool
	args      []string
}

// NewBuilder creates a Builder targeting the default registry.
func NewBuilder() *Builder {
	return &Builder{reg: Default()}
}

// WithRegistry redirects the Builder at an explicit registry.
func (b *Builder) WithRegistry(r *Registry) *Builder {
	if r != nil {
		b.reg = r
	}
	return b
}

// WithFile sets the configuration file path. A missing file is not an
// error; everything else the file loader reports is fatal.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithEnvPrefix enables the environment source with the given variable
// prefix (which may be empty).
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envPrefix = prefix
	b.useEnv = true
	return b
}

// WithArgs sets the command-line arguments, program name included, e.g.
// os.Args.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// Load runs the configured sources in precedence order and stops at the
// first error.
func (b *Builder) Load() error {
	if b.file != "" {
		if err := b.reg.LoadFile(b.file); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	if b.useEnv {
		if err := b.reg.LoadEnv(b.envPrefix); err != nil {
			return err
		}
	}
	if len(b.args) > 0 {
		if err := b.reg.LoadArgs(b.args); err != nil {
			return err
		}
	}
	return nil
}
