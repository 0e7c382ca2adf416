package incfg

import (
	"sort"
	"strings"
	"sync"
)

// Registry collects every declared Option, keyed by name. One process-wide
// default registry (see Default) serves normal use; independent registries
// can be created for tests or embedding.
type Registry struct {
	mu      sync.RWMutex
	options map[string]Option // Maps option names to their single instance
	log     Logger
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		options: make(map[string]Option),
		log:     nopLogger{},
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry that Require declares into. It
// is created lazily on first access and lives for the rest of the process.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// SetLogger installs a Logger for load and save diagnostics. Passing nil
// restores the silent default.
func (r *Registry) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = l
}

func (r *Registry) logger() Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.log
}

// Add registers opt under its name. Registration is idempotent: the first
// option registered for a name wins and later calls are no-ops. Add returns
// the instance actually held by the registry, which callers should use in
// place of their argument.
func (r *Registry) Add(opt Option) Option {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.options[opt.Name()]; ok {
		return existing
	}
	r.options[opt.Name()] = opt
	return opt
}

// Lookup returns the Option registered under name. The second return value
// reports whether the name was ever declared.
func (r *Registry) Lookup(name string) (Option, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opt, ok := r.options[name]
	return opt, ok
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.options)
}

// Names returns every registered option name in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames()
}

// Options returns every registered option ordered by name.
func (r *Registry) Options() []Option {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opts := make([]Option, 0, len(r.options))
	for _, name := range r.sortedNames() {
		opts = append(opts, r.options[name])
	}
	return opts
}

// Reset removes every registered option. It exists for tests that need a
// clean registry; handles obtained before a Reset keep working against
// their now-unregistered options.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.options)
}

// ConfigString renders the full registry as configuration text, ordered by
// name. Each option is written as an optional description comment pair
// followed by a key=value line and a blank line; the key=value line is
// prefixed with '#' while the option still holds its default. Loading the
// result back reproduces the same logical state.
func (r *Registry) ConfigString() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	for _, name := range r.sortedNames() {
		opt := r.options[name]
		if opt.Description() != "" {
			b.WriteString("# ")
			b.WriteString(opt.Description())
			b.WriteString("\n#\n")
		}
		if opt.IsDefault() {
			b.WriteByte('#')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(opt.String())
		b.WriteString("\n\n")
	}
	return b.String()
}

// sortedNames must be called with r.mu held.
func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.options))
	for name := range r.options {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
