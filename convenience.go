package incfg

import "io"

// The package-level functions below operate on the default registry, in the
// way the flag package exposes CommandLine.

// Load reads configuration text from rd into the default registry.
func Load(rd io.Reader) error { return Default().Load(rd) }

// LoadString applies a configuration string to the default registry.
func LoadString(s string) error { return Default().LoadString(s) }

// LoadArgs applies command-line arguments to the default registry.
func LoadArgs(args []string) error { return Default().LoadArgs(args) }

// LoadEnv applies prefixed environment variables to the default registry.
func LoadEnv(prefix string) error { return Default().LoadEnv(prefix) }

// LoadFile reads a configuration file into the default registry.
func LoadFile(path string) error { return Default().LoadFile(path) }

// SaveFile writes the default registry's configuration text to path.
func SaveFile(path string) error { return Default().SaveFile(path) }

// ConfigString renders the default registry as configuration text.
func ConfigString() string { return Default().ConfigString() }

// Lookup returns the option declared under name in the default registry.
func Lookup(name string) (Option, bool) { return Default().Lookup(name) }

// Len returns the number of options declared in the default registry.
func Len() int { return Default().Len() }

// Names returns the default registry's option names in ascending order.
func Names() []string { return Default().Names() }

// Unmarshal decodes the default registry into target.
func Unmarshal(target any) error { return Default().Unmarshal(target) }

// SetLogger installs a Logger on the default registry.
func SetLogger(l Logger) { Default().SetLogger(l) }
