package gen

// Config carries the settings shared by every compiled type and the
// artifact generator.
type Config struct {
	// Package is the package name of the generated files.
	Package string
	// Target is the directory generated files are written to.
	Target string
	// Header is the comment placed at the top of each generated file.
	Header string
}

// Option configures compilation and generation.
type Option func(*Config) error

// WithPackage sets the package name of the generated files.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewCompileError(ErrGenerationFailed, "", "", "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewCompileError(ErrGenerationFailed, "", "", "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithHeader sets the file header comment.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// Apply applies options to the config. It returns the first error
// encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}
