// Package di provides dependency injection container
package di

import (
	"github.com/rs/zerolog"
	"github.com/ssargent/maparr/pkg/gen"
	"github.com/ssargent/maparr/pkg/schema"
)

// Generator renders and writes declaration files
type Generator interface {
	Generate(f *schema.File) ([]byte, error)
	OutputPath(f *schema.File) (string, error)
	ResolvePackage(f *schema.File) error
	Write(f *schema.File) (string, error)
}

// GeneratorFactory creates generators from options
type GeneratorFactory interface {
	CreateGenerator(opts gen.Options, logger zerolog.Logger) Generator
}

// Loader reads a declaration file
type Loader func(path string) (*schema.File, error)

type generatorFactory struct{}

func (generatorFactory) CreateGenerator(opts gen.Options, logger zerolog.Logger) Generator {
	return gen.New(opts, logger)
}

// NewGeneratorFactory returns the factory producing *gen.Generator values
func NewGeneratorFactory() GeneratorFactory {
	return generatorFactory{}
}

// Container holds all the dependencies for the application
type Container struct {
	generatorFactory GeneratorFactory
	loader           Loader
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		generatorFactory: NewGeneratorFactory(),
		loader:           schema.Load,
	}
}

// GetGeneratorFactory returns the generator factory
func (c *Container) GetGeneratorFactory() GeneratorFactory {
	return c.generatorFactory
}

// GetLoader returns the declaration loader
func (c *Container) GetLoader() Loader {
	return c.loader
}

// SetGeneratorFactory allows overriding the generator factory (for testing)
func (c *Container) SetGeneratorFactory(factory GeneratorFactory) {
	c.generatorFactory = factory
}

// SetLoader allows overriding the declaration loader (for testing)
func (c *Container) SetLoader(loader Loader) {
	c.loader = loader
}
