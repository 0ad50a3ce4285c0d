package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ssargent/maparr/pkg/schema"
)

// DefaultRuntimeImport is the package generated code imports for key tables
// and validation.
const DefaultRuntimeImport = "github.com/ssargent/maparr/pkg/keyset"

// DefaultSuffix is appended to the declaration file name, without its
// extension, when a file does not name its output.
const DefaultSuffix = "_maparr.go"

// Options control how source is rendered and written.
type Options struct {
	Format        Format // formatter applied to rendered source, goimports when empty
	Header        string // extra comment placed under the generated-code notice
	RuntimeImport string // import path of the keyset package
	Suffix        string // output file suffix, DefaultSuffix when empty

	// PackageResolver names the package of an output directory when the
	// declaration file leaves package empty. ResolvePackage when nil.
	PackageResolver func(dir string) (string, error)
}

// Generator renders declaration files into Go source.
type Generator struct {
	opts   Options
	logger zerolog.Logger
}

// New creates a generator.
func New(opts Options, logger zerolog.Logger) *Generator {
	if opts.Suffix == "" {
		opts.Suffix = DefaultSuffix
	}
	if opts.PackageResolver == nil {
		opts.PackageResolver = ResolvePackage
	}
	return &Generator{
		opts:   opts,
		logger: logger.With().Str("component", "gen").Logger(),
	}
}

// Generate validates f and returns the formatted Go source for it. f.Package
// must be set.
func (g *Generator) Generate(f *schema.File) ([]byte, error) {
	if err := schema.Validate(f); err != nil {
		return nil, fmt.Errorf("invalid declarations: %w", err)
	}
	if f.Package == "" {
		return nil, fmt.Errorf("package name not set")
	}

	model, err := buildModel(f, g.opts)
	if err != nil {
		return nil, fmt.Errorf("invalid declarations: %w", err)
	}

	for _, m := range model.Maps {
		g.logger.Debug().
			Str("map", m.Name).
			Int("keys", len(m.Keys)).
			Bool("generic", m.Generic).
			Str("value", m.Elem).
			Msg("declaring map")
	}
	for _, l := range model.Literals {
		g.logger.Debug().
			Str("literal", l.Name).
			Str("map", l.Map).
			Int("entries", len(l.Entries)).
			Msg("building literal")
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, model); err != nil {
		return nil, fmt.Errorf("failed to render source: %w", err)
	}

	filename, err := g.OutputPath(f)
	if err != nil {
		filename = outputName(f, g.opts.Suffix)
	}
	return formatSource(g.opts.Format, filename, buf.Bytes())
}

// OutputPath returns where the source generated for f is written. A
// relative f.Output is resolved against the declaration file's directory.
func (g *Generator) OutputPath(f *schema.File) (string, error) {
	if f.Output != "" {
		if filepath.IsAbs(f.Output) || f.Path == "" {
			return filepath.Abs(f.Output)
		}
		return filepath.Join(filepath.Dir(f.Path), f.Output), nil
	}
	if f.Path == "" {
		return "", fmt.Errorf("output path not set")
	}
	return filepath.Join(filepath.Dir(f.Path), outputName(f, g.opts.Suffix)), nil
}

// ResolvePackage fills in an empty f.Package with the package of the
// directory OutputPath(f) lies in, using Options.PackageResolver.
func (g *Generator) ResolvePackage(f *schema.File) error {
	if f.Package != "" {
		return nil
	}
	out, err := g.OutputPath(f)
	if err != nil {
		return err
	}

	pkg, err := g.opts.PackageResolver(filepath.Dir(out))
	if err != nil {
		return fmt.Errorf("failed to resolve package name: %w", err)
	}
	g.logger.Debug().Str("dir", filepath.Dir(out)).Str("package", pkg).Msg("resolved package")
	f.Package = pkg
	return nil
}

// Write generates the source for f and writes it to OutputPath(f), filling
// in f.Package with ResolvePackage when it is empty. It returns the path
// written.
func (g *Generator) Write(f *schema.File) (string, error) {
	out, err := g.OutputPath(f)
	if err != nil {
		return "", err
	}
	if err := g.ResolvePackage(f); err != nil {
		return "", err
	}

	src, err := g.Generate(f)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(out), 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		return "", fmt.Errorf("failed to write generated file: %w", err)
	}

	g.logger.Info().Str("path", out).Int("maps", len(f.Maps)).Int("literals", len(f.Literals)).Msg("wrote file")
	return out, nil
}

func outputName(f *schema.File, suffix string) string {
	if f.Output != "" {
		return filepath.Base(f.Output)
	}
	if f.Path == "" {
		return strings.ToLower(f.Maps[0].Name) + suffix
	}
	base := filepath.Base(f.Path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + suffix
}
