package gen

import (
	"fmt"
	"go/format"

	"golang.org/x/tools/imports"
)

// Format selects the formatter applied to rendered source.
type Format string

const (
	FormatGoimports Format = "goimports"
	FormatGofmt     Format = "gofmt"
	FormatNone      Format = "none"
)

// ParseFormat validates a formatter name from configuration.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatGoimports, nil
	case FormatGoimports, FormatGofmt, FormatNone:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q, want goimports, gofmt or none", s)
}

func formatSource(f Format, filename string, src []byte) ([]byte, error) {
	switch f {
	case FormatNone:
		return src, nil
	case FormatGofmt:
		out, err := format.Source(src)
		if err != nil {
			return nil, fmt.Errorf("failed to format generated source: %w", err)
		}
		return out, nil
	case FormatGoimports, "":
		out, err := imports.Process(filename, src, &imports.Options{
			Comments:  true,
			TabIndent: true,
			TabWidth:  8,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to format generated source: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown format %q", f)
}
