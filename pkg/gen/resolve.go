package gen

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ssargent/maparr/pkg/keyset"
	"golang.org/x/tools/go/packages"
)

// ResolvePackage returns the name of the Go package in dir. When dir holds
// no Go package yet, the name is derived from the directory name.
func ResolvePackage(dir string) (string, error) {
	cfg := &packages.Config{Mode: packages.NeedName, Dir: dir}
	pkgs, err := packages.Load(cfg, ".")
	if err == nil && len(pkgs) == 1 && pkgs[0].Name != "" {
		return pkgs[0].Name, nil
	}
	return packageFromDir(dir)
}

func packageFromDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid output directory: %w", err)
	}

	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return -1
	}, filepath.Base(abs))

	if !keyset.IsIdent(name) {
		return "", fmt.Errorf("cannot derive a package name from %s", abs)
	}
	return name, nil
}
