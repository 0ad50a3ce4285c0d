/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/ssargent/maparr/pkg/schema"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate declaration files without writing anything",
	Long: `Validate declaration files and print a summary of each map and literal.

Every problem in a file is reported, not only the first: invalid or duplicate
keys, unknown derives, literals with missing, repeated or out-of-order entries,
and generated identifiers that would collide.

Examples:
	  maparr check
	  maparr check -f maparr.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, _ := cmd.Flags().GetStringSlice("file")
		files = append(files, args...)
		if len(files) == 0 {
			files = []string{defaultDeclarationFile}
		}

		g, _, err := newGenerator(cmd)
		if err != nil {
			return err
		}
		load := container.GetLoader()

		var result *multierror.Error
		for _, path := range files {
			f, err := load(path)
			if err != nil {
				result = multierror.Append(result, err)
				continue
			}
			if err := g.ResolvePackage(f); err != nil {
				result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
				continue
			}
			if _, err := g.Generate(f); err != nil {
				failureColor.Fprintf(cmd.OutOrStdout(), "❌ %s\n", path)
				result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
				continue
			}

			successColor.Fprintf(cmd.OutOrStdout(), "✅ %s (package %s)\n", path, f.Package)
			for _, m := range f.Maps {
				cmd.Printf("  map %s: %s\n", m.Name, describeMap(m))
			}
			for _, l := range f.Literals {
				cmd.Printf("  literal %s: %s, %d entries\n", l.Name, l.Map, len(l.Entries))
			}
		}
		return result.ErrorOrNil()
	},
}

func describeMap(m schema.Map) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d keys", len(m.Keys))
	if m.Generic() {
		b.WriteString(", generic")
	} else {
		fmt.Fprintf(&b, ", value %s", m.Value)
	}
	if len(m.Derive) > 0 {
		fmt.Fprintf(&b, ", derive %s", strings.Join(m.Derive, ","))
	}
	if !m.Exported() {
		b.WriteString(", unexported")
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringSliceP("file", "f", nil, "Declaration file (repeatable, default maparr.yaml)")
}
