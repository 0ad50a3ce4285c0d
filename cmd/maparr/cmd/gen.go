/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

const defaultDeclarationFile = "maparr.yaml"

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen [file...]",
	Short: "Generate map types from declaration files",
	Long: `Generate Go source for every map and literal in one or more declaration files.

Each file is written next to its declaration file, named after the file's
output field or the declaration file name plus the configured suffix.
When a file leaves package empty, the package of the output directory is used.

Examples:
	  maparr gen -f maparr.yaml
	  maparr gen -f planets.yaml -f continents.yaml
	  maparr gen --stdout maparr.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, _ := cmd.Flags().GetStringSlice("file")
		stdout, _ := cmd.Flags().GetBool("stdout")
		files = append(files, args...)
		if len(files) == 0 {
			files = []string{defaultDeclarationFile}
		}

		g, s, err := newGenerator(cmd)
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

			if stdout {
				if err := g.ResolvePackage(f); err != nil {
					result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
					continue
				}
				src, err := g.Generate(f)
				if err != nil {
					result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
					continue
				}
				cmd.Print(string(src))
				continue
			}

			out, err := g.Write(f)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
				continue
			}
			s.logger.Debug().Str("declarations", path).Str("output", out).Msg("generated")
			successColor.Fprintf(cmd.OutOrStdout(), "✅ %s -> %s\n", path, out)
		}
		return result.ErrorOrNil()
	},
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringSliceP("file", "f", nil, "Declaration file (repeatable, default maparr.yaml)")
	genCmd.Flags().Bool("stdout", false, "Print generated source instead of writing files")
}
