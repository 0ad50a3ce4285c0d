/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ssargent/maparr/pkg/config"
	"github.com/ssargent/maparr/pkg/schema"
)

// exampleDeclaration is written by init as a starting point
const exampleDeclaration = `# maparr declaration file. Regenerate with: maparr gen -f maparr.yaml
maps:
  - name: Weekdays
    doc: Weekdays holds one value per working day.
    keys: [MONDAY, TUESDAY, WEDNESDAY, THURSDAY, FRIDAY]
    derive: [stringer]

literals:
  - name: OpeningHours
    map: Weekdays
    type: int
    entries:
      MONDAY: 8
      TUESDAY: 8
      WEDNESDAY: 8
      THURSDAY: 8
      FRIDAY: 6
`

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example declaration file and a project config",
	Long: `Create maparr.yaml with an example map and literal, and .maparr.yaml with
the default tool configuration, in the target directory.

Existing files are left alone unless --force is given.

Examples:
	  maparr init
	  maparr init --dir ./internal/days --package days
	  maparr init --no-config`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		pkg, _ := cmd.Flags().GetString("package")
		force, _ := cmd.Flags().GetBool("force")
		noConfig, _ := cmd.Flags().GetBool("no-config")

		s, err := settingsFrom(cmd)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}

		declPath := filepath.Join(dir, defaultDeclarationFile)
		if config.ConfigExists(declPath) && !force {
			cmd.Printf("Declaration file already exists. Use --force to overwrite.\n")
			cmd.Printf("Declaration file location: %s\n", declPath)
		} else {
			f, err := schema.Parse([]byte(exampleDeclaration))
			if err != nil {
				return err
			}
			f.Package = pkg
			if err := schema.Save(f, declPath); err != nil {
				return err
			}
			s.logger.Info().Str("path", declPath).Msg("wrote declaration file")
			successColor.Fprintf(cmd.OutOrStdout(), "✅ Declaration file written to %s\n", declPath)
		}

		if !noConfig {
			configPath := filepath.Join(dir, ".maparr.yaml")
			if config.ConfigExists(configPath) && !force {
				cmd.Printf("Config already exists at %s\n", configPath)
			} else {
				if _, err := config.BootstrapConfig(configPath); err != nil {
					return err
				}
				s.logger.Info().Str("path", configPath).Msg("wrote config")
				successColor.Fprintf(cmd.OutOrStdout(), "✅ Config written to %s\n", configPath)
			}
		}

		cmd.Printf("\nGenerate the map types with:\n")
		cmd.Printf("  maparr gen -f %s\n", declPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("dir", ".", "Directory to initialize")
	initCmd.Flags().String("package", "", "Package clause for the generated file (default: package of the directory)")
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
	initCmd.Flags().Bool("no-config", false, "Do not write .maparr.yaml")
}
