/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ssargent/maparr/pkg/schema"
)

// declareCmd represents the declare command
var declareCmd = &cobra.Command{
	Use:   "declare",
	Short: "Generate a single map type from flags",
	Long: `Generate one map type without a declaration file, typically from a
//go:generate line.

Without --value the container is generic over its value type. With --value
every container of the map holds that type.

Examples:
	  maparr declare --name Continents --keys ASIA,AFRICA,EUROPE
	  maparr declare --name Planets --keys MERCURY,VENUS --value float64 --derive stringer
	  maparr declare --name Flags --keys READ,WRITE --value bool --save flags.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		keys, _ := cmd.Flags().GetStringSlice("keys")
		value, _ := cmd.Flags().GetString("value")
		derive, _ := cmd.Flags().GetStringSlice("derive")
		sum, _ := cmd.Flags().GetBool("sum")
		pkg, _ := cmd.Flags().GetString("package")
		output, _ := cmd.Flags().GetString("output")
		doc, _ := cmd.Flags().GetString("doc")
		save, _ := cmd.Flags().GetString("save")
		stdout, _ := cmd.Flags().GetBool("stdout")

		g, s, err := newGenerator(cmd)
		if err != nil {
			return err
		}

		if output == "" {
			output = strings.ToLower(name) + s.config.Suffix
		}
		f := schema.Single(pkg, schema.Map{
			Name:   name,
			Value:  value,
			Keys:   keys,
			Derive: derive,
			Sum:    sum,
			Doc:    doc,
		})
		f.Output = output

		if stdout {
			if err := g.ResolvePackage(f); err != nil {
				return err
			}
			src, err := g.Generate(f)
			if err != nil {
				return err
			}
			cmd.Print(string(src))
			return nil
		}

		out, err := g.Write(f)
		if err != nil {
			return err
		}
		successColor.Fprintf(cmd.OutOrStdout(), "✅ %s -> %s\n", name, out)

		if save != "" {
			if err := schema.Save(f, save); err != nil {
				return err
			}
			s.logger.Info().Str("path", save).Msg("saved declaration")
			cmd.Printf("Declaration saved to %s\n", save)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(declareCmd)

	declareCmd.Flags().String("name", "", "Container type name; lower case makes every generated identifier unexported (required)")
	declareCmd.Flags().StringSlice("keys", nil, "Key identifiers in declaration order (required)")
	declareCmd.Flags().String("value", "", "Fixed value type; empty declares a generic container")
	declareCmd.Flags().StringSlice("derive", nil, fmt.Sprintf("Extra methods to generate: %s", strings.Join(schema.KnownDerives, ", ")))
	declareCmd.Flags().Bool("sum", false, "Generate Sum for a fixed value type maparr does not recognise as numeric")
	declareCmd.Flags().String("package", "", "Package clause of the generated file (default: package of the output directory)")
	declareCmd.Flags().StringP("output", "o", "", "Output file (default: <name><suffix>)")
	declareCmd.Flags().String("doc", "", "Doc comment for the container type")
	declareCmd.Flags().String("save", "", "Also write the declaration as a YAML file")
	declareCmd.Flags().Bool("stdout", false, "Print generated source instead of writing a file")
	for _, name := range []string{"name", "keys"} {
		if err := declareCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}
