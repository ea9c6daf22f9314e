package main

import (
	"fmt"

	"github.com/jordienr/docsite/infrastructure/manifest"
	"github.com/jordienr/docsite/infrastructure/registry"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [manifest.yaml]",
		Short: "Validate a navigation manifest",
		Long: `Validate a navigation manifest.

Checks that every level tag referenced by a section has a registered subtree,
that no header is empty, and that the reference registry has no duplicate
entries. With no argument, validates the built-in registry. Exits non-zero on
the first broken manifest so CI can gate on it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return validateBuiltin(cmd)
			}
			return validateManifest(cmd, args[0])
		},
	}
	return cmd
}

func validateBuiltin(cmd *cobra.Command) error {
	menu := registry.Menu()
	if err := menu.Validate(); err != nil {
		return fmt.Errorf("built-in menu: %w", err)
	}
	if err := registry.References().Validate(); err != nil {
		return fmt.Errorf("built-in references: %w", err)
	}
	cmd.Printf("built-in registry OK: %d sections, %d levels\n",
		len(menu.Sections()), len(menu.Levels()))
	return nil
}

func validateManifest(cmd *cobra.Command, path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	cmd.Printf("%s OK: %d sections, %d levels, %d reference groups\n",
		path, len(m.Menu().Sections()), len(m.Menu().Levels()), len(m.References().Groups()))
	return nil
}
