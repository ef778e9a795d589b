package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List every gallery path, root first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths := a.indexer(a.siteConfig()).AllPaths()
			if asJSON {
				return printJSON(cmd.OutOrStdout(), paths)
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the paths as a JSON array")

	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [path]",
		Short: "Print the listing of one gallery folder as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			galleryPath := "/"
			if len(args) > 0 {
				galleryPath = args[0]
			}
			return printJSON(cmd.OutOrStdout(), a.indexer(a.siteConfig()).Index(galleryPath))
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective site configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), a.siteConfig())
		},
	}
}
