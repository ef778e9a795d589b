package main

import (
	"fmt"

	"pluto-gallery/internal/memory"
	"pluto-gallery/internal/startup"
	"pluto-gallery/internal/thumbnail"

	"github.com/spf13/cobra"
)

func newThumbnailsCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "thumbnails",
		Short: "Generate one thumbnail per gallery folder",
		Long: `Walk every folder below the gallery root and write a 400x400 JPEG of the
folder's first image to <thumbnail-root>/<folder>.jpg. Thumbnails newer than
their source image are kept unless --force is given.

Exits with status 1 when the gallery root does not exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			memory.ConfigureFromEnv()

			if a.cfg.VipsEnabled {
				err := thumbnail.InitVips()
				startup.LogVipsInit(true, err)
				defer thumbnail.ShutdownVips()
			} else {
				startup.LogVipsInit(false, nil)
			}

			gen := thumbnail.NewGenerator(a.cfg.GalleryRoot, a.cfg.ThumbnailRoot, thumbnail.WithForce(force))
			stats, err := gen.Run()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d generated, %d skipped, %d failed\n",
				stats.Generated, stats.Skipped, stats.Failed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Regenerate every thumbnail, even when up to date")

	return cmd
}
