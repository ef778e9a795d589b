package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pluto-gallery/internal/filesystem"
	"pluto-gallery/internal/gallery"
	"pluto-gallery/internal/logging"
	"pluto-gallery/internal/siteconfig"
	"pluto-gallery/internal/startup"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app holds the settings shared by every subcommand. Flags override the
// environment read by startup.FromEnv.
type app struct {
	logLevel      string
	galleryRoot   string
	thumbnailRoot string
	configFile    string

	cfg *startup.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "pluto",
		Short: "Pluto indexes folder-based image galleries",
		Long: `Pluto reads a tree of image folders and produces gallery listings,
the list of gallery paths, and pre-generated folder thumbnails.

Settings come from GALLERY_ROOT, THUMBNAIL_ROOT and CONFIG_FILE unless
overridden by flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&a.galleryRoot, "gallery-root", "", "Gallery source directory (overrides GALLERY_ROOT)")
	rootCmd.PersistentFlags().StringVar(&a.thumbnailRoot, "thumbnail-root", "", "Thumbnail output directory (overrides THUMBNAIL_ROOT)")
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Site configuration file, JSON or TOML (overrides CONFIG_FILE)")

	rootCmd.AddCommand(newThumbnailsCmd(a))
	rootCmd.AddCommand(newPathsCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	if a.logLevel != "" {
		level, ok := logging.ParseLevel(a.logLevel)
		if !ok {
			return fmt.Errorf("unknown log level %q", a.logLevel)
		}
		logging.SetLevel(level)
	}

	cfg, err := startup.FromEnv()
	if err != nil {
		return err
	}
	if a.galleryRoot != "" {
		if cfg.GalleryRoot, err = filepath.Abs(a.galleryRoot); err != nil {
			return fmt.Errorf("failed to resolve gallery root path: %w", err)
		}
	}
	if a.thumbnailRoot != "" {
		if cfg.ThumbnailRoot, err = filepath.Abs(a.thumbnailRoot); err != nil {
			return fmt.Errorf("failed to resolve thumbnail root path: %w", err)
		}
	}
	if a.configFile != "" {
		cfg.ConfigFile = a.configFile
	}
	a.cfg = cfg

	filesystem.SetDefaultVolumeResolver(filesystem.NewVolumeResolver(cfg.Volumes()))
	return nil
}

func (a *app) siteConfig() siteconfig.GalleryConfig {
	return siteconfig.LoadOrDefault(a.cfg.ConfigFile)
}

func (a *app) indexer(site siteconfig.GalleryConfig) *gallery.Indexer {
	return gallery.NewIndexer(a.cfg.GalleryRoot,
		gallery.WithThumbnailRoot(a.cfg.ThumbnailRoot),
		gallery.WithBasePath(site.BasePath),
	)
}

// printJSON writes v to w, indented when w is a terminal.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
