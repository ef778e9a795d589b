package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pluto-gallery/internal/gallery"
	"pluto-gallery/internal/logging"
	"pluto-gallery/internal/siteconfig"

	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every gallery listing as static JSON",
		Long: `Write the listing of every gallery path below --out:

  gallery/index.json          listing of /
  gallery/<path>/index.json   listing of /<path>
  paths.json                  all gallery paths
  config.json                 site configuration`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if outDir == "" {
				return errors.New("--out is required")
			}
			site := a.siteConfig()
			n, err := exportGallery(cmd.Context(), a.indexer(site), site, outDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d gallery paths to %s\n", n, outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory")

	return cmd
}

// exportGallery writes one listing per gallery path and returns how many
// listings were written.
func exportGallery(ctx context.Context, idx *gallery.Indexer, site siteconfig.GalleryConfig, outDir string) (int, error) {
	paths := idx.AllPaths()

	if err := writeJSONFile(filepath.Join(outDir, "config.json"), site); err != nil {
		return 0, err
	}
	if err := writeJSONFile(filepath.Join(outDir, "paths.json"), paths); err != nil {
		return 0, err
	}

	for i, p := range paths {
		if err := ctx.Err(); err != nil {
			return i, fmt.Errorf("export interrupted: %w", err)
		}
		target := exportFile(outDir, p)
		if err := writeJSONFile(target, idx.Index(p)); err != nil {
			return i, err
		}
		logging.Debug("Exported %s to %s", p, target)
	}

	return len(paths), nil
}

const listingFile = "index.json"

// exportFile maps a gallery path to its index.json below outDir. Folder names
// pass through exportSegment so none can collide with a listing file.
func exportFile(outDir, galleryPath string) string {
	parts := []string{outDir, "gallery"}
	for _, seg := range strings.Split(strings.Trim(galleryPath, "/"), "/") {
		if seg != "" {
			parts = append(parts, exportSegment(seg))
		}
	}
	return filepath.Join(append(parts, listingFile)...)
}

// exportSegment escapes "%" as "%25" and writes the dot of a folder named
// index.json (in any case) as "%2E". The mapping is reversible and never
// yields the listing file name.
func exportSegment(seg string) string {
	seg = strings.ReplaceAll(seg, "%", "%25")
	if strings.EqualFold(seg, listingFile) {
		seg = seg[:5] + "%2E" + seg[6:]
	}
	return seg
}

func writeJSONFile(path string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
