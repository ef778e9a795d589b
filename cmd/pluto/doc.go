// Command pluto is the command line companion of the gallery server.
//
// Usage:
//
//	pluto [flags] <command>
//
// Commands:
//
//	thumbnails [--force]   Generate a 400x400 JPEG per gallery folder.
//	paths [--json]         List every gallery path, root first.
//	show [path]            Print one gallery listing as JSON.
//	export --out DIR       Write every listing, the path list and the site
//	                       configuration as static JSON files.
//	config                 Print the effective site configuration.
//
// Flags:
//
//	--gallery-root    overrides GALLERY_ROOT (default public/galleries)
//	--thumbnail-root  overrides THUMBNAIL_ROOT (default public/thumbnails)
//	--config          overrides CONFIG_FILE (default pluto-config.json)
//	--log-level       overrides LOG_LEVEL
//
// Environment:
//
//	VIPS_ENABLED - use libvips for thumbnails when available (default: true)
//
// Log output goes to stderr so JSON on stdout can be piped.
package main
