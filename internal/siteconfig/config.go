package siteconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"pluto-gallery/internal/filesystem"
	"pluto-gallery/internal/logging"
	"pluto-gallery/internal/metrics"
)

// DefaultFileName is the site configuration file looked up in the working
// directory.
const DefaultFileName = "pluto-config.json"

// Alignment positions a gallery block horizontally.
type Alignment string

const (
	// AlignCenter centers the block.
	AlignCenter Alignment = "center"
	// AlignLeft aligns the block to the left.
	AlignLeft Alignment = "left"
	// AlignRight aligns the block to the right.
	AlignRight Alignment = "right"
)

// DescriptionPosition places the folder description relative to the grid.
type DescriptionPosition string

const (
	// DescriptionTop renders the description above the grid.
	DescriptionTop DescriptionPosition = "top"
	// DescriptionBottom renders the description below the grid.
	DescriptionBottom DescriptionPosition = "bottom"
)

// GalleryStyle selects how images are laid out.
type GalleryStyle string

const (
	// StyleLarge shows one large image per row.
	StyleLarge GalleryStyle = "large"
	// StyleThumbnails shows a grid of thumbnails.
	StyleThumbnails GalleryStyle = "thumbnails"
)

// ErrInvalidValue is returned by Load when an enumerated field holds an
// unknown value.
var ErrInvalidValue = errors.New("invalid configuration value")

// GalleryConfig is the site-wide display configuration.
type GalleryConfig struct {
	GalleryName          string              `json:"gallery_name" toml:"gallery_name"`
	GalleryAlignment     Alignment           `json:"gallery_alignment" toml:"gallery_alignment"`
	GalleryStyle         GalleryStyle        `json:"gallery_style" toml:"gallery_style"`
	DescriptionPosition  DescriptionPosition `json:"description_position" toml:"description_position"`
	DescriptionAlignment Alignment           `json:"description_alignment" toml:"description_alignment"`
	BasePath             string              `json:"base_path,omitempty" toml:"base_path"`
}

// Default returns the configuration used when no valid file is available.
func Default() GalleryConfig {
	return GalleryConfig{
		GalleryName:          "Pluto",
		GalleryAlignment:     AlignCenter,
		GalleryStyle:         StyleLarge,
		DescriptionPosition:  DescriptionTop,
		DescriptionAlignment: AlignCenter,
		BasePath:             "/",
	}
}

// Load reads the configuration at path. Files ending in .toml are decoded as
// TOML, anything else as JSON. Fields left empty take their default value;
// unknown enum values are rejected with ErrInvalidValue.
func Load(path string) (GalleryConfig, error) {
	data, err := filesystem.ReadFileWithRetry(path, filesystem.DefaultRetryConfig())
	if err != nil {
		return GalleryConfig{}, fmt.Errorf("reading site config %s: %w", path, err)
	}

	var cfg GalleryConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return GalleryConfig{}, fmt.Errorf("parsing site config %s: %w", path, err)
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return GalleryConfig{}, fmt.Errorf("parsing site config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return GalleryConfig{}, fmt.Errorf("site config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load that logs failures and substitutes Default.
func LoadOrDefault(path string) GalleryConfig {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Info("Site config %s not found, using defaults", path)
		} else {
			logging.Error("Error loading site config, using defaults: %v", err)
		}
		metrics.SiteConfigLoadsTotal.WithLabelValues("default").Inc()
		return Default()
	}

	metrics.SiteConfigLoadsTotal.WithLabelValues("ok").Inc()
	logging.Debug("Loaded site config from %s: %+v", path, cfg)
	return cfg
}

func (c *GalleryConfig) applyDefaults() {
	d := Default()
	if c.GalleryName == "" {
		c.GalleryName = d.GalleryName
	}
	if c.GalleryAlignment == "" {
		c.GalleryAlignment = d.GalleryAlignment
	}
	if c.GalleryStyle == "" {
		c.GalleryStyle = d.GalleryStyle
	}
	if c.DescriptionPosition == "" {
		c.DescriptionPosition = d.DescriptionPosition
	}
	if c.DescriptionAlignment == "" {
		c.DescriptionAlignment = d.DescriptionAlignment
	}
	if c.BasePath == "" {
		c.BasePath = d.BasePath
	}
}

// Validate checks the enumerated fields.
func (c GalleryConfig) Validate() error {
	if !c.GalleryAlignment.valid() {
		return fmt.Errorf("%w: gallery_alignment %q", ErrInvalidValue, c.GalleryAlignment)
	}
	if !c.DescriptionAlignment.valid() {
		return fmt.Errorf("%w: description_alignment %q", ErrInvalidValue, c.DescriptionAlignment)
	}
	switch c.DescriptionPosition {
	case DescriptionTop, DescriptionBottom:
	default:
		return fmt.Errorf("%w: description_position %q", ErrInvalidValue, c.DescriptionPosition)
	}
	switch c.GalleryStyle {
	case StyleLarge, StyleThumbnails:
	default:
		return fmt.Errorf("%w: gallery_style %q", ErrInvalidValue, c.GalleryStyle)
	}
	return nil
}

func (a Alignment) valid() bool {
	switch a {
	case AlignCenter, AlignLeft, AlignRight:
		return true
	}
	return false
}
