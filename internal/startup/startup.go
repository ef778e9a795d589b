package startup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"pluto-gallery/internal/logging"
	"pluto-gallery/internal/siteconfig"

	"github.com/gorilla/mux"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// Defaults for the gallery layout relative to the working directory.
const (
	DefaultGalleryRoot   = "public/galleries"
	DefaultThumbnailRoot = "public/thumbnails"
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// RouteInfo contains information about a registered route
type RouteInfo struct {
	Method string
	Path   string
	Name   string
}

// Config holds the process settings read from the environment.
type Config struct {
	GalleryRoot     string
	ThumbnailRoot   string
	ConfigFile      string
	Port            string
	MetricsPort     string
	LogStaticFiles  bool
	LogHealthChecks bool
	MetricsEnabled  bool
	VipsEnabled     bool

	// Set by LoadConfig after checking the directories.
	GalleryRootExists bool
	ThumbnailsPresent bool
}

// FromEnv reads the configuration from environment variables and resolves
// the directories to absolute paths. It performs no I/O beyond that and logs
// nothing, which suits the command line tool.
func FromEnv() (*Config, error) {
	cfg := &Config{
		GalleryRoot:     getEnv("GALLERY_ROOT", DefaultGalleryRoot),
		ThumbnailRoot:   getEnv("THUMBNAIL_ROOT", DefaultThumbnailRoot),
		ConfigFile:      getEnv("CONFIG_FILE", siteconfig.DefaultFileName),
		Port:            getEnv("PORT", "8080"),
		MetricsPort:     getEnv("METRICS_PORT", "9090"),
		LogStaticFiles:  getEnvBool("LOG_STATIC_FILES", false),
		LogHealthChecks: getEnvBool("LOG_HEALTH_CHECKS", true),
		MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),
		VipsEnabled:     getEnvBool("VIPS_ENABLED", true),
	}

	var err error
	if cfg.GalleryRoot, err = filepath.Abs(cfg.GalleryRoot); err != nil {
		return nil, fmt.Errorf("failed to resolve gallery root path: %w", err)
	}
	if cfg.ThumbnailRoot, err = filepath.Abs(cfg.ThumbnailRoot); err != nil {
		return nil, fmt.Errorf("failed to resolve thumbnail root path: %w", err)
	}

	return cfg, nil
}

// Volumes returns the known directories keyed by the volume name used in
// filesystem metric labels.
func (c *Config) Volumes() map[string]string {
	return map[string]string{
		"galleries":  c.GalleryRoot,
		"thumbnails": c.ThumbnailRoot,
	}
}

// LoadConfig loads configuration for the HTTP server, logging a banner, the
// effective settings and the state of the gallery directories.
func LoadConfig() (*Config, error) {
	printBanner()
	logSystemInfo()

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	logging.Info("  GALLERY_ROOT:        %s", cfg.GalleryRoot)
	logging.Info("  THUMBNAIL_ROOT:      %s", cfg.ThumbnailRoot)
	logging.Info("  CONFIG_FILE:         %s", cfg.ConfigFile)
	logging.Info("  PORT:                %s", cfg.Port)
	logging.Info("  METRICS_PORT:        %s", cfg.MetricsPort)
	logging.Info("  METRICS_ENABLED:     %v", cfg.MetricsEnabled)
	logging.Info("  VIPS_ENABLED:        %v", cfg.VipsEnabled)
	logging.Info("  LOG_STATIC_FILES:    %v", cfg.LogStaticFiles)
	logging.Info("  LOG_HEALTH_CHECKS:   %v", cfg.LogHealthChecks)
	logging.Info("  LOG_LEVEL:           %s", logging.GetLevel())

	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("DIRECTORY SETUP")
	logging.Info("------------------------------------------------------------")

	// A missing gallery is served as an empty one.
	if err := checkDirectory(cfg.GalleryRoot, "gallery"); err != nil {
		logging.Warn("  Gallery root issue: %v", err)
		logging.Warn("  Gallery pages will be empty until %s exists", cfg.GalleryRoot)
	} else {
		cfg.GalleryRootExists = true
	}

	// Thumbnails are produced offline by `pluto thumbnails`.
	if err := checkDirectory(cfg.ThumbnailRoot, "thumbnail"); err != nil {
		logging.Info("  No thumbnail directory (%v)", err)
		logging.Info("  Folder previews fall back to the first image of each folder")
	} else {
		cfg.ThumbnailsPresent = true
	}

	logging.Info("")
	logging.Info("  Feature availability:")
	logging.Info("    Gallery:     %s", enabledString(cfg.GalleryRootExists))
	logging.Info("    Thumbnails:  %s", enabledString(cfg.ThumbnailsPresent))
	logging.Info("    Metrics:     %s", enabledString(cfg.MetricsEnabled))

	return cfg, nil
}

func enabledString(enabled bool) string {
	if enabled {
		return "ENABLED"
	}
	return "DISABLED"
}

// LogSiteConfig logs the site display configuration.
func LogSiteConfig(path string, cfg siteconfig.GalleryConfig) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SITE CONFIGURATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Source:                %s", path)
	logging.Info("  Gallery name:          %s", cfg.GalleryName)
	logging.Info("  Gallery alignment:     %s", cfg.GalleryAlignment)
	logging.Info("  Gallery style:         %s", cfg.GalleryStyle)
	logging.Info("  Description position:  %s", cfg.DescriptionPosition)
	logging.Info("  Description alignment: %s", cfg.DescriptionAlignment)
	logging.Info("  Base path:             %s", cfg.BasePath)
}

// LogVipsInit logs the outcome of libvips initialization.
func LogVipsInit(enabled bool, err error) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("IMAGE PROCESSING")
	logging.Info("------------------------------------------------------------")

	switch {
	case !enabled:
		logging.Info("  libvips disabled (VIPS_ENABLED=false), using pure Go decoders")
	case err != nil:
		logging.Warn("  libvips unavailable: %v", err)
		logging.Warn("  Falling back to pure Go decoders")
	default:
		logging.Info("  [OK] libvips ready")
	}
}

// GetRoutes extracts all registered routes from a mux.Router
func GetRoutes(router *mux.Router) ([]RouteInfo, error) {
	var routes []RouteInfo

	err := router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			pathTemplate, err = route.GetPathRegexp()
			if err != nil {
				return nil
			}
		}

		methods, err := route.GetMethods()
		if err != nil {
			// e.g. static file servers
			methods = []string{"*"}
		}

		for _, method := range methods {
			routes = append(routes, RouteInfo{
				Method: method,
				Path:   pathTemplate,
				Name:   route.GetName(),
			})
		}

		return nil
	})

	return routes, err
}

// LogHTTPRoutes logs all registered HTTP routes
func LogHTTPRoutes(router *mux.Router, logStaticFiles, logHealthChecks bool) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("HTTP SERVER SETUP")
	logging.Info("------------------------------------------------------------")

	if logging.IsDebugEnabled() {
		routes, err := GetRoutes(router)
		if err != nil {
			logging.Warn("error walking routes: %v", err)
		}

		logging.Debug("  Registered routes (%d total):", len(routes))

		groups := make(map[string][]RouteInfo)
		for _, route := range routes {
			prefix := getRouteGroup(route.Path)
			groups[prefix] = append(groups[prefix], route)
		}

		groupKeys := make([]string, 0, len(groups))
		for k := range groups {
			groupKeys = append(groupKeys, k)
		}
		sort.Strings(groupKeys)

		for _, group := range groupKeys {
			if group != "" {
				logging.Debug("  [%s]", group)
			} else {
				logging.Debug("  [root]")
			}
			for _, route := range groups[group] {
				logging.Debug("    %-6s %s", route.Method, route.Path)
			}
		}
	}

	if logStaticFiles {
		logging.Info("  Static file logging: ON")
	} else {
		logging.Info("  Static file logging: OFF (set LOG_STATIC_FILES=true to enable)")
	}
	if logHealthChecks {
		logging.Info("  Health check logging: ON")
	} else {
		logging.Info("  Health check logging: OFF (set LOG_HEALTH_CHECKS=true to enable)")
	}
}

// getRouteGroup extracts a group name from a route path
func getRouteGroup(path string) string {
	path = strings.TrimPrefix(path, "/")

	parts := strings.SplitN(path, "/", 2)
	first := parts[0]

	if first == "api" && len(parts) > 1 {
		subParts := strings.SplitN(parts[1], "/", 2)
		return "api/" + subParts[0]
	}

	return first
}

// ServerConfig holds configuration for the server startup log
type ServerConfig struct {
	Port            string
	MetricsPort     string
	MetricsEnabled  bool
	StartupDuration time.Duration
}

// LogServerStarted logs successful server start with all endpoint information
func LogServerStarted(config ServerConfig) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SERVER STARTED")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Startup time:    %v", config.StartupDuration)
	logging.Info("")
	logging.Info("  Endpoints:")
	logging.Info("    Application:   http://0.0.0.0:%s", config.Port)
	if config.MetricsEnabled {
		logging.Info("    Metrics:       http://0.0.0.0:%s/metrics", config.MetricsPort)
	} else {
		logging.Info("    Metrics:       DISABLED")
	}
	logging.Info("")
	logging.Info("  Press Ctrl+C to stop the server")
	logging.Info("------------------------------------------------------------")
}

// LogShutdownInitiated logs shutdown start
func LogShutdownInitiated(signal string) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SHUTDOWN INITIATED (received %s)", signal)
	logging.Info("------------------------------------------------------------")
}

// LogShutdownStep logs a shutdown step
func LogShutdownStep(step string) {
	logging.Debug("  %s...", step)
}

// LogShutdownStepComplete logs a completed shutdown step
func LogShutdownStepComplete(step string) {
	logging.Info("  [OK] %s", step)
}

// LogShutdownComplete logs shutdown completion
func LogShutdownComplete() {
	logging.Info("  [OK] Shutdown complete")
}

// LogFatal logs a fatal error and exits
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}

func printBanner() {
	banner := `
------------------------------------------------------------
    ____  __      __
   / __ \/ /_  __/ /_____
  / /_/ / / / / / __/ __ \
 / ____/ / /_/ / /_/ /_/ /
/_/   /_/\__,_/\__/\____/

------------------------------------------------------------`
	fmt.Println(banner)
	logging.Info("  Version:    %s", Version)
	logging.Info("  Commit:     %s", Commit)
	logging.Info("  Build Time: %s", BuildTime)
	logging.Info("  Started:    %s", time.Now().Format(time.RFC1123))
	logging.Info("")
}

func logSystemInfo() {
	logging.Info("------------------------------------------------------------")
	logging.Info("SYSTEM INFORMATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Go version:      %s", runtime.Version())
	logging.Info("  OS/Arch:         %s/%s", runtime.GOOS, runtime.GOARCH)
	logging.Info("  CPUs available:  %d", runtime.NumCPU())

	if logging.IsDebugEnabled() {
		if wd, err := os.Getwd(); err == nil {
			logging.Debug("  Working dir:     %s", wd)
		}
		if hostname, err := os.Hostname(); err == nil {
			logging.Debug("  Hostname:        %s", hostname)
		}
	}

	logging.Info("")
}

// checkDirectory verifies that path is an existing directory. Unlike the
// thumbnail tool it never creates anything.
func checkDirectory(path, name string) error {
	logging.Debug("  Checking %s directory: %s", name, path)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s directory: %w", name, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	logging.Info("  [OK] %s directory: %s", name, path)

	if logging.IsDebugEnabled() {
		if entries, err := os.ReadDir(path); err == nil {
			fileCount, dirCount := 0, 0
			for _, e := range entries {
				if e.IsDir() {
					dirCount++
				} else {
					fileCount++
				}
			}
			logging.Debug("    Contents: %d files, %d directories (top level)", fileCount, dirCount)
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
