// Package startup handles process configuration and the startup and shutdown
// log output of the gallery server.
//
// # Configuration
//
// Settings come from environment variables. [FromEnv] reads them silently
// (the pluto command uses it); [LoadConfig] additionally prints the banner,
// the effective values and the state of the gallery directories.
//
//   - GALLERY_ROOT: folder tree to index (default: public/galleries)
//   - THUMBNAIL_ROOT: pre-generated folder thumbnails (default: public/thumbnails)
//   - CONFIG_FILE: site configuration file (default: pluto-config.json)
//   - PORT: HTTP server port (default: 8080)
//   - METRICS_PORT: Prometheus metrics server port (default: 9090)
//   - METRICS_ENABLED: enable the metrics server (default: true)
//   - VIPS_ENABLED: render thumbnails with libvips when available (default: true)
//   - LOG_LEVEL: debug, info, warn or error (default: info)
//   - LOG_STATIC_FILES: log image and thumbnail requests (default: false)
//   - LOG_HEALTH_CHECKS: log health check requests (default: true)
//
// A missing gallery root is not an error for the server: pages are simply
// empty. The thumbnail tool treats it as fatal.
//
// # Build Information
//
// Version, Commit and BuildTime are injected with -ldflags and exposed via
// [GetBuildInfo].
//
// # Example Usage
//
//	config, err := startup.LoadConfig()
//	if err != nil {
//	    startup.LogFatal("Configuration error: %v", err)
//	}
//
//	startup.LogHTTPRoutes(router, config.LogStaticFiles, config.LogHealthChecks)
//	startup.LogServerStarted(startup.ServerConfig{
//	    Port:            config.Port,
//	    MetricsPort:     config.MetricsPort,
//	    MetricsEnabled:  config.MetricsEnabled,
//	    StartupDuration: time.Since(startTime),
//	})
package startup
