// Package main runs the Pluto gallery server.
//
// Pluto serves a folder tree of images as a browsable gallery. Every folder
// below GALLERY_ROOT is a gallery; its images, subfolders and optional
// gallery.md description are read from disk on each request, so there is no
// index to rebuild when files change.
//
// # Application Lifecycle
//
//  1. Memory: sets GOMEMLIMIT from MEMORY_LIMIT when running in a container
//  2. Configuration: reads environment variables and checks the directories
//  3. Site configuration: loads CONFIG_FILE (JSON or TOML), falling back to
//     defaults when it is missing or invalid
//  4. HTTP server setup: routes, logging and metrics middleware
//  5. Graceful shutdown on SIGINT/SIGTERM
//
// # HTTP Server
//
// The application runs two HTTP servers:
//
//  1. Main server (default port 8080):
//     - /api/gallery/{path}: folder listing as JSON
//     - /api/config: site configuration
//     - /api/paths: every gallery path
//     - /galleries/{path}: full-size images
//     - /thumbnails/{path}: pre-generated folder thumbnails
//     - /health, /healthz, /livez, /version
//
//  2. Metrics server (default port 9090, optional):
//     - Prometheus metrics endpoint (/metrics)
//
// # Environment Variables
//
//   - GALLERY_ROOT: gallery source directory (default: public/galleries)
//   - THUMBNAIL_ROOT: generated thumbnails (default: public/thumbnails)
//   - CONFIG_FILE: site configuration (default: pluto-config.json)
//   - PORT: main HTTP server port (default: 8080)
//   - METRICS_PORT: metrics server port (default: 9090)
//   - METRICS_ENABLED: enable the metrics server (default: true)
//   - LOG_LEVEL: debug, info, warn or error
//   - LOG_STATIC_FILES: log image requests (default: false)
//   - LOG_HEALTH_CHECKS: log health check requests (default: true)
//   - MEMORY_LIMIT, MEMORY_RATIO: container-aware GOMEMLIMIT
//
// Thumbnails are produced offline by the pluto command (cmd/pluto).
//
// # Related Packages
//
//   - [pluto-gallery/internal/gallery]: folder listings and path enumeration
//   - [pluto-gallery/internal/scanner]: directory reads shared by the indexer
//     and the thumbnail generator
//   - [pluto-gallery/internal/thumbnail]: folder thumbnail generation
//   - [pluto-gallery/internal/handlers]: HTTP request handlers
//   - [pluto-gallery/internal/middleware]: request logging and metrics
//   - [pluto-gallery/internal/startup]: configuration and startup logging
package main
