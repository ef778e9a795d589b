// Package middleware provides HTTP middleware for the gallery server.
//
// It includes:
//   - Request logging in W3C Extended Log Format, with image and health
//     check requests filtered out by default
//   - Prometheus request metrics labeled by route template
package middleware
