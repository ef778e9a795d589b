// Package handlers provides the HTTP handlers for the gallery API.
//
// It includes handlers for:
//   - Gallery listings, the site configuration and the path list
//   - Full-size images and pre-generated folder thumbnails
//   - Health, liveness and version information
package handlers
