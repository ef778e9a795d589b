// Package siteconfig loads the site-wide gallery display configuration
// (pluto-config.json by default).
//
// The file is JSON unless its name ends in .toml:
//
//	{
//	  "gallery_name": "Holiday Photos",
//	  "gallery_alignment": "left",
//	  "gallery_style": "thumbnails",
//	  "description_position": "bottom",
//	  "description_alignment": "center",
//	  "base_path": "/photos/"
//	}
//
// A missing, unreadable or invalid file is not fatal: [LoadOrDefault] logs the
// problem and returns [Default]. The loaded value is passed explicitly to the
// indexer and the HTTP handlers; there is no package-level singleton.
package siteconfig
