// Package mediatypes classifies gallery directory entries.
//
// This package is a dependency-free foundation imported by the scanner, the
// indexer, the thumbnail generator and the HTTP handlers. It contains only
// constants and pure functions.
//
// # Images
//
// A file is an image when its lowercased extension is one of
// .jpg .jpeg .png .gif .webp .svg:
//
//	mediatypes.IsImage("IMG_0001.JPG") // true
//	mediatypes.IsImage("notes.txt")    // false
//
// # Descriptions
//
// Each folder may contain a gallery.md file (any case) whose raw text becomes
// the folder description:
//
//	mediatypes.IsDescriptionFile("Gallery.MD") // true
//
// # Classification
//
// Classify combines both checks with the directory flag from a listing:
//
//	switch mediatypes.Classify(entry.Name(), entry.IsDir()) {
//	case mediatypes.FileTypeFolder:
//	case mediatypes.FileTypeImage:
//	case mediatypes.FileTypeDescription:
//	}
package mediatypes
