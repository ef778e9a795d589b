// Package scanner implements the recursive folder walks behind the gallery
// index: the representative first image of a folder, the recursive image
// count, and a depth-first enumeration of every folder below a root.
//
// All walks are depth-first and pre-order, and visit entries in filename
// order. A folder that cannot be read (missing, permission denied, symlink
// loop) is logged and treated as empty; errors never propagate to the caller.
//
//	s := scanner.New()
//	count := s.ImageCount("public/galleries/Trips")
//	first, ok := s.FirstImage("public/galleries/Trips")
package scanner
