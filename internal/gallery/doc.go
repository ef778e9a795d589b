/*
Package gallery projects a folder tree of images into the metadata a gallery
page is rendered from.

# Indexing

[Indexer.Index] lists the immediate children of one folder and classifies
each of them:

  - image files become entries of Images, with a URL under /galleries/
  - subfolders become entries of Folders, with the recursive image count and a
    thumbnail URL (a pre-generated /thumbnails/<path>.jpg when present,
    otherwise the first image of the subtree)
  - a gallery.md file (any case) becomes the Description

Both lists are sorted by name with the Unicode root collation. Parent path and
breadcrumbs depend only on the requested path, so they are filled in even when
the folder does not exist.

# Paths

Gallery paths are slash separated and relative to the gallery root: "/" is the
root, "/Trips/2024" a nested folder. [NormalizePath] accepts any number of
leading or trailing slashes, so "/Trips/2024/" and "Trips/2024" are the same
folder. [Indexer.AllPaths] enumerates every valid path for pre-rendering.

Image and thumbnail URLs are prefixed with the site base path
([WithBasePath]); navigation paths are not.

# Errors

Nothing in this package returns an error. Unreadable folders are logged and
treated as empty.
*/
package gallery
