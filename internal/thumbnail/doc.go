/*
Package thumbnail pre-renders one square preview image per gallery folder.

For every folder below the gallery root that has at least one image in its
subtree, the first image (see scanner.FirstImage) is scaled to cover a
400x400 box, centre-cropped and written as a quality 85 JPEG to
<thumbnail root>/<folder path>.jpg. The gallery indexer serves these files in
place of the full-size first image.

# Staleness

A thumbnail is regenerated only when it is missing or when its source image
has a newer modification time. WithForce disables the check. Files are
written to a temporary name and renamed into place, so readers never see a
partial thumbnail.

# Decoders

When InitVips has been called, libvips renders the thumbnail with
decode-time shrinking. Otherwise the pure Go path uses
github.com/disintegration/imaging with EXIF auto-orientation and the standard
decoders plus WebP. SVG sources on that path are rasterized with
github.com/srwiley/oksvg onto a white background first.

# Errors

Run returns ErrGalleryRootMissing when the gallery root is absent. Failures on
individual folders are logged and counted in Stats.Failed; they never stop the
walk.
*/
package thumbnail
