// Package media implements the ImageProbe and AudioProbe collaborators of
// spec.md §6.
package media

import "github.com/disintegration/imaging"

// Dimensions is the (width, height) pair spec.md §6's ImageProbe reports.
type Dimensions struct {
	Width  int
	Height int
}

// ImageProbe reads the pixel dimensions of an image file.
type ImageProbe interface {
	Probe(path string) (Dimensions, bool)
}

// imagingProbe decodes the file with disintegration/imaging, the one image
// decoding library present in the example pack (other_examples manifests).
// Errors (unsupported format, not an image, I/O failure) all collapse to
// "absent", per spec.md §7's "optional-source failures... silently treated
// as absent".
type imagingProbe struct{}

// NewImageProbe returns the default ImageProbe.
func NewImageProbe() ImageProbe { return imagingProbe{} }

func (imagingProbe) Probe(path string) (Dimensions, bool) {
	img, err := imaging.Open(path)
	if err != nil {
		return Dimensions{}, false
	}
	b := img.Bounds()
	return Dimensions{Width: b.Dx(), Height: b.Dy()}, true
}
