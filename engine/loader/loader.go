// package loader decodes a panorama image file and resolves its crop
// descriptor from the embedded GPano metadata.
package loader

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"log"
	"os"

	"github.com/Carmen-Shannon/pano-go/engine/metadata"

	_ "image/jpeg" // register JPEG format with image.Decode
	_ "image/png"  // register PNG format with image.Decode

	_ "golang.org/x/image/webp" // register WebP format with image.Decode
)

// MetadataScanLimit bounds how much of the file is scanned for the XMP
// packet. Metadata blocks live near the file start; scanning whole
// multi-hundred-megabyte panoramas would be slow for nothing.
const MetadataScanLimit = 64 * 1024

// Panorama is a decoded panorama image together with its resolved crop descriptor.
type Panorama struct {
	// Image is the decoded picture in RGBA, row 0 at the top.
	Image *image.RGBA

	// Meta places the image on the sphere.
	Meta metadata.PanoMeta
}

// Width returns the image width in pixels.
func (p *Panorama) Width() int { return p.Image.Rect.Dx() }

// Height returns the image height in pixels.
func (p *Panorama) Height() int { return p.Image.Rect.Dy() }

// Load opens and decodes the image at path, scans its leading bytes for GPano
// metadata, and applies the full-sphere fallback for 2:1 images without
// usable metadata (see metadata.Parse).
//
// Parameters:
//   - path: the panorama image file path
//
// Returns:
//   - *Panorama: the decoded panorama and its crop descriptor
//   - error: error if the file cannot be read or decoded, or if metadata
//     extraction fails and the fallback does not apply
func Load(path string) (*Panorama, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open panorama %s: %w", path, err)
	}
	defer file.Close()

	head := make([]byte, MetadataScanLimit)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("failed to read panorama %s: %w", path, err)
	}
	head = head[:n]

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind panorama %s: %w", path, err)
	}
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode panorama %s: %w", path, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Rect, img, bounds.Min, draw.Src)

	meta, err := metadata.Parse(head, rgba.Rect.Dx(), rgba.Rect.Dy())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve panorama metadata for %s: %w", path, err)
	}
	log.Printf("panorama crop: width %.4f height %.4f left %.4f top %.4f",
		meta.WidthRatio, meta.HeightRatio, meta.CropLeft, meta.CropTop)

	return &Panorama{Image: rgba, Meta: meta}, nil
}
