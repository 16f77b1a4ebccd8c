// package metadata extracts the GPano panorama crop descriptor embedded in an
// image file's XMP metadata packet.
//
// An equirectangular image may cover less than the full 360x180 degree field of
// view; the GPano fields describe where the captured crop sits on the sphere.
// Reference: https://developers.google.com/streetview/spherical-metadata
package metadata

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
)

const (
	rdfNamespace   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	gpanoNamespace = "http://ns.google.com/photos/1.0/panorama/"
)

var (
	// ErrNoXMP is returned when no XMP packet markers are present in the scanned bytes.
	ErrNoXMP = errors.New("no XMP metadata found")

	// ErrMalformedXMP is returned when an XMP packet is found but cannot be parsed as XML.
	ErrMalformedXMP = errors.New("malformed XMP metadata")

	// ErrNoGPano is returned when the XMP packet contains no GPano description record.
	ErrNoGPano = errors.New("no GPano description in XMP")
)

// UnsupportedProjectionError is returned when the GPano ProjectionType is not equirectangular.
type UnsupportedProjectionError struct {
	// Type is the projection type string found in the metadata.
	Type string
}

func (e *UnsupportedProjectionError) Error() string {
	return fmt.Sprintf("unsupported projection type %q", e.Type)
}

// MissingFieldError is returned when a required GPano field is absent or unparsable.
type MissingFieldError struct {
	// Field is the GPano field name that could not be read.
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing GPano:%s", e.Field)
}

// PanoMeta describes the placement of a cropped equirectangular image on the
// full sphere. All four fields are ratios in the unit interval. CropLeft and
// CropTop locate the crop's top-left corner within the full panorama;
// WidthRatio and HeightRatio are the fractions of the full longitude and
// latitude spans the image covers.
type PanoMeta struct {
	WidthRatio  float32
	HeightRatio float32
	CropLeft    float32
	CropTop     float32
}

// FullSphere returns the descriptor for an image covering the entire 360x180 degree sphere.
//
// Returns:
//   - PanoMeta: the full-sphere descriptor {1, 1, 0, 0}
func FullSphere() PanoMeta {
	return PanoMeta{WidthRatio: 1, HeightRatio: 1, CropLeft: 0, CropTop: 0}
}

// xmpStart and xmpEnd delimit an XMP packet inside the raw image bytes.
// Scanning for the markers stands in for actually walking the image headers;
// every XMP writer emits exactly these byte sequences.
var (
	xmpStart = []byte("<x:xmpmeta")
	xmpEnd   = []byte("</x:xmpmeta>")
)

// Parse extracts the crop descriptor from raw image bytes.
//
// The caller is expected to pass a bounded prefix of the file (XMP packets live
// near the file start; see loader.MetadataScanLimit) together with the decoded
// image dimensions. If GPano extraction fails for any reason and the image is
// exactly twice as wide as it is tall, the image is assumed to be a full
// 360x180 degree panorama and the full-sphere descriptor is returned instead
// of the error.
//
// Parameters:
//   - buf: raw image file bytes to scan for the XMP packet
//   - width, height: decoded image dimensions in pixels
//
// Returns:
//   - PanoMeta: the crop descriptor
//   - error: ErrNoXMP, ErrMalformedXMP, ErrNoGPano, *UnsupportedProjectionError,
//     or *MissingFieldError when extraction fails and the fallback does not apply
func Parse(buf []byte, width, height int) (PanoMeta, error) {
	meta, err := extract(buf)
	if err != nil && width/2 == height {
		return FullSphere(), nil
	}
	return meta, err
}

// xmlNode is a generic XML tree node. The GPano fields may live either in
// child elements or in attributes of the rdf:Description, so the document is
// kept as a plain tree and both locations are consulted.
type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []xmlNode  `xml:",any"`
	Text    string     `xml:",chardata"`
}

// child returns the first direct child element matching the namespace and local name.
func (n *xmlNode) child(space, local string) *xmlNode {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Space == space && n.Nodes[i].XMLName.Local == local {
			return &n.Nodes[i]
		}
	}
	return nil
}

// attr returns the value of the attribute matching the namespace and local name.
func (n *xmlNode) attr(space, local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// extract locates the XMP packet, parses it, and reads the GPano fields.
// No fallback is applied here; callers decide how to recover.
func extract(buf []byte) (PanoMeta, error) {
	start := bytes.Index(buf, xmpStart)
	if start < 0 {
		return PanoMeta{}, ErrNoXMP
	}
	end := bytes.Index(buf[start:], xmpEnd)
	if end < 0 {
		return PanoMeta{}, ErrNoXMP
	}
	packet := buf[start : start+end+len(xmpEnd)]

	var root xmlNode
	if err := xml.Unmarshal(packet, &root); err != nil {
		return PanoMeta{}, fmt.Errorf("%w: %v", ErrMalformedXMP, err)
	}

	desc := findGPanoDescription(&root)
	if desc == nil {
		return PanoMeta{}, ErrNoGPano
	}

	projectionType, err := field(desc, "ProjectionType")
	if err != nil {
		return PanoMeta{}, err
	}
	if projectionType != "equirectangular" {
		return PanoMeta{}, &UnsupportedProjectionError{Type: projectionType}
	}

	croppedWidth, err := intField(desc, "CroppedAreaImageWidthPixels")
	if err != nil {
		return PanoMeta{}, err
	}
	croppedHeight, err := intField(desc, "CroppedAreaImageHeightPixels")
	if err != nil {
		return PanoMeta{}, err
	}
	fullWidth, err := intField(desc, "FullPanoWidthPixels")
	if err != nil {
		return PanoMeta{}, err
	}
	fullHeight, err := intField(desc, "FullPanoHeightPixels")
	if err != nil {
		return PanoMeta{}, err
	}
	croppedLeft, err := intField(desc, "CroppedAreaLeftPixels")
	if err != nil {
		return PanoMeta{}, err
	}
	croppedTop, err := intField(desc, "CroppedAreaTopPixels")
	if err != nil {
		return PanoMeta{}, err
	}

	log.Printf("GPano: %s %d %d %d %d %d %d", projectionType,
		croppedWidth, croppedHeight, fullWidth, fullHeight, croppedLeft, croppedTop)

	return PanoMeta{
		WidthRatio:  float32(croppedWidth) / float32(fullWidth),
		HeightRatio: float32(croppedHeight) / float32(fullHeight),
		CropLeft:    float32(croppedLeft) / float32(fullWidth),
		CropTop:     float32(croppedTop) / float32(fullHeight),
	}, nil
}

// findGPanoDescription walks rdf:RDF for a Description record carrying the
// GPano namespace, identified by a GPano:UsePanoramaViewer child element or
// attribute. Some writers (Android camera) put the GPano fields in attributes
// of the Description, others (Hugin) in child elements; either marks the record.
func findGPanoDescription(root *xmlNode) *xmlNode {
	rdf := root.child(rdfNamespace, "RDF")
	if rdf == nil {
		return nil
	}
	for i := range rdf.Nodes {
		desc := &rdf.Nodes[i]
		if desc.XMLName.Space != rdfNamespace || desc.XMLName.Local != "Description" {
			continue
		}
		if desc.child(gpanoNamespace, "UsePanoramaViewer") != nil {
			return desc
		}
		if _, ok := desc.attr(gpanoNamespace, "UsePanoramaViewer"); ok {
			return desc
		}
	}
	return nil
}

// field reads a GPano field from a child element's text content, falling back
// to a same-named attribute. The attribute is only consulted when no child
// element exists.
func field(desc *xmlNode, name string) (string, error) {
	if c := desc.child(gpanoNamespace, name); c != nil {
		return strings.TrimSpace(c.Text), nil
	}
	if v, ok := desc.attr(gpanoNamespace, name); ok {
		return strings.TrimSpace(v), nil
	}
	return "", &MissingFieldError{Field: name}
}

// intField reads a GPano field as a non-negative integer.
func intField(desc *xmlNode, name string) (int, error) {
	raw, err := field(desc, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, &MissingFieldError{Field: name}
	}
	return v, nil
}
