package gstreamer

import (
	"fmt"
	"image"
)

// RenderRectangleProperty is installed on every GstVideoOverlay sink.
const RenderRectangleProperty = "render-rectangle"

// renderRectangleArg serializes a rectangle the way gst_util_set_object_arg
// expects a GstValueArray.
func renderRectangleArg(x, y, width, height int) string {
	return fmt.Sprintf("<%d, %d, %d, %d>", x, y, width, height)
}

// overlayFactories are sink factories known to implement GstVideoOverlay.
var overlayFactories = map[string]bool{
	"xvimagesink":    true,
	"ximagesink":     true,
	"glimagesink":    true,
	"d3dvideosink":   true,
	"d3d11videosink": true,
	"osxvideosink":   true,
	"waylandsink":    true,
}

// isOverlayFactory reports whether factory renders through GstVideoOverlay.
func isOverlayFactory(factory string) bool {
	return overlayFactories[factory]
}

// rgbaFrame copies a tightly packed RGBA buffer into an image. It returns nil
// when data is shorter than the frame geometry demands.
func rgbaFrame(data []byte, width, height int) *image.RGBA {
	if width <= 0 || height <= 0 || len(data) < width*height*4 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, data[:width*height*4])
	return img
}
