// Package gstreamer binds the media capabilities to GStreamer through go-gst.
// The binding needs cgo; without it Parse always fails with ErrCGORequired
// and the selector reports that no pipeline could be built.
package gstreamer
