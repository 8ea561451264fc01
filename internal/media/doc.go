package media

// Package media declares the capabilities the playback core needs from a
// multimedia framework. The core talks only to these interfaces; concrete
// bindings (GStreamer) live in their own packages and optional features such
// as overlays or frame delivery are discovered by type assertion.
