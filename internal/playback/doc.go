package playback

// Package playback is the player core. It probes candidate pipelines in
// preference order, maps transport requests onto engine state changes, and
// turns bus messages into view updates. Every Controller method must run on
// the UI event loop; background goroutines hand work back through the
// dispatcher supplied by the caller.
