package model

// Package model defines the playback session data shared by the controller and
// the UI: engine states, the session record, and time formatting. Values are
// mutated only on the UI event loop.
