// Package ui contains the Fyne-based desktop user interface for the player.
// Player implements playback.View: it owns the window, the video surface and
// the transport controls, and forwards user input to the controller on the
// Fyne event loop. All UI strings are localized via Localization.
package ui
