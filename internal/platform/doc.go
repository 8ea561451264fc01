package platform

// Package platform contains OS integration glue: media file checks, file://
// URIs for the engine, OS reveal-in-folder, and a watcher that notices when
// the loaded file disappears from disk.
