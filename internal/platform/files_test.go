package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCheckMediaFile_ExistingFile(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "clip.mkv")
	if err := os.WriteFile(tempFile, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	absPath, err := CheckMediaFile(tempFile)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !filepath.IsAbs(absPath) {
		t.Errorf("Expected absolute path, got: %s", absPath)
	}
}

func TestCheckMediaFile_NonExistentFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nonexistent.mp4")

	_, err := CheckMediaFile(missing)
	if !errors.Is(err, ErrNotExist) {
		t.Fatalf("Expected ErrNotExist, got: %v", err)
	}
	if !strings.Contains(err.Error(), "nonexistent.mp4") {
		t.Errorf("Error should name the path, got: %v", err)
	}
}

func TestCheckMediaFile_EmptyPath(t *testing.T) {
	if _, err := CheckMediaFile("   "); !errors.Is(err, ErrNotExist) {
		t.Errorf("Expected ErrNotExist for blank path, got: %v", err)
	}
}

func TestCheckMediaFile_Directory(t *testing.T) {
	if _, err := CheckMediaFile(t.TempDir()); !errors.Is(err, ErrIsDirectory) {
		t.Errorf("Expected ErrIsDirectory, got: %v", err)
	}
}

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"movie.mkv", true},
		{"MOVIE.MP4", true},
		{"song.flac", true},
		{"notes.txt", false},
		{"noext", false},
	}

	for _, test := range tests {
		if result := IsMediaFile(test.name); result != test.expected {
			t.Errorf("IsMediaFile(%s) = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestSortedMediaExtensions(t *testing.T) {
	exts := SortedMediaExtensions()
	if len(exts) != len(MediaExtensions) {
		t.Fatalf("Expected %d extensions, got %d", len(MediaExtensions), len(exts))
	}
	for i := 1; i < len(exts); i++ {
		if exts[i-1] > exts[i] {
			t.Fatalf("Extensions not sorted at %d: %s > %s", i, exts[i-1], exts[i])
		}
	}
}

func TestFileURI(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("POSIX paths only")
	}

	tests := []struct {
		path     string
		expected string
	}{
		{"/home/user/video.mp4", "file:///home/user/video.mp4"},
		{"/tmp/my movie #1.mkv", "file:///tmp/my%20movie%20%231.mkv"},
	}

	for _, test := range tests {
		if result := FileURI(test.path); result != test.expected {
			t.Errorf("FileURI(%s) = %s, expected %s", test.path, result, test.expected)
		}
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	err := OpenFileInManager(filepath.Join(t.TempDir(), "nonexistent.txt"))
	if !errors.Is(err, ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got: %v", err)
	}
}

func TestGetHomeMediaDir(t *testing.T) {
	dir, err := GetHomeMediaDir()
	if err != nil {
		t.Fatalf("Failed to get media directory: %v", err)
	}
	if dir == "" {
		t.Fatal("Media directory is empty")
	}
}
