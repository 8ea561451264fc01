package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Errors returned by CheckMediaFile.
var (
	ErrNotExist    = errors.New("file does not exist")
	ErrIsDirectory = errors.New("path is a directory")
)

// MediaExtensions lists file extensions offered in the open dialog (audio + video)
var MediaExtensions = map[string]bool{
	// Audio formats
	".mp3":  true,
	".flac": true,
	".m4a":  true,
	".aac":  true,
	".ogg":  true,
	".oga":  true,
	".opus": true,
	".wav":  true,
	".wma":  true,
	".aiff": true,

	// Video formats
	".mp4":  true,
	".m4v":  true,
	".mkv":  true,
	".webm": true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".mpg":  true,
	".mpeg": true,
	".ts":   true,
	".3gp":  true,
	".ogv":  true,
}

// IsMediaFile checks if a file name carries a known media extension
func IsMediaFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return MediaExtensions[ext]
}

// SortedMediaExtensions returns MediaExtensions as a sorted slice
func SortedMediaExtensions() []string {
	exts := make([]string, 0, len(MediaExtensions))
	for ext := range MediaExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// CheckMediaFile verifies that path names an existing regular file and returns
// its absolute form. Unknown extensions are not rejected; the engine decides.
func CheckMediaFile(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: empty path", ErrNotExist)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotExist, absPath)
		}
		return "", fmt.Errorf("stat %s: %w", absPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, absPath)
	}

	return absPath, nil
}

// FileURI converts an absolute path into a file:// URI understood by the engine
func FileURI(absPath string) string {
	p := filepath.ToSlash(absPath)
	if !strings.HasPrefix(p, "/") {
		// Windows drive paths: C:/x -> /C:/x
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := CheckMediaFile(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	// Try xdg-open first (most common)
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// GetHomeMediaDir returns the user's Videos directory, falling back to home
func GetHomeMediaDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	for _, name := range []string{"Videos", "Movies", "Music"} {
		dir := filepath.Join(homeDir, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return homeDir, nil
}
