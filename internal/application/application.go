package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "citas"

	// Version is the application version reported by `citas version`
	Version = "0.1.0"

	// DatabaseFile is the default SQLite file name
	DatabaseFile = "citas.db"

	// BoltFile is the default BoltDB file name
	BoltFile = "citas.bolt"

	// ConfigFile is the configuration file name without extension
	ConfigFile = "citas"

	// LogFile receives logs while the terminal UI owns the screen
	LogFile = "citas.log"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the citas configuration directory path.
// Linux: ~/.config/citas (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\citas (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, errDir
}

// EnsureApplicationDirectory returns the application directory, creating it if needed.
func EnsureApplicationDirectory() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating application directory: %w", err)
	}

	return dir, nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		// Windows: use AppData\Local (via UserCacheDir)
		baseDir, err = os.UserCacheDir()
	default:
		// Linux/others: use ~/.config (via UserConfigDir)
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
	}

	appDir = filepath.Join(baseDir, AppName)
}
