// Package cachedir locates the on-disk cache used for generated argument
// files.
package cachedir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// EnvCacheDir overrides the cache root.
const EnvCacheDir = "SUBSTRATE_CACHE_DIR"

const (
	appDir  = "substrate"
	argsDir = "args"

	// DirPerms is read/write/execute for owner only.
	DirPerms = 0o700
)

// Root returns the cache root directory.
//
// SUBSTRATE_CACHE_DIR wins. Otherwise the platform cache home
// (XDG_CACHE_HOME or its per-OS equivalent) is used, falling back to the temp
// directory.
func Root() string {
	if cacheDir := os.Getenv(EnvCacheDir); cacheDir != "" {
		return cacheDir
	}
	if xdg.CacheHome != "" {
		return filepath.Join(xdg.CacheHome, appDir)
	}
	return filepath.Join(os.TempDir(), appDir, "cache")
}

// ArgsDir returns the directory that holds argument files.
func ArgsDir() string {
	return filepath.Join(Root(), argsDir)
}

// Ensure creates dir with DirPerms if it does not exist.
func Ensure(dir string) error {
	if err := os.MkdirAll(dir, DirPerms); err != nil {
		return fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}
	return nil
}
