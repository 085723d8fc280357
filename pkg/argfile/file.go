package argfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/provide-io/flavor/go/substrate/internal/cachedir"
)

// Extension is the file extension for generated argument files.
const Extension = ".args"

// FilePerms is the mode argument files are written with.
const FilePerms = 0o644

// Write replaces path with the encoded arguments. On Unix the replacement
// is atomic: readers never observe a partially written file.
func Write(path string, args []string) error {
	if err := writeFile(path, []byte(Encode(args)), FilePerms); err != nil {
		return fmt.Errorf("failed to write argument file %s: %w", path, err)
	}
	return nil
}

// Read decodes the argument file at path.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read argument file %s: %w", path, err)
	}
	args, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse argument file %s: %w", path, err)
	}
	return args, nil
}

// DefaultPath returns the cache location for the argument file with the
// given fingerprint, creating the cache directory if needed.
func DefaultPath(fingerprint string) (string, error) {
	dir := cachedir.ArgsDir()
	if err := cachedir.Ensure(dir); err != nil {
		return "", err
	}
	return filepath.Join(dir, fingerprint+Extension), nil
}
