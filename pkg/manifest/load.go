package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/provide-io/flavor/go/substrate/pkg/logging"
	"github.com/provide-io/flavor/go/substrate/pkg/nativeimage"
)

// ErrNoManifests is returned when Load is called without any paths.
var ErrNoManifests = errors.New("❌ no manifest files given")

// Load reads the manifests at paths, merges them in order and returns the
// resulting build configuration.
//
// Every file is attempted; if any of them cannot be read or parsed, the
// returned error lists all failures.
func Load(paths []string, logger hclog.Logger) (*nativeimage.BuildConfiguration, error) {
	merged, err := LoadManifest(paths, logger)
	if err != nil {
		return nil, err
	}
	return merged.Configuration(), nil
}

// LoadManifest is like Load but returns the merged manifest itself.
func LoadManifest(paths []string, logger hclog.Logger) (*Manifest, error) {
	logger = logging.OrNull(logger)
	if len(paths) == 0 {
		return nil, ErrNoManifests
	}

	var result *multierror.Error
	merged := &Manifest{}
	for _, path := range paths {
		m, err := ReadFile(path)
		if err != nil {
			logger.Error("❌ Failed to load manifest", "path", path, "error", err)
			result = multierror.Append(result, err)
			continue
		}
		if err := Merge(merged, m); err != nil {
			result = multierror.Append(result, fmt.Errorf("failed to merge manifest %s: %w", path, err))
			continue
		}
		logger.Debug("📄 Loaded manifest", "path", path)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return merged, nil
}

// ReadFile reads and decodes one manifest. Relative paths inside it are
// resolved against the manifest's own directory.
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path %s: %w", path, err)
	}
	m.resolvePaths(filepath.Dir(abs))
	return m, nil
}

// Parse decodes manifest content. Unknown keys are rejected. An empty
// document yields an empty manifest.
func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return m, nil
}

// Merge layers src over dst. Non-empty scalars and set booleans in src win,
// lists are appended and maps are merged key by key.
func Merge(dst, src *Manifest) error {
	return mergo.Merge(dst, src, mergo.WithOverride, mergo.WithAppendSlice, mergo.WithoutDereference)
}
