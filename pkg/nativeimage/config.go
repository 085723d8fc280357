package nativeimage

import (
	"maps"
	"slices"
)

// BuildConfiguration holds everything native-image needs to know about one
// image build.
//
// A configuration is populated once by whoever discovers the classpath and
// config files, then handed to Build. Build only reads it.
//
// Defaults (see NewBuildConfiguration):
//   - Verbose: true
//   - NoFallback: true
//   - everything else: zero value
type BuildConfiguration struct {
	// ImageName is the output image name (-H:Name).
	ImageName string
	// MainClass is the entry point (-H:Class). Required.
	MainClass string

	Verbose                            bool
	NoFallback                         bool
	AllowIncompleteClasspath           bool
	DebugAttach                        bool
	ReportExceptionStackTraces         bool
	ReportUnsupportedElementsAtRuntime bool
	TraceClassInitialization           bool
	PrintClassInitialization           bool

	// Path lists. Relative entries are resolved to absolute paths at build
	// time; output order is by absolute path, not insertion order.
	ClassPath                      []string
	ReflectionConfigurationFiles   []string
	ResourceConfigurationFiles     []string
	DynamicProxyConfigurationFiles []string

	// InitializeAtBuildTime lists classes or packages whose static
	// initializers run at image build time.
	InitializeAtBuildTime []string

	// SystemProperties are passed to the JVM running the image generator.
	SystemProperties map[string]string
	// VMFlags are passed to the JVM running the image generator (-J<flag>).
	VMFlags []string

	// AdditionalArguments are appended verbatim.
	AdditionalArguments []string
}

// NewBuildConfiguration returns a configuration with the documented defaults.
func NewBuildConfiguration() *BuildConfiguration {
	return &BuildConfiguration{
		Verbose:          true,
		NoFallback:       true,
		SystemProperties: map[string]string{},
	}
}

// Clone returns a deep copy of the configuration.
func (c *BuildConfiguration) Clone() *BuildConfiguration {
	if c == nil {
		return nil
	}
	clone := *c
	clone.ClassPath = slices.Clone(c.ClassPath)
	clone.ReflectionConfigurationFiles = slices.Clone(c.ReflectionConfigurationFiles)
	clone.ResourceConfigurationFiles = slices.Clone(c.ResourceConfigurationFiles)
	clone.DynamicProxyConfigurationFiles = slices.Clone(c.DynamicProxyConfigurationFiles)
	clone.InitializeAtBuildTime = slices.Clone(c.InitializeAtBuildTime)
	clone.SystemProperties = maps.Clone(c.SystemProperties)
	clone.VMFlags = slices.Clone(c.VMFlags)
	clone.AdditionalArguments = slices.Clone(c.AdditionalArguments)
	return &clone
}
