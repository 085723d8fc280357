// Package manifest loads native-image build configurations from YAML or
// JSON manifest files.
//
// Several manifests can be layered: later files override scalar values of
// earlier ones, lists are appended and maps are merged key by key. Boolean
// options are pointers so that an overlay can switch a default off.
//
// Example:
//
//	image_name: app
//	main_class: com.example.Main
//	classpath:
//	  - lib/app.jar
//	no_fallback: false
//	system_properties:
//	  file.encoding: UTF-8
package manifest

import (
	"path/filepath"
	"slices"

	"github.com/samber/lo"

	"github.com/provide-io/flavor/go/substrate/pkg/nativeimage"
)

// Manifest is the on-disk form of a build configuration.
type Manifest struct {
	ImageName string `yaml:"image_name"`
	MainClass string `yaml:"main_class"`

	Verbose                            *bool `yaml:"verbose"`
	NoFallback                         *bool `yaml:"no_fallback"`
	AllowIncompleteClasspath           *bool `yaml:"allow_incomplete_classpath"`
	DebugAttach                        *bool `yaml:"debug_attach"`
	ReportExceptionStackTraces         *bool `yaml:"report_exception_stack_traces"`
	ReportUnsupportedElementsAtRuntime *bool `yaml:"report_unsupported_elements_at_runtime"`
	TraceClassInitialization           *bool `yaml:"trace_class_initialization"`
	PrintClassInitialization           *bool `yaml:"print_class_initialization"`

	ClassPath                      []string `yaml:"classpath"`
	ReflectionConfigurationFiles   []string `yaml:"reflection_configuration_files"`
	ResourceConfigurationFiles     []string `yaml:"resource_configuration_files"`
	DynamicProxyConfigurationFiles []string `yaml:"dynamic_proxy_configuration_files"`

	InitializeAtBuildTime []string          `yaml:"initialize_at_build_time"`
	SystemProperties      map[string]string `yaml:"system_properties"`
	VMFlags               []string          `yaml:"vm_flags"`
	AdditionalArguments   []string          `yaml:"additional_arguments"`
}

// Configuration converts the manifest into a BuildConfiguration, applying
// the configuration defaults for unset options.
func (m *Manifest) Configuration() *nativeimage.BuildConfiguration {
	cfg := nativeimage.NewBuildConfiguration()
	cfg.ImageName = m.ImageName
	cfg.MainClass = m.MainClass

	setBool(&cfg.Verbose, m.Verbose)
	setBool(&cfg.NoFallback, m.NoFallback)
	setBool(&cfg.AllowIncompleteClasspath, m.AllowIncompleteClasspath)
	setBool(&cfg.DebugAttach, m.DebugAttach)
	setBool(&cfg.ReportExceptionStackTraces, m.ReportExceptionStackTraces)
	setBool(&cfg.ReportUnsupportedElementsAtRuntime, m.ReportUnsupportedElementsAtRuntime)
	setBool(&cfg.TraceClassInitialization, m.TraceClassInitialization)
	setBool(&cfg.PrintClassInitialization, m.PrintClassInitialization)

	cfg.ClassPath = slices.Clone(m.ClassPath)
	cfg.ReflectionConfigurationFiles = slices.Clone(m.ReflectionConfigurationFiles)
	cfg.ResourceConfigurationFiles = slices.Clone(m.ResourceConfigurationFiles)
	cfg.DynamicProxyConfigurationFiles = slices.Clone(m.DynamicProxyConfigurationFiles)
	cfg.InitializeAtBuildTime = slices.Clone(m.InitializeAtBuildTime)
	cfg.VMFlags = slices.Clone(m.VMFlags)
	cfg.AdditionalArguments = slices.Clone(m.AdditionalArguments)
	for k, v := range m.SystemProperties {
		cfg.SystemProperties[k] = v
	}
	return cfg
}

// resolvePaths prefixes relative path entries with dir. Entries are not
// cleaned, so "." and ".." segments survive.
func (m *Manifest) resolvePaths(dir string) {
	for _, paths := range []*[]string{
		&m.ClassPath,
		&m.ReflectionConfigurationFiles,
		&m.ResourceConfigurationFiles,
		&m.DynamicProxyConfigurationFiles,
	} {
		*paths = lo.Map(*paths, func(p string, _ int) string {
			if p == "" || filepath.IsAbs(p) {
				return p
			}
			return dir + string(filepath.Separator) + p
		})
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
