// Package nativeimage turns a BuildConfiguration into the argument vector
// for GraalVM native-image.
//
// The output is canonical: the classpath flag and its value always come
// first, and every other argument follows in plain string order. Options of
// different kinds therefore interleave by their text (-D..., -H:..., -J...,
// --...). Build caches key on this exact ordering; do not regroup it.
package nativeimage

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ArgumentBuilder produces native-image arguments.
//
// WorkingDir is the directory relative paths are resolved against. When
// empty, the process working directory is used.
type ArgumentBuilder struct {
	WorkingDir string
}

// Build returns the argument vector for cfg, resolving relative paths
// against the process working directory.
func Build(cfg *BuildConfiguration) ([]string, error) {
	return ArgumentBuilder{}.Build(cfg)
}

// Build returns a fresh argument vector for cfg. It fails before producing
// any output if cfg has no main class.
func (b ArgumentBuilder) Build(cfg *BuildConfiguration) ([]string, error) {
	if cfg == nil {
		return nil, &ConfigurationError{Field: "configuration", Err: ErrNilConfiguration}
	}
	if cfg.MainClass == "" {
		return nil, &ConfigurationError{Field: "main-class", Err: ErrMissingRequiredField}
	}

	classPath, err := b.absolutePaths(cfg.ClassPath)
	if err != nil {
		return nil, err
	}

	var other []string

	other = addIfTrue(other, ParamVerbose, cfg.Verbose)
	other = addIfExists(other, ParamInitializeAtBuildTime, cfg.InitializeAtBuildTime)

	pathOptions := []struct {
		param string
		paths []string
	}{
		{ParamReflectionConfigurationFiles, cfg.ReflectionConfigurationFiles},
		{ParamResourceConfigurationFiles, cfg.ResourceConfigurationFiles},
		{ParamDynamicProxyConfigurationFiles, cfg.DynamicProxyConfigurationFiles},
	}
	for _, opt := range pathOptions {
		abs, err := b.absolutePaths(opt.paths)
		if err != nil {
			return nil, err
		}
		other = addIfExists(other, opt.param, abs)
	}

	other = addIfTrue(other, ParamAllowIncompleteClasspath, cfg.AllowIncompleteClasspath)
	other = addIfTrue(other, ParamReportUnsupportedElementsAtRuntime, cfg.ReportUnsupportedElementsAtRuntime)
	other = addIfTrue(other, ParamReportExceptionStackTraces, cfg.ReportExceptionStackTraces)
	other = addIfTrue(other, ParamTraceClassInitialization, cfg.TraceClassInitialization)
	other = addIfTrue(other, ParamNoFallback, cfg.NoFallback)
	other = addIfTrue(other, ParamDebugAttach, cfg.DebugAttach)
	other = addIfTrue(other, ParamPrintClassInitialization, cfg.PrintClassInitialization)

	other = append(other,
		combine(ParamMainClass, cfg.MainClass),
		combine(ParamImageName, cfg.ImageName),
	)

	other = append(other, lo.MapToSlice(cfg.SystemProperties, func(k, v string) string {
		return combine(SystemPropertyPrefix+k, v)
	})...)
	other = append(other, lo.Map(cfg.VMFlags, func(flag string, _ int) string {
		return VMFlagPrefix + flag
	})...)
	other = append(other, cfg.AdditionalArguments...)

	slices.Sort(other)

	args := make([]string, 0, len(other)+2)
	args = append(args, ParamClassPath, joinSorted(classPath, string(filepath.ListSeparator)))
	return append(args, other...), nil
}

// absolutePaths converts paths to absolute form. Empty entries are dropped.
func (b ArgumentBuilder) absolutePaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range lo.Compact(paths) {
		abs, err := b.absolute(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %q: %w", p, err)
		}
		out = append(out, abs)
	}
	return out, nil
}

// absolute prefixes a relative p with the base directory. The result is not
// cleaned; "." and ".." segments are kept as given.
func (b ArgumentBuilder) absolute(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	base, err := b.base()
	if err != nil {
		return "", err
	}
	return base + string(filepath.Separator) + p, nil
}

func (b ArgumentBuilder) base() (string, error) {
	if b.WorkingDir == "" {
		return os.Getwd()
	}
	return filepath.Abs(b.WorkingDir)
}

func addIfTrue(args []string, param string, value bool) []string {
	if value {
		args = append(args, param)
	}
	return args
}

func addIfExists(args []string, param string, values []string) []string {
	values = lo.Compact(values)
	if len(values) == 0 {
		return args
	}
	return append(args, combine(param, joinSorted(values, ValueSeparator)))
}

func combine(param, value string) string {
	return param + "=" + value
}

// joinSorted sorts a copy of values and joins them with sep.
func joinSorted(values []string, sep string) string {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return strings.Join(sorted, sep)
}
