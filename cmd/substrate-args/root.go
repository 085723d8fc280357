package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/provide-io/flavor/go/substrate/pkg/argfile"
	"github.com/provide-io/flavor/go/substrate/pkg/logging"
	"github.com/provide-io/flavor/go/substrate/pkg/manifest"
	"github.com/provide-io/flavor/go/substrate/pkg/nativeimage"
	"github.com/provide-io/flavor/go/substrate/pkg/render"
)

const envPrefix = "SUBSTRATE"

// Flag names double as viper keys.
const (
	flagManifest = "manifest"
	flagFormat   = "format"
	flagOutput   = "output"
	flagArgfile  = "argfile"
	flagExtra    = "extra"
	flagWorkDir  = "workdir"
	flagLogLevel = "log-level"
	flagVersion  = "version"
)

var (
	errNoManifest        = errors.New("❌ at least one --manifest is required (or set SUBSTRATE_MANIFEST)")
	errOutputWithArgfile = errors.New("❌ --output and --argfile cannot be used together (check SUBSTRATE_OUTPUT and SUBSTRATE_ARGFILE)")
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "substrate-args",
		Short: "Generate GraalVM native-image arguments",
		Long: `Generate a reproducible GraalVM native-image argument vector from one or
more build manifests.

Manifests are YAML (or JSON) files and are merged in the order given. The
classpath always comes first; all other arguments are sorted so that the same
configuration always produces the same arguments.

Every flag can also be set through the environment, e.g. SUBSTRATE_LOG_LEVEL
or SUBSTRATE_FORMAT.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runArgs(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceP(flagManifest, "m", nil, "Path to a build manifest (repeatable, later files override earlier ones)")
	flags.StringP(flagFormat, "f", string(render.FormatLines), fmt.Sprintf("Output format (%s)", formatNames()))
	flags.StringP(flagOutput, "o", "", "Write an argument file to this path instead of printing")
	flags.Bool(flagArgfile, false, "Write an argument file to the cache directory and print its @path")
	flags.String(flagExtra, "", "Additional arguments, quoted as in an argument file")
	flags.String(flagWorkDir, "", "Directory relative paths are resolved against (defaults to CWD)")
	flags.String(flagLogLevel, "", "Log level (trace, debug, info, warn, error; prefix json: for JSON logs)")
	flags.BoolP(flagVersion, "V", false, "Show version information")
	cmd.MarkFlagsMutuallyExclusive(flagOutput, flagArgfile)

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	return cmd
}

func formatNames() string {
	names := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func runArgs(cmd *cobra.Command, v *viper.Viper) error {
	out := cmd.OutOrStdout()

	if v.GetBool(flagVersion) {
		fmt.Fprintf(out, "substrate-args %s\n", version)
		fmt.Fprintf(out, "Built: %s\n", getBuildTimestamp())
		return nil
	}

	// Flags alone are checked by cobra; this also covers values from the environment.
	if v.GetString(flagOutput) != "" && v.GetBool(flagArgfile) {
		return errOutputWithArgfile
	}

	level, source := logging.ResolveLogLevel(v.GetString(flagLogLevel))
	logger := logging.NewLogger("substrate-args", level, cmd.ErrOrStderr())
	logger.Debug("Log level", "level", level, "source", source)

	format, err := render.ParseFormat(v.GetString(flagFormat))
	if err != nil {
		return err
	}

	manifests := v.GetStringSlice(flagManifest)
	if len(manifests) == 0 {
		return errNoManifest
	}

	args, err := buildArguments(logger, manifests, v.GetString(flagExtra), v.GetString(flagWorkDir))
	if err != nil {
		return err
	}
	fingerprint := nativeimage.Fingerprint(args)
	logger.Info("✅ Built native-image arguments", "count", len(args), "fingerprint", fingerprint)

	switch {
	case v.GetBool(flagArgfile):
		path, err := argfile.DefaultPath(fingerprint)
		if err != nil {
			return err
		}
		if err := argfile.Write(path, args); err != nil {
			return err
		}
		logger.Debug("💾 Wrote argument file", "path", path)
		_, err = fmt.Fprintf(out, "@%s\n", path)
		return err
	case v.GetString(flagOutput) != "":
		path := v.GetString(flagOutput)
		if err := argfile.Write(path, args); err != nil {
			return err
		}
		logger.Debug("💾 Wrote argument file", "path", path)
		return nil
	default:
		return render.Render(out, format, args)
	}
}

func buildArguments(logger hclog.Logger, manifests []string, extra, workDir string) ([]string, error) {
	cfg, err := manifest.Load(manifests, logger)
	if err != nil {
		return nil, err
	}

	if extra != "" {
		extraArgs, err := argfile.Decode(extra)
		if err != nil {
			return nil, fmt.Errorf("invalid --extra arguments: %w", err)
		}
		logger.Debug("Adding extra arguments", "count", len(extraArgs))
		cfg.AdditionalArguments = append(cfg.AdditionalArguments, extraArgs...)
	}

	args, err := nativeimage.ArgumentBuilder{WorkingDir: workDir}.Build(cfg)
	if err != nil {
		logger.Error("❌ Invalid build configuration", "error", err)
		return nil, err
	}
	return args, nil
}
