package nativeimage

// =================================
// native-image option vocabulary
// =================================
//
// These tokens are passed to native-image unchanged and must match its CLI
// exactly.
const (
	ParamClassPath = "-cp"

	ParamVerbose                  = "--verbose"
	ParamNoFallback               = "--no-fallback"
	ParamAllowIncompleteClasspath = "--allow-incomplete-classpath"
	ParamDebugAttach              = "--debug-attach"
	ParamInitializeAtBuildTime    = "--initialize-at-build-time"

	ParamReportExceptionStackTraces         = "-H:+ReportExceptionStackTraces"
	ParamReportUnsupportedElementsAtRuntime = "-H:+ReportUnsupportedElementsAtRuntime"

	// ParamTraceClassInitialization is its own token. Older builders sent the
	// trace option as ParamPrintClassInitialization instead.
	ParamTraceClassInitialization = "-H:+TraceClassInitialization"
	ParamPrintClassInitialization = "-H:+PrintClassInitialization"

	ParamReflectionConfigurationFiles   = "-H:ReflectionConfigurationFiles"
	ParamResourceConfigurationFiles     = "-H:ResourceConfigurationFiles"
	ParamDynamicProxyConfigurationFiles = "-H:DynamicProxyConfigurationFiles"

	ParamMainClass = "-H:Class"
	ParamImageName = "-H:Name"
)

// Prefixes for per-entry options.
const (
	SystemPropertyPrefix = "-D"
	VMFlagPrefix         = "-J"
)

// ValueSeparator joins the values of a multi-valued option.
const ValueSeparator = ","
