package utils

const (
	// ApplicationName is the tool name used in output headers and messages.
	ApplicationName = "treegen"
	// GlobalConfigDirectoryName is the directory under the user home that holds the global configuration.
	GlobalConfigDirectoryName = ".config/treegen"
	// GlobalConfigFileName is the configuration file name inside the global configuration directory.
	GlobalConfigFileName = "treegen.yaml"
	// LocalConfigFileName is the per-project configuration file name.
	LocalConfigFileName = ".treegen.yaml"
	// LoggerInitializationFailedMessageFormat reports logger construction failure.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage reports a terminal application error.
	ApplicationExecutionFailedMessage = "Error"
)
