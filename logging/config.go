package logging

// Config defines the `logging` section of navpanel.yml.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	// Can be overridden by the NAVPANEL_LOG_LEVEL environment variable.
	Level string `yaml:"level,omitempty" json:"level,omitempty" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=warning,enum=error,description=Minimum log level"`

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	// Can be enabled with the NAVPANEL_LOG_CALLER=true environment variable.
	ReportCaller bool `yaml:"report_caller,omitempty" json:"report_caller,omitempty" jsonschema:"description=Include caller file and line in log output"`

	// File configures logging to a file.
	File FileSinkConfig `yaml:"file,omitempty" json:"file,omitempty" jsonschema:"description=File sink settings"`

	// Format configures the appearance of the log output.
	Format FormatConfig `yaml:"format,omitempty" json:"format,omitempty" jsonschema:"description=Formatter settings"`
}

// FileSinkConfig configures the file logging sink.
type FileSinkConfig struct {
	// Disabled turns the file sink off. It is on by default.
	Disabled bool `yaml:"disabled,omitempty" json:"disabled,omitempty" jsonschema:"description=Disable the log file"`
	// Path is the full path to the log file. Defaults to the state logs directory.
	Path string `yaml:"path,omitempty" json:"path,omitempty" jsonschema:"description=Log file path (~ is expanded)"`
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (rich text), "simple" (minimal text), or "json".
	Preset string `yaml:"preset,omitempty" json:"preset,omitempty" jsonschema:"enum=default,enum=simple,enum=json,description=Formatter preset"`
	// DisableTimestamp disables the timestamp from the "default" and "simple" formats.
	DisableTimestamp bool `yaml:"disable_timestamp,omitempty" json:"disable_timestamp,omitempty"`
	// DisableComponent disables the component name from the "default" and "simple" formats.
	DisableComponent bool `yaml:"disable_component,omitempty" json:"disable_component,omitempty"`
	// StructuredToStderr controls when structured logs are sent to stderr.
	// Can be "auto" (default), "always", or "never".
	StructuredToStderr string `yaml:"structured_to_stderr,omitempty" json:"structured_to_stderr,omitempty" jsonschema:"enum=auto,enum=always,enum=never"`
}
