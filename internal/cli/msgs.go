package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Build Konveyor analyzer migration rules"
	MsgRootLong  = `scribe builds Konveyor/Kantra static-analysis migration rules from JSON
parameters and prints them as YAML rulesets.

Every capability is an operation such as CREATE_JAVA_CLASS_RULE or
VALIDATE_RULE. Run 'scribe ops' to list the operations enabled by the
current configuration and 'scribe exec OPERATION PAYLOAD' to run one.`
	MsgExecShort = "Run an operation with a JSON payload"
	MsgExecLong  = `Run an operation with a JSON payload.

The payload is read from the second argument, from --file, or from stdin
when it is not a terminal. An empty payload is treated as {}.

Examples:
  scribe exec CREATE_FILE_RULE '{"ruleID":"r1","filePattern":"pom.xml","message":"m","category":"OPTIONAL","effort":1}'
  scribe exec VALIDATE_RULE --file payload.json
  scribe exec GET_HELP '{"topic":"java"}'`
	MsgOpsShort        = "List available operations"
	MsgOpsLong         = "List the operations enabled by the current configuration, with their required parameters."
	MsgTopicsShort     = "Display help topics"
	MsgTopicsLong      = "Without arguments, list the available help topics. With a topic name, display it."
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Print the configuration after merging defaults, the config file, .env and SCRIBE_* environment variables, as TOML."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgAvailableOps   = "Available operations:"
	MsgNoOps          = "No operations are enabled."
	MsgOpDisabled     = "(disabled)"
	MsgRequiredParams = "  required: %s"
	MsgAvailableTopic = "Available help topics:"
	MsgTopicItem      = "  %s"
	MsgTopicHint      = "\nUse 'scribe topics <topic>' to read a topic."

	// Errors
	MsgErrUnknownTopic = "unknown topic '%s'. Available topics: %s"
	MsgErrPayloadBoth  = "pass the payload either as an argument or with --file, not both"
	MsgErrReadPayload  = "failed to read payload"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/scribe/config.toml)"
	MsgFlagFormat  = "Output format: auto, term or text"
	MsgFlagLogFile = "Log file path, '-' to disable (default $XDG_STATE_HOME/scribe/scribe.log)"
	MsgFlagFile    = "Read the payload from a file, '-' for stdin"
	MsgFlagAll     = "Include disabled operations"
)
