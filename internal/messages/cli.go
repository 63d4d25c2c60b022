package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command usage line.
	RootUse = "rulekit <target-dir>"
	// RootShort is the short description for the root command.
	RootShort = "Deploy the bundled Cursor rule set into a project"
	RootLong  = "rulekit copies the bundled Cursor rule files, reference docs, and\n" +
		".gitignore markers into a target project directory. Existing rule files\n" +
		"are never overwritten, so the command is safe to re-run at any time."

	RootVersionFlag = "Print version and exit"

	RootFlagInteractive = "Pick which rule files to deploy (requires an interactive terminal)"

	RootInteractiveRequiresTerminal = "interactive rule selection requires an interactive terminal; re-run without --interactive"

	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	VersionInvalidFmt = "version %q must be in the form vX.Y.Z or X.Y.Z"

	ResolveTargetErrFmt = "resolve target directory %q: %w"

	// DoctorUse is the doctor command usage line.
	DoctorUse   = "doctor <target-dir>"
	DoctorShort = "Check a deployed project for missing structure and rule drift"

	DoctorSuccessSummary = "All checks passed."
	DoctorFailureSummary = "Some checks failed. See recommendations above."

	DoctorStatusOKLabel   = "OK"
	DoctorStatusWarnLabel = "WARN"
	DoctorStatusFailLabel = "FAIL"

	DoctorFlagDiffLines = "Maximum diff lines shown per drifted rule"

	DoctorRecommendationFmt = "  recommendation: %s"

	// McpUse is the mcp command usage line.
	McpUse   = "mcp"
	McpShort = "Serve the bundled rule documents as MCP prompts over stdio"
)
