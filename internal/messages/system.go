package messages

// System messages cover shared infrastructure errors.
const (
	TemplatesReadErrFmt          = "read template %s: %w"
	TemplatesManifestParseErrFmt = "parse template manifest: %w"
	TemplatesManifestPathErrFmt  = "template manifest references missing asset %s"
	TemplatesRuleFrontMatterFmt  = "rule %s has malformed front matter"

	McpRunPromptServerFailedFmt = "failed to run rule prompt server: %w"

	PickerSelectionAborted = "rule selection aborted"
	PickerRunFormErrFmt    = "run rule selection form: %w"
)
