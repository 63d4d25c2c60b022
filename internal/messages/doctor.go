package messages

// Doctor messages cover check names, results, and recommendations.
const (
	DoctorCheckNameStructure = "structure"
	DoctorCheckNameGitignore = "gitignore"
	DoctorCheckNameDrift     = "drift"

	DoctorMissingRequiredDirFmt       = "missing required directory: %s"
	DoctorMissingRequiredDirRecommend = "run 'rulekit <target-dir>' to create the standard layout"
	DoctorPathNotDirFmt               = "%s exists but is not a directory"
	DoctorPathNotDirRecommend         = "move the conflicting file aside and re-run 'rulekit <target-dir>'"
	DoctorDirExistsFmt                = "directory %s exists"

	DoctorGitignoreMissing          = ".gitignore does not exist"
	DoctorGitignoreMarkerMissingFmt = ".gitignore is missing marker line %q"
	DoctorGitignoreRecommend        = "re-run 'rulekit <target-dir>' to restore the marker lines"
	DoctorGitignoreOK               = "all marker lines present in .gitignore"
	DoctorGitignoreReadFailedFmt    = "failed to read .gitignore: %v"

	DoctorRuleMatchesFmt     = "rule %s matches the bundled version"
	DoctorRuleDriftedFmt     = "rule %s differs from the bundled version:\n%s"
	DoctorRuleDriftRecommend = "local edits are preserved by deploy; review the diff if the drift is unintentional"
	DoctorRuleMissingFmt     = "rule %s has not been deployed"
	DoctorRuleLocalFmt       = "rule %s is local to this project (not bundled)"
	DoctorRuleReadFailedFmt  = "failed to read rule %s: %v"

	DoctorDriftTruncatedNotice = "[diff truncated]"
)
