package messages

// Deploy messages cover the deployer's progress lines and error formats.
const (
	DeployTargetRequired = "target directory is required"
	DeploySystemRequired = "deploy system is required"
	DeploySourceRequired = "deploy source filesystem is required"

	DeployCreatedTargetFmt     = "Created %s\n"
	DeploySeededReadmeFmt      = "Seeded %s\n"
	DeployCreatedDirFmt        = "Created %s\n"
	DeployCopiedRuleFmt        = "Deployed rule %s\n"
	DeploySkippedRuleFmt       = "Skipped rule %s (already present)\n"
	DeployMirroredDocsFmt      = "Mirrored docs into %s\n"
	DeployGitignoreUpToDate    = ".gitignore already up to date\n"
	DeployGitignoreCreatedFmt  = "Created %s\n"
	DeployGitignoreAppendedFmt = "Added %d marker line(s) to %s\n"
	DeployDoneFmt              = "Deployed rule set into %s\n"

	DeployFailedStatFmt       = "failed to stat %s: %w"
	DeployFailedCreateDirFmt  = "failed to create directory %s: %w"
	DeployFailedReadFmt       = "failed to read %s: %w"
	DeployFailedWriteFmt      = "failed to write %s: %w"
	DeployFailedReadSourceFmt = "failed to read bundled asset %s: %w"
	DeployFailedWalkSourceFmt = "failed to walk bundled docs tree: %w"
)
