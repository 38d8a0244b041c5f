package api

// InfraAction selects which of the two mutually exclusive infrastructure
// operations the deployment stage executes; it is chosen once at run start
type InfraAction string

const (
	// InfraActionApply applies the planned infrastructure changes
	InfraActionApply InfraAction = "apply"
	// InfraActionDestroy tears the environment's infrastructure down
	InfraActionDestroy InfraAction = "destroy"
)

// InfraActionFromDestroyFlag maps the destructive-operation flag onto the
// action type, so only one of apply/destroy can ever run per run
func InfraActionFromDestroyFlag(destroy bool) InfraAction {
	if destroy {
		return InfraActionDestroy
	}
	return InfraActionApply
}

// RegistryCredentials authenticate pushes to the container image registry
type RegistryCredentials struct {
	Server   string
	Username string
	Password string
}

// AnalysisCredentials authenticate submissions to the static analysis service
type AnalysisCredentials struct {
	ServerURL string
	Token     string
}

// ControlServerConfig points at the CD control server receiving run events and logs
type ControlServerConfig struct {
	EventsURL   string
	PostLogsURL string
	JWT         string
}

// RunConfig is the immutable configuration for a single pipeline run; it is
// constructed once in main from flags, envvars and the manifest and passed to
// every stage, so no stage reads ambient process state
type RunConfig struct {
	App       string
	Version   string
	Branch    string
	Revision  string
	Trigger   string
	RepoURL   string
	RepoOwner string
	RepoName  string
	WorkDir   string
	RunID     string

	Environment string
	Region      string
	AccountID   string
	RoleARN     string

	InfraAction InfraAction

	Registry      RegistryCredentials
	Analysis      AnalysisCredentials
	ControlServer ControlServerConfig
}

// BuildOutput is the typed message handed from the build stage to the quality
// gate and deployment stages; downstream stages never look build results up
// from ambient storage by string key
type BuildOutput struct {
	Revision         string
	VersionTag       string
	ImageRef         string
	CoverageArtifact string
}

// SecretValues lists every injected credential value, for obfuscating them in logs
func (c *RunConfig) SecretValues() []string {
	return []string{
		c.Registry.Password,
		c.Analysis.Token,
		c.ControlServer.JWT,
	}
}
