package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/freighter-cd/freighter-cd-runner/api"
	"github.com/freighter-cd/freighter-cd-runner/clients/analysis"
	"github.com/freighter-cd/freighter-cd-runner/clients/artifact"
	"github.com/freighter-cd/freighter-cd-runner/clients/aws"
	"github.com/freighter-cd/freighter-cd-runner/clients/command"
	"github.com/freighter-cd/freighter-cd-runner/clients/deployapi"
	"github.com/freighter-cd/freighter-cd-runner/clients/docker"
	"github.com/freighter-cd/freighter-cd-runner/clients/git"
	"github.com/freighter-cd/freighter-cd-runner/clients/obfuscation"
	"github.com/freighter-cd/freighter-cd-runner/clients/scanner"
	"github.com/freighter-cd/freighter-cd-runner/clients/terraform"
	"github.com/freighter-cd/freighter-cd-runner/manifest"
	"github.com/freighter-cd/freighter-cd-runner/services/build"
	"github.com/freighter-cd/freighter-cd-runner/services/deploy"
	"github.com/freighter-cd/freighter-cd-runner/services/evaluation"
	"github.com/freighter-cd/freighter-cd-runner/services/pipeline"
	"github.com/freighter-cd/freighter-cd-runner/services/quality"
	"github.com/freighter-cd/freighter-cd-runner/services/runner"
)

var (
	version   string
	branch    string
	revision  string
	buildDate string
)

var (
	manifestPath = kingpin.Flag("manifest", "Path to the pipeline manifest.").Default(".freighter.yaml").OverrideDefaultFromEnvar("FREIGHTER_MANIFEST").String()
	workDir      = kingpin.Flag("workdir", "Working directory the repository gets cloned into.").Default("/freighter-work").OverrideDefaultFromEnvar("FREIGHTER_WORKDIR").String()
	runAsJob     = kingpin.Flag("run-as-job", "Run as a scheduled job reporting to the control server.").Default("false").OverrideDefaultFromEnvar("FREIGHTER_RUN_AS_JOB").Bool()
	destroy      = kingpin.Flag("destroy", "Tear the environment's infrastructure down instead of applying changes.").Default("false").OverrideDefaultFromEnvar("FREIGHTER_DESTROY").Bool()

	runID        = kingpin.Flag("run-id", "Unique identifier of this run.").Envar("FREIGHTER_RUN_ID").Required().String()
	gitBranch    = kingpin.Flag("git-branch", "Branch the push event happened on.").Envar("FREIGHTER_GIT_BRANCH").Required().String()
	gitRevision  = kingpin.Flag("git-revision", "Revision to check out; resolved from the branch head when empty.").Envar("FREIGHTER_GIT_REVISION").String()
	gitTrigger   = kingpin.Flag("trigger", "Event that triggered this run.").Default("push").OverrideDefaultFromEnvar("FREIGHTER_TRIGGER").String()
	repoURL      = kingpin.Flag("repo-url", "Clone url of the repository.").Envar("FREIGHTER_REPO_URL").Required().String()
	repoOwner    = kingpin.Flag("repo-owner", "Owner of the repository.").Envar("FREIGHTER_REPO_OWNER").String()
	repoName     = kingpin.Flag("repo-name", "Name of the repository.").Envar("FREIGHTER_REPO_NAME").String()
	gitUsername  = kingpin.Flag("git-username", "Username for cloning private repositories.").Envar("FREIGHTER_GIT_USERNAME").String()
	gitPassword  = kingpin.Flag("git-password", "Password or token for cloning private repositories.").Envar("FREIGHTER_GIT_PASSWORD").String()
	deployerRole = kingpin.Flag("role-arn", "Role assumed for deployment credentials.").Envar("FREIGHTER_ROLE_ARN").String()

	registryServer   = kingpin.Flag("registry-server", "Container registry server; auth is fetched from the registry when no password is injected.").Envar("FREIGHTER_REGISTRY_SERVER").String()
	registryUsername = kingpin.Flag("registry-username", "Container registry username.").Envar("FREIGHTER_REGISTRY_USERNAME").String()
	registryPassword = kingpin.Flag("registry-password", "Container registry password.").Envar("FREIGHTER_REGISTRY_PASSWORD").String()

	analysisServerURL = kingpin.Flag("analysis-server-url", "Url of the static analysis service.").Envar("FREIGHTER_ANALYSIS_SERVER_URL").String()
	analysisToken     = kingpin.Flag("analysis-token", "Token authenticating analysis submissions.").Envar("FREIGHTER_ANALYSIS_TOKEN").String()

	controlEventsURL   = kingpin.Flag("control-events-url", "Url to post run lifecycle events to.").Envar("FREIGHTER_CONTROL_EVENTS_URL").String()
	controlPostLogsURL = kingpin.Flag("control-post-logs-url", "Url to ship run logs to.").Envar("FREIGHTER_CONTROL_POST_LOGS_URL").String()
	controlJWT         = kingpin.Flag("control-jwt", "JWT authenticating calls to the control server.").Envar("FREIGHTER_CONTROL_JWT").String()

	artifactEndpoint  = kingpin.Flag("artifact-endpoint", "Endpoint of the artifact object store.").Envar("FREIGHTER_ARTIFACT_ENDPOINT").String()
	artifactAccessKey = kingpin.Flag("artifact-access-key", "Access key for the artifact object store.").Envar("FREIGHTER_ARTIFACT_ACCESS_KEY").String()
	artifactSecretKey = kingpin.Flag("artifact-secret-key", "Secret key for the artifact object store.").Envar("FREIGHTER_ARTIFACT_SECRET_KEY").String()
	artifactBucket    = kingpin.Flag("artifact-bucket", "Bucket holding run artifacts.").Default("freighter-artifacts").OverrideDefaultFromEnvar("FREIGHTER_ARTIFACT_BUCKET").String()
	artifactUseSSL    = kingpin.Flag("artifact-use-ssl", "Use tls towards the artifact object store.").Default("true").OverrideDefaultFromEnvar("FREIGHTER_ARTIFACT_USE_SSL").Bool()

	scannerPath   = kingpin.Flag("scanner-path", "Path to the vulnerability scanner binary.").Default("trivy").OverrideDefaultFromEnvar("FREIGHTER_SCANNER_PATH").String()
	terraformPath = kingpin.Flag("terraform-path", "Path to the terraform binary.").Default("terraform").OverrideDefaultFromEnvar("FREIGHTER_TERRAFORM_PATH").String()
)

func main() {

	kingpin.Parse()

	initLog()

	log.Info().Msgf("Starting freighter-cd-runner version %v (branch %v, revision %v, built %v)...", version, branch, revision, buildDate)

	mft, err := manifest.ReadManifestFromFile(*manifestPath)
	if err != nil {
		log.Fatal().Err(err).Msgf("Failed reading manifest %v", *manifestPath)
	}

	config := api.RunConfig{
		App:       mft.App,
		Version:   mft.Version,
		Branch:    *gitBranch,
		Revision:  *gitRevision,
		Trigger:   *gitTrigger,
		RepoURL:   *repoURL,
		RepoOwner: *repoOwner,
		RepoName:  *repoName,
		WorkDir:   *workDir,
		RunID:     *runID,

		Environment: mft.Deploy.Environment,
		Region:      mft.Deploy.Region,
		RoleARN:     *deployerRole,

		InfraAction: api.InfraActionFromDestroyFlag(*destroy),

		Registry: api.RegistryCredentials{
			Server:   *registryServer,
			Username: *registryUsername,
			Password: *registryPassword,
		},
		Analysis: api.AnalysisCredentials{
			ServerURL: *analysisServerURL,
			Token:     *analysisToken,
		},
		ControlServer: api.ControlServerConfig{
			EventsURL:   *controlEventsURL,
			PostLogsURL: *controlPostLogsURL,
			JWT:         *controlJWT,
		},
	}

	ctx := context.Background()

	cancellationChannel := make(chan struct{})
	go watchForCancellation(cancellationChannel)

	tailLogsChannel := make(chan api.TailLogLine, 10000)

	// clients
	obfuscationClient, err := obfuscation.NewClient()
	handleError(err, "Failed creating obfuscation client")

	commandClient, err := command.NewClient(obfuscationClient, tailLogsChannel)
	handleError(err, "Failed creating command client")

	gitClient, err := git.NewClient(*gitUsername, *gitPassword)
	handleError(err, "Failed creating git client")

	dockerClient, err := docker.NewClient(obfuscationClient, tailLogsChannel)
	handleError(err, "Failed creating docker client")

	artifactClient, err := artifact.NewClient(artifact.Config{
		Endpoint:  *artifactEndpoint,
		AccessKey: *artifactAccessKey,
		SecretKey: *artifactSecretKey,
		Bucket:    *artifactBucket,
		UseSSL:    *artifactUseSSL,
	})
	handleError(err, "Failed creating artifact client")

	scannerClient, err := scanner.NewClient(commandClient, *scannerPath, mft.Build.Scan.Severity, *mft.Build.Scan.IgnoreUnfixed)
	handleError(err, "Failed creating scanner client")

	analysisClient, err := analysis.NewClient(config.Analysis)
	handleError(err, "Failed creating analysis client")

	terraformClient, err := terraform.NewClient(commandClient, *terraformPath)
	handleError(err, "Failed creating terraform client")

	awsClient, err := aws.NewClient(ctx, mft.Deploy.Region)
	handleError(err, "Failed creating aws client")

	deployapiClient := deployapi.NewClient(config)

	// services
	evaluationService, err := evaluation.NewService(config)
	handleError(err, "Failed creating evaluation service")

	pipelineService, err := pipeline.NewService(evaluationService, cancellationChannel, tailLogsChannel)
	handleError(err, "Failed creating pipeline service")

	buildService, err := build.NewService(config, gitClient, commandClient, artifactClient, awsClient, dockerClient, scannerClient, tailLogsChannel)
	handleError(err, "Failed creating build service")

	qualityService, err := quality.NewService(config, artifactClient, analysisClient)
	handleError(err, "Failed creating quality service")

	deployService, err := deploy.NewService(config, awsClient, terraformClient)
	handleError(err, "Failed creating deploy service")

	runnerService, err := runner.NewService(config, mft, version, pipelineService, buildService, qualityService, deployService, deployapiClient, dockerClient, obfuscationClient)
	handleError(err, "Failed creating runner service")

	runnerService.RunPipeline(*runAsJob)
}

func initLog() {

	if *runAsJob {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		return
	}

	log.Logger = log.Logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func watchForCancellation(cancellationChannel chan struct{}) {

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	<-signals

	log.Info().Msg("Received termination signal, canceling the run...")
	close(cancellationChannel)
}

func handleError(err error, message string) {
	if err != nil {
		log.Fatal().Err(err).Msg(message)
	}
}
