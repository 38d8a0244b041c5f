package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"

	"github.com/freighter-cd/freighter-cd-runner/api"
	"github.com/freighter-cd/freighter-cd-runner/clients/deployapi"
	"github.com/freighter-cd/freighter-cd-runner/clients/docker"
	"github.com/freighter-cd/freighter-cd-runner/clients/obfuscation"
	"github.com/freighter-cd/freighter-cd-runner/manifest"
	"github.com/freighter-cd/freighter-cd-runner/services/build"
	"github.com/freighter-cd/freighter-cd-runner/services/deploy"
	"github.com/freighter-cd/freighter-cd-runner/services/pipeline"
	"github.com/freighter-cd/freighter-cd-runner/services/quality"
)

// Service runs one pipeline run end to end
//go:generate mockgen -package=runner -destination ./mock.go -source=service.go
type Service interface {
	RunPipeline(runAsJob bool)
}

// NewService returns a new runner.Service
func NewService(config api.RunConfig, mft manifest.Manifest, version string, pipelineService pipeline.Service, buildService build.Service, qualityService quality.Service, deployService deploy.Service, deployapiClient deployapi.Client, dockerClient docker.Client, obfuscationClient obfuscation.Client) (Service, error) {
	return &service{
		config:            config,
		mft:               mft,
		version:           version,
		pipelineService:   pipelineService,
		buildService:      buildService,
		qualityService:    qualityService,
		deployService:     deployService,
		deployapiClient:   deployapiClient,
		dockerClient:      dockerClient,
		obfuscationClient: obfuscationClient,
	}, nil
}

type service struct {
	config            api.RunConfig
	mft               manifest.Manifest
	version           string
	pipelineService   pipeline.Service
	buildService      build.Service
	qualityService    quality.Service
	deployService     deploy.Service
	deployapiClient   deployapi.Client
	dockerClient      docker.Client
	obfuscationClient obfuscation.Client

	buildOutput api.BuildOutput
}

func (s *service) RunPipeline(runAsJob bool) {

	closer := s.initJaeger(s.config.App)
	defer closer.Close()

	runLog := api.RunLog{
		RepoSource:   "github.com",
		RepoOwner:    s.config.RepoOwner,
		RepoName:     s.config.RepoName,
		RepoBranch:   s.config.Branch,
		RepoRevision: s.config.Revision,
		Stages:       make([]*api.StageResult, 0),
	}

	if !runAsJob {
		fmt.Println(aurora.Cyan(fmt.Sprintf("freighter-cd-runner %v", s.version)).Bold())
	}
	log.Info().Msgf("Starting %v run for app %v on branch %v...", s.config.InfraAction, s.config.App, s.config.Branch)

	rootSpan := opentracing.StartSpan("RunPipeline")
	defer rootSpan.Finish()

	ctx := context.Background()
	ctx = opentracing.ContextWithSpan(ctx, rootSpan)

	// set running state, so a restarted run shows up as running again
	_ = s.deployapiClient.SendRunStartedEvent(ctx)

	// listen for cancellation in order to stop the pipeline in between stages
	go s.pipelineService.StopPipelineOnCancellation()

	// initialize the obfuscation pass so injected credentials never reach the logs
	s.obfuscationClient.CollectSecrets(s.config)

	err := s.dockerClient.CreateDockerClient()
	if err != nil {
		s.deployapiClient.HandleFatal(ctx, runLog, err, "Failed creating a docker client")
	}

	stages := s.assembleStages()

	runLog.Stages, err = s.pipelineService.RunStages(ctx, stages)
	if err != nil && runLog.HasUnknownStatus() {
		s.deployapiClient.HandleFatal(ctx, runLog, err, "Executing pipeline stages failed")
	}

	// the build stage may have resolved the revision from the branch head
	if s.buildOutput.Revision != "" {
		runLog.RepoRevision = s.buildOutput.Revision
		s.deployapiClient.SetResolvedRevision(s.buildOutput.Revision)
	}

	runStatus := api.GetAggregatedStatus(runLog.Stages)
	_ = s.deployapiClient.SendRunFinishedEvent(ctx, runStatus)
	_ = s.deployapiClient.SendRunLogEvent(ctx, runLog)

	// finish and flush so the spans reach the tracing backend
	rootSpan.Finish()
	closer.Close()

	api.RenderStats(runLog.Stages)

	if runAsJob {
		os.Exit(0)
	} else {
		api.HandleExit(runLog.Stages)
	}
}

// assembleStages wires the three stages; the build output flows to downstream
// stages as a typed value
func (s *service) assembleStages() []pipeline.Stage {

	return []pipeline.Stage{
		{
			Name: "build",
			When: buildWhenExpression(s.mft.Trigger.Branches),
			Run: func(ctx context.Context) (err error) {
				s.buildOutput, err = s.buildService.Run(ctx, "build", s.mft)
				return err
			},
		},
		{
			Name: "quality",
			When: "status == 'succeeded'",
			Run: func(ctx context.Context) error {
				return s.qualityService.Run(ctx, "quality", s.mft, s.buildOutput)
			},
		},
		{
			Name: "deploy",
			When: "status == 'succeeded'",
			Run: func(ctx context.Context) error {
				return s.deployService.Run(ctx, "deploy", s.mft, s.buildOutput)
			},
		},
	}
}

// buildWhenExpression gates the first stage on the push event and the
// manifest's trigger branches
func buildWhenExpression(branches []string) string {

	branchClauses := make([]string, 0, len(branches))
	for _, b := range branches {
		branchClauses = append(branchClauses, fmt.Sprintf("branch == '%v'", b))
	}

	return fmt.Sprintf("trigger == 'push' && (%v)", strings.Join(branchClauses, " || "))
}

// initJaeger returns an instance of Jaeger Tracer that can be configured with environment variables
// https://github.com/jaegertracing/jaeger-client-go#environment-variables
func (s *service) initJaeger(service string) io.Closer {

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger config from environment variables failed")
	}

	closer, err := cfg.InitGlobalTracer(service, jaegercfg.Logger(jaeger.StdLogger))

	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger tracer failed")
	}

	return closer
}
