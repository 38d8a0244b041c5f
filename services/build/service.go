package build

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"

	"github.com/freighter-cd/freighter-cd-runner/api"
	"github.com/freighter-cd/freighter-cd-runner/clients/artifact"
	"github.com/freighter-cd/freighter-cd-runner/clients/aws"
	"github.com/freighter-cd/freighter-cd-runner/clients/command"
	"github.com/freighter-cd/freighter-cd-runner/clients/docker"
	"github.com/freighter-cd/freighter-cd-runner/clients/git"
	"github.com/freighter-cd/freighter-cd-runner/clients/scanner"
	"github.com/freighter-cd/freighter-cd-runner/manifest"
)

// Service runs the build-and-verify stage: source acquisition, tests with
// coverage, image build, the vulnerability gate and only then the push
//go:generate mockgen -package=build -destination ./mock.go -source=service.go
type Service interface {
	Run(ctx context.Context, stage string, mft manifest.Manifest) (output api.BuildOutput, err error)
}

// NewService returns a new build.Service
func NewService(config api.RunConfig, gitClient git.Client, commandClient command.Client, artifactClient artifact.Client, awsClient aws.Client, dockerClient docker.Client, scannerClient scanner.Client, tailLogsChannel chan api.TailLogLine) (Service, error) {
	return &service{
		config:          config,
		gitClient:       gitClient,
		commandClient:   commandClient,
		artifactClient:  artifactClient,
		awsClient:       awsClient,
		dockerClient:    dockerClient,
		scannerClient:   scannerClient,
		tailLogsChannel: tailLogsChannel,
	}, nil
}

type service struct {
	config          api.RunConfig
	gitClient       git.Client
	commandClient   command.Client
	artifactClient  artifact.Client
	awsClient       aws.Client
	dockerClient    docker.Client
	scannerClient   scanner.Client
	tailLogsChannel chan api.TailLogLine
}

func (s *service) Run(ctx context.Context, stage string, mft manifest.Manifest) (output api.BuildOutput, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunBuildStage")
	defer span.Finish()

	// clone at full depth, revision based tagging needs the full history
	log.Info().Msgf("[%v] Cloning %v at branch %v...", stage, s.config.RepoURL, s.config.Branch)
	err = s.gitClient.CloneRevision(ctx, s.config.RepoURL, s.config.Branch, s.config.Revision, s.config.WorkDir)
	if err != nil {
		return output, fmt.Errorf("failed cloning %v: %w", s.config.RepoURL, err)
	}

	revision := s.config.Revision
	if revision == "" {
		revision, err = s.gitClient.GetHeadRevision(ctx, s.config.WorkDir)
		if err != nil {
			return output, fmt.Errorf("failed resolving head revision: %w", err)
		}
	}

	output.Revision = revision
	output.VersionTag = api.GenerateVersionTag(mft.Version, revision)
	log.Info().Msgf("[%v] Version tag for this run is %v", stage, output.VersionTag)

	// run the tests with coverage before anything gets built
	log.Info().Msgf("[%v] Running test command \"%v\"...", stage, mft.Build.Test.Command)
	exitCode, err := s.commandClient.RunCommand(ctx, stage, s.config.WorkDir, nil, "/bin/sh", []string{"-c", mft.Build.Test.Command})
	if err != nil {
		return output, fmt.Errorf("test command failed with exit code %v: %w", exitCode, err)
	}

	output.CoverageArtifact = filepath.Base(mft.Build.Test.CoverageReport)
	coveragePath := filepath.Join(s.config.WorkDir, mft.Build.Test.CoverageReport)
	log.Info().Msgf("[%v] Uploading coverage report %v to the artifact store...", stage, output.CoverageArtifact)
	err = s.artifactClient.UploadArtifact(ctx, s.config.RunID, output.CoverageArtifact, coveragePath)
	if err != nil {
		return output, fmt.Errorf("failed uploading coverage report %v: %w", output.CoverageArtifact, err)
	}

	err = s.authenticateToRegistry(ctx, stage)
	if err != nil {
		return output, err
	}

	output.ImageRef = fmt.Sprintf("%v/%v:%v", mft.Build.Image.Namespace, mft.Build.Image.Name, output.VersionTag)
	buildArgs := map[string]string{
		"VERSION": output.VersionTag,
	}
	err = s.dockerClient.BuildImage(ctx, stage, s.config.WorkDir, mft.Build.Image.Dockerfile, output.ImageRef, buildArgs)
	if err != nil {
		return output, fmt.Errorf("failed building image %v: %w", output.ImageRef, err)
	}

	// report the built image and its size for the stage result
	imageSize, err := s.dockerClient.GetImageSize(ctx, output.ImageRef)
	if err != nil {
		log.Warn().Err(err).Msgf("[%v] Failed getting size of image %v", stage, output.ImageRef)
	}
	s.tailLogsChannel <- api.TailLogLine{
		Stage:     stage,
		Image:     output.ImageRef,
		ImageSize: imageSize,
	}

	// the gate runs between build and push, a blocked image never leaves the host
	report, err := s.scannerClient.ScanImage(ctx, stage, s.config.WorkDir, output.ImageRef)
	if err != nil {
		return output, fmt.Errorf("failed scanning image %v: %w", output.ImageRef, err)
	}
	err = s.scannerClient.ApplyGate(report)
	if err != nil {
		return output, err
	}

	err = s.dockerClient.PushImage(ctx, stage, output.ImageRef)
	if err != nil {
		return output, fmt.Errorf("failed pushing image %v: %w", output.ImageRef, err)
	}

	return output, nil
}

func (s *service) authenticateToRegistry(ctx context.Context, stage string) (err error) {

	if s.config.Registry.Password != "" {
		log.Info().Msgf("[%v] Using injected credentials for registry %v", stage, s.config.Registry.Server)
		s.dockerClient.SetRegistryCredentials(s.config.Registry)
		return nil
	}

	log.Info().Msgf("[%v] Obtaining registry credentials from the container registry...", stage)
	registryCredentials, err := s.awsClient.GetRegistryCredentials(ctx)
	if err != nil {
		return fmt.Errorf("failed obtaining registry credentials: %w", err)
	}
	s.dockerClient.SetRegistryCredentials(registryCredentials)

	return nil
}
