package quality

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"

	"github.com/freighter-cd/freighter-cd-runner/api"
	"github.com/freighter-cd/freighter-cd-runner/clients/analysis"
	"github.com/freighter-cd/freighter-cd-runner/clients/artifact"
	"github.com/freighter-cd/freighter-cd-runner/manifest"
)

// Service runs the quality gate stage: it fetches the coverage report persisted
// by the build stage and submits it to the static analysis service
//go:generate mockgen -package=quality -destination ./mock.go -source=service.go
type Service interface {
	Run(ctx context.Context, stage string, mft manifest.Manifest, buildOutput api.BuildOutput) (err error)
}

// NewService returns a new quality.Service
func NewService(config api.RunConfig, artifactClient artifact.Client, analysisClient analysis.Client) (Service, error) {
	return &service{
		config:         config,
		artifactClient: artifactClient,
		analysisClient: analysisClient,
	}, nil
}

type service struct {
	config         api.RunConfig
	artifactClient artifact.Client
	analysisClient analysis.Client
}

func (s *service) Run(ctx context.Context, stage string, mft manifest.Manifest, buildOutput api.BuildOutput) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunQualityStage")
	defer span.Finish()

	// a missing coverage artifact fails the stage, analysis is never skipped silently
	exists, err := s.artifactClient.ArtifactExists(ctx, s.config.RunID, buildOutput.CoverageArtifact)
	if err != nil {
		return fmt.Errorf("failed checking for coverage artifact %v: %w", buildOutput.CoverageArtifact, err)
	}
	if !exists {
		return fmt.Errorf("coverage artifact %v does not exist for run %v", buildOutput.CoverageArtifact, s.config.RunID)
	}

	coveragePath := filepath.Join(s.config.WorkDir, buildOutput.CoverageArtifact)
	log.Info().Msgf("[%v] Downloading coverage artifact %v...", stage, buildOutput.CoverageArtifact)
	err = s.artifactClient.DownloadArtifact(ctx, s.config.RunID, buildOutput.CoverageArtifact, coveragePath)
	if err != nil {
		return fmt.Errorf("failed downloading coverage artifact %v: %w", buildOutput.CoverageArtifact, err)
	}

	params := analysis.Params{
		ProjectKey:   mft.Analysis.ProjectKey,
		Organization: mft.Analysis.Organization,
		Sources:      mft.Analysis.Sources,
		Branch:       s.config.Branch,
		Revision:     buildOutput.Revision,
	}

	err = s.analysisClient.SubmitAnalysis(ctx, stage, params, coveragePath)
	if err != nil {
		if mft.Analysis.Blocking {
			return fmt.Errorf("static analysis submission failed: %w", err)
		}

		log.Warn().Err(err).Msgf("[%v] Static analysis submission failed, continuing because analysis is advisory", stage)
	}

	return nil
}
