package quality

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/freighter-cd/freighter-cd-runner/api"
	"github.com/freighter-cd/freighter-cd-runner/clients/analysis"
	"github.com/freighter-cd/freighter-cd-runner/clients/artifact"
	"github.com/freighter-cd/freighter-cd-runner/manifest"
)

func getQualityService(ctrl *gomock.Controller) (Service, *artifact.MockClient, *analysis.MockClient) {

	artifactClient := artifact.NewMockClient(ctrl)
	analysisClient := analysis.NewMockClient(ctrl)

	config := api.RunConfig{
		Branch:   "main",
		Revision: "0a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a9b",
		WorkDir:  "/workdir",
		RunID:    "run-12345",
	}

	service, _ := NewService(config, artifactClient, analysisClient)

	return service, artifactClient, analysisClient
}

func getTestManifest(blocking bool) manifest.Manifest {
	return manifest.Manifest{
		Analysis: manifest.AnalysisConfig{
			ProjectKey:   "freighter-api",
			Organization: "freighter-cd",
			Sources:      ".",
			Blocking:     blocking,
		},
	}
}

func TestRun(t *testing.T) {

	t.Run("DownloadsCoverageArtifactAndSubmitsAnalysis", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, artifactClient, analysisClient := getQualityService(ctrl)

		artifactClient.EXPECT().ArtifactExists(gomock.Any(), "run-12345", "coverage.out").Return(true, nil)
		artifactClient.EXPECT().DownloadArtifact(gomock.Any(), "run-12345", "coverage.out", "/workdir/coverage.out").Return(nil)
		// the revision comes from the build output, not from the run config,
		// so a head resolved revision reaches the analysis service
		analysisClient.EXPECT().SubmitAnalysis(gomock.Any(), "quality", analysis.Params{
			ProjectKey:   "freighter-api",
			Organization: "freighter-cd",
			Sources:      ".",
			Branch:       "main",
			Revision:     "9f8e7d6c5b4a3f2e1d0c9b8a7f6e5d4c3b2a1f0e",
		}, "/workdir/coverage.out").Return(nil)

		// act
		err := service.Run(context.Background(), "quality", getTestManifest(false), api.BuildOutput{CoverageArtifact: "coverage.out", Revision: "9f8e7d6c5b4a3f2e1d0c9b8a7f6e5d4c3b2a1f0e"})

		assert.Nil(t, err)
	})

	t.Run("ReturnsErrorWhenCoverageArtifactDoesNotExist", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, artifactClient, _ := getQualityService(ctrl)

		artifactClient.EXPECT().ArtifactExists(gomock.Any(), "run-12345", "coverage.out").Return(false, nil)
		// neither download nor submission may happen for a missing artifact

		// act
		err := service.Run(context.Background(), "quality", getTestManifest(false), api.BuildOutput{CoverageArtifact: "coverage.out"})

		assert.NotNil(t, err)
	})

	t.Run("ReturnsNilWhenSubmissionFailsAndAnalysisIsAdvisory", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, artifactClient, analysisClient := getQualityService(ctrl)

		artifactClient.EXPECT().ArtifactExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		artifactClient.EXPECT().DownloadArtifact(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		analysisClient.EXPECT().SubmitAnalysis(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("503 service unavailable"))

		// act
		err := service.Run(context.Background(), "quality", getTestManifest(false), api.BuildOutput{CoverageArtifact: "coverage.out"})

		assert.Nil(t, err)
	})

	t.Run("ReturnsErrorWhenSubmissionFailsAndAnalysisIsBlocking", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, artifactClient, analysisClient := getQualityService(ctrl)

		artifactClient.EXPECT().ArtifactExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		artifactClient.EXPECT().DownloadArtifact(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		analysisClient.EXPECT().SubmitAnalysis(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("503 service unavailable"))

		// act
		err := service.Run(context.Background(), "quality", getTestManifest(true), api.BuildOutput{CoverageArtifact: "coverage.out"})

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorWhenDownloadFails", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, artifactClient, _ := getQualityService(ctrl)

		artifactClient.EXPECT().ArtifactExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		artifactClient.EXPECT().DownloadArtifact(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("connection reset"))

		// act
		err := service.Run(context.Background(), "quality", getTestManifest(false), api.BuildOutput{CoverageArtifact: "coverage.out"})

		assert.NotNil(t, err)
	})
}
