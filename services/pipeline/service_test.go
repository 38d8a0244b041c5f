package pipeline

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/freighter-cd/freighter-cd-runner/api"
	"github.com/freighter-cd/freighter-cd-runner/services/evaluation"
)

func getPipelineService(branch string) (Service, chan struct{}, chan api.TailLogLine) {

	evaluationService, _ := evaluation.NewService(api.RunConfig{
		Branch:      branch,
		Trigger:     "push",
		InfraAction: api.InfraActionApply,
	})

	cancellationChannel := make(chan struct{})
	tailLogsChannel := make(chan api.TailLogLine, 10000)

	service, _ := NewService(evaluationService, cancellationChannel, tailLogsChannel)

	return service, cancellationChannel, tailLogsChannel
}

func TestRunStages(t *testing.T) {

	t.Run("RunsStagesInOrder", func(t *testing.T) {

		service, _, _ := getPipelineService("main")

		var order []string
		stages := []Stage{
			{Name: "build", When: "trigger == 'push' && branch == 'main'", Run: func(ctx context.Context) error {
				order = append(order, "build")
				return nil
			}},
			{Name: "quality", When: "status == 'succeeded'", Run: func(ctx context.Context) error {
				order = append(order, "quality")
				return nil
			}},
			{Name: "deploy", When: "status == 'succeeded'", Run: func(ctx context.Context) error {
				order = append(order, "deploy")
				return nil
			}},
		}

		// act
		stageResults, err := service.RunStages(context.Background(), stages)

		assert.Nil(t, err)
		assert.Equal(t, []string{"build", "quality", "deploy"}, order)
		assert.Equal(t, 3, len(stageResults))
		assert.True(t, api.HasSucceededStatus(stageResults))
	})

	t.Run("SkipsRemainingStagesAfterFailure", func(t *testing.T) {

		service, _, _ := getPipelineService("main")

		qualityRan := false
		deployRan := false
		stages := []Stage{
			{Name: "build", When: "trigger == 'push' && branch == 'main'", Run: func(ctx context.Context) error {
				return fmt.Errorf("tests failed")
			}},
			{Name: "quality", When: "status == 'succeeded'", Run: func(ctx context.Context) error {
				qualityRan = true
				return nil
			}},
			{Name: "deploy", When: "status == 'succeeded'", Run: func(ctx context.Context) error {
				deployRan = true
				return nil
			}},
		}

		// act
		stageResults, err := service.RunStages(context.Background(), stages)

		assert.NotNil(t, err)
		assert.False(t, qualityRan)
		assert.False(t, deployRan)
		assert.Equal(t, api.StatusFailed, stageResults[0].Status)
		assert.Equal(t, api.StatusSkipped, stageResults[1].Status)
		assert.Equal(t, api.StatusSkipped, stageResults[2].Status)
		assert.Equal(t, api.StatusFailed, api.GetAggregatedStatus(stageResults))
	})

	t.Run("SkipsBuildStageWhenBranchDoesNotMatchFilter", func(t *testing.T) {

		service, _, _ := getPipelineService("feature/short-lived")

		buildRan := false
		stages := []Stage{
			{Name: "build", When: "trigger == 'push' && branch == 'main'", Run: func(ctx context.Context) error {
				buildRan = true
				return nil
			}},
		}

		// act
		stageResults, _ := service.RunStages(context.Background(), stages)

		assert.False(t, buildRan)
		assert.Equal(t, api.StatusSkipped, stageResults[0].Status)
	})

	t.Run("ReturnsErrorWhenPipelineHasNoStages", func(t *testing.T) {

		service, _, _ := getPipelineService("main")

		// act
		_, err := service.RunStages(context.Background(), []Stage{})

		assert.NotNil(t, err)
	})

	t.Run("RecordsErrorMessageAsLogLineOnFailedStage", func(t *testing.T) {

		service, _, _ := getPipelineService("main")

		stages := []Stage{
			{Name: "build", When: "trigger == 'push' && branch == 'main'", Run: func(ctx context.Context) error {
				return fmt.Errorf("tests failed")
			}},
		}

		// act
		stageResults, _ := service.RunStages(context.Background(), stages)

		assert.Equal(t, 1, len(stageResults[0].LogLines))
		assert.Equal(t, "tests failed", stageResults[0].LogLines[0].Text)
		assert.Equal(t, 1, stageResults[0].ExitCode)
	})

	t.Run("MarksStageFailedWhenWhenClauseIsMalformed", func(t *testing.T) {

		service, _, _ := getPipelineService("main")

		buildRan := false
		stages := []Stage{
			{Name: "build", When: "trigger == 'push' && (", Run: func(ctx context.Context) error {
				buildRan = true
				return nil
			}},
		}

		// act
		stageResults, err := service.RunStages(context.Background(), stages)

		assert.NotNil(t, err)
		assert.False(t, buildRan)
		assert.Equal(t, api.StatusFailed, stageResults[0].Status)
		assert.Equal(t, api.StatusFailed, api.GetAggregatedStatus(stageResults))
	})

	t.Run("RecordsImageDetailsSentOverLogStream", func(t *testing.T) {

		service, _, tailLogsChannel := getPipelineService("main")

		stages := []Stage{
			{Name: "build", When: "trigger == 'push' && branch == 'main'", Run: func(ctx context.Context) error {
				tailLogsChannel <- api.TailLogLine{
					Stage:     "build",
					Image:     "registry.example.com/freighter-api:v1.0.0-0a1b2c3",
					ImageSize: 52428800,
				}
				return nil
			}},
		}

		// act
		stageResults, err := service.RunStages(context.Background(), stages)

		assert.Nil(t, err)
		assert.Equal(t, "registry.example.com/freighter-api:v1.0.0-0a1b2c3", stageResults[0].Image)
		assert.Equal(t, int64(52428800), stageResults[0].ImageSize)
	})

	t.Run("MarksRemainingStagesCanceledAfterCancellation", func(t *testing.T) {

		service, cancellationChannel, _ := getPipelineService("main")
		go service.StopPipelineOnCancellation()

		stages := []Stage{
			{Name: "build", When: "trigger == 'push' && branch == 'main'", Run: func(ctx context.Context) error {
				close(cancellationChannel)
				// give the cancellation watcher a chance to flip the flag
				time.Sleep(50 * time.Millisecond)
				return nil
			}},
			{Name: "quality", When: "status == 'succeeded'", Run: func(ctx context.Context) error {
				t.Error("quality stage must not run after cancellation")
				return nil
			}},
			{Name: "deploy", When: "status == 'succeeded'", Run: func(ctx context.Context) error {
				t.Error("deploy stage must not run after cancellation")
				return nil
			}},
		}

		// act
		stageResults, err := service.RunStages(context.Background(), stages)

		assert.NotNil(t, err)
		assert.Equal(t, api.StatusCanceled, api.GetAggregatedStatus(stageResults))
	})
}
