package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAggregatedStatus(t *testing.T) {

	t.Run("ReturnsSucceededWhenAllStagesSucceeded", func(t *testing.T) {

		stages := []*StageResult{
			{Stage: "build-and-verify", Status: StatusSucceeded},
			{Stage: "quality-gate", Status: StatusSucceeded},
			{Stage: "deploy", Status: StatusSucceeded},
		}

		// act
		status := GetAggregatedStatus(stages)

		assert.Equal(t, StatusSucceeded, status)
	})

	t.Run("ReturnsFailedWhenAnyStageFailed", func(t *testing.T) {

		stages := []*StageResult{
			{Stage: "build-and-verify", Status: StatusSucceeded},
			{Stage: "quality-gate", Status: StatusFailed},
			{Stage: "deploy", Status: StatusSkipped},
		}

		// act
		status := GetAggregatedStatus(stages)

		assert.Equal(t, StatusFailed, status)
	})

	t.Run("ReturnsCanceledWhenAnyStageGotCanceled", func(t *testing.T) {

		stages := []*StageResult{
			{Stage: "build-and-verify", Status: StatusFailed},
			{Stage: "quality-gate", Status: StatusCanceled},
		}

		// act
		status := GetAggregatedStatus(stages)

		assert.Equal(t, StatusCanceled, status)
	})

	t.Run("ReturnsSucceededWhenStagesWereSkipped", func(t *testing.T) {

		stages := []*StageResult{
			{Stage: "build-and-verify", Status: StatusSucceeded},
			{Stage: "quality-gate", Status: StatusSkipped},
		}

		// act
		status := GetAggregatedStatus(stages)

		assert.Equal(t, StatusSucceeded, status)
	})
}

func TestHasUnknownStatus(t *testing.T) {

	t.Run("ReturnsTrueWhenRunLogHasNoStages", func(t *testing.T) {

		runLog := RunLog{}

		// act
		unknown := runLog.HasUnknownStatus()

		assert.True(t, unknown)
	})

	t.Run("ReturnsTrueWhenAnyStageIsStillRunning", func(t *testing.T) {

		runLog := RunLog{
			Stages: []*StageResult{
				{Stage: "build-and-verify", Status: StatusRunning},
			},
		}

		// act
		unknown := runLog.HasUnknownStatus()

		assert.True(t, unknown)
	})

	t.Run("ReturnsFalseWhenAllStagesHaveFinalStatus", func(t *testing.T) {

		runLog := RunLog{
			Stages: []*StageResult{
				{Stage: "build-and-verify", Status: StatusSucceeded},
				{Stage: "quality-gate", Status: StatusFailed},
			},
		}

		// act
		unknown := runLog.HasUnknownStatus()

		assert.False(t, unknown)
	})
}

func TestInfraActionFromDestroyFlag(t *testing.T) {

	t.Run("ReturnsApplyWhenDestroyFlagIsFalse", func(t *testing.T) {

		// act
		action := InfraActionFromDestroyFlag(false)

		assert.Equal(t, InfraActionApply, action)
	})

	t.Run("ReturnsDestroyWhenDestroyFlagIsTrue", func(t *testing.T) {

		// act
		action := InfraActionFromDestroyFlag(true)

		assert.Equal(t, InfraActionDestroy, action)
	})
}

func TestGetImageNameAndTag(t *testing.T) {

	t.Run("SplitsImageReferenceIntoNameAndTag", func(t *testing.T) {

		assert.Equal(t, "acme/freighter-api", GetImageName("acme/freighter-api:v1.0.0-abcdef1"))
		assert.Equal(t, "v1.0.0-abcdef1", GetImageTag("acme/freighter-api:v1.0.0-abcdef1"))
	})

	t.Run("DefaultsTagToLatestWhenReferenceHasNoTag", func(t *testing.T) {

		assert.Equal(t, "latest", GetImageTag("acme/freighter-api"))
	})

	t.Run("ReturnsEmptyStringsForEmptyReference", func(t *testing.T) {

		assert.Equal(t, "", GetImageName(""))
		assert.Equal(t, "", GetImageTag(""))
	})
}
