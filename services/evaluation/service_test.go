package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freighter-cd/freighter-cd-runner/api"
)

func TestEvaluate(t *testing.T) {

	t.Run("ReturnsFalseIfInputIsEmpty", func(t *testing.T) {

		evaluationService := getEvaluationService()

		// act
		result, err := evaluationService.Evaluate("build", "", make(map[string]interface{}, 0))

		assert.NotNil(t, err)
		assert.False(t, result)
	})

	t.Run("ReturnsTrueIfInputEvaluatesToTrueWithoutParameters", func(t *testing.T) {

		evaluationService := getEvaluationService()

		// act
		result, _ := evaluationService.Evaluate("build", "3 > 2", make(map[string]interface{}, 0))

		assert.True(t, result)
	})

	t.Run("ReturnsTrueIfInputEvaluatesToTrueWithParameters", func(t *testing.T) {

		evaluationService := getEvaluationService()
		parameters := make(map[string]interface{}, 3)
		parameters["branch"] = "main"
		parameters["trigger"] = "push"
		parameters["status"] = "succeeded"

		// act
		result, _ := evaluationService.Evaluate("build", "status == 'succeeded' && branch == 'main'", parameters)

		assert.True(t, result)
	})

	t.Run("ReturnsFalseIfBranchDoesNotMatchFilter", func(t *testing.T) {

		evaluationService := getEvaluationService()
		parameters := make(map[string]interface{}, 3)
		parameters["branch"] = "feature/new-shiny"
		parameters["trigger"] = "push"
		parameters["status"] = "succeeded"

		// act
		result, err := evaluationService.Evaluate("build", "trigger == 'push' && branch == 'main'", parameters)

		assert.Nil(t, err)
		assert.False(t, result)
	})

	t.Run("ReturnsFalseIfInputIsMalformed", func(t *testing.T) {

		evaluationService := getEvaluationService()
		parameters := make(map[string]interface{}, 3)
		parameters["action"] = "apply"
		parameters["branch"] = "main"
		parameters["status"] = "succeeded"

		// act
		result, err := evaluationService.Evaluate("deploy", "action == 'apply' || action == 'destroy", parameters)

		assert.NotNil(t, err)
		assert.False(t, result)
	})

	t.Run("ReturnsErrorIfResultIsNotBoolean", func(t *testing.T) {

		evaluationService := getEvaluationService()

		// act
		result, err := evaluationService.Evaluate("build", "3 + 2", make(map[string]interface{}, 0))

		assert.NotNil(t, err)
		assert.False(t, result)
	})
}

func TestGetParameters(t *testing.T) {

	t.Run("ReturnsMapWithBranchFromRunConfig", func(t *testing.T) {

		evaluationService := getEvaluationService()

		// act
		parameters := evaluationService.GetParameters(api.StatusSucceeded)

		assert.Equal(t, "main", parameters["branch"])
	})

	t.Run("ReturnsMapWithActionFromRunConfig", func(t *testing.T) {

		evaluationService := getEvaluationService()

		// act
		parameters := evaluationService.GetParameters(api.StatusSucceeded)

		assert.Equal(t, "apply", parameters["action"])
	})

	t.Run("ReturnsMapWithPassedRunStatus", func(t *testing.T) {

		evaluationService := getEvaluationService()

		// act
		parameters := evaluationService.GetParameters(api.StatusFailed)

		assert.Equal(t, "failed", parameters["status"])
	})
}

func getEvaluationService() Service {
	evaluationService, _ := NewService(api.RunConfig{
		Branch:      "main",
		Trigger:     "push",
		InfraAction: api.InfraActionApply,
	})

	return evaluationService
}
