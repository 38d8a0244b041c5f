package terraform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/freighter-cd/freighter-cd-runner/clients/command"
)

func TestRenderBackendConfig(t *testing.T) {

	t.Run("WritesBackendOverrideFileWithEnvironmentKeyedState", func(t *testing.T) {

		dir := t.TempDir()
		client, err := NewClient(nil, "terraform")
		assert.Nil(t, err)

		// act
		err = client.RenderBackendConfig(dir, BackendConfig{
			Bucket: "freighter-state",
			Key:    "staging.tfstate",
			Region: "eu-west-1",
		})

		assert.Nil(t, err)
		rendered, err := os.ReadFile(filepath.Join(dir, "backend_override.tf"))
		assert.Nil(t, err)
		assert.Contains(t, string(rendered), `bucket = "freighter-state"`)
		assert.Contains(t, string(rendered), `key    = "staging.tfstate"`)
		assert.Contains(t, string(rendered), `region = "eu-west-1"`)
	})

	t.Run("ReturnsErrorWhenBucketIsEmpty", func(t *testing.T) {

		client, err := NewClient(nil, "terraform")
		assert.Nil(t, err)

		// act
		err = client.RenderBackendConfig(t.TempDir(), BackendConfig{
			Key:    "staging.tfstate",
			Region: "eu-west-1",
		})

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorWhenKeyIsEmpty", func(t *testing.T) {

		client, err := NewClient(nil, "terraform")
		assert.Nil(t, err)

		// act
		err = client.RenderBackendConfig(t.TempDir(), BackendConfig{
			Bucket: "freighter-state",
			Region: "eu-west-1",
		})

		assert.NotNil(t, err)
	})
}

func TestRunTerraform(t *testing.T) {

	t.Run("RunsInitWithoutInput", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		commandClient := command.NewMockClient(ctrl)
		client, err := NewClient(commandClient, "terraform")
		assert.Nil(t, err)

		commandClient.EXPECT().RunCommand(gomock.Any(), "deploy", "/infra", map[string]string{"TF_IN_AUTOMATION": "1"}, "terraform", []string{"init", "-input=false"}).Return(0, nil)

		// act
		err = client.Init(context.Background(), "deploy", "/infra")

		assert.Nil(t, err)
	})

	t.Run("RunsPlanWithSavedPlanFile", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		commandClient := command.NewMockClient(ctrl)
		client, err := NewClient(commandClient, "terraform")
		assert.Nil(t, err)

		commandClient.EXPECT().RunCommand(gomock.Any(), "deploy", "/infra", gomock.Any(), "terraform", []string{"plan", "-input=false", "-out=tfplan"}).Return(0, nil)

		// act
		err = client.Plan(context.Background(), "deploy", "/infra")

		assert.Nil(t, err)
	})

	t.Run("AppliesSavedPlanWithoutApproval", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		commandClient := command.NewMockClient(ctrl)
		client, err := NewClient(commandClient, "terraform")
		assert.Nil(t, err)

		commandClient.EXPECT().RunCommand(gomock.Any(), "deploy", "/infra", gomock.Any(), "terraform", []string{"apply", "-input=false", "-auto-approve", "tfplan"}).Return(0, nil)

		// act
		err = client.Apply(context.Background(), "deploy", "/infra")

		assert.Nil(t, err)
	})

	t.Run("DestroysWithoutApproval", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		commandClient := command.NewMockClient(ctrl)
		client, err := NewClient(commandClient, "terraform")
		assert.Nil(t, err)

		commandClient.EXPECT().RunCommand(gomock.Any(), "deploy", "/infra", gomock.Any(), "terraform", []string{"destroy", "-input=false", "-auto-approve"}).Return(0, nil)

		// act
		err = client.Destroy(context.Background(), "deploy", "/infra")

		assert.Nil(t, err)
	})

	t.Run("ReturnsErrorWhenValidateFails", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		commandClient := command.NewMockClient(ctrl)
		client, err := NewClient(commandClient, "terraform")
		assert.Nil(t, err)

		commandClient.EXPECT().RunCommand(gomock.Any(), "deploy", "/infra", gomock.Any(), "terraform", []string{"validate"}).Return(1, assert.AnError)

		// act
		err = client.Validate(context.Background(), "deploy", "/infra")

		assert.NotNil(t, err)
	})
}
