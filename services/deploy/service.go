package deploy

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"

	"github.com/freighter-cd/freighter-cd-runner/api"
	"github.com/freighter-cd/freighter-cd-runner/clients/aws"
	"github.com/freighter-cd/freighter-cd-runner/clients/terraform"
	"github.com/freighter-cd/freighter-cd-runner/manifest"
)

// serviceStabilityTimeout bounds the wait for the rollout to settle
const serviceStabilityTimeout = 15 * time.Minute

// Service runs the deployment stage: temporary credentials, descriptor
// rendering and registration, infrastructure changes and the managed rollout
//go:generate mockgen -package=deploy -destination ./mock.go -source=service.go
type Service interface {
	Run(ctx context.Context, stage string, mft manifest.Manifest, buildOutput api.BuildOutput) (err error)
}

// NewService returns a new deploy.Service
func NewService(config api.RunConfig, awsClient aws.Client, terraformClient terraform.Client) (Service, error) {
	return &service{
		config:          config,
		awsClient:       awsClient,
		terraformClient: terraformClient,
	}, nil
}

type service struct {
	config          api.RunConfig
	awsClient       aws.Client
	terraformClient terraform.Client
}

func (s *service) Run(ctx context.Context, stage string, mft manifest.Manifest, buildOutput api.BuildOutput) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunDeployStage")
	defer span.Finish()
	span.SetTag("infra-action", string(s.config.InfraAction))

	sessionName := fmt.Sprintf("freighter-cd-runner-%v", s.config.RunID)
	err = s.awsClient.AssumeRole(ctx, s.config.RoleARN, mft.Deploy.Region, sessionName)
	if err != nil {
		return fmt.Errorf("failed assuming deployment role: %w", err)
	}

	// a destroy tears the environment down, there is no revision to register or roll out
	if s.config.InfraAction == api.InfraActionDestroy {
		err = s.runInfrastructure(ctx, stage, mft)
		if err != nil {
			return err
		}
		log.Info().Msgf("[%v] Environment %v destroyed, skipping rollout", stage, mft.Deploy.Environment)
		return nil
	}

	taskDefinitionARN, err := s.registerRevision(ctx, stage, mft, buildOutput)
	if err != nil {
		return err
	}

	err = s.runInfrastructure(ctx, stage, mft)
	if err != nil {
		return err
	}

	return s.rollout(ctx, stage, mft, taskDefinitionARN)
}

func (s *service) runInfrastructure(ctx context.Context, stage string, mft manifest.Manifest) (err error) {

	infraDir := filepath.Join(s.config.WorkDir, mft.Deploy.InfraDir)

	stateBucket := mft.Deploy.StateBucket
	if stateBucket == "" {
		accountID, err := s.awsClient.GetAccountID(ctx)
		if err != nil {
			return fmt.Errorf("failed resolving account id for state bucket: %w", err)
		}
		stateBucket = fmt.Sprintf("terraform-state-%v", accountID)
	}

	err = s.terraformClient.RenderBackendConfig(infraDir, terraform.BackendConfig{
		Bucket: stateBucket,
		Key:    fmt.Sprintf("%v.tfstate", mft.Deploy.Environment),
		Region: mft.Deploy.Region,
	})
	if err != nil {
		return fmt.Errorf("failed rendering backend config: %w", err)
	}

	err = s.terraformClient.Init(ctx, stage, infraDir)
	if err != nil {
		return fmt.Errorf("terraform init failed: %w", err)
	}

	err = s.terraformClient.Validate(ctx, stage, infraDir)
	if err != nil {
		return fmt.Errorf("terraform validate failed: %w", err)
	}

	// the action type makes apply and destroy mutually exclusive per run
	switch s.config.InfraAction {
	case api.InfraActionDestroy:
		log.Info().Msgf("[%v] Destroying infrastructure of environment %v...", stage, mft.Deploy.Environment)
		err = s.terraformClient.Destroy(ctx, stage, infraDir)
		if err != nil {
			return fmt.Errorf("terraform destroy failed: %w", err)
		}
	default:
		err = s.terraformClient.Plan(ctx, stage, infraDir)
		if err != nil {
			return fmt.Errorf("terraform plan failed: %w", err)
		}
		log.Info().Msgf("[%v] Applying planned infrastructure changes for environment %v...", stage, mft.Deploy.Environment)
		err = s.terraformClient.Apply(ctx, stage, infraDir)
		if err != nil {
			return fmt.Errorf("terraform apply failed: %w", err)
		}
	}

	return nil
}

// registerRevision renders the task definition descriptor with the freshly
// built image and registers it as a new revision
func (s *service) registerRevision(ctx context.Context, stage string, mft manifest.Manifest, buildOutput api.BuildOutput) (taskDefinitionARN string, err error) {

	taskDefinitionPath := filepath.Join(s.config.WorkDir, mft.Deploy.TaskDefinition)
	taskDefinition, err := aws.ReadTaskDefinition(taskDefinitionPath)
	if err != nil {
		return "", fmt.Errorf("failed reading task definition %v: %w", mft.Deploy.TaskDefinition, err)
	}

	rendered, err := aws.RenderTaskDefinition(taskDefinition, mft.Deploy.ContainerName, buildOutput.ImageRef)
	if err != nil {
		return "", fmt.Errorf("failed rendering task definition: %w", err)
	}

	return s.awsClient.RegisterTaskDefinition(ctx, stage, rendered)
}

func (s *service) rollout(ctx context.Context, stage string, mft manifest.Manifest, taskDefinitionARN string) (err error) {

	err = s.awsClient.UpdateService(ctx, stage, mft.Deploy.Cluster, mft.Deploy.Service, taskDefinitionARN)
	if err != nil {
		return err
	}

	// no rollback on failure, the error surfaces and the previous revision keeps serving
	err = s.awsClient.WaitForServiceStability(ctx, stage, mft.Deploy.Cluster, mft.Deploy.Service, serviceStabilityTimeout)
	if err != nil {
		return err
	}

	log.Info().Msgf("[%v] Service %v is stable on the new revision", stage, mft.Deploy.Service)

	return nil
}
