package aws

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"

	"github.com/freighter-cd/freighter-cd-runner/api"
)

// Client talks to the cloud provider: temporary credentials, registry auth,
// task definition registration and the managed rollout
//go:generate mockgen -package=aws -destination ./mock.go -source=client.go
type Client interface {
	AssumeRole(ctx context.Context, roleARN, region, sessionName string) (err error)
	GetAccountID(ctx context.Context) (accountID string, err error)
	GetRegistryCredentials(ctx context.Context) (credentials api.RegistryCredentials, err error)
	RegisterTaskDefinition(ctx context.Context, stage string, taskDefinition TaskDefinition) (taskDefinitionARN string, err error)
	UpdateService(ctx context.Context, stage, cluster, service, taskDefinitionARN string) (err error)
	WaitForServiceStability(ctx context.Context, stage, cluster, service string, maxWait time.Duration) (err error)
}

// NewClient returns a new aws.Client for the given region
func NewClient(ctx context.Context, region string) (Client, error) {

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed loading aws config: %w", err)
	}

	return &client{
		config: cfg,
	}, nil
}

type client struct {
	config awssdk.Config
}

func (c *client) AssumeRole(ctx context.Context, roleARN, region, sessionName string) (err error) {

	span, _ := opentracing.StartSpanFromContext(ctx, "AssumeRole")
	defer span.Finish()
	span.SetTag("role-arn", roleARN)

	if roleARN == "" {
		// run with the ambient credentials
		return nil
	}

	log.Info().Msgf("Assuming role %v for region %v", roleARN, region)

	stsClient := sts.NewFromConfig(c.config)
	provider := stscreds.NewAssumeRoleProvider(stsClient, roleARN, func(o *stscreds.AssumeRoleOptions) {
		o.RoleSessionName = sessionName
	})

	c.config.Region = region
	c.config.Credentials = awssdk.NewCredentialsCache(provider)

	return nil
}

func (c *client) GetAccountID(ctx context.Context) (accountID string, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "GetAccountID")
	defer span.Finish()

	stsClient := sts.NewFromConfig(c.config)
	identity, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed getting caller identity: %w", err)
	}

	return awssdk.ToString(identity.Account), nil
}

func (c *client) GetRegistryCredentials(ctx context.Context) (registryCredentials api.RegistryCredentials, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "GetRegistryCredentials")
	defer span.Finish()

	ecrClient := ecr.NewFromConfig(c.config)
	output, err := ecrClient.GetAuthorizationToken(ctx, &ecr.GetAuthorizationTokenInput{})
	if err != nil {
		return registryCredentials, fmt.Errorf("failed getting registry authorization token: %w", err)
	}

	if len(output.AuthorizationData) == 0 {
		return registryCredentials, fmt.Errorf("registry returned no authorization data")
	}

	authData := output.AuthorizationData[0]
	decoded, err := base64.StdEncoding.DecodeString(awssdk.ToString(authData.AuthorizationToken))
	if err != nil {
		return registryCredentials, err
	}

	parts := strings.SplitN(string(decoded), ":", 2)
	if len(parts) != 2 {
		return registryCredentials, fmt.Errorf("registry authorization token has unexpected format")
	}

	return api.RegistryCredentials{
		Server:   awssdk.ToString(authData.ProxyEndpoint),
		Username: parts[0],
		Password: parts[1],
	}, nil
}

func (c *client) RegisterTaskDefinition(ctx context.Context, stage string, taskDefinition TaskDefinition) (taskDefinitionARN string, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RegisterTaskDefinition")
	defer span.Finish()
	span.SetTag("family", taskDefinition.Family)

	log.Info().Msgf("[%v] Registering task definition revision for family %v", stage, taskDefinition.Family)

	ecsClient := ecs.NewFromConfig(c.config)
	output, err := ecsClient.RegisterTaskDefinition(ctx, toRegisterTaskDefinitionInput(taskDefinition))
	if err != nil {
		return "", fmt.Errorf("failed registering task definition for family %v: %w", taskDefinition.Family, err)
	}

	return awssdk.ToString(output.TaskDefinition.TaskDefinitionArn), nil
}

func (c *client) UpdateService(ctx context.Context, stage, cluster, service, taskDefinitionARN string) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "UpdateService")
	defer span.Finish()
	span.SetTag("cluster", cluster)
	span.SetTag("service", service)

	log.Info().Msgf("[%v] Updating service %v in cluster %v to task definition %v", stage, service, cluster, taskDefinitionARN)

	ecsClient := ecs.NewFromConfig(c.config)
	_, err = ecsClient.UpdateService(ctx, &ecs.UpdateServiceInput{
		Cluster:        awssdk.String(cluster),
		Service:        awssdk.String(service),
		TaskDefinition: awssdk.String(taskDefinitionARN),
	})
	if err != nil {
		return fmt.Errorf("failed updating service %v: %w", service, err)
	}

	return nil
}

func (c *client) WaitForServiceStability(ctx context.Context, stage, cluster, service string, maxWait time.Duration) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "WaitForServiceStability")
	defer span.Finish()
	span.SetTag("cluster", cluster)
	span.SetTag("service", service)

	log.Info().Msgf("[%v] Waiting up to %v for service %v to reach a stable state...", stage, maxWait, service)

	ecsClient := ecs.NewFromConfig(c.config)
	waiter := ecs.NewServicesStableWaiter(ecsClient)
	err = waiter.Wait(ctx, &ecs.DescribeServicesInput{
		Cluster:  awssdk.String(cluster),
		Services: []string{service},
	}, maxWait)
	if err != nil {
		return fmt.Errorf("service %v did not reach a stable state: %w", service, err)
	}

	return nil
}

func toRegisterTaskDefinitionInput(taskDefinition TaskDefinition) *ecs.RegisterTaskDefinitionInput {

	input := ecs.RegisterTaskDefinitionInput{
		Family: awssdk.String(taskDefinition.Family),
	}
	if taskDefinition.NetworkMode != "" {
		input.NetworkMode = ecstypes.NetworkMode(taskDefinition.NetworkMode)
	}
	if taskDefinition.CPU != "" {
		input.Cpu = awssdk.String(taskDefinition.CPU)
	}
	if taskDefinition.Memory != "" {
		input.Memory = awssdk.String(taskDefinition.Memory)
	}
	if taskDefinition.ExecutionRoleArn != "" {
		input.ExecutionRoleArn = awssdk.String(taskDefinition.ExecutionRoleArn)
	}
	if taskDefinition.TaskRoleArn != "" {
		input.TaskRoleArn = awssdk.String(taskDefinition.TaskRoleArn)
	}
	for _, compatibility := range taskDefinition.RequiresCompatibilities {
		input.RequiresCompatibilities = append(input.RequiresCompatibilities, ecstypes.Compatibility(compatibility))
	}

	for _, cd := range taskDefinition.ContainerDefinitions {
		containerDefinition := ecstypes.ContainerDefinition{
			Name:       awssdk.String(cd.Name),
			Image:      awssdk.String(cd.Image),
			Essential:  cd.Essential,
			EntryPoint: cd.EntryPoint,
			Command:    cd.Command,
		}
		if cd.CPU > 0 {
			containerDefinition.Cpu = cd.CPU
		}
		if cd.Memory > 0 {
			containerDefinition.Memory = awssdk.Int32(cd.Memory)
		}
		for _, pm := range cd.PortMappings {
			portMapping := ecstypes.PortMapping{
				ContainerPort: awssdk.Int32(pm.ContainerPort),
			}
			if pm.HostPort > 0 {
				portMapping.HostPort = awssdk.Int32(pm.HostPort)
			}
			if pm.Protocol != "" {
				portMapping.Protocol = ecstypes.TransportProtocol(pm.Protocol)
			}
			containerDefinition.PortMappings = append(containerDefinition.PortMappings, portMapping)
		}
		for _, env := range cd.Environment {
			containerDefinition.Environment = append(containerDefinition.Environment, ecstypes.KeyValuePair{
				Name:  awssdk.String(env.Name),
				Value: awssdk.String(env.Value),
			})
		}
		if cd.LogConfig != nil {
			containerDefinition.LogConfiguration = &ecstypes.LogConfiguration{
				LogDriver: ecstypes.LogDriver(cd.LogConfig.LogDriver),
				Options:   cd.LogConfig.Options,
			}
		}

		input.ContainerDefinitions = append(input.ContainerDefinitions, containerDefinition)
	}

	return &input
}
