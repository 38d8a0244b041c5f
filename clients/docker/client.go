package docker

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/docker/docker/api/types"
	dockerclient "github.com/docker/docker/client"
	"github.com/docker/docker/pkg/archive"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"

	"github.com/freighter-cd/freighter-cd-runner/api"
	"github.com/freighter-cd/freighter-cd-runner/clients/obfuscation"
)

// Client builds, tags and publishes container images through the docker engine api
//go:generate mockgen -package=docker -destination ./mock.go -source=client.go
type Client interface {
	CreateDockerClient() error
	SetRegistryCredentials(registryCredentials api.RegistryCredentials)
	BuildImage(ctx context.Context, stage, dir, dockerfile, imageRef string, buildArgs map[string]string) (err error)
	PushImage(ctx context.Context, stage, imageRef string) (err error)
	GetImageSize(ctx context.Context, imageRef string) (totalSize int64, err error)
}

// NewClient returns a new docker.Client
func NewClient(obfuscationClient obfuscation.Client, tailLogsChannel chan api.TailLogLine) (Client, error) {
	return &client{
		obfuscationClient: obfuscationClient,
		tailLogsChannel:   tailLogsChannel,
	}, nil
}

type client struct {
	registryCredentials api.RegistryCredentials
	obfuscationClient   obfuscation.Client
	tailLogsChannel     chan api.TailLogLine
	dockerClient        *dockerclient.Client
}

func (c *client) CreateDockerClient() (err error) {

	c.dockerClient, err = dockerclient.NewClientWithOpts(dockerclient.FromEnv, dockerclient.WithAPIVersionNegotiation())
	if err != nil {
		return fmt.Errorf("failed creating docker client: %w", err)
	}

	return nil
}

// SetRegistryCredentials sets the credentials used for pushes; they are only
// obtained from the registry once a run has assumed its deployment role
func (c *client) SetRegistryCredentials(registryCredentials api.RegistryCredentials) {
	c.registryCredentials = registryCredentials
}

func (c *client) BuildImage(ctx context.Context, stage, dir, dockerfile, imageRef string, buildArgs map[string]string) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "BuildImage")
	defer span.Finish()
	span.SetTag("docker-image", imageRef)

	log.Info().Msgf("[%v] Building docker image '%v'", stage, imageRef)

	buildContext, err := archive.TarWithOptions(dir, &archive.TarOptions{})
	if err != nil {
		return err
	}
	defer buildContext.Close()

	args := map[string]*string{}
	for k, v := range buildArgs {
		value := v
		args[k] = &value
	}

	response, err := c.dockerClient.ImageBuild(ctx, buildContext, types.ImageBuildOptions{
		Tags:       []string{imageRef},
		Dockerfile: dockerfile,
		BuildArgs:  args,
		Remove:     true,
	})
	if err != nil {
		return fmt.Errorf("failed building image %v: %w", imageRef, err)
	}
	defer response.Body.Close()

	return c.tailStream(stage, response.Body)
}

func (c *client) PushImage(ctx context.Context, stage, imageRef string) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "PushImage")
	defer span.Finish()
	span.SetTag("docker-image", imageRef)

	log.Info().Msgf("[%v] Pushing docker image '%v'", stage, imageRef)

	rc, err := c.dockerClient.ImagePush(ctx, imageRef, types.ImagePushOptions{
		RegistryAuth: c.getRegistryAuth(),
	})
	if err != nil {
		return fmt.Errorf("failed pushing image %v: %w", imageRef, err)
	}
	defer rc.Close()

	return c.tailStream(stage, rc)
}

func (c *client) GetImageSize(ctx context.Context, imageRef string) (totalSize int64, err error) {

	items, err := c.dockerClient.ImageHistory(ctx, imageRef)
	if err != nil {
		return totalSize, err
	}

	for _, item := range items {
		totalSize += item.Size
	}

	return totalSize, nil
}

// tailStream decodes the engine's json message stream, forwards its progress
// lines to the log stream and surfaces embedded errors
func (c *client) tailStream(stage string, rc io.Reader) (err error) {

	type streamMessage struct {
		Stream      string `json:"stream"`
		Status      string `json:"status"`
		Error       string `json:"error"`
		ErrorDetail struct {
			Message string `json:"message"`
		} `json:"errorDetail"`
	}

	lineNumber := 1
	decoder := json.NewDecoder(rc)
	for {
		var message streamMessage
		if err = decoder.Decode(&message); err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		if message.Error != "" {
			return fmt.Errorf("docker engine error: %v", message.Error)
		}

		text := message.Stream
		if text == "" {
			text = message.Status
		}
		text = strings.TrimSuffix(text, "\n")
		if text == "" {
			continue
		}

		logLine := api.LogLine{
			LineNumber: lineNumber,
			Timestamp:  time.Now().UTC(),
			StreamType: "stdout",
			Text:       c.obfuscationClient.Obfuscate(text),
		}
		lineNumber++

		c.tailLogsChannel <- api.TailLogLine{
			Stage:   stage,
			LogLine: &logLine,
		}
	}

	return nil
}

func (c *client) getRegistryAuth() string {

	authConfig := types.AuthConfig{
		Username:      c.registryCredentials.Username,
		Password:      c.registryCredentials.Password,
		ServerAddress: c.registryCredentials.Server,
	}

	data, err := json.Marshal(authConfig)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(data)
}
