package terraform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"

	"github.com/freighter-cd/freighter-cd-runner/clients/command"
)

// BackendConfig configures the remote state backend for one environment
type BackendConfig struct {
	Bucket string
	Key    string
	Region string
}

// backendTemplate is the generated snippet pointing terraform at the
// environment's remote state
const backendTemplate = `terraform {
  backend "s3" {
    bucket = "{{.Bucket}}"
    key    = "{{.Key}}"
    region = "{{.Region}}"
  }
}
`

// Client drives the infrastructure tool non-interactively: remote state
// configuration, init/validate/plan and the exclusive apply or destroy
//go:generate mockgen -package=terraform -destination ./mock.go -source=client.go
type Client interface {
	RenderBackendConfig(dir string, config BackendConfig) (err error)
	Init(ctx context.Context, stage, dir string) (err error)
	Validate(ctx context.Context, stage, dir string) (err error)
	Plan(ctx context.Context, stage, dir string) (err error)
	Apply(ctx context.Context, stage, dir string) (err error)
	Destroy(ctx context.Context, stage, dir string) (err error)
}

// NewClient returns a new terraform.Client running the given terraform binary
func NewClient(commandClient command.Client, terraformPath string) (Client, error) {
	return &client{
		commandClient: commandClient,
		terraformPath: terraformPath,
	}, nil
}

type client struct {
	commandClient command.Client
	terraformPath string
}

func (c *client) RenderBackendConfig(dir string, config BackendConfig) (err error) {

	if config.Bucket == "" || config.Key == "" || config.Region == "" {
		return fmt.Errorf("backend bucket, key and region are all required")
	}

	tmpl, err := template.New("backend").Parse(backendTemplate)
	if err != nil {
		return err
	}

	backendPath := filepath.Join(dir, "backend_override.tf")
	file, err := os.Create(backendPath)
	if err != nil {
		return err
	}
	defer file.Close()

	log.Info().Msgf("Writing remote state backend config to %v for key %v", backendPath, config.Key)

	return tmpl.Execute(file, config)
}

func (c *client) Init(ctx context.Context, stage, dir string) (err error) {
	return c.runTerraform(ctx, stage, dir, []string{"init", "-input=false"})
}

func (c *client) Validate(ctx context.Context, stage, dir string) (err error) {
	return c.runTerraform(ctx, stage, dir, []string{"validate"})
}

func (c *client) Plan(ctx context.Context, stage, dir string) (err error) {
	return c.runTerraform(ctx, stage, dir, []string{"plan", "-input=false", "-out=tfplan"})
}

func (c *client) Apply(ctx context.Context, stage, dir string) (err error) {
	return c.runTerraform(ctx, stage, dir, []string{"apply", "-input=false", "-auto-approve", "tfplan"})
}

func (c *client) Destroy(ctx context.Context, stage, dir string) (err error) {
	return c.runTerraform(ctx, stage, dir, []string{"destroy", "-input=false", "-auto-approve"})
}

func (c *client) runTerraform(ctx context.Context, stage, dir string, args []string) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunTerraform")
	defer span.Finish()
	span.SetTag("terraform-command", args[0])

	envvars := map[string]string{
		"TF_IN_AUTOMATION": "1",
	}

	_, err = c.commandClient.RunCommand(ctx, stage, dir, envvars, c.terraformPath, args)
	if err != nil {
		return fmt.Errorf("terraform %v failed: %w", args[0], err)
	}

	return nil
}
