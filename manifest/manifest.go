// Package manifest parses the declarative pipeline definition read from the
// repository's .freighter.yaml file.
package manifest

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Manifest is the declarative definition of a deployment pipeline
type Manifest struct {
	App      string         `yaml:"app"`
	Version  string         `yaml:"version"`
	Trigger  TriggerConfig  `yaml:"trigger"`
	Build    BuildConfig    `yaml:"build"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Deploy   DeployConfig   `yaml:"deploy"`
}

// TriggerConfig designates which push events start a run
type TriggerConfig struct {
	Branches []string `yaml:"branches"`
}

// BuildConfig configures the build-and-verify stage
type BuildConfig struct {
	Test  TestConfig  `yaml:"test"`
	Image ImageConfig `yaml:"image"`
	Scan  ScanConfig  `yaml:"scan"`
}

// TestConfig configures the test run and its coverage output
type TestConfig struct {
	Command        string `yaml:"command"`
	CoverageReport string `yaml:"coverageReport"`
}

// ImageConfig holds the container image coordinates
type ImageConfig struct {
	Name       string `yaml:"name"`
	Namespace  string `yaml:"namespace"`
	Dockerfile string `yaml:"dockerfile"`
}

// ScanConfig configures the vulnerability gate applied before publishing
type ScanConfig struct {
	Severity      string `yaml:"severity"`
	IgnoreUnfixed *bool  `yaml:"ignoreUnfixed"`
}

// AnalysisConfig configures the static analysis submission
type AnalysisConfig struct {
	ProjectKey   string `yaml:"projectKey"`
	Organization string `yaml:"organization"`
	Sources      string `yaml:"sources"`
	Blocking     bool   `yaml:"blocking"`
}

// DeployConfig configures the deployment stage
type DeployConfig struct {
	Cluster        string `yaml:"cluster"`
	Service        string `yaml:"service"`
	ContainerName  string `yaml:"containerName"`
	TaskDefinition string `yaml:"taskDefinition"`
	Environment    string `yaml:"environment"`
	Region         string `yaml:"region"`
	StateBucket    string `yaml:"stateBucket"`
	InfraDir       string `yaml:"infraDir"`
}

// ReadManifestFromFile reads and validates the pipeline definition at manifestPath
func ReadManifestFromFile(manifestPath string) (m Manifest, err error) {

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return m, err
	}

	return ReadManifest(data)
}

// ReadManifest parses the pipeline definition from its yaml representation
func ReadManifest(data []byte) (m Manifest, err error) {

	if err = yaml.UnmarshalStrict(data, &m); err != nil {
		return m, err
	}

	m.SetDefaults()

	if err = m.Validate(); err != nil {
		return m, err
	}

	return m, nil
}

// SetDefaults fills in sensible values for optional manifest properties
func (m *Manifest) SetDefaults() {

	if len(m.Trigger.Branches) == 0 {
		m.Trigger.Branches = []string{"main"}
	}
	if m.Build.Test.CoverageReport == "" {
		m.Build.Test.CoverageReport = "coverage.out"
	}
	if m.Build.Image.Dockerfile == "" {
		m.Build.Image.Dockerfile = "Dockerfile"
	}
	if m.Build.Scan.Severity == "" {
		m.Build.Scan.Severity = "CRITICAL"
	}
	if m.Build.Scan.IgnoreUnfixed == nil {
		ignoreUnfixed := true
		m.Build.Scan.IgnoreUnfixed = &ignoreUnfixed
	}
	if m.Analysis.Sources == "" {
		m.Analysis.Sources = "."
	}
	if m.Deploy.ContainerName == "" {
		m.Deploy.ContainerName = m.Build.Image.Name
	}
	if m.Deploy.InfraDir == "" {
		m.Deploy.InfraDir = "infra"
	}
}

// Validate checks the manifest for required properties
func (m *Manifest) Validate() (err error) {

	if m.App == "" {
		return fmt.Errorf("manifest property app is required")
	}
	if m.Version == "" {
		return fmt.Errorf("manifest property version is required")
	}
	if m.Build.Test.Command == "" {
		return fmt.Errorf("manifest property build.test.command is required")
	}
	if m.Build.Image.Name == "" {
		return fmt.Errorf("manifest property build.image.name is required")
	}
	if m.Build.Image.Namespace == "" {
		return fmt.Errorf("manifest property build.image.namespace is required")
	}
	if m.Deploy.Cluster == "" {
		return fmt.Errorf("manifest property deploy.cluster is required")
	}
	if m.Deploy.Service == "" {
		return fmt.Errorf("manifest property deploy.service is required")
	}
	if m.Deploy.TaskDefinition == "" {
		return fmt.Errorf("manifest property deploy.taskDefinition is required")
	}
	if m.Deploy.Environment == "" {
		return fmt.Errorf("manifest property deploy.environment is required")
	}
	if m.Deploy.Region == "" {
		return fmt.Errorf("manifest property deploy.region is required")
	}

	return nil
}
