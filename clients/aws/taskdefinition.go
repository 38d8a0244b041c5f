package aws

import (
	"encoding/json"
	"fmt"
	"os"
)

// TaskDefinition is the deployment descriptor read from the repository; the
// container image reference is the only field the runner mutates
type TaskDefinition struct {
	Family                  string                `json:"family"`
	NetworkMode             string                `json:"networkMode,omitempty"`
	CPU                     string                `json:"cpu,omitempty"`
	Memory                  string                `json:"memory,omitempty"`
	ExecutionRoleArn        string                `json:"executionRoleArn,omitempty"`
	TaskRoleArn             string                `json:"taskRoleArn,omitempty"`
	RequiresCompatibilities []string              `json:"requiresCompatibilities,omitempty"`
	ContainerDefinitions    []ContainerDefinition `json:"containerDefinitions"`
}

// ContainerDefinition is a single container in the deployment descriptor
type ContainerDefinition struct {
	Name         string            `json:"name"`
	Image        string            `json:"image"`
	Essential    *bool             `json:"essential,omitempty"`
	CPU          int32             `json:"cpu,omitempty"`
	Memory       int32             `json:"memory,omitempty"`
	EntryPoint   []string          `json:"entryPoint,omitempty"`
	Command      []string          `json:"command,omitempty"`
	PortMappings []PortMapping     `json:"portMappings,omitempty"`
	Environment  []KeyValuePair    `json:"environment,omitempty"`
	LogConfig    *LogConfiguration `json:"logConfiguration,omitempty"`
}

// PortMapping exposes a container port
type PortMapping struct {
	ContainerPort int32  `json:"containerPort"`
	HostPort      int32  `json:"hostPort,omitempty"`
	Protocol      string `json:"protocol,omitempty"`
}

// KeyValuePair is a plain environment variable for a container
type KeyValuePair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// LogConfiguration configures the container's log driver
type LogConfiguration struct {
	LogDriver string            `json:"logDriver"`
	Options   map[string]string `json:"options,omitempty"`
}

// ReadTaskDefinition reads the deployment descriptor from disk
func ReadTaskDefinition(path string) (taskDefinition TaskDefinition, err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return taskDefinition, fmt.Errorf("failed reading task definition %v: %w", path, err)
	}

	if err = json.Unmarshal(data, &taskDefinition); err != nil {
		return taskDefinition, fmt.Errorf("failed parsing task definition %v: %w", path, err)
	}

	if taskDefinition.Family == "" {
		return taskDefinition, fmt.Errorf("task definition %v has no family", path)
	}
	if len(taskDefinition.ContainerDefinitions) == 0 {
		return taskDefinition, fmt.Errorf("task definition %v has no container definitions", path)
	}

	return taskDefinition, nil
}

// RenderTaskDefinition substitutes the image of the named container with the
// freshly built image reference, leaving everything else untouched
func RenderTaskDefinition(taskDefinition TaskDefinition, containerName, imageRef string) (rendered TaskDefinition, err error) {

	rendered = taskDefinition
	rendered.ContainerDefinitions = make([]ContainerDefinition, len(taskDefinition.ContainerDefinitions))
	copy(rendered.ContainerDefinitions, taskDefinition.ContainerDefinitions)

	substituted := false
	for i := range rendered.ContainerDefinitions {
		if rendered.ContainerDefinitions[i].Name == containerName {
			rendered.ContainerDefinitions[i].Image = imageRef
			substituted = true
		}
	}

	if !substituted {
		return rendered, fmt.Errorf("task definition has no container named %v", containerName)
	}

	return rendered, nil
}
