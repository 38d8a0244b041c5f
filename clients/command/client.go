package command

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/freighter-cd/freighter-cd-runner/api"
	"github.com/freighter-cd/freighter-cd-runner/clients/obfuscation"
	"github.com/opentracing/opentracing-go"
	"golang.org/x/sync/errgroup"
)

// Client runs external tools as child processes, tailing their output into
// the run's log stream
//go:generate mockgen -package=command -destination ./mock.go -source=client.go
type Client interface {
	RunCommand(ctx context.Context, stage, dir string, envvars map[string]string, command string, args []string) (exitCode int, err error)
	RunCommandWithOutput(ctx context.Context, stage, dir string, envvars map[string]string, command string, args []string) (output string, err error)
}

// NewClient returns a new command.Client
func NewClient(obfuscationClient obfuscation.Client, tailLogsChannel chan api.TailLogLine) (Client, error) {
	return &client{
		obfuscationClient: obfuscationClient,
		tailLogsChannel:   tailLogsChannel,
	}, nil
}

type client struct {
	obfuscationClient obfuscation.Client
	tailLogsChannel   chan api.TailLogLine
}

func (c *client) RunCommand(ctx context.Context, stage, dir string, envvars map[string]string, command string, args []string) (exitCode int, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunCommand")
	defer span.Finish()
	span.SetTag("command", command)

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	cmd.Env = c.appendEnvvars(envvars)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return -1, err
	}

	if err = cmd.Start(); err != nil {
		return -1, err
	}

	// tail both pipes line by line into the log stream
	lineNumber := 1
	var lineNumberMutex sync.Mutex

	g := new(errgroup.Group)
	for streamType, pipe := range map[string]*bufio.Scanner{
		"stdout": bufio.NewScanner(stdout),
		"stderr": bufio.NewScanner(stderr),
	} {
		streamType, pipe := streamType, pipe
		g.Go(func() error {
			for pipe.Scan() {
				lineNumberMutex.Lock()
				currentLineNumber := lineNumber
				lineNumber++
				lineNumberMutex.Unlock()

				logLine := api.LogLine{
					LineNumber: currentLineNumber,
					Timestamp:  time.Now().UTC(),
					StreamType: streamType,
					Text:       c.obfuscationClient.Obfuscate(pipe.Text()),
				}

				c.tailLogsChannel <- api.TailLogLine{
					Stage:   stage,
					LogLine: &logLine,
				}
			}
			return pipe.Err()
		})
	}

	tailErr := g.Wait()

	if err = cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), fmt.Errorf("command %v exited with code %v", command, exitErr.ExitCode())
		}
		return -1, err
	}
	if tailErr != nil {
		return 0, tailErr
	}

	return 0, nil
}

func (c *client) RunCommandWithOutput(ctx context.Context, stage, dir string, envvars map[string]string, command string, args []string) (output string, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunCommandWithOutput")
	defer span.Finish()
	span.SetTag("command", command)

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	cmd.Env = c.appendEnvvars(envvars)

	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("command %v exited with code %v: %v", command, exitErr.ExitCode(), c.obfuscationClient.Obfuscate(strings.TrimSpace(string(exitErr.Stderr))))
		}
		return string(out), err
	}

	return string(out), nil
}

func (c *client) appendEnvvars(envvars map[string]string) []string {

	env := os.Environ()
	for k, v := range envvars {
		env = append(env, fmt.Sprintf("%v=%v", k, v))
	}

	return env
}
