package deployapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	tracingLog "github.com/opentracing/opentracing-go/log"
	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"

	"github.com/freighter-cd/freighter-cd-runner/api"
)

// Client reports run lifecycle events and ships the run log to the control server
//go:generate mockgen -package=deployapi -destination ./mock.go -source=client.go
type Client interface {
	HandleFatal(ctx context.Context, runLog api.RunLog, err error, message string)
	SetResolvedRevision(revision string)
	SendRunStartedEvent(ctx context.Context) error
	SendRunFinishedEvent(ctx context.Context, status api.Status) error
	SendRunLogEvent(ctx context.Context, runLog api.RunLog) error
}

// runEvent is the payload posted to the control server on status transitions
type runEvent struct {
	RunID        string `json:"runId"`
	App          string `json:"app"`
	RepoOwner    string `json:"repoOwner"`
	RepoName     string `json:"repoName"`
	RepoBranch   string `json:"repoBranch"`
	RepoRevision string `json:"repoRevision"`
	Environment  string `json:"environment"`
	Status       string `json:"status"`
}

// NewClient returns a new deployapi.Client
func NewClient(config api.RunConfig) Client {
	return &client{
		config: config,
	}
}

type client struct {
	config           api.RunConfig
	resolvedRevision string
}

// SetResolvedRevision records the revision the build stage checked out, so
// events name the real revision even when the run started from a branch head
func (c *client) SetResolvedRevision(revision string) {
	c.resolvedRevision = revision
}

func (c *client) HandleFatal(ctx context.Context, runLog api.RunLog, err error, message string) {

	// add the failure as a synthetic stage so it shows up in the shipped logs
	fatalStage := api.StageResult{
		Stage:    "init",
		LogLines: []api.LogLine{},
		ExitCode: -1,
		Status:   api.StatusFailed,
	}
	lineNumber := 1

	if err != nil {
		fatalStage.LogLines = append(fatalStage.LogLines, api.LogLine{
			LineNumber: lineNumber,
			Timestamp:  time.Now().UTC(),
			StreamType: "stderr",
			Text:       err.Error(),
		})
		lineNumber++
	}
	if message != "" {
		fatalStage.LogLines = append(fatalStage.LogLines, api.LogLine{
			LineNumber: lineNumber,
			Timestamp:  time.Now().UTC(),
			StreamType: "stderr",
			Text:       message,
		})
	}

	runLog.Stages = append(runLog.Stages, &fatalStage)

	_ = c.SendRunFinishedEvent(ctx, api.StatusFailed)
	_ = c.SendRunLogEvent(ctx, runLog)

	log.Error().Err(err).Msg(message)
	os.Exit(1)
}

func (c *client) SendRunStartedEvent(ctx context.Context) error {
	return c.sendRunEvent(ctx, api.StatusRunning)
}

func (c *client) SendRunFinishedEvent(ctx context.Context, status api.Status) error {
	return c.sendRunEvent(ctx, status)
}

func (c *client) SendRunLogEvent(ctx context.Context, runLog api.RunLog) (err error) {

	err = c.sendRunLogEventCore(ctx, runLog)

	if err == nil {
		return
	}

	// strip log lines from successful stages to reduce size of the payload while
	// keeping the useful information
	slimRunLog := runLog
	slimRunLog.Stages = []*api.StageResult{}
	for _, s := range runLog.Stages {
		slimStage := s
		if s.Status == api.StatusSucceeded && len(s.LogLines) > 0 {
			slimStage.LogLines = []api.LogLine{
				{
					LineNumber: s.LogLines[0].LineNumber,
					Timestamp:  s.LogLines[0].Timestamp,
					StreamType: "stdout",
					Text:       "Truncated logs for reducing total log size; to prevent this use less verbose logging",
				},
			}
		}

		slimRunLog.Stages = append(slimRunLog.Stages, slimStage)
	}

	return c.sendRunLogEventCore(ctx, slimRunLog)
}

func (c *client) sendRunLogEventCore(ctx context.Context, runLog api.RunLog) (err error) {

	span, _ := opentracing.StartSpanFromContext(ctx, "SendRunLog")
	defer span.Finish()

	postLogsURL := c.config.ControlServer.PostLogsURL
	jwt := c.config.ControlServer.JWT
	runID := c.config.RunID

	if postLogsURL == "" || jwt == "" || runID == "" {
		return nil
	}

	data, err := json.Marshal(runLog)
	if err != nil {
		log.Error().Err(err).Msgf("Failed marshalling RunLog for run %v", runID)
		return
	}

	// create client, in order to add headers
	client := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	client.MaxRetries = 1
	client.Backoff = pester.DefaultBackoff
	client.KeepLog = true
	client.Timeout = time.Second * 60
	request, err := http.NewRequest("POST", postLogsURL, bytes.NewReader(data))
	if err != nil {
		log.Error().Err(err).Msgf("Failed creating http request for run %v", runID)
		return err
	}

	// add tracing context
	request = request.WithContext(opentracing.ContextWithSpan(request.Context(), span))

	// collect additional information on setting up connections
	request, ht := nethttp.TraceRequest(span.Tracer(), request)

	// add headers
	request.Header.Add("Authorization", fmt.Sprintf("Bearer %v", jwt))
	request.Header.Add("Content-Type", "application/json")

	response, err := client.Do(request)
	if err != nil {
		log.Error().Err(err).Str("pesterLogs", client.LogString()).Msgf("Failed shipping logs to %v for run %v: %v", postLogsURL, runID, client.LogString())
		return err
	}

	defer response.Body.Close()
	ht.Finish()

	if response.StatusCode < 200 || response.StatusCode > 399 {
		return fmt.Errorf("shipping logs to %v failed with status %v", postLogsURL, response.StatusCode)
	}

	log.Debug().Str("pesterLogs", client.LogString()).Msgf("Successfully shipped logs to %v for run %v", postLogsURL, runID)

	return nil
}

func (c *client) sendRunEvent(ctx context.Context, status api.Status) (err error) {

	span, _ := opentracing.StartSpanFromContext(ctx, "SendRunStatus")
	defer span.Finish()
	span.SetTag("run-status", string(status))

	eventsURL := c.config.ControlServer.EventsURL
	jwt := c.config.ControlServer.JWT
	runID := c.config.RunID

	if eventsURL == "" || jwt == "" || runID == "" {
		return nil
	}

	revision := c.config.Revision
	if c.resolvedRevision != "" {
		revision = c.resolvedRevision
	}

	event := runEvent{
		RunID:        runID,
		App:          c.config.App,
		RepoOwner:    c.config.RepoOwner,
		RepoName:     c.config.RepoName,
		RepoBranch:   c.config.Branch,
		RepoRevision: revision,
		Environment:  c.config.Environment,
		Status:       string(status),
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msgf("Failed marshalling run event for run %v", runID)
		return err
	}

	// create client, in order to add headers
	client := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	client.MaxRetries = 3
	client.Backoff = pester.ExponentialJitterBackoff
	client.KeepLog = true
	client.Timeout = time.Second * 10
	request, err := http.NewRequest("POST", eventsURL, bytes.NewReader(data))
	if err != nil {
		log.Error().Err(err).Msgf("Failed creating http request for run %v", runID)
		return err
	}

	// add tracing context
	request = request.WithContext(opentracing.ContextWithSpan(request.Context(), span))

	// collect additional information on setting up connections
	request, ht := nethttp.TraceRequest(span.Tracer(), request)

	// add headers
	request.Header.Add("X-Freighter-Event", fmt.Sprintf("run:%v", status))
	request.Header.Add("X-Freighter-Run-ID", runID)
	request.Header.Add("Authorization", fmt.Sprintf("Bearer %v", jwt))
	request.Header.Add("Content-Type", "application/json")

	response, err := client.Do(request)
	if err != nil {
		span.SetTag("error", true)
		span.LogFields(
			tracingLog.String("error", err.Error()),
		)
		log.Error().Err(err).Str("pesterLogs", client.LogString()).Msgf("Failed performing http request to %v for run %v: %v", eventsURL, runID, client.LogString())
		return err
	}

	defer response.Body.Close()
	ht.Finish()

	log.Debug().Str("pesterLogs", client.LogString()).Msgf("Successfully sent run:%v event to control server", status)

	return nil
}
