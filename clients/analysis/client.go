package analysis

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"

	"github.com/freighter-cd/freighter-cd-runner/api"
)

// Params identifies the project and sources an analysis submission is for
type Params struct {
	ProjectKey   string
	Organization string
	Sources      string
	Branch       string
	Revision     string
}

// Client submits source coordinates and coverage data to the external static
// analysis service; the service's own quality gate decides pass or fail
//go:generate mockgen -package=analysis -destination ./mock.go -source=client.go
type Client interface {
	SubmitAnalysis(ctx context.Context, stage string, params Params, coverageReportPath string) (err error)
}

// NewClient returns a new analysis.Client
func NewClient(credentials api.AnalysisCredentials) (Client, error) {
	return &client{
		credentials: credentials,
	}, nil
}

type client struct {
	credentials api.AnalysisCredentials
}

func (c *client) SubmitAnalysis(ctx context.Context, stage string, params Params, coverageReportPath string) (err error) {

	span, _ := opentracing.StartSpanFromContext(ctx, "SubmitAnalysis")
	defer span.Finish()
	span.SetTag("project-key", params.ProjectKey)

	if c.credentials.ServerURL == "" || c.credentials.Token == "" {
		return fmt.Errorf("analysis server url and token are required")
	}

	coverageData, err := os.ReadFile(coverageReportPath)
	if err != nil {
		return fmt.Errorf("failed reading coverage report %v: %w", coverageReportPath, err)
	}

	log.Info().Msgf("[%v] Submitting %v bytes of coverage for project %v to analysis service", stage, len(coverageData), params.ProjectKey)

	submitURL := fmt.Sprintf("%v/api/analysis/submit?%v", strings.TrimSuffix(c.credentials.ServerURL, "/"), url.Values{
		"projectKey":   []string{params.ProjectKey},
		"organization": []string{params.Organization},
		"sources":      []string{params.Sources},
		"branch":       []string{params.Branch},
		"revision":     []string{params.Revision},
	}.Encode())

	// create client, in order to add headers
	httpClient := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	httpClient.MaxRetries = 3
	httpClient.Backoff = pester.ExponentialJitterBackoff
	httpClient.KeepLog = true
	httpClient.Timeout = time.Second * 60

	request, err := http.NewRequest("POST", submitURL, strings.NewReader(string(coverageData)))
	if err != nil {
		return err
	}

	// add tracing context
	request = request.WithContext(opentracing.ContextWithSpan(request.Context(), span))

	// add headers
	request.Header.Add("Authorization", fmt.Sprintf("Bearer %v", c.credentials.Token))
	request.Header.Add("Content-Type", "text/plain")

	response, err := httpClient.Do(request)
	if err != nil {
		log.Error().Err(err).Str("pesterLogs", httpClient.LogString()).Msgf("[%v] Failed submitting analysis for project %v", stage, params.ProjectKey)
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("analysis service responded with status %v", response.StatusCode)
	}

	log.Info().Msgf("[%v] Successfully submitted analysis for project %v", stage, params.ProjectKey)

	return nil
}
