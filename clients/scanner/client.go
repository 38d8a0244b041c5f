package scanner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"

	"github.com/freighter-cd/freighter-cd-runner/clients/command"
)

// Finding is a single vulnerability reported for the scanned image
type Finding struct {
	VulnerabilityID  string `json:"VulnerabilityID"`
	PkgName          string `json:"PkgName"`
	InstalledVersion string `json:"InstalledVersion"`
	FixedVersion     string `json:"FixedVersion"`
	Severity         string `json:"Severity"`
}

// Result groups the findings for one scanned target (os packages, libraries)
type Result struct {
	Target          string    `json:"Target"`
	Class           string    `json:"Class"`
	Vulnerabilities []Finding `json:"Vulnerabilities"`
}

// Report is the scanner's full json output for one image
type Report struct {
	Results []Result `json:"Results"`
}

// Client scans built container images for known vulnerabilities and applies
// the publish gate: fixable findings at the configured severity fail the run
//go:generate mockgen -package=scanner -destination ./mock.go -source=client.go
type Client interface {
	ScanImage(ctx context.Context, stage, dir, imageRef string) (report Report, err error)
	ApplyGate(report Report) (err error)
}

// NewClient returns a new scanner.Client running the given scanner binary
func NewClient(commandClient command.Client, scannerPath, severity string, ignoreUnfixed bool) (Client, error) {
	return &client{
		commandClient: commandClient,
		scannerPath:   scannerPath,
		severity:      severity,
		ignoreUnfixed: ignoreUnfixed,
	}, nil
}

type client struct {
	commandClient command.Client
	scannerPath   string
	severity      string
	ignoreUnfixed bool
}

func (c *client) ScanImage(ctx context.Context, stage, dir, imageRef string) (report Report, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "ScanImage")
	defer span.Finish()
	span.SetTag("docker-image", imageRef)

	log.Info().Msgf("[%v] Scanning image '%v' for %v vulnerabilities", stage, imageRef, c.severity)

	args := []string{
		"image",
		"--format", "json",
		"--severity", c.severity,
		"--no-progress",
		imageRef,
	}

	// the json report comes back on stdout, progress output stays on stderr
	output, err := c.commandClient.RunCommandWithOutput(ctx, stage, dir, nil, c.scannerPath, args)
	if err != nil {
		return report, fmt.Errorf("vulnerability scan of %v failed: %w", imageRef, err)
	}

	return ParseReport([]byte(output))
}

// ParseReport unmarshals the scanner's json output
func ParseReport(data []byte) (report Report, err error) {

	if err = json.Unmarshal(data, &report); err != nil {
		return report, fmt.Errorf("failed parsing scan report: %w", err)
	}

	return report, nil
}

// ApplyGate inspects the report and fails when blocking findings are present;
// no image may be published after a gate failure
func (c *client) ApplyGate(report Report) (err error) {

	blocking := report.BlockingFindings(c.severity, c.ignoreUnfixed)
	if len(blocking) == 0 {
		return nil
	}

	ids := make([]string, 0, len(blocking))
	for _, f := range blocking {
		ids = append(ids, fmt.Sprintf("%v (%v %v, fixed in %v)", f.VulnerabilityID, f.PkgName, f.InstalledVersion, f.FixedVersion))
	}

	return fmt.Errorf("image has %v %v vulnerabilities with a fix available: %v", len(blocking), c.severity, strings.Join(ids, ", "))
}

// BlockingFindings returns the findings that fail the gate: findings at the
// given severity in os or library packages, skipping those without a fix when
// ignoreUnfixed is set
func (r Report) BlockingFindings(severity string, ignoreUnfixed bool) (findings []Finding) {

	for _, result := range r.Results {
		if result.Class != "os-pkgs" && result.Class != "lang-pkgs" {
			continue
		}
		for _, f := range result.Vulnerabilities {
			if !strings.EqualFold(f.Severity, severity) {
				continue
			}
			if ignoreUnfixed && f.FixedVersion == "" {
				continue
			}
			findings = append(findings, f)
		}
	}

	return findings
}
