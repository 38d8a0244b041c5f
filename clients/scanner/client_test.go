package scanner

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/freighter-cd/freighter-cd-runner/clients/command"
)

var reportWithFixableCritical = []byte(`{
	"Results": [
		{
			"Target": "alpine:3.18 (alpine 3.18.0)",
			"Class": "os-pkgs",
			"Vulnerabilities": [
				{
					"VulnerabilityID": "CVE-2023-12345",
					"PkgName": "openssl",
					"InstalledVersion": "3.1.0-r0",
					"FixedVersion": "3.1.1-r0",
					"Severity": "CRITICAL"
				}
			]
		}
	]
}`)

var reportWithUnfixedCritical = []byte(`{
	"Results": [
		{
			"Target": "alpine:3.18 (alpine 3.18.0)",
			"Class": "os-pkgs",
			"Vulnerabilities": [
				{
					"VulnerabilityID": "CVE-2023-99999",
					"PkgName": "busybox",
					"InstalledVersion": "1.36.0-r0",
					"FixedVersion": "",
					"Severity": "CRITICAL"
				}
			]
		}
	]
}`)

func getClient(t *testing.T) Client {
	client, err := NewClient(nil, "trivy", "CRITICAL", true)
	assert.Nil(t, err)
	return client
}

func TestScanImage(t *testing.T) {

	t.Run("ReturnsParsedReportFromCapturedScannerOutput", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		commandClient := command.NewMockClient(ctrl)

		client, err := NewClient(commandClient, "trivy", "CRITICAL", false)
		assert.Nil(t, err)

		commandClient.EXPECT().RunCommandWithOutput(gomock.Any(), "build", "/work", nil, "trivy", []string{
			"image",
			"--format", "json",
			"--severity", "CRITICAL",
			"--no-progress",
			"registry.example.com/freighter-api:v1.0.0-0a1b2c3",
		}).Return(string(reportWithFixableCritical), nil)

		// act
		report, err := client.ScanImage(context.Background(), "build", "/work", "registry.example.com/freighter-api:v1.0.0-0a1b2c3")

		assert.Nil(t, err)
		assert.Equal(t, 1, len(report.Results))
		assert.Equal(t, "CVE-2023-12345", report.Results[0].Vulnerabilities[0].VulnerabilityID)
	})

	t.Run("ReturnsErrorWhenScannerFails", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		commandClient := command.NewMockClient(ctrl)

		client, err := NewClient(commandClient, "trivy", "CRITICAL", false)
		assert.Nil(t, err)

		commandClient.EXPECT().RunCommandWithOutput(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", fmt.Errorf("image not found"))

		// act
		_, err = client.ScanImage(context.Background(), "build", "/work", "registry.example.com/freighter-api:v1.0.0-0a1b2c3")

		assert.NotNil(t, err)
	})
}

func TestParseReport(t *testing.T) {

	t.Run("ReturnsReportWithFindings", func(t *testing.T) {

		// act
		report, err := ParseReport(reportWithFixableCritical)

		assert.Nil(t, err)
		assert.Equal(t, 1, len(report.Results))
		assert.Equal(t, "CVE-2023-12345", report.Results[0].Vulnerabilities[0].VulnerabilityID)
	})

	t.Run("ReturnsErrorForMalformedReport", func(t *testing.T) {

		// act
		_, err := ParseReport([]byte("not json"))

		assert.NotNil(t, err)
	})
}

func TestApplyGate(t *testing.T) {

	t.Run("ReturnsErrorForFixableCriticalFinding", func(t *testing.T) {

		client := getClient(t)
		report, err := ParseReport(reportWithFixableCritical)
		assert.Nil(t, err)

		// act
		err = client.ApplyGate(report)

		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "CVE-2023-12345")
	})

	t.Run("ReturnsNoErrorForCriticalFindingWithoutFix", func(t *testing.T) {

		client := getClient(t)
		report, err := ParseReport(reportWithUnfixedCritical)
		assert.Nil(t, err)

		// act
		err = client.ApplyGate(report)

		assert.Nil(t, err)
	})

	t.Run("ReturnsNoErrorForEmptyReport", func(t *testing.T) {

		client := getClient(t)

		// act
		err := client.ApplyGate(Report{})

		assert.Nil(t, err)
	})
}

func TestBlockingFindings(t *testing.T) {

	t.Run("SkipsFindingsBelowConfiguredSeverity", func(t *testing.T) {

		report := Report{
			Results: []Result{
				{
					Class: "lang-pkgs",
					Vulnerabilities: []Finding{
						{VulnerabilityID: "CVE-2023-1", Severity: "HIGH", FixedVersion: "1.2.3"},
					},
				},
			},
		}

		// act
		findings := report.BlockingFindings("CRITICAL", true)

		assert.Empty(t, findings)
	})

	t.Run("SkipsResultsOfOtherClasses", func(t *testing.T) {

		report := Report{
			Results: []Result{
				{
					Class: "secret",
					Vulnerabilities: []Finding{
						{VulnerabilityID: "CVE-2023-2", Severity: "CRITICAL", FixedVersion: "1.0.1"},
					},
				},
			},
		}

		// act
		findings := report.BlockingFindings("CRITICAL", true)

		assert.Empty(t, findings)
	})

	t.Run("IncludesUnfixedFindingsWhenIgnoreUnfixedIsDisabled", func(t *testing.T) {

		report, err := ParseReport(reportWithUnfixedCritical)
		assert.Nil(t, err)

		// act
		findings := report.BlockingFindings("CRITICAL", false)

		assert.Equal(t, 1, len(findings))
	})

	t.Run("MatchesSeverityCaseInsensitively", func(t *testing.T) {

		report := Report{
			Results: []Result{
				{
					Class: "os-pkgs",
					Vulnerabilities: []Finding{
						{VulnerabilityID: "CVE-2023-3", Severity: "critical", FixedVersion: "2.0.0"},
					},
				},
			},
		}

		// act
		findings := report.BlockingFindings("CRITICAL", true)

		assert.Equal(t, 1, len(findings))
	})
}
