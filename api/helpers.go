package api

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// HandleExit sets the process exit code based on the aggregated run status
func HandleExit(stages []*StageResult) {

	if !HasSucceededStatus(stages) {
		os.Exit(1)
	}

	os.Exit(0)
}

// RenderStats prints a summary table for all stages of the run
func RenderStats(stages []*StageResult) {

	data := make([][]string, 0)

	runDurationTotal := 0.0
	imageSizeTotal := int64(0)
	statusTotal := GetAggregatedStatus(stages)

	for _, s := range stages {

		runDurationTotal += s.Duration.Seconds()
		imageSizeTotal += s.ImageSize

		imageSize := ""
		if s.ImageSize > 0 {
			imageSize = fmt.Sprintf("%v", s.ImageSize/1024/1024)
		}

		data = append(data, []string{
			s.Stage,
			GetImageName(s.Image),
			GetImageTag(s.Image),
			imageSize,
			fmt.Sprintf("%.0f", s.Duration.Seconds()),
			string(s.Status),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Stage", "Image", "Tag", "Size (MB)", "Duration (s)", "Status"})
	table.SetFooter([]string{"", "", "Total", fmt.Sprintf("%v", imageSizeTotal/1024/1024), fmt.Sprintf("%.0f", runDurationTotal), string(statusTotal)})
	table.SetBorder(false)
	table.AppendBulk(data)
	table.Render()
}

// GetImageName returns the repository part of a container image reference
func GetImageName(imageRef string) string {

	imageName := ""
	if imageRef != "" {
		imageArray := strings.Split(imageRef, ":")
		imageName = imageArray[0]
	}

	return imageName
}

// GetImageTag returns the tag part of a container image reference, defaulting to latest
func GetImageTag(imageRef string) string {

	imageTag := ""
	if imageRef != "" {
		imageArray := strings.Split(imageRef, ":")
		imageTag = "latest"
		if len(imageArray) > 1 {
			imageTag = imageArray[1]
		}
	}

	return imageTag
}
