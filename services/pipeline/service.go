package pipeline

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"

	"github.com/freighter-cd/freighter-cd-runner/api"
	"github.com/freighter-cd/freighter-cd-runner/services/evaluation"
)

// Stage is one sequenced unit of the run; its when clause is evaluated against
// the run parameters before Run executes
type Stage struct {
	Name string
	When string
	Run  func(ctx context.Context) error
}

// Service sequences the stages of a run, owns the status and log bus and
// collects per-stage results
//go:generate mockgen -package=pipeline -destination ./mock.go -source=service.go
type Service interface {
	RunStages(ctx context.Context, stages []Stage) (stageResults []*api.StageResult, err error)
	StopPipelineOnCancellation()
}

// NewService returns a new pipeline.Service
func NewService(evaluationService evaluation.Service, cancellationChannel chan struct{}, tailLogsChannel chan api.TailLogLine) (Service, error) {
	return &service{
		evaluationService:   evaluationService,
		cancellationChannel: cancellationChannel,
		tailLogsChannel:     tailLogsChannel,
	}, nil
}

type service struct {
	evaluationService   evaluation.Service
	cancellationChannel chan struct{}
	tailLogsChannel     chan api.TailLogLine
	canceled            atomic.Bool

	stageResults      []*api.StageResult
	stageResultsMutex sync.Mutex
}

func (s *service) RunStages(ctx context.Context, stages []Stage) (stageResults []*api.StageResult, err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunStages")
	defer span.Finish()

	if len(stages) == 0 {
		return stageResults, fmt.Errorf("pipeline has no stages, failing the run")
	}

	// start log tailing
	s.stageResults = make([]*api.StageResult, 0)
	tailLogsDone := make(chan struct{}, 1)
	go s.tailLogs(tailLogsDone, stages)

	log.Info().Msgf("Running %v stages", len(stages))

	runStatus := api.StatusSucceeded
	var finalErr error
	for _, stage := range stages {
		if s.canceled.Load() {
			// cancellation happening in between stages marks the rest canceled
			s.sendStatusMessage(stage.Name, nil, nil, api.StatusCanceled)
			continue
		}

		whenEvaluationResult, whenErr := s.evaluationService.Evaluate(stage.Name, stage.When, s.evaluationService.GetParameters(runStatus))
		if whenErr != nil {
			// a broken when clause fails the stage, so run and stage status agree
			runStatus = api.StatusFailed
			finalErr = whenErr
			s.sendStatusMessage(stage.Name, nil, nil, api.StatusFailed)
			continue
		}

		if !whenEvaluationResult {
			// still render skipped stages in the result table
			s.sendStatusMessage(stage.Name, nil, nil, api.StatusSkipped)
			continue
		}

		stageErr := s.runStage(ctx, stage)
		if s.canceled.Load() {
			continue
		}
		if stageErr != nil {
			runStatus = api.StatusFailed
			finalErr = stageErr
		}
	}

	<-tailLogsDone

	if s.canceled.Load() {
		finalErr = fmt.Errorf("run canceled")
	}

	return s.stageResults, finalErr
}

func (s *service) runStage(ctx context.Context, stage Stage) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "RunStage")
	defer span.Finish()
	span.SetTag("stage", stage.Name)

	log.Info().Msgf("[%v] Starting stage", stage.Name)
	s.sendStatusMessage(stage.Name, nil, nil, api.StatusRunning)

	start := time.Now()
	err = stage.Run(ctx)
	runDuration := time.Since(start)

	finalStatus := api.StatusSucceeded
	exitCode := 0
	if s.canceled.Load() {
		log.Info().Msgf("[%v] Stage canceled", stage.Name)
		finalStatus = api.StatusCanceled
	} else if err != nil {
		log.Warn().Err(err).Msgf("[%v] Stage failed", stage.Name)
		finalStatus = api.StatusFailed
		exitCode = 1

		logLine := api.LogLine{
			LineNumber: 10000,
			Timestamp:  time.Now().UTC(),
			StreamType: "stderr",
			Text:       err.Error(),
		}
		s.tailLogsChannel <- api.TailLogLine{
			Stage:   stage.Name,
			LogLine: &logLine,
		}
	} else {
		log.Info().Msgf("[%v] Stage succeeded", stage.Name)
	}

	s.sendStatusMessage(stage.Name, &runDuration, &exitCode, finalStatus)

	return err
}

func (s *service) StopPipelineOnCancellation() {
	<-s.cancellationChannel
	s.canceled.Store(true)
}

func (s *service) sendStatusMessage(stage string, runDuration *time.Duration, exitCode *int, status api.Status) {

	s.tailLogsChannel <- api.TailLogLine{
		Stage:    stage,
		Status:   &status,
		Duration: runDuration,
		ExitCode: exitCode,
	}
}

func (s *service) tailLogs(tailLogsDone chan struct{}, stages []Stage) {

	for tailLogLine := range s.tailLogsChannel {
		if tailLogLine.LogLine != nil {
			log.Info().Msgf("[%v] %v", tailLogLine.Stage, tailLogLine.LogLine.Text)
		}

		s.upsertTailLogLine(tailLogLine)

		if tailLogLine.Status != nil && s.isFinalStageComplete(stages) {
			// all stages have reached a final status, tailing can stop
			tailLogsDone <- struct{}{}
			return
		}
	}
}

func (s *service) upsertTailLogLine(tailLogLine api.TailLogLine) {

	s.stageResultsMutex.Lock()
	defer s.stageResultsMutex.Unlock()

	stageResult := s.getStageResult(tailLogLine.Stage)
	if stageResult == nil {
		stageResult = &api.StageResult{
			Stage: tailLogLine.Stage,
		}
		s.stageResults = append(s.stageResults, stageResult)
	}

	if tailLogLine.LogLine != nil {
		stageResult.LogLines = append(stageResult.LogLines, *tailLogLine.LogLine)
	}
	if tailLogLine.Status != nil {
		stageResult.Status = *tailLogLine.Status
	}
	if tailLogLine.Image != "" {
		stageResult.Image = tailLogLine.Image
	}
	if tailLogLine.ImageSize > 0 {
		stageResult.ImageSize = tailLogLine.ImageSize
	}
	if tailLogLine.Duration != nil {
		stageResult.Duration = *tailLogLine.Duration
	}
	if tailLogLine.ExitCode != nil {
		stageResult.ExitCode = *tailLogLine.ExitCode
	}
}

func (s *service) getStageResult(stage string) *api.StageResult {
	for _, sr := range s.stageResults {
		if sr.Stage == stage {
			return sr
		}
	}
	return nil
}

func (s *service) isFinalStageComplete(stages []Stage) bool {

	s.stageResultsMutex.Lock()
	defer s.stageResultsMutex.Unlock()

	if len(s.stageResults) != len(stages) {
		return false
	}

	for _, sr := range s.stageResults {
		if !sr.Status.IsFinal() {
			return false
		}
	}

	return true
}
