package evaluation

import (
	"errors"

	"github.com/Knetic/govaluate"
	"github.com/rs/zerolog/log"

	"github.com/freighter-cd/freighter-cd-runner/api"
)

// Service evaluates when clauses gating stage execution
//go:generate mockgen -package=evaluation -destination ./mock.go -source=service.go
type Service interface {
	Evaluate(stageName, input string, parameters map[string]interface{}) (bool, error)
	GetParameters(runStatus api.Status) map[string]interface{}
}

// NewService returns a new evaluation.Service
func NewService(config api.RunConfig) (Service, error) {
	return &service{
		config: config,
	}, nil
}

type service struct {
	config api.RunConfig
}

func (s *service) Evaluate(stageName, input string, parameters map[string]interface{}) (result bool, err error) {

	if input == "" {
		return false, errors.New("When expression is empty")
	}

	log.Info().Msgf("[%v] Evaluating when expression \"%v\" with parameters \"%v\"", stageName, input, parameters)

	expression, err := govaluate.NewEvaluableExpression(input)
	if err != nil {
		return
	}

	r, err := expression.Evaluate(parameters)

	log.Info().Msgf("[%v] Result of when expression \"%v\" is \"%v\"", stageName, input, r)

	if result, ok := r.(bool); ok {
		return result, err
	}

	return false, errors.New("Result of evaluating when expression is not of type boolean")
}

func (s *service) GetParameters(runStatus api.Status) map[string]interface{} {

	parameters := make(map[string]interface{}, 4)
	parameters["branch"] = s.config.Branch
	parameters["trigger"] = s.config.Trigger
	parameters["status"] = string(runStatus)
	parameters["action"] = string(s.config.InfraAction)

	return parameters
}
