// Package pipeline runs the ordered chain of rule stages for one intake
// request. The stage order comes from configuration; execution stops at the
// first stage that signals stop.
package pipeline

import (
	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/logging"
	"github.com/fieldworks/farmgate/pkg/stages"
	"github.com/fieldworks/farmgate/pkg/store"
)

// StageExecution records one executed stage and its outcome.
type StageExecution struct {
	Name    string
	Outcome stages.Outcome
}

// Result summarizes one pipeline run.
type Result struct {
	// TotalStages is the number of stages the pipeline was built with
	TotalStages int

	// Executed lists the stages that actually ran, in order
	Executed []StageExecution

	// StoppedAt names the stage that signalled stop, or "" if the chain
	// ran to the end without one
	StoppedAt string
}

// Pipeline is an ordered chain of resolved stages.
type Pipeline struct {
	chain []stages.Stage
}

// New builds a pipeline from stage names, resolving each against the stage
// registry. An unknown name fails the build with a STAGE_NOT_FOUND error.
func New(names []string) (*Pipeline, error) {
	chain := make([]stages.Stage, 0, len(names))
	for _, name := range names {
		stage, err := stages.Get(name)
		if err != nil {
			return nil, err
		}
		chain = append(chain, stage)
	}
	return &Pipeline{chain: chain}, nil
}

// FromConfig builds a pipeline from the configured stage order.
func FromConfig(cfg *config.Config) (*Pipeline, error) {
	return New(cfg.Pipeline.Stages)
}

// StageNames returns the names of the stages in execution order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.chain))
	for i, s := range p.chain {
		names[i] = s.Name()
	}
	return names
}

// Run executes the stages in order against one intake context, stopping at
// the first stage that signals stop.
func (p *Pipeline) Run(cfg config.AppConfig, sys *store.FarmStore, ctx *stages.IntakeContext) (*Result, error) {
	logger := logging.GetLogger("pipeline")
	logger.Debug().
		Int("stages", len(p.chain)).
		Str("article", ctx.Request.Article).
		Msg("Starting intake pipeline")

	result := &Result{
		TotalStages: len(p.chain),
		Executed:    make([]StageExecution, 0, len(p.chain)),
	}

	for _, stage := range p.chain {
		outcome, err := stage.Apply(cfg, sys, ctx)
		if err != nil {
			logger.Error().Err(err).Str("stage", stage.Name()).Msg("Stage failed")
			return result, err
		}

		result.Executed = append(result.Executed, StageExecution{
			Name:    stage.Name(),
			Outcome: outcome,
		})

		logger.Debug().
			Str("stage", stage.Name()).
			Str("outcome", outcome.String()).
			Msg("Stage applied")

		if outcome == stages.Stop {
			result.StoppedAt = stage.Name()
			break
		}
	}

	logger.Info().
		Int("executed", len(result.Executed)).
		Str("stoppedAt", result.StoppedAt).
		Msg("Intake pipeline completed")

	return result, nil
}
