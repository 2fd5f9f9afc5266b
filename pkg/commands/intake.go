// Package commands implements the farmgate command layer. Each command is an
// options-in, result-out function; the CLI wires them to cobra and decides
// presentation.
package commands

import (
	"io"

	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/logging"
	"github.com/fieldworks/farmgate/pkg/pipeline"
	"github.com/fieldworks/farmgate/pkg/report"
	"github.com/fieldworks/farmgate/pkg/stages"
	"github.com/fieldworks/farmgate/pkg/store"
	"github.com/fieldworks/farmgate/pkg/types"
)

// IntakeOptions holds options for the intake command.
type IntakeOptions struct {
	// ConfigPath is an explicit config file; empty means the standard
	// search order
	ConfigPath string

	// Request overrides the configured default request when non-nil
	Request *types.Request

	// Format selects the report format (defaults to text)
	Format report.Format

	// Styled enables terminal styling for text reports
	Styled bool

	// Out receives the rendered report; nil suppresses rendering
	Out io.Writer
}

// IntakeResult describes one completed intake run.
type IntakeResult struct {
	Request  types.Request
	Profile  config.AppConfig
	Pipeline *pipeline.Result
	Store    report.Snapshot
}

// Intake runs one request through the configured rule pipeline and reports
// the resulting store.
func Intake(opts IntakeOptions) (*IntakeResult, error) {
	logger := logging.GetLogger("commands.intake")
	done := logging.LogOperationStart(logger, "intake")
	defer done()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	req := cfg.Request
	if opts.Request != nil {
		req = *opts.Request
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := pipeline.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("article", req.Article).
		Str("farmer", req.Farmer).
		Str("date", req.Date).
		Int("quantity", req.Quantity).
		Msg("Processing intake request")

	sys := store.New()
	ctx := stages.NewContext(req)

	pipeResult, err := p.Run(cfg.Profile, sys, ctx)
	if err != nil {
		return nil, err
	}

	result := &IntakeResult{
		Request:  req,
		Profile:  cfg.Profile,
		Pipeline: pipeResult,
		Store:    report.Snap(sys),
	}

	if opts.Out != nil {
		renderOpts := report.Options{Format: opts.Format, Styled: opts.Styled}
		if err := report.Render(sys, opts.Out, renderOpts); err != nil {
			return result, err
		}
	}

	return result, nil
}
