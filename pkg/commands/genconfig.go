package commands

import (
	"os"
	"path/filepath"

	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/errors"
	"github.com/fieldworks/farmgate/pkg/logging"
	"github.com/fieldworks/farmgate/pkg/paths"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Effective renders the fully resolved configuration instead of the
	// built-in defaults file
	Effective bool

	// ConfigPath is the explicit config file for Effective resolution
	ConfigPath string

	// Write writes the content to TargetPath instead of returning it only
	Write bool

	// TargetPath is where --write puts the file (defaults to ./farmgate.toml)
	TargetPath string
}

// GenConfigResult holds the gen-config output
type GenConfigResult struct {
	Content     string
	FileWritten string
}

// GenConfig outputs or writes configuration content
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	var content string
	if opts.Effective {
		cfg, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		out, err := cfg.MarshalTOML()
		if err != nil {
			return nil, err
		}
		content = string(out)
	} else {
		content = config.GetDefaultsContent()
	}

	result := &GenConfigResult{Content: content}

	if !opts.Write {
		logger.Debug().Bool("effective", opts.Effective).Msg("Returning config content")
		return result, nil
	}

	target := opts.TargetPath
	if target == "" {
		target = paths.ConfigFileName
	}
	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to create directory %s", dir)
		}
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target)
	}

	logger.Info().Str("path", target).Msg("Wrote config file")
	result.FileWritten = target
	return result, nil
}
