package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/scplay/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the example configuration file.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path, err := r.setupPath(cmd)
	if err != nil {
		return err
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	r.writePlain("✓ Config written to %s\n", path)
	r.writePlain("Next: run 'scplay setup curl --curl \"<copied request>\"' to store a client_id\n")
	return nil
}

// SetupCurl stores the client_id found in a request copied from the browser's DevTools.
//
// Accepts a cURL command or a file containing one.
func (r *Runner) SetupCurl(ctx context.Context, cmd *cli.Command) error {
	curlCmd := cmd.String("curl")
	curlFile := cmd.String("curl-file")

	if curlCmd == "" && curlFile == "" {
		return fmt.Errorf("%w: either --curl or --curl-file must be provided", shared.ErrMissingArgument)
	}

	if curlCmd != "" && curlFile != "" {
		return fmt.Errorf("%w: cannot specify both --curl and --curl-file", shared.ErrInvalidArgument)
	}

	var (
		req *shared.CurlRequest
		err error
	)
	if curlFile != "" {
		req, err = shared.ParseCurlFile(curlFile)
		if err != nil {
			return fmt.Errorf("failed to parse cURL file: %w", err)
		}
		r.logger.Info("parsed cURL from file", "file", curlFile)
	} else {
		req, err = shared.ParseCurlCommand(curlCmd)
		if err != nil {
			return fmt.Errorf("failed to parse cURL command: %w", err)
		}
		r.logger.Info("parsed cURL command")
	}

	clientID, err := req.ClientID()
	if err != nil {
		return err
	}

	path, err := r.setupPath(cmd)
	if err != nil {
		return err
	}

	if err := shared.WriteClientID(path, clientID); err != nil {
		return err
	}

	r.logger.Info("client_id saved", "path", path)
	r.writePlain("✓ client_id saved to %s\n", path)
	r.writePlain("Run 'scplay search \"your song\"' to test it\n")
	return nil
}

// setupPath resolves where setup commands write: --path, the loaded config file, or the XDG default.
func (r *Runner) setupPath(cmd *cli.Command) (string, error) {
	if path := cmd.String("path"); path != "" {
		return path, nil
	}
	if r.configPath != "" {
		return r.configPath, nil
	}

	path, err := shared.DefaultConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	return path, nil
}
