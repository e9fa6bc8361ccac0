// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// exportFlags returns new --format and --output flags; a flag instance belongs to one command.
func exportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: text, csv, markdown or json",
			Value:   "text",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write to a file instead of stdout",
		},
	}
}

// searchCommand queries the search endpoint
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Aliases:   []string{"s"},
		Usage:     "Search tracks and artists",
		ArgsUsage: "<query>",
		Flags:     exportFlags(),
		Action:    r.Search,
	}
}

// tracksCommand lists an artist's uploads
func tracksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "tracks",
		Usage:     "List the tracks uploaded by a user",
		ArgsUsage: "<user-id>",
		Flags:     exportFlags(),
		Action:    r.Tracks,
	}
}

// streamURLCommand prints a playable stream URL
func streamURLCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "stream-url",
		Usage:     "Print the playable URL for a track's stream_url",
		ArgsUsage: "<stream-url>",
		Action:    r.StreamURL,
	}
}

// playCommand streams one track to the speakers
func playCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     "Play a track's stream_url until it ends or is interrupted",
		ArgsUsage: "<stream-url>",
		Action:    r.Play,
	}
}

// setupCommand handles configuration setup.
func setupCommand(r *Runner) *cli.Command {
	pathFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:  "path",
			Usage: "Config file to write (default: $XDG_CONFIG_HOME/scplay/config.toml)",
		}
	}

	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write the example configuration file",
				Flags:  []cli.Flag{pathFlag()},
				Action: r.SetupConfig,
			},
			{
				Name:  "curl",
				Usage: "Store the client_id found in a browser request (Copy as cURL)",
				Flags: []cli.Flag{
					pathFlag(),
					&cli.StringFlag{
						Name:  "curl",
						Usage: "cURL command from browser DevTools (Copy as cURL)",
					},
					&cli.StringFlag{
						Name:  "curl-file",
						Usage: "Path to .sh file containing cURL command",
					},
				},
				Action: r.SetupCurl,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive search and playback.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive search widget",
		Action:  r.TUI,
	}
}

// exportCommand writes one export file per user
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export the tracks of several users, one file each",
		ArgsUsage: "<user-id> [user-id...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, csv, markdown or json",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Output directory (default: scplay_export_<timestamp>)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of concurrent writers",
				Value: 5,
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Track list requests per second",
				Value: 5,
			},
		},
		Action: r.Export,
	}
}
