// cmd/padelbuddy/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/trystan2k/padelbuddy-sub002/device"
	"github.com/trystan2k/padelbuddy-sub002/internal/tui"
	"github.com/trystan2k/padelbuddy-sub002/layout"
	"github.com/trystan2k/padelbuddy-sub002/render"
	"github.com/trystan2k/padelbuddy-sub002/scoring"
	"github.com/trystan2k/padelbuddy-sub002/session"
	"github.com/trystan2k/padelbuddy-sub002/storage"
)

var build string
var semanticVersion = "v0.1.0-dev" + build

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	app := &cli.App{
		Name:    "padelbuddy",
		Usage:   "Padel match scoring core with a terminal watch simulator",
		Version: semanticVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "Directory for persisted match state and history",
				Value: defaultDataDir(),
			},
			&cli.StringFlag{
				Name:  "store",
				Usage: "Storage backend: file, sqlite, or memory",
				Value: "file",
			},
		},
		Commands: []*cli.Command{
			watchCommand(),
			simulateCommand(),
			layoutCommand(),
			historyCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".padelbuddy")
	}
	return ".padelbuddy"
}

// openStore builds the storage collaborator named by the --store flag,
// degrading to the in-memory store when the backend cannot be opened.
func openStore(cCtx *cli.Context) storage.Store {
	dir := cCtx.String("data-dir")
	switch cCtx.String("store") {
	case "memory":
		return storage.NewMemStore()
	case "sqlite":
		store, err := storage.OpenSQLiteStore(filepath.Join(dir, "padelbuddy.db"))
		if err != nil {
			log.Printf("Warn: sqlite store unavailable (%v), using in-memory store", err)
			return storage.NewMemStore()
		}
		return store
	default:
		store, err := storage.NewFileStore(dir)
		if err != nil {
			log.Printf("Warn: file store unavailable (%v), using in-memory store", err)
			return storage.NewMemStore()
		}
		return store
	}
}

func screenFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "width", Usage: "Screen width in pixels", Value: device.DefaultWidth},
		&cli.IntFlag{Name: "height", Usage: "Screen height in pixels", Value: device.DefaultHeight},
	}
}

func screenMetrics(cCtx *cli.Context) device.Metrics {
	return device.FromDimensions(cCtx.Int("width"), cCtx.Int("height"))
}

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Run the interactive terminal watch simulator",
		Flags: append(screenFlags(),
			&cli.StringFlag{Name: "team-a", Value: "Team A"},
			&cli.StringFlag{Name: "team-b", Value: "Team B"},
			&cli.IntFlag{Name: "best-of", Usage: "Sets in the match (odd)", Value: scoring.DefaultBestOf},
		),
		Action: func(cCtx *cli.Context) error {
			sess := session.New(openStore(cCtx))
			if !sess.Active() {
				sess.NewMatch(cCtx.String("team-a"), cCtx.String("team-b"), cCtx.Int("best-of"))
			}
			program := tea.NewProgram(tui.New(sess, screenMetrics(cCtx)), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running simulator: %w", err)
			}
			return nil
		},
	}
}

func simulateCommand() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "Apply a scripted point sequence and print the resulting state as YAML",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "points",
				Usage:    "Comma-separated point winners, e.g. a,a,b,a (u undoes one point)",
				Required: true,
			},
			&cli.IntFlag{Name: "best-of", Value: scoring.DefaultBestOf},
			&cli.StringFlag{Name: "team-a", Value: "Team A"},
			&cli.StringFlag{Name: "team-b", Value: "Team B"},
		},
		Action: func(cCtx *cli.Context) error {
			state := scoring.NewMatch(cCtx.String("team-a"), cCtx.String("team-b"), cCtx.Int("best-of"))
			hist := scoring.NewHistory(0)

			for _, token := range strings.Split(cCtx.String("points"), ",") {
				switch strings.TrimSpace(strings.ToLower(token)) {
				case "a":
					hist.Push(state)
					state = scoring.AddPoint(state, scoring.TeamA)
				case "b":
					hist.Push(state)
					state = scoring.AddPoint(state, scoring.TeamB)
				case "u":
					state = scoring.RemovePoint(state, hist)
				case "":
				default:
					return fmt.Errorf("unknown point token %q (want a, b, or u)", token)
				}
				if state.Status == scoring.StatusFinished {
					break
				}
			}

			vm := render.BuildViewModel(state)
			fmt.Fprintf(os.Stderr, "%s %s - %s %s (set %d)\n",
				vm.TeamA.Label, vm.TeamA.Points, vm.TeamB.Points, vm.TeamB.Label, vm.SetNumber)
			return writeYAML(os.Stdout, state)
		},
	}
}

func layoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "layout",
		Usage: "Resolve a layout schema against screen metrics and print the rects as YAML",
		Flags: append(screenFlags(),
			&cli.StringFlag{
				Name:    "schema",
				Aliases: []string{"s"},
				Usage:   "Path to a YAML schema file (defaults to a built-in screen)",
			},
			&cli.StringFlag{
				Name:  "screen",
				Usage: "Built-in screen when no schema file is given: match, menu, or history",
				Value: "match",
			},
		),
		Action: func(cCtx *cli.Context) error {
			var schema layout.Schema
			if path := cCtx.String("schema"); path != "" {
				loaded, err := layout.LoadSchemaFile(path)
				if err != nil {
					return err
				}
				schema = loaded
			} else {
				switch cCtx.String("screen") {
				case "match":
					schema = layout.MatchScreen()
				case "menu":
					schema = layout.MenuScreen()
				case "history":
					schema = layout.HistoryScreen()
				default:
					return fmt.Errorf("unknown screen %q (want match, menu, or history)", cCtx.String("screen"))
				}
			}
			return writeYAML(os.Stdout, layout.Resolve(schema, screenMetrics(cCtx)))
		},
	}
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List archived matches",
		Subcommands: []*cli.Command{
			{
				Name:  "clear",
				Usage: "Delete every archived match",
				Action: func(cCtx *cli.Context) error {
					return storage.NewMatchArchive(openStore(cCtx)).Clear()
				},
			},
		},
		Action: func(cCtx *cli.Context) error {
			entries := storage.NewMatchArchive(openStore(cCtx)).Entries()
			if len(entries) == 0 {
				fmt.Fprintln(os.Stderr, "no archived matches")
				return nil
			}
			return writeYAML(os.Stdout, entries)
		},
	}
}

func writeYAML(w *os.File, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding to YAML failed: %w", err)
	}
	return enc.Close()
}
