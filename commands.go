package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/llehouerou/mixtape/internal/app"
	"github.com/llehouerou/mixtape/internal/config"
	"github.com/llehouerou/mixtape/internal/errmsg"
	"github.com/llehouerou/mixtape/internal/logging"
	"github.com/llehouerou/mixtape/internal/mpris"
	"github.com/llehouerou/mixtape/internal/playlists"
	"github.com/llehouerou/mixtape/internal/stderr"
	"github.com/llehouerou/mixtape/internal/ui/screen"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "mixtape",
		Usage: "Play your own audio files from playlists",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Extra configuration file, read last",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "SQLite database path",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Action: runTUI,
		Commands: []*cli.Command{
			{
				Name:   "playlists",
				Usage:  "List playlists",
				Action: headless(listPlaylists),
			},
			{
				Name:      "create",
				Usage:     "Create a playlist",
				ArgsUsage: "NAME",
				Action:    headless(createPlaylist),
			},
			{
				Name:      "rename",
				Usage:     "Rename a playlist",
				ArgsUsage: "ID NAME",
				Action:    headless(renamePlaylist),
			},
			{
				Name:      "delete",
				Usage:     "Delete a playlist",
				ArgsUsage: "ID",
				Action:    headless(deletePlaylist),
			},
			{
				Name:      "add",
				Usage:     "Add audio files or directories to a playlist",
				ArgsUsage: "ID PATH...",
				Action:    headless(addTracks),
			},
			{
				Name:   "history",
				Usage:  "Show recently played tracks",
				Action: headless(showHistory),
			},
		},
	}
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	paths := config.DefaultPaths()
	if extra := cmd.String("config"); extra != "" {
		paths = append(paths, config.ExpandPath(extra))
	}
	cfg, err := config.LoadFrom(paths...)
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpConfigLoad, "", err)
	}
	if db := cmd.String("db"); db != "" {
		cfg.Database = config.ExpandPath(db)
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	return cfg, nil
}

// runTUI starts the interactive player. Logs go to the log file since the
// terminal belongs to the UI.
func runTUI(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	f, err := logging.OpenFile(logPath)
	if err != nil {
		return err
	}
	defer f.Close()

	logger, err := logging.New(f, cfg.GetLogLevel())
	if err != nil {
		return err
	}

	if err := stderr.Start(logging.Component(logger, "stderr")); err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	}
	defer stderr.Stop()

	a, err := app.Open(ctx, cfg, logger, false)
	if err != nil {
		return errmsg.Wrap(errmsg.OpInitialize, "", err)
	}
	defer a.Close()

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(a.Playback, a.Playlists)
		if err != nil {
			logger.Warn("mpris unavailable", "err", err)
		} else {
			defer adapter.Close()
		}
	}

	logger.Info("started", "log", logPath)
	p := tea.NewProgram(screen.New(ctx, a, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		stderr.WriteOriginal(err.Error() + "\n")
		return err
	}
	return nil
}

// headless opens the app without an audio device, logging to stderr, and
// hands it to fn.
func headless(fn func(ctx context.Context, cmd *cli.Command, a *app.App) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := logging.New(errWriter(cmd), cfg.GetLogLevel())
		if err != nil {
			return err
		}
		a, err := app.Open(ctx, cfg, logger, true)
		if err != nil {
			return errmsg.Wrap(errmsg.OpInitialize, "", err)
		}
		defer a.Close()
		return fn(ctx, cmd, a)
	}
}

func listPlaylists(_ context.Context, cmd *cli.Command, a *app.App) error {
	w := writer(cmd)
	for _, p := range a.Playlists.Playlists() {
		var size uint64
		for _, t := range p.Tracks {
			size += uint64(len(t.Content))
		}
		fmt.Fprintf(w, "%d\t%s\t%d tracks\t%s\n", p.ID, p.Name, len(p.Tracks), humanize.Bytes(size))
	}
	return nil
}

func createPlaylist(ctx context.Context, cmd *cli.Command, a *app.App) error {
	name := cmd.Args().First()
	p, err := a.Playlists.Create(ctx, name)
	if err != nil {
		return errmsg.Wrap(errmsg.OpPlaylistCreate, name, err)
	}
	fmt.Fprintf(writer(cmd), "%d\t%s\n", p.ID, p.Name)
	return nil
}

func renamePlaylist(ctx context.Context, cmd *cli.Command, a *app.App) error {
	id, err := playlistID(cmd)
	if err != nil {
		return err
	}
	name := cmd.Args().Get(1)
	if err := a.Playlists.Rename(ctx, id, name); err != nil {
		return errmsg.Wrap(errmsg.OpPlaylistRename, name, err)
	}
	return nil
}

func deletePlaylist(ctx context.Context, cmd *cli.Command, a *app.App) error {
	id, err := playlistID(cmd)
	if err != nil {
		return err
	}
	if err := a.Playlists.Delete(ctx, id); err != nil {
		return errmsg.Wrap(errmsg.OpPlaylistDelete, "", err)
	}
	return nil
}

func addTracks(ctx context.Context, cmd *cli.Command, a *app.App) error {
	id, err := playlistID(cmd)
	if err != nil {
		return err
	}
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("no files given")
	}
	var args []string
	for _, p := range cmd.Args().Slice()[1:] {
		args = append(args, config.ExpandPath(p))
	}
	paths, err := playlists.ExpandPaths(args)
	if err != nil {
		return errmsg.Wrap(errmsg.OpFileLoad, "", err)
	}
	records, err := playlists.ReadFiles(paths)
	if err != nil {
		return errmsg.Wrap(errmsg.OpFileLoad, "", err)
	}

	// Opening a playlist to edit it is not listening to it.
	a.Playback.SetRecorder(nil)
	if err := a.Playlists.Select(ctx, id); err != nil {
		return errmsg.Wrap(errmsg.OpPlaylistSelect, "", err)
	}
	if err := a.Playlists.AddTracks(ctx, records); err != nil {
		return errmsg.Wrap(errmsg.OpTrackAdd, "", err)
	}
	fmt.Fprintf(writer(cmd), "added %d tracks\n", len(records))
	return nil
}

func showHistory(_ context.Context, cmd *cli.Command, a *app.App) error {
	w := writer(cmd)
	for _, e := range a.History.Entries() {
		fmt.Fprintln(w, e.Name)
	}
	return nil
}

func playlistID(cmd *cli.Command) (int64, error) {
	arg := cmd.Args().First()
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid playlist id %q", arg)
	}
	return id, nil
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
