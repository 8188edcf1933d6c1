package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sdaveas/clipstash/internal/clip"
	"github.com/sdaveas/clipstash/internal/history"
	"github.com/sdaveas/clipstash/internal/logging"
	"github.com/sdaveas/clipstash/internal/poller"
	"github.com/sdaveas/clipstash/internal/ui"
)

func newRunCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Watch the clipboard and open the history panel",
		Long: `Starts the clipboard watcher and opens the history panel.

While the panel is open:
  1-9        copy the numbered snippet back to the clipboard
  up/down    move the selection
  enter      copy the selected snippet
  /          fuzzy search; typing narrows the list
  C          clear the history
  esc        leave search, then close the panel

History is kept in memory only; closing the panel discards it.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runRun(v) },
	}

	f := cmd.Flags()
	f.Int("history-size", history.DefaultCapacity,
		fmt.Sprintf("snippets to keep (clamped to %d–%d)", minHistorySize, maxHistorySize))
	f.Duration("poll-interval", poller.DefaultInterval, "clipboard poll cadence")
	f.String("log-file", "", "write JSON logs to this file (default: logging off while the panel is open)")
	f.String("log-level", "", "log level: debug|info|warn|error")
	addConfigFlag(cmd)

	return cmd
}

func runRun(v *viper.Viper) error {
	// The panel owns the terminal, so logs go to a file or nowhere.
	if path := v.GetString("log-file"); path != "" {
		closeLog, err := logging.SetupFile(path, logging.ParseLevel(v.GetString("log-level")))
		if err != nil {
			return err
		}
		defer func() { _ = closeLog() }()
	} else {
		logging.Discard()
	}

	size := clampHistorySize(v.GetInt("history-size"))
	store, err := history.New(size)
	if err != nil {
		return err
	}

	device := clip.New()
	defer device.Close()

	p := poller.New(device, store, v.GetDuration("poll-interval"))
	store.SetWriter(p.Writer())

	slog.Info("clipstash starting",
		"version", Version,
		"device", device.Name(),
		"history_size", size,
	)

	p.Start()
	defer p.Stop()

	prog := tea.NewProgram(ui.New(store), tea.WithAltScreen())
	store.SetOnChange(func() {
		prog.Send(ui.StoreChangedMsg{})
	})

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("panel: %w", err)
	}
	return nil
}
