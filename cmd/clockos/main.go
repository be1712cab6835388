// Package main provides the CLI entrypoint for clockos.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hmolin/clockos/internal/config"
	"github.com/hmolin/clockos/internal/device"
	"github.com/hmolin/clockos/internal/faces"
	"github.com/hmolin/clockos/internal/menu"
	"github.com/hmolin/clockos/internal/model"
	"github.com/hmolin/clockos/internal/render"
	"github.com/hmolin/clockos/internal/sim"
	"github.com/hmolin/clockos/internal/store"
)

const (
	defaultHoldMS       = 250
	terminalWidthBackup = 80
)

var (
	simDB     string
	simFace   int
	simHoldMS int

	facesDB string

	resetDB string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "clockos",
		Short:         "LED ring clock simulator",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runSimulatorCmd,
	}

	rootCmd.Flags().StringVar(&simDB, "db", config.DefaultDBPath(), "path to the NVRAM database")
	rootCmd.Flags().IntVar(&simFace, "face", -1, "start with this face instead of the stored one (0-9)")
	rootCmd.Flags().IntVar(&simHoldMS, "hold-ms", defaultHoldMS, "how long a tapped key counts as held (ms)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newFacesCmd())
	rootCmd.AddCommand(newResetCmd())

	return rootCmd
}

func runSimulatorCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "db", &simDB, fileCfg.Simulator.DB)
	applyIntConfig(cmd, "face", &simFace, fileCfg.Simulator.Face)
	applyIntConfig(cmd, "hold-ms", &simHoldMS, fileCfg.Simulator.HoldMS)

	if simHoldMS <= 0 {
		return fmt.Errorf("--hold-ms must be > 0")
	}

	st, err := store.OpenSQLite(simDB)
	if err != nil {
		return fmt.Errorf("failed to open NVRAM db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close NVRAM db: %v\n", cerr)
		}
	}()

	gateway := store.NewGateway(st)
	settings, err := gateway.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	allFaces, err := gateway.LoadFaces()
	if err != nil {
		return fmt.Errorf("failed to load faces: %w", err)
	}
	if cmd.Flags().Changed("face") || fileCfg.Simulator.Face != nil {
		if simFace < 0 || simFace >= model.NumFaces {
			return fmt.Errorf("--face must be between 0 and %d", model.NumFaces-1)
		}
		settings.ActiveFace = simFace
	}

	panel := sim.NewPanel()
	rtc := &sim.SystemRTC{}
	configStore := faces.New(allFaces, settings)
	controller := menu.New(menu.Devices{
		Ring:     panel,
		Segments: panel,
		RTC:      rtc,
		Buttons:  panel,
		Clock:    device.WallClock{},
	}, configStore, gateway, render.New())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- controller.Run(ctx)
	}()

	model := sim.NewModel(panel, time.Duration(simHoldMS)*time.Millisecond, cancel)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		cancel()
		<-done
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	cancel()
	if err := <-done; err != nil && err != context.Canceled {
		return fmt.Errorf("control loop: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newFacesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faces",
		Short: "List the stored face configurations",
		Args:  cobra.NoArgs,
		RunE:  runFacesCmd,
	}
	cmd.Flags().StringVar(&facesDB, "db", config.DefaultDBPath(), "path to the NVRAM database")
	return cmd
}

func runFacesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "db", &facesDB, fileCfg.Simulator.DB)

	st, err := store.OpenSQLite(facesDB)
	if err != nil {
		return fmt.Errorf("failed to open NVRAM db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close NVRAM db: %v\n", cerr)
		}
	}()

	gateway := store.NewGateway(st)
	settings, err := gateway.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	allFaces, err := gateway.LoadFaces()
	if err != nil {
		return fmt.Errorf("failed to load faces: %w", err)
	}

	width := terminalWidthBackup
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	compact := width < 76

	out := cmd.OutOrStdout()
	if compact {
		if _, err := fmt.Fprintln(out, "face  hours         minutes       seconds       markers"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		if _, err := fmt.Fprintln(out, "face  hours              minutes            seconds            markers"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	for i, f := range allFaces {
		marker := ' '
		if i == settings.ActiveFace {
			marker = '*'
		}
		var line string
		if compact {
			line = fmt.Sprintf("%c%d     %-13s %-13s %-13s %s/%s",
				marker, i,
				handColumn(f.Hours), handColumn(f.Minutes), handColumn(f.Seconds),
				f.Markers.Style, f.Markers.Color)
		} else {
			line = fmt.Sprintf("%c%d     %-18s %-18s %-18s %s %s",
				marker, i,
				handColumn(f.Hours), handColumn(f.Minutes), handColumn(f.Seconds),
				f.Markers.Style, f.Markers.Color)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if _, err := fmt.Fprintf(out, "\ndisplay=%s colons=%s alternate=%ds\n",
		settings.Display, settings.Colons, settings.AlternateSeconds); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func handColumn(h model.HandConfig) string {
	return h.Style.String() + " " + h.Color.String()
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Write factory defaults to the NVRAM database",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().StringVar(&resetDB, "db", config.DefaultDBPath(), "path to the NVRAM database")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "db", &resetDB, fileCfg.Simulator.DB)

	st, err := store.OpenSQLite(resetDB)
	if err != nil {
		return fmt.Errorf("failed to open NVRAM db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close NVRAM db: %v\n", cerr)
		}
	}()

	gateway := store.NewGateway(st)
	if err := gateway.WriteFactoryDefaults(); err != nil {
		return fmt.Errorf("failed to write factory defaults: %w", err)
	}
	logErrln("Wrote factory defaults")
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# clockos configuration
# Uncomment a value to enable it. CLI flags override config values.

[simulator]
# db = %q
# face = 0          # Start with this face instead of the stored one (0-9)
# hold-ms = %d     # How long a tapped key counts as held (ms)
`,
		config.DefaultDBPath(),
		defaultHoldMS,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
