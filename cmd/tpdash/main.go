// Package main provides the CLI entrypoint for tpdash.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/truephase/tpdash/internal/browser"
	"github.com/truephase/tpdash/internal/chart"
	"github.com/truephase/tpdash/internal/config"
	"github.com/truephase/tpdash/internal/dashboard"
	"github.com/truephase/tpdash/internal/model"
	"github.com/truephase/tpdash/internal/theme"
	"github.com/truephase/tpdash/internal/ui"
)

const (
	defaultSection     = "overview"
	defaultColor       = string(model.ColorAuto)
	defaultPlotHeight  = chart.DefaultHeight
	defaultLogLevel    = "info"
	defaultRenderWidth = 120
	maxPlotHeight      = 40
)

var (
	dashSection    string
	dashColor      string
	dashPlotHeight int
	dashNoMouse    bool
	dashLogFile    string
	dashLogLevel   string

	renderAll   bool
	renderWidth int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tpdash",
		Short:         "Truephase demo analytics dashboard",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDashboardCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dashSection, "section", defaultSection, "start section (overview, voice, reviews, automation, ai)")
	flags.StringVar(&dashColor, "color", defaultColor, "color output: auto, always or never")
	flags.IntVar(&dashPlotHeight, "plot-height", defaultPlotHeight, "chart rows")
	rootCmd.Flags().BoolVar(&dashNoMouse, "no-mouse", false, "disable mouse clicks")
	rootCmd.Flags().StringVar(&dashLogFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&dashLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newSectionsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadDashboardConfig merges the config file under the flags and validates the result.
func loadDashboardConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	mouse := !dashNoMouse
	applyStringConfig(cmd, "section", &dashSection, fileCfg.Dashboard.Section)
	applyStringConfig(cmd, "color", &dashColor, fileCfg.Dashboard.Color)
	applyIntConfig(cmd, "plot-height", &dashPlotHeight, fileCfg.Dashboard.PlotHeight)
	applyBoolConfig(cmd, "no-mouse", &mouse, fileCfg.Dashboard.Mouse)
	applyStringConfig(cmd, "log-file", &dashLogFile, fileCfg.Log.File)
	applyStringConfig(cmd, "log-level", &dashLogLevel, fileCfg.Log.Level)

	section, err := model.ParseSection(dashSection)
	if err != nil {
		return model.Config{}, fmt.Errorf("--section: %w", err)
	}
	cfg := model.Config{
		Section:    section,
		Color:      model.ColorMode(strings.ToLower(strings.TrimSpace(dashColor))),
		PlotHeight: dashPlotHeight,
		Mouse:      mouse,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runDashboardCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadDashboardConfig(cmd)
	if err != nil {
		return err
	}
	applyColorMode(cfg.Color)

	logger, closeLog, err := newFileLogger(dashLogFile, dashLogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			l := cliLogger()
			l.Warn().Err(cerr).Msg("failed to close log file")
		}
	}()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	m := ui.NewModel(cfg, browser.NewSystem(), logger)
	program := tea.NewProgram(m, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [section...]",
		Short: "Print sections without starting the TUI",
		RunE:  runRenderCmd,
	}
	cmd.Flags().BoolVar(&renderAll, "all", false, "render every section")
	cmd.Flags().IntVar(&renderWidth, "width", 0, "output width (default: terminal width)")
	return cmd
}

func runRenderCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadDashboardConfig(cmd)
	if err != nil {
		return err
	}
	applyColorMode(cfg.Color)

	sections, err := resolveRenderSections(args, renderAll, cfg.Section)
	if err != nil {
		return err
	}
	width := renderWidth
	if width < 0 {
		return fmt.Errorf("--width must be >= 0")
	}
	if width == 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	out := cmd.OutOrStdout()
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		if _, err := fmt.Fprintln(out, renderPage(s, width, cfg.PlotHeight)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func renderPage(s model.Section, width, plotHeight int) string {
	head := theme.HeadingStyle.Render(s.Heading()) + "\n" + theme.SubtitleStyle.Render(dashboard.Subtitle)
	return head + "\n\n" + ui.RenderSection(s, width, plotHeight)
}

func resolveRenderSections(args []string, all bool, fallback model.Section) ([]model.Section, error) {
	if all {
		if len(args) > 0 {
			return nil, fmt.Errorf("--all cannot be combined with section arguments")
		}
		return model.Sections(), nil
	}
	if len(args) == 0 {
		return []model.Section{fallback}, nil
	}
	out := make([]model.Section, 0, len(args))
	for _, arg := range args {
		s, err := model.ParseSection(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultRenderWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		l := cliLogger()
		l.Debug().Err(err).Int("width", defaultRenderWidth).Msg("terminal width unavailable")
		return defaultRenderWidth
	}
	return width
}

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List dashboard sections",
		Args:  cobra.NoArgs,
		RunE:  runSectionsCmd,
	}
}

func runSectionsCmd(cmd *cobra.Command, _ []string) error {
	idWidth := 0
	for _, s := range model.Sections() {
		if w := len(s.ID()); w > idWidth {
			idWidth = w
		}
	}
	for i, s := range model.Sections() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d  %-*s  %s\n", i+1, idWidth, s.ID(), s.Label()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
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
	created, err := ensureConfigFile(path)
	if err != nil {
		return err
	}
	if created {
		l := cliLogger()
		l.Info().Str("path", path).Msg("wrote config template")
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

// ensureConfigFile writes the commented template when path does not exist yet.
func ensureConfigFile(path string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

// flagChanged reports whether name was set on the command line. Unknown flags count as unset.
func flagChanged(cmd *cobra.Command, name string) bool {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Changed
	}
	return false
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tpdash configuration
# Uncomment a value to enable it. CLI flags override config values.

[dashboard]
# section = %q       # Start section: overview, voice, reviews, automation, ai
# color = %q             # auto, always or never
# plot-height = %d           # Chart rows
# mouse = true               # Enable mouse clicks

[log]
# file = %q
# level = %q             # debug, info, warn or error
`,
		defaultSection,
		defaultColor,
		defaultPlotHeight,
		config.DefaultLogPath(),
		defaultLogLevel,
	)
}

func validateConfig(cfg model.Config) error {
	if !cfg.Section.Valid() {
		return fmt.Errorf("--section is invalid")
	}
	switch cfg.Color {
	case model.ColorAuto, model.ColorAlways, model.ColorNever:
	default:
		return fmt.Errorf("--color must be auto, always or never")
	}
	if cfg.PlotHeight < 3 || cfg.PlotHeight > maxPlotHeight {
		return fmt.Errorf("--plot-height must be between 3 and %d", maxPlotHeight)
	}
	return nil
}

func applyColorMode(mode model.ColorMode) {
	switch mode {
	case model.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case model.ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// newFileLogger returns a logger writing to path, or a no-op logger when path is empty.
func newFileLogger(path, level string) (zerolog.Logger, func() error, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("--log-level: %w", err)
	}
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, f.Close, nil
}

func cliLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
}
