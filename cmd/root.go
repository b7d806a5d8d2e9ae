package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zjrosen/heks/internal/app"
	"github.com/zjrosen/heks/internal/config"
	"github.com/zjrosen/heks/internal/log"
	"github.com/zjrosen/heks/internal/pubsub"
	"github.com/zjrosen/heks/internal/source"
	"github.com/zjrosen/heks/internal/ui/styles"
	"github.com/zjrosen/heks/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage input.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is checked before the user config.
var localConfigPath = filepath.Join(".heks", "config.yaml")

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
	cfgUsed   string // config file that was read, if any
	cfgErr    error  // problem reading it, reported by commands that need it
)

var rootCmd = &cobra.Command{
	Use:     "heks [file]",
	Short:   "A terminal hex viewer",
	Long:    `A terminal hex viewer with a movable byte selection, undo history and live reload.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/heks/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (also HEKS_DEBUG=1)")
	addViewFlags(rootCmd.Flags())
}

// addViewFlags defines the flags that adjust a single run.
func addViewFlags(fs *pflag.FlagSet) {
	fs.Int("columns", 0, "bytes per row (overrides config)")
	fs.Bool("no-mmap", false, "read the file through the page cache instead of mapping it")
	fs.Bool("no-watch", false, "do not reload when the file changes")
	fs.Bool("demo", false, "show a built-in sample buffer instead of a file")
}

func initConfig() {
	cfg, cfgUsed, cfgErr = loadConfig(viper.GetViper(), cfgFile)
}

// setDefaults registers every key so that environment variables and
// Unmarshal see it even when no config file sets it.
func setDefaults(v *viper.Viper) {
	defaults := config.Defaults()
	v.SetDefault("columns", defaults.Columns)
	v.SetDefault("block_size", defaults.BlockSize)
	v.SetDefault("mmap", defaults.Mmap)
	v.SetDefault("watch", defaults.Watch)
	v.SetDefault("ui.fps", defaults.UI.FPS)
	v.SetDefault("ui.show_help", defaults.UI.ShowHelp)
	v.SetDefault("ui.little_endian", defaults.UI.LittleEndian)
	v.SetDefault("cache.enabled", defaults.Cache.Enabled)
	v.SetDefault("cache.page_size", defaults.Cache.PageSize)
	v.SetDefault("cache.expiration", defaults.Cache.Expiration)
	v.SetDefault("log.enabled", defaults.Log.Enabled)
	v.SetDefault("log.path", defaults.Log.Path)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.max_size_mb", defaults.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", defaults.Log.MaxBackups)
	v.SetDefault("theme.preset", defaults.Theme.Preset)
}

// loadConfig reads the configuration into v and decodes it. It returns the
// file that was read, or "" when none was found.
func loadConfig(v *viper.Viper, explicit string) (config.Config, string, error) {
	setDefaults(v)
	v.SetEnvPrefix("HEKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config lookup order:
	// 1. --config
	// 2. .heks/config.yaml (current directory)
	// 3. ~/.config/heks/config.yaml (user config)
	switch {
	case explicit != "":
		v.SetConfigFile(explicit)
	case fileExists(localConfigPath):
		v.SetConfigFile(localConfigPath)
	default:
		v.SetConfigFile(config.DefaultConfigPath())
	}

	var readErr error
	used := v.ConfigFileUsed()
	if err := v.ReadInConfig(); err != nil {
		used = ""
		if explicit != "" || !isNotFound(err) {
			readErr = fmt.Errorf("reading config: %w", err)
		}
	}

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return c, used, errors.Join(readErr, fmt.Errorf("decoding config: %w", err))
	}
	return c, used, readErr
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// applyFlags layers the command line over the configuration.
func applyFlags(fs *pflag.FlagSet, c *config.Config) {
	if fs.Changed("columns") {
		c.Columns, _ = fs.GetInt("columns")
	}
	if noMmap, _ := fs.GetBool("no-mmap"); noMmap {
		c.Mmap = false
	}
	if noWatch, _ := fs.GetBool("no-watch"); noWatch {
		c.Watch = false
	}
	if debugFlag || os.Getenv("HEKS_DEBUG") != "" {
		c.Log.Enabled = true
		c.Log.Level = "debug"
	}
}

// initLog starts the debug log when enabled and returns its cleanup.
func initLog(c config.LogConfig) (func(), error) {
	if !c.Enabled {
		return func() {}, nil
	}

	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	path := expandHome(c.Path)
	if path == "" {
		path = config.DefaultLogPath()
	}

	cleanup, err := log.Init(log.Options{
		Path:       path,
		Level:      level,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing log: %w", err)
	}
	return cleanup, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// sourceOptions translates the configuration for source.OpenFile.
func sourceOptions(c config.Config) source.Options {
	opts := source.DefaultOptions()
	opts.Mmap = c.Mmap
	opts.Cache.PageSize = c.Cache.PageSize
	opts.Cache.Expiration = c.Cache.Expiration
	opts.Cache.Disabled = !c.Cache.Enabled
	return opts
}

func runApp(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return cfgErr
	}
	applyFlags(cmd.Flags(), &cfg)

	cleanup, err := initLog(cfg.Log)
	if err != nil {
		return err
	}
	defer cleanup()

	log.Info(log.CatApp, "heks starting", "version", version, "args", strings.Join(os.Args, " "), "config", cfgUsed)

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := styles.ApplyTheme(cfg.Theme.StylesTheme()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	if cfgUsed == "" && cfgFile == "" {
		// First run: leave a commented config behind for the user to edit.
		if err := config.WriteDefaultConfig(config.DefaultConfigPath()); err != nil {
			log.Warn(log.CatConfig, "Could not write default config", "error", err)
		}
	}

	demo, _ := cmd.Flags().GetBool("demo")
	opts := app.Options{Config: cfg}
	switch {
	case demo:
		opts.Source = source.Demo()
	case len(args) == 1:
		path := args[0]
		srcOpts := sourceOptions(cfg)
		src, err := source.OpenFile(path, srcOpts)
		if err != nil {
			return err
		}
		opts.Source = src
		opts.Open = func() (source.Source, error) { return source.OpenFile(path, srcOpts) }

		if cfg.Watch {
			broker := pubsub.NewBroker[string]()
			defer broker.Close()
			stop := startWatcher(path, broker)
			defer stop()
			opts.Events = broker
		}
	default:
		return errors.New("no file given (use --demo for a sample buffer)")
	}

	model := app.New(opts)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFPS(cfg.UI.FPS),
	)

	final, err := p.Run()

	// The final model may hold a reloaded source.
	closer := model
	if m, ok := final.(app.Model); ok {
		closer = m
	}
	closeErr := closer.Close()

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	if closeErr != nil {
		return fmt.Errorf("closing source: %w", closeErr)
	}
	log.Info(log.CatApp, "heks exiting")
	return nil
}

// startWatcher watches path and returns a function that stops watching.
// Watching is best-effort: the viewer works fine without it.
func startWatcher(path string, broker *pubsub.Broker[string]) func() {
	w, err := watcher.New(watcher.DefaultConfig(path), broker)
	if err != nil {
		log.Warn(log.CatWatcher, "Watcher unavailable", "error", err)
		return func() {}
	}
	if err := w.Start(); err != nil {
		log.Warn(log.CatWatcher, "Watcher failed to start", "error", err)
		_ = w.Stop()
		return func() {}
	}
	return func() { _ = w.Stop() }
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
