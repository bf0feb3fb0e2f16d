package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"trackerctl/internal/app"
)

var (
	noTUI        bool
	debug        bool
	modeFlag     string
	rootDirFlag  string
	backendFlag  string
	settingsFlag string
	noWatch      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trackerctl",
	Short: "Launch ColorTracker and edit its settings from the terminal",
	Long: `trackerctl starts the ColorTracker executable, shows whether tracking is
enabled and which color is being followed, and edits the tracker's
config.json (search radius, tolerance, loop delay, hotkeys and theme).

It runs in two modes:

1. Interactive TUI mode (default): status panel, settings editor with
   key capture, activity log and a compact view.

2. Headless mode (--no-tui): the tracker runs and its status is printed to
   the console until Ctrl+C.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. missing settings file, unknown mode)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runRoot,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "trackerctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newAppConfig builds the application config from the flags.
func newAppConfig() *app.Config {
	cfg := app.NewConfig(noTUI, debug)
	cfg.Mode = modeFlag
	cfg.RootDir = rootDirFlag
	cfg.BackendPath = backendFlag
	cfg.SettingsPath = settingsFlag
	cfg.NoWatch = noWatch
	return cfg
}

func runRoot(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication(newAppConfig())
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(newPathsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.Flags().BoolVar(&noTUI, "no-tui", false, "Run headless and print status to the console")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload config.json when it is edited elsewhere")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "Path resolution mode: auto, development or installed")
	rootCmd.PersistentFlags().StringVar(&rootDirFlag, "root", "", "Root directory in development mode (default: working directory)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Path to the ColorTracker executable")
	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "", "Additional settings.yaml layered over the defaults")
}
