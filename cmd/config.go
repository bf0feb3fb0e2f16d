package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"trackerctl/internal/config"
	"trackerctl/internal/editor"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change ColorTracker's config.json",
		Long: `Reads and writes the same config.json the tracker and the TUI use.
A missing file is treated as the defaults.`,
	}
	cmd.AddCommand(newConfigShowCmd(), newConfigSetCmd(), newConfigResetCmd())
	return cmd
}

func configPath() (string, error) {
	cfg := newAppConfig()
	if err := cfg.Resolve(); err != nil {
		return "", err
	}
	return cfg.Paths.ConfigPath, nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			rec, _, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			data, err := config.Encode(rec)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long: fmt.Sprintf(`Changes one setting and writes config.json.

Known keys: %v`, config.RecordKeys),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			rec, _, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			if err := rec.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := config.Save(path, rec); err != nil {
				return err
			}
			v, _ := rec.Get(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], v)
			return nil
		},
	}
}

func newConfigResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "reset settings|keybinds",
		Short:     "Restore the default sliders or the default hotkeys",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"settings", "keybinds"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}

			var saveErr error
			ed := editor.New(editor.PersistFunc(func(rec config.Record) {
				saveErr = config.Save(path, rec)
			}))
			if err := ed.Load(path); err != nil {
				return fmt.Errorf("refusing to overwrite %s: %w", path, err)
			}
			if saveErr != nil {
				return saveErr
			}

			switch args[0] {
			case "settings":
				ed.ResetSettings()
			case "keybinds":
				ed.ResetKeybinds()
			}
			if saveErr != nil {
				return saveErr
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s in %s\n", args[0], path)
			return nil
		},
	}
}
