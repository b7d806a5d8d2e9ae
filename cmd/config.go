package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/heks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  `Print the configuration heks would run with, after defaults, the config file and HEKS_* environment variables are merged.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting in the config file",
	Long: `Change one setting, keeping the comments in the file. Keys use dots,
for example "ui.fps" or "theme.colors.cursor.bg".`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// configTarget is the file the config subcommands write to.
func configTarget() string {
	switch {
	case cfgFile != "":
		return cfgFile
	case cfgUsed != "":
		return cfgUsed
	default:
		return config.DefaultConfigPath()
	}
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if cfgErr != nil {
		return cfgErr
	}

	out, err := yaml.Marshal(viper.AllSettings())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	w := cmd.OutOrStdout()
	if cfgUsed != "" {
		_, _ = fmt.Fprintf(w, "# %s\n", cfgUsed)
	}
	_, err = w.Write(out)
	return err
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configTarget()
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.WriteDefaultConfig(path); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := strings.ToLower(args[0]), args[1]
	path := configTarget()

	if err := checkSetting(path, key, value); err != nil {
		return err
	}
	if err := config.SetValue(path, key, value); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", key, value, path)
	return nil
}

// checkSetting loads path with key changed and validates the result, so a
// bad value never reaches the file.
func checkSetting(path, key, value string) error {
	v := viper.New()
	setDefaults(v)

	if !slices.Contains(v.AllKeys(), key) && !strings.HasPrefix(key, "theme.colors.") {
		return fmt.Errorf("%w: unknown key %q", config.ErrInvalid, key)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return fmt.Errorf("reading config: %w", err)
	}
	v.Set(key, value)

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return errors.Join(config.ErrInvalid, fmt.Errorf("decoding %s: %w", key, err))
	}
	return c.Validate()
}
