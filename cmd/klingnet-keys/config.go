package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/klingnet-keys/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(configInitCmd(), configShowCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		// An existing file may be invalid; it is about to be replaced.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigFile()
			if f := cmd.Flag("config"); f != nil && f.Value.String() != "" {
				path = f.Value.String()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.WriteDefaultConfig(path); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", cfg.File)
			fmt.Fprintf(out, "identity.scheme = %s\n", cfg.Identity.Scheme)
			fmt.Fprintf(out, "digest.algo = %s\n", cfg.Digest.Algorithm)
			fmt.Fprintf(out, "digest.size = %d\n", cfg.Digest.DefaultSize)
			fmt.Fprintf(out, "log.level = %s\n", cfg.Log.Level)
			fmt.Fprintf(out, "log.file = %s\n", cfg.Log.File)
			fmt.Fprintf(out, "log.json = %t\n", cfg.Log.JSON)
		},
	}
}
