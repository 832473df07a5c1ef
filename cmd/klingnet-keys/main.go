// klingnet-keys derives keypairs from BIP-39 mnemonics and computes
// variable-length BLAKE2b digests.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/klingnet-keys/config"
	"github.com/Klingon-tech/klingnet-keys/internal/log"
)

// Set via -ldflags at build time.
var version = "0.1.0"

// cfg is loaded before any subcommand runs.
var cfg *config.Config

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	var flags config.Flags
	root := &cobra.Command{
		Use:           "klingnet-keys",
		Short:         "Mnemonic keypair derivation and variable-length hashing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(&flags)
			if err != nil {
				return err
			}
			if err := log.Init(loaded.Log.Level, loaded.Log.JSON, loaded.Log.File); err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			cfg = loaded
			log.CLI.Debug().
				Str("config", cfg.File).
				Str("scheme", cfg.Identity.Scheme).
				Msg("Config loaded")
			return nil
		},
	}

	flags.Register(root.PersistentFlags())

	root.AddCommand(
		keypairCmd(),
		generateCmd(),
		hashCmd(),
		configCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "klingnet-keys version %s\n", version)
		},
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
