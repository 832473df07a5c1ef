package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/klingnet-keys/internal/identity"
)

func keypairCmd() *cobra.Command {
	var seedHex string

	cmd := &cobra.Command{
		Use:   "keypair [words...]",
		Short: "Derive a keypair from a 24-word mnemonic or a 32-byte hex seed",
		Long: `Derive a keypair from a 24-word BIP-39 mnemonic or a 32-byte hex seed.

The mnemonic may be given as arguments. With no arguments and no --seed, it
is read from a hidden terminal prompt, or from the first line of stdin when
stdin is not a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeriver()
			if err != nil {
				return err
			}

			var state identity.State
			switch {
			case cmd.Flags().Changed("seed"):
				if len(args) > 0 {
					return errors.New("give either a mnemonic or --seed, not both")
				}
				state = d.SetSeedHex(seedHex)
			case len(args) > 0:
				state = d.SetMnemonic(strings.Join(args, " "))
			default:
				phrase, err := readSecretLine(cmd.InOrStdin(), "Mnemonic: ")
				if err != nil {
					return fmt.Errorf("read mnemonic: %w", err)
				}
				state = d.SetMnemonic(phrase)
			}

			if err := d.Err(); err != nil {
				return err
			}
			if state.KeyPair == nil {
				return errors.New("no mnemonic or seed given")
			}
			printState(cmd.OutOrStdout(), state)
			return nil
		},
	}

	cmd.Flags().StringVar(&seedHex, "seed", "", "32-byte seed as hex (instead of a mnemonic)")
	return cmd
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a new 24-word mnemonic and its keypair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, err := identity.GenerateMnemonic()
			if err != nil {
				return err
			}
			d, err := newDeriver()
			if err != nil {
				return err
			}
			state := d.SetMnemonic(phrase)
			if err := d.Err(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printState(out, state)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "IMPORTANT: Write down the mnemonic and store it safely.")
			fmt.Fprintln(out, "Anyone with these words can recreate the secret key.")
			return nil
		},
	}
}

func newDeriver() (*identity.Deriver, error) {
	scheme, err := identity.ParseScheme(cfg.Identity.Scheme)
	if err != nil {
		return nil, err
	}
	return identity.NewDeriver(identity.WithScheme(scheme)), nil
}

func printState(w io.Writer, s identity.State) {
	kp := s.KeyPair
	fmt.Fprintf(w, "Scheme:      %s\n", kp.Scheme)
	fmt.Fprintf(w, "Seed:        %s\n", s.SeedHex)
	fmt.Fprintf(w, "Mnemonic:    %s\n", s.Phrase())
	fmt.Fprintf(w, "Secret Key:  %s (%d bytes)\n", kp.SecretHex(), len(kp.Secret))
	fmt.Fprintf(w, "Public Key:  %s (%d bytes)\n", kp.PublicHex(), len(kp.Public))
	fmt.Fprintf(w, "Public B58:  %s\n", kp.PublicBase58())
	fmt.Fprintf(w, "Fingerprint: %s\n", kp.Fingerprint())
}
