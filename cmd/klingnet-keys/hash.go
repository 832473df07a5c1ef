package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/klingnet-keys/internal/digest"
)

func hashCmd() *cobra.Command {
	var size, algo string

	cmd := &cobra.Command{
		Use:   "hash [text...]",
		Short: "Print the BLAKE2b or SHA-256 digest of text",
		Long: `Print the digest of text. BLAKE2b (the default) takes a chosen output
size; SHA-256 is always 32 bytes.

Arguments are joined with single spaces. With no arguments, stdin is hashed
verbatim. --size takes a byte count: 0 becomes 1, values above 64 become 64,
and an empty value selects 32. --size cannot be combined with sha256.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) > 0 {
				text = strings.Join(args, " ")
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(b)
			}

			name := cfg.Digest.Algorithm
			if cmd.Flags().Changed("algo") {
				name = algo
			}
			alg, err := digest.ParseAlgorithm(name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if alg == digest.AlgorithmSHA256 {
				if cmd.Flags().Changed("size") {
					return fmt.Errorf("--size is not supported with %s", alg)
				}
				fmt.Fprintf(out, "Algo:   %s\n", alg)
				fmt.Fprintf(out, "Size:   %d bytes\n", sha256.Size)
				fmt.Fprintf(out, "Digest: %s\n", digest.SumSHA256([]byte(text)))
				return nil
			}

			raw := size
			if !cmd.Flags().Changed("size") {
				raw = strconv.Itoa(cfg.Digest.DefaultSize)
			}

			d := digest.New()
			d.SetInput(text)
			state, err := d.SetDigestSize(raw)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Algo:   %s\n", alg)
			fmt.Fprintf(out, "Size:   %d bytes\n", state.Size)
			fmt.Fprintf(out, "Digest: %s\n", state.HashHex)
			return nil
		},
	}

	cmd.Flags().StringVarP(&size, "size", "s", "", "Digest size in bytes (1-64, default from config)")
	cmd.Flags().StringVarP(&algo, "algo", "a", "", "Digest algorithm: blake2b or sha256 (default from config)")
	return cmd
}
