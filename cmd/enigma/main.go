// Package main provides the enigma CLI entrypoint.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	enigma "github.com/smnsjas/go-enigma"
	"github.com/smnsjas/go-enigma/plugboard"
	"github.com/smnsjas/go-enigma/settings"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "enigma",
		Short: "Three-rotor cipher machine simulator",
		Long: `enigma: a three-rotor cipher machine simulator.

The transform is reciprocal: running a ciphertext back through a machine
keyed to the same settings reproduces the plaintext, so there is no
separate decode command.

Use 'enigma encode' for one-shot messages and 'enigma keyboard' for an
interactive session.`,
		Version:       enigma.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(encodeCmd())
	rootCmd.AddCommand(keyboardCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

// machineFlags is the key material shared by every subcommand.
type machineFlags struct {
	offset string
	ring   string
	notch  string
	pairs  string
	sheet  string
	trace  bool
}

func (f *machineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.offset, "offset", "o", "AAA", "Rotor start positions (right, middle, left)")
	cmd.Flags().StringVarP(&f.ring, "ring", "r", "AAA", "Ring settings (right, middle, left)")
	cmd.Flags().StringVarP(&f.notch, "notch", "n", "QEV", "Notch positions (right, middle, left)")
	cmd.Flags().StringVarP(&f.pairs, "plugboard", "p", "", `Plugboard pairs, e.g. "AG BK CM"`)
	cmd.Flags().StringVarP(&f.sheet, "settings", "s", "", "YAML key sheet (overrides the flags above)")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "Log stepping activity to stderr")
}

// build keys a machine from the flags, or from the key sheet when one is
// given.
func (f *machineFlags) build() (*enigma.Machine, error) {
	var opts []enigma.Option
	if f.trace {
		opts = append(opts, enigma.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}

	if f.sheet != "" {
		s, err := settings.Load(f.sheet)
		if err != nil {
			return nil, err
		}
		return s.Machine(opts...)
	}

	if f.pairs != "" {
		board, err := plugboard.New(f.pairs)
		if err != nil {
			return nil, err
		}
		opts = append(opts, enigma.WithPlugboard(board))
	}
	return enigma.New(f.offset, f.ring, f.notch, opts...)
}
