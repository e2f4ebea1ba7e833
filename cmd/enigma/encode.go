package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/smnsjas/go-enigma/stream"
)

func encodeCmd() *cobra.Command {
	var flags machineFlags

	cmd := &cobra.Command{
		Use:   "encode [message]",
		Short: "Encipher or decipher a message",
		Long: `Encipher a message with the configured settings.

The message is taken from the argument, or from stdin when no argument is
given. Whitespace is stripped before enciphering; any other character
outside A-Z aborts with an error naming its position.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := flags.build()
			if err != nil {
				return err
			}

			// Streaming mode: pipe stdin through the machine.
			if len(args) == 0 {
				if _, err := io.Copy(stream.NewWriter(m, os.Stdout), os.Stdin); err != nil {
					return err
				}
				fmt.Println()
				return nil
			}

			message := strings.Map(func(r rune) rune {
				if unicode.IsSpace(r) {
					return -1
				}
				return r
			}, args[0])

			out, err := m.Encode(message)
			if err != nil {
				return err
			}

			fmt.Println(out)
			fmt.Fprintf(os.Stderr, "%s %s\n",
				color.HiBlackString("windows:"), color.CyanString(m.Windows()))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
