package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/morsely/internal/morse"
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Encode text as Morse code",
	Long:  "Encode text as Morse code. With no arguments each line of stdin is encoded.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return eachInput(cmd, args, morse.Encode)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [code...]",
	Short: "Decode Morse code to text",
	Long:  "Decode space-separated Morse tokens; '/' separates words. With no arguments each line of stdin is decoded.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return eachInput(cmd, args, morse.Decode)
	},
}

// eachInput applies fn to the joined args, or to every stdin line when
// there are none.
func eachInput(cmd *cobra.Command, args []string, fn func(string) string) error {
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		fmt.Fprintln(out, fn(strings.Join(args, " ")))
		return nil
	}
	return eachLine(cmd.InOrStdin(), func(line string) {
		fmt.Fprintln(out, fn(line))
	})
}

func eachLine(r io.Reader, fn func(string)) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fn(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
