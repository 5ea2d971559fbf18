package main

import (
	"io"
	"strings"

	"github.com/jmgilman/syskit/file"
	"github.com/jmgilman/syskit/path"
	"github.com/spf13/cobra"
)

func (a *app) catCmd() *cobra.Command {
	var (
		binary bool
		offset int64
		count  int
	)

	cmd := &cobra.Command{
		Use:   "cat <file>",
		Short: "Print a file",
		Long: `Print a file, or part of it.

With --count the output is limited to that many characters (bytes with
--binary), starting --offset characters (bytes) into the file.`,
		Args: usage(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}
			p := path.New(args[0])

			if binary {
				f := file.NewBinary(sys, p)
				data, err := readRange[[]byte](f, count, offset)
				if err != nil {
					return err
				}
				_, err = a.stdout.Write(data)
				return err
			}

			f := file.NewText(sys, p)
			text, err := readRange[string](f, count, offset)
			if err != nil {
				return err
			}
			_, err = io.WriteString(a.stdout, text)
			return err
		},
	}
	cmd.Flags().BoolVar(&binary, "binary", false, "count in bytes instead of characters")
	cmd.Flags().Int64Var(&offset, "offset", 0, "characters (bytes) to skip")
	cmd.Flags().IntVar(&count, "count", -1, "characters (bytes) to print, all when negative")
	return cmd
}

// readRange reads the whole file when count is negative and offset is
// zero, otherwise the requested range.
func readRange[S []byte | string](f file.Like[S], count int, offset int64) (S, error) {
	if count < 0 && offset == 0 {
		return f.ReadAll()
	}
	if count < 0 {
		size, err := f.ByteCount()
		if err != nil {
			var zero S
			return zero, err
		}
		count = int(size)
	}
	return f.Read(count, offset)
}

func (a *app) appendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append <file> [text]...",
		Short: "Append text to a file, creating it if needed",
		Long: `Append the arguments, joined by spaces and followed by a newline, to a
file. Without text arguments standard input is appended as is.`,
		Args: usage(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}
			f := file.NewText(sys, path.New(args[0]))

			if len(args) > 1 {
				return f.Append(strings.Join(args[1:], " ") + "\n")
			}

			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return f.Append(string(data))
		},
	}
}
