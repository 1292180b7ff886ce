package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/t14raptor/go-scope/report"
)

func newScopesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "scopes file",
		Short: "Print the scope tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			file := args[0]
			var src []byte
			if file == "-" {
				src, err = io.ReadAll(cmd.InOrStdin())
			} else {
				src, err = os.ReadFile(file)
			}
			if err != nil {
				return errors.Wrapf(err, "cannot read %s", file)
			}

			doc := resolveSource(file, string(src), cfg)
			if err := report.WriteScopes(cmd.OutOrStdout(), doc); err != nil {
				return err
			}
			for _, d := range doc.Diagnostics {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d:%d: %s\n", file, d.Position.Line, d.Position.Column, d.Message)
			}
			return nil
		},
	}
}
