package main

import (
	"context"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/t14raptor/go-scope/config"
	"github.com/t14raptor/go-scope/parser"
	"github.com/t14raptor/go-scope/report"
	"github.com/t14raptor/go-scope/resolver"
)

func newResolveCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [files...]",
		Short: "Resolve every identifier and report errors",
		Long: `Resolve parses and resolves each file and prints its diagnostics, or the
full scope and reference data in a structured format. "-" reads standard
input. The exit status is 1 when any file has a syntax or resolution error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			format, err := outputFormat(cfg)
			if err != nil {
				return err
			}

			docs, err := resolveFiles(cmd.Context(), cmd.InOrStdin(), cfg, args)
			if err != nil {
				return err
			}
			if err := report.Write(cmd.OutOrStdout(), format, docs); err != nil {
				return err
			}
			for _, doc := range docs {
				if doc.HasErrors() {
					return errReported
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text, json, yaml or cbor")
	return cmd
}

// resolveFiles resolves each file on its own goroutine. Every goroutine
// parses with its own tree-sitter parser. Documents keep the order of files.
func resolveFiles(ctx context.Context, stdin io.Reader, cfg *config.Config, files []string) ([]*report.Document, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	docs := make([]*report.Document, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		var src []byte
		if file == "-" {
			// Standard input can only be read once, so it is read up front.
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, errors.Wrap(err, "cannot read standard input")
			}
			src = data
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if src == nil {
				data, err := os.ReadFile(file)
				if err != nil {
					return errors.Wrapf(err, "cannot read %s", file)
				}
				src = data
			}
			docs[i] = resolveSource(file, string(src), cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func resolveSource(file, src string, cfg *config.Config) *report.Document {
	program, parseErr := parser.ParseFile(src)
	if program == nil {
		log.Errorf("%s: %v", file, parseErr)
		return report.New(file, src, nil, parseErr)
	}

	res, err := resolver.Resolve(program, cfg.Options()...)
	if err != nil {
		log.Debugf("%s: %v", file, err)
	}
	log.Infof("resolved %s (%s, %d scopes, %d references)",
		file, humanize.Bytes(uint64(len(src))), len(res.Tree.Scopes()), len(res.Table.References()))
	return report.New(file, src, res, parseErr)
}
