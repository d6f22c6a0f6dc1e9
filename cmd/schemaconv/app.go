package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/viant/schemaconv/batch"
	"github.com/viant/schemaconv/config"
	"github.com/viant/schemaconv/conv"
	"github.com/viant/schemaconv/encoding/json"
	"github.com/viant/schemaconv/schema"
)

const batchSize = 1024

type convertFlags struct {
	source          string
	destination     string
	byName          bool
	unionByPosition bool
	workers         int
}

func newRootCommand() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "schemaconv",
		Short:         "Type directed value conversion",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (yaml, json or toml)")
	root.AddCommand(newConvertCommand(&configPath), newResolveCommand(&configPath))
	return root
}

func newConvertCommand(configPath *string) *cobra.Command {
	flags := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert new line delimited JSON rows from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath, config.DefaultPrefix)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("by-name") {
				cfg.StructByName = flags.byName
			}
			if cmd.Flags().Changed("union-by-position") {
				cfg.UnionByPosition = flags.unionByPosition
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = flags.workers
			}
			return runConvert(cmd.Context(), cfg, flags, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&flags.source, "source", "", "source type signature")
	cmd.Flags().StringVar(&flags.destination, "destination", "", "destination type signature")
	cmd.Flags().BoolVar(&flags.byName, "by-name", false, "align struct fields by name")
	cmd.Flags().BoolVar(&flags.unionByPosition, "union-by-position", false, "match union alternatives by tag ordinal")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "number of conversion workers")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("destination")
	return cmd
}

func newResolveCommand(configPath *string) *cobra.Command {
	var source, destination string
	var byName bool
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print type of converted values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath, config.DefaultPrefix)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("by-name") {
				cfg.StructByName = byName
			}
			sourceType, destinationType, err := parseTypes(source, destination)
			if err != nil {
				return err
			}
			opts, err := cfg.ConvOptions(cfg.Log.Logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			resolved := conv.ResolveConvertedType(sourceType, destinationType, opts...)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resolved.String())
			return err
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "source type signature")
	cmd.Flags().StringVar(&destination, "destination", "", "destination type signature")
	cmd.Flags().BoolVar(&byName, "by-name", false, "align struct fields by name")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("destination")
	return cmd
}

func runConvert(ctx context.Context, cfg *config.Config, flags *convertFlags, in io.Reader, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	source, destination, err := parseTypes(flags.source, flags.destination)
	if err != nil {
		return err
	}
	logger := cfg.Log.Logger(errOut)
	opts, err := cfg.ConvOptions(logger)
	if err != nil {
		return err
	}
	var batchOptions = []batch.Option{batch.WithConvOptions(opts...), batch.WithLogger(logger)}
	if cfg.Workers > 0 {
		batchOptions = append(batchOptions, batch.WithWorkers(cfg.Workers))
	}
	converter, err := batch.New(source, destination, batchOptions...)
	if err != nil {
		return err
	}
	defer converter.Close()

	decoder := newDecoder(in, source, cfg)
	buffered := bufio.NewWriter(out)
	encoder := json.NewEncoder(buffered)
	rows := make([]interface{}, 0, batchSize)
	flush := func() error {
		converted, err := converter.Convert(ctx, rows)
		if err != nil {
			return err
		}
		for _, row := range converted {
			if err = encoder.Encode(shape(destination, row)); err != nil {
				return err
			}
		}
		rows = rows[:0]
		return nil
	}
	for {
		row, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if rows = append(rows, row); len(rows) == batchSize {
			if err = flush(); err != nil {
				return err
			}
		}
	}
	if err = flush(); err != nil {
		return err
	}
	logger.Debug("conversion completed", "source", source.String(), "destination", destination.String())
	return buffered.Flush()
}

func parseTypes(source, destination string) (*schema.Type, *schema.Type, error) {
	sourceType, err := schema.Parse(source)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid source: %w", err)
	}
	destinationType, err := schema.Parse(destination)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid destination: %w", err)
	}
	return sourceType, destinationType, nil
}
