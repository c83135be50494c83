package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/happyhackingspace/walign"
	"github.com/happyhackingspace/walign/ibm"
	"github.com/happyhackingspace/walign/internal/report"
	"github.com/spf13/cobra"
)

// trainFlags is the training and decoding configuration of one run.
type trainFlags struct {
	input         inputFlags
	iterations    int
	threshold     float64
	align         bool
	model         string
	format        string
	showUnaligned bool
}

// settings is trainFlags after validation.
type settings struct {
	train  *walign.TrainConfig
	decode ibm.DecodeConfig
	output report.AlignOptions
}

func (f *trainFlags) validate(args []string) (*settings, error) {
	if err := f.input.validate(args); err != nil {
		return nil, err
	}
	if f.iterations < 1 {
		return nil, fmt.Errorf("--iterations must be positive, got %d", f.iterations)
	}
	if err := walign.CheckThreshold(f.threshold); err != nil {
		return nil, fmt.Errorf("--threshold: %w", err)
	}
	variant, err := ibm.ParseVariant(f.model)
	if err != nil {
		return nil, fmt.Errorf("--model: %w", err)
	}
	format, err := report.ParseFormat(f.format)
	if err != nil {
		return nil, fmt.Errorf("--format: %w", err)
	}

	mode := ibm.TableMode
	if f.align {
		mode = ibm.AlignMode
	}
	return &settings{
		train: &walign.TrainConfig{
			Model:        variant,
			Iterations:   f.iterations,
			MinFrequency: f.input.minFrequency,
			Lowercase:    f.input.lowercase,
			Encoding:     f.input.encoding,
		},
		decode: ibm.DecodeConfig{Mode: mode, Threshold: f.threshold},
		output: report.AlignOptions{Format: format, ShowUnaligned: f.showUnaligned},
	}, nil
}

func (c *CLI) newTrainCommand() *cobra.Command {
	var flags trainFlags

	cmd := &cobra.Command{
		Use:   "train <source-file> <target-file> | train <corpus.tmx>",
		Short: "Train an alignment model and print its table or alignments",
		Args:  cobra.RangeArgs(1, 2),
		Example: `  # Translation table above 0.1 after 10 Model 1 iterations
  walign train corpus.en corpus.de -n 10 -t 0.1

  # Best alignment per sentence with Model 2
  walign train corpus.en corpus.de -n 10 -t 0.05 --model ibm2 --align

  # Prune rare words and show unaligned target words
  walign train corpus.en corpus.de -n 5 -t 0 --min-frequency 3 --align --show-unaligned

  # Train from a translation memory
  walign train memory.tmx --source-lang en --target-lang fr -n 5 -t 0.2

  # Latin-1 corpus, JSON output
  walign train corpus.en.gz corpus.fr.gz -n 5 -t 0.1 --encoding latin1 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.validate(args)
			if err != nil {
				return err
			}

			pairs, err := flags.input.read(args)
			if err != nil {
				return err
			}

			slog.Info("Training aligner", "model", s.train.Model, "iterations", s.train.Iterations)
			start := time.Now()
			a, err := walign.TrainPairs(pairs, s.train)
			if err != nil {
				return err
			}
			slog.Debug("Training completed", "duration", time.Since(start))

			res, err := a.Decode(s.decode)
			if err != nil {
				return err
			}
			if res.Mode == ibm.AlignMode {
				return report.WriteAlignments(c.stdout, res.Alignments, s.output)
			}
			slog.Debug("Table extracted", "entries", len(res.Table), "threshold", s.decode.Threshold)
			return report.WriteTable(c.stdout, res.Table, s.output.Format)
		},
	}

	flags.input.register(cmd.Flags())
	cmd.Flags().IntVarP(&flags.iterations, "iterations", "n", 0, "Number of EM iterations")
	cmd.Flags().Float64VarP(&flags.threshold, "threshold", "t", 0, "Probability threshold in [0, 1]")
	cmd.Flags().BoolVar(&flags.align, "align", false, "Print the best alignment of every sentence pair instead of the table")
	cmd.Flags().StringVar(&flags.model, "model", "ibm1", "Alignment model: ibm1 or ibm2")
	cmd.Flags().StringVar(&flags.format, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flags.showUnaligned, "show-unaligned", false, "Mark unaligned target words instead of omitting them")
	_ = cmd.MarkFlagRequired("iterations")
	_ = cmd.MarkFlagRequired("threshold")
	return cmd
}
