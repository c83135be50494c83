package cli

import (
	"log/slog"

	"github.com/happyhackingspace/walign/ibm"
	"github.com/happyhackingspace/walign/internal/report"
	"github.com/spf13/cobra"
)

func (c *CLI) newVocabCommand() *cobra.Command {
	var flags inputFlags
	var format string

	cmd := &cobra.Command{
		Use:   "vocab <source-file> <target-file> | vocab <corpus.tmx>",
		Short: "Print the training vocabulary with word frequencies",
		Args:  cobra.RangeArgs(1, 2),
		Example: `  walign vocab corpus.en corpus.de --min-frequency 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(args); err != nil {
				return err
			}
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			pairs, err := flags.read(args)
			if err != nil {
				return err
			}
			vocab := ibm.BuildVocabulary(pairs, flags.minFrequency)
			slog.Info("Vocabulary built", "words", len(vocab.Words()), "min-frequency", flags.minFrequency)
			return report.WriteVocabulary(c.stdout, vocab, f)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	return cmd
}
