package walign

import (
	"fmt"
	"log/slog"

	"github.com/happyhackingspace/walign/ibm"
	"github.com/happyhackingspace/walign/internal/corpus"
)

// TrainConfig holds configuration for training.
type TrainConfig struct {
	Model        ibm.Variant
	Iterations   int
	MinFrequency int
	// Lowercase folds case before tokenizing.
	Lowercase bool
	// Encoding is the character set of the corpus files; empty means UTF-8.
	Encoding string
}

// DefaultTrainConfig returns the default training configuration.
func DefaultTrainConfig() *TrainConfig {
	return &TrainConfig{
		Model:        ibm.Model1,
		Iterations:   ibm.DefaultTrainerConfig().Iterations,
		MinFrequency: 1,
	}
}

// Validate checks the configuration without touching any file.
func (c *TrainConfig) Validate() error {
	if c.Model != ibm.Model1 && c.Model != ibm.Model2 {
		return fmt.Errorf("unknown model %v", c.Model)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.MinFrequency < 1 {
		return fmt.Errorf("min frequency must be positive, got %d", c.MinFrequency)
	}
	return corpus.CheckEncoding(c.Encoding)
}

func (c *TrainConfig) readOptions() corpus.Options {
	return corpus.Options{Encoding: c.Encoding, Lowercase: c.Lowercase}
}

func withDefaults(config *TrainConfig) (*TrainConfig, error) {
	if config == nil {
		config = DefaultTrainConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("walign: %w", err)
	}
	return config, nil
}

// Train reads two line-aligned corpus files and trains an aligner on them.
func Train(sourcePath, targetPath string, config *TrainConfig) (*Aligner, error) {
	config, err := withDefaults(config)
	if err != nil {
		return nil, err
	}
	pairs, err := corpus.ReadParallel(sourcePath, targetPath, config.readOptions())
	if err != nil {
		return nil, fmt.Errorf("walign: %w", err)
	}
	return trainPairs(pairs, config), nil
}

// TrainTMX trains an aligner on the sourceLang/targetLang units of a TMX file.
func TrainTMX(path, sourceLang, targetLang string, config *TrainConfig) (*Aligner, error) {
	config, err := withDefaults(config)
	if err != nil {
		return nil, err
	}
	pairs, err := corpus.ReadTMX(path, sourceLang, targetLang, config.readOptions())
	if err != nil {
		return nil, fmt.Errorf("walign: %w", err)
	}
	return trainPairs(pairs, config), nil
}

// TrainPairs trains an aligner on already tokenized sentence pairs.
func TrainPairs(pairs []ibm.RawPair, config *TrainConfig) (*Aligner, error) {
	config, err := withDefaults(config)
	if err != nil {
		return nil, err
	}
	return trainPairs(pairs, config), nil
}

// trainPairs trains on pairs with an already validated config.
func trainPairs(pairs []ibm.RawPair, config *TrainConfig) *Aligner {
	vocab := ibm.BuildVocabulary(pairs, config.MinFrequency)
	c := ibm.Encode(pairs, vocab, config.Model)
	slog.Info("Corpus encoded",
		"pairs", len(pairs),
		"kept", c.Len(),
		"vocabulary", vocab.Size(),
		"model", config.Model)
	if c.Len() == 0 {
		slog.Warn("No sentence pairs left after vocabulary pruning", "min-frequency", config.MinFrequency)
	}

	model := ibm.Train(c, ibm.TrainerConfig{Iterations: config.Iterations})
	return &Aligner{model: model, corpus: c}
}
