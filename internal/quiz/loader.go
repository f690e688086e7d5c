package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading quiz content JSON files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based quiz content loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "quiz-loader").Logger(),
	}
}

// Load reads a JSON quiz content file and validates it.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Content, error) {
	l.logger.Info().Str("file", filePath).Msg("loading quiz content file")

	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read quiz content file")
		return nil, fmt.Errorf("failed to read quiz content file %s: %w", filePath, err)
	}

	return decodeContent(data, filePath, l.logger)
}

// decodeContent parses and validates quiz content JSON from any source.
func decodeContent(data []byte, source string, logger zerolog.Logger) (*Content, error) {
	var content Content
	if err := json.Unmarshal(data, &content); err != nil {
		logger.Error().Err(err).Str("source", source).Msg("failed to parse quiz content")
		return nil, fmt.Errorf("failed to parse quiz content %s: %w", source, err)
	}

	if err := content.Validate(); err != nil {
		logger.Error().Err(err).Str("source", source).Msg("invalid quiz content")
		return nil, fmt.Errorf("invalid quiz content %s: %w", source, err)
	}

	logger.Info().
		Str("source", source).
		Int("outcomes", len(content.Outcomes)).
		Int("questions", len(content.Questions)).
		Msg("quiz content loaded successfully")

	return &content, nil
}
