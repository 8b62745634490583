// Package normalizer maps knowledge-base and support-article records onto the
// unified record schema.
package normalizer

import (
	"fmt"

	"vsnorm/internal/models"
)

// Processor transforms source records and checks the result.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance. kbLabel is passed to NewTransformer.
func NewProcessor(kbLabel string) *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(kbLabel),
	}
}

// Process transforms src into a unified record.
func (p *Processor) Process(src models.Source) (models.UnifiedRecord, error) {
	rec, err := p.transformer.Transform(src)
	if err != nil {
		return models.UnifiedRecord{}, fmt.Errorf("transformation failed: %w", err)
	}

	if err := p.validator.Validate(rec); err != nil {
		return models.UnifiedRecord{}, fmt.Errorf("validation failed: %w", err)
	}

	return rec, nil
}

// ProcessKnowledgeBase transforms every knowledge-base item in order.
func (p *Processor) ProcessKnowledgeBase(items []models.KnowledgeBaseItem) ([]models.UnifiedRecord, error) {
	out := make([]models.UnifiedRecord, 0, len(items))

	for i, item := range items {
		rec, err := p.Process(item)
		if err != nil {
			return nil, fmt.Errorf("knowledge base record %d: %w", i, err)
		}

		out = append(out, rec)
	}

	return out, nil
}

// ProcessSupportArticles transforms every support article in order.
func (p *Processor) ProcessSupportArticles(items []models.SupportArticleItem) ([]models.UnifiedRecord, error) {
	out := make([]models.UnifiedRecord, 0, len(items))

	for i, item := range items {
		rec, err := p.Process(item)
		if err != nil {
			return nil, fmt.Errorf("support article record %d: %w", i, err)
		}

		out = append(out, rec)
	}

	return out, nil
}
