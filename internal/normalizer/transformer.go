package normalizer

import (
	"errors"

	"vsnorm/internal/models"
	"vsnorm/pkg/utils"
)

// DefaultKnowledgeBaseSource labels records that came from the knowledge-base file.
const DefaultKnowledgeBaseSource = "Cowis Knowledge Base"

// ErrUnknownSource is returned when a record is neither a knowledge-base item
// nor a support article.
var ErrUnknownSource = errors.New("unknown source record type")

// Transformer maps source records onto the unified schema.
// Both mappings are total: missing fields take defaults and never fail.
type Transformer struct {
	html    *HTMLCleaner
	strings *utils.StringHelper
	kbLabel string
}

// NewTransformer creates a transformer that labels knowledge-base records
// with kbLabel, or DefaultKnowledgeBaseSource when kbLabel is empty.
func NewTransformer(kbLabel string) *Transformer {
	if kbLabel == "" {
		kbLabel = DefaultKnowledgeBaseSource
	}

	return &Transformer{
		html:    NewHTMLCleaner(),
		strings: utils.NewStringHelper(),
		kbLabel: kbLabel,
	}
}

// Transform dispatches src to the mapping for its kind.
func (t *Transformer) Transform(src models.Source) (models.UnifiedRecord, error) {
	switch item := src.(type) {
	case models.KnowledgeBaseItem:
		return t.TransformKnowledgeBase(item), nil
	case *models.KnowledgeBaseItem:
		if item != nil {
			return t.TransformKnowledgeBase(*item), nil
		}
	case models.SupportArticleItem:
		return t.TransformSupportArticle(item), nil
	case *models.SupportArticleItem:
		if item != nil {
			return t.TransformSupportArticle(*item), nil
		}
	}

	return models.UnifiedRecord{}, ErrUnknownSource
}

// TransformKnowledgeBase maps a knowledge-base item. The title is the first
// non-blank line of its text.
func (t *Transformer) TransformKnowledgeBase(item models.KnowledgeBaseItem) models.UnifiedRecord {
	images := item.Images
	if images == nil {
		images = []string{}
	}

	// The stored has_images/image_count are not trusted; they are derived
	// from the images actually carried over.
	return models.UnifiedRecord{
		Title:       t.strings.FirstNonBlankLine(item.Text),
		Text:        item.Text,
		Category:    item.MainCategory,
		Subcategory: item.CategoryFile,
		Source:      t.kbLabel,
		URL:         item.URL,
		Images:      images,
		HasImages:   len(images) > 0,
		ImageCount:  len(images),
		Tags:        []string{},
	}
}

// TransformSupportArticle maps a support article. Its images come only from
// the description markup; a non-empty pre-cleaned text field wins over the
// cleaned description.
func (t *Transformer) TransformSupportArticle(item models.SupportArticleItem) models.UnifiedRecord {
	text, images := t.html.Clean(item.Description)
	if item.Text != nil && *item.Text != "" {
		text = *item.Text
	}

	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.UnifiedRecord{
		Title:       item.Title,
		Text:        text,
		Category:    item.Category,
		Subcategory: item.Folder,
		Source:      item.Source,
		URL:         nonEmpty(item.URL),
		Images:      images,
		HasImages:   len(images) > 0,
		ImageCount:  len(images),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
		ID:          nullableID(item.ID),
		Tags:        tags,
	}
}

// nonEmpty maps an absent or empty string to nil.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	v := *s

	return &v
}

// nullableID drops an explicit JSON null so it re-encodes as null too.
func nullableID(id []byte) []byte {
	if len(id) == 0 || string(id) == "null" {
		return nil
	}

	return id
}
