// Package models defines the source and unified record structures.
package models

import "encoding/json"

// Kind identifies which source schema a record was read from.
type Kind string

// Source kinds.
const (
	KindKnowledgeBase  Kind = "knowledge_base"
	KindSupportArticle Kind = "support_article"
)

// Source is a record in one of the two input schemas.
// Only KnowledgeBaseItem and SupportArticleItem implement it.
type Source interface {
	Kind() Kind
}

// KnowledgeBaseItem is one entry of the crawled knowledge-base file.
// Its text is already plain and usually starts with the article title.
type KnowledgeBaseItem struct {
	URL          *string  `json:"url"`
	Text         string   `json:"text"`
	MainCategory string   `json:"main_category"`
	CategoryFile string   `json:"category_file"`
	Images       []string `json:"images"`
	ImageCount   int      `json:"image_count"`
	HasImages    bool     `json:"has_images"`
}

// Kind implements Source.
func (KnowledgeBaseItem) Kind() Kind { return KindKnowledgeBase }

// SupportArticleItem is one entry of a per-topic support article file.
// Description holds the article body as HTML.
type SupportArticleItem struct {
	URL         *string         `json:"url"`
	CreatedAt   *string         `json:"created_at"`
	UpdatedAt   *string         `json:"updated_at"`
	Text        *string         `json:"text,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Folder      string          `json:"folder"`
	Source      string          `json:"source"`
	ID          json.RawMessage `json:"id"`
	Tags        []string        `json:"tags"`
}

// Kind implements Source.
func (SupportArticleItem) Kind() Kind { return KindSupportArticle }

// UnifiedRecord is the single output schema every source record maps to.
//
// Images and Tags are never nil so they encode as [] rather than null.
// A nil ID encodes as null.
type UnifiedRecord struct {
	Title       string          `json:"title"`
	Text        string          `json:"text"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Source      string          `json:"source"`
	URL         *string         `json:"url"`
	Images      []string        `json:"images"`
	HasImages   bool            `json:"has_images"`
	ImageCount  int             `json:"image_count"`
	CreatedAt   *string         `json:"created_at"`
	UpdatedAt   *string         `json:"updated_at"`
	ID          json.RawMessage `json:"id"`
	Tags        []string        `json:"tags"`
}

// Manifest summarises one partition run.
type Manifest struct {
	TotalItems      int             `json:"total_items"`
	TotalCategories int             `json:"total_categories"`
	Categories      []CategoryEntry `json:"categories"`
	CreatedAt       string          `json:"created_at"`
}

// CategoryEntry describes one category file listed in a Manifest.
type CategoryEntry struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Filename string `json:"filename"`
}
