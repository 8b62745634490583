package inspect

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"vsnorm/internal/models"
	"vsnorm/internal/normalizer"
	"vsnorm/pkg/utils"

	"github.com/PuerkitoBio/goquery"
)

// CleanPreviewRunes bounds the cleaned description preview.
const CleanPreviewRunes = 300

// CompareReport contrasts a knowledge-base file with a support article file
// and shows how the first article would be unified.
type CompareReport struct {
	Proposed        *models.UnifiedRecord
	CleanPreview    string
	KBFields        []string
	ArticleFields   []string
	DOMImages       []string
	PatternImages   []string
	DOMElements     int
	DescriptionHTML bool
}

// ErrNoArticles is returned when the article file is empty.
var ErrNoArticles = errors.New("article file contains no records")

// Compare builds a CompareReport from the first record of each file.
func Compare(kb, articles []map[string]any) (*CompareReport, error) {
	if len(articles) == 0 {
		return nil, ErrNoArticles
	}

	r := &CompareReport{ArticleFields: fieldNames(articles[0])}
	if len(kb) > 0 {
		r.KBFields = fieldNames(kb[0])
	}

	raw, err := json.Marshal(articles[0])
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode article: %w", err)
	}

	var item models.SupportArticleItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("failed to decode article: %w", err)
	}

	if err := r.inspectDOM(item.Description); err != nil {
		return nil, err
	}

	cleaner := normalizer.NewHTMLCleaner()
	text, images := cleaner.Clean(item.Description)
	r.PatternImages = images
	r.CleanPreview = utils.NewStringHelper().TruncateString(text, CleanPreviewRunes)

	rec := normalizer.NewTransformer("").TransformSupportArticle(item)
	r.Proposed = &rec

	return r, nil
}

// inspectDOM parses the description as a document and records its element
// count and image sources. It cross-checks the pattern-based harvest.
func (r *CompareReport) inspectDOM(description string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return fmt.Errorf("parsing description HTML: %w", err)
	}

	r.DOMElements = doc.Find("body *").Length()
	r.DescriptionHTML = r.DOMElements > 0
	r.DOMImages = []string{}

	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && src != "" {
			r.DOMImages = append(r.DOMImages, src)
		}
	})

	return nil
}

// ImagesAgree reports whether the DOM and pattern harvests found the same images.
func (r *CompareReport) ImagesAgree() bool {
	if len(r.DOMImages) != len(r.PatternImages) {
		return false
	}

	for i := range r.DOMImages {
		if r.DOMImages[i] != r.PatternImages[i] {
			return false
		}
	}

	return true
}

// Print writes the report to w.
func (r *CompareReport) Print(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("=== KNOWLEDGE BASE STRUCTURE ===\n")
	fmt.Fprintf(&sb, "Fields: %s\n", strings.Join(r.KBFields, ", "))

	sb.WriteString("\n=== SUPPORT ARTICLE STRUCTURE ===\n")
	fmt.Fprintf(&sb, "Fields: %s\n", strings.Join(r.ArticleFields, ", "))
	fmt.Fprintf(&sb, "Description contains HTML: %t (%d elements)\n", r.DescriptionHTML, r.DOMElements)
	fmt.Fprintf(&sb, "Images (DOM): %d, images (pattern): %d\n", len(r.DOMImages), len(r.PatternImages))

	if !r.ImagesAgree() {
		sb.WriteString("⚠️  Image harvests disagree\n")
	}

	fmt.Fprintf(&sb, "\nClean text: %s\n", r.CleanPreview)

	proposed, err := marshalIndent(r.Proposed)
	if err != nil {
		return err
	}

	fmt.Fprintf(&sb, "\n=== PROPOSED UNIFIED RECORD ===\n%s\n", proposed)

	_, err = io.WriteString(w, sb.String())

	return err
}

func fieldNames(item map[string]any) []string {
	names := make([]string, 0, len(item))
	for key := range item {
		names = append(names, key)
	}

	sort.Strings(names)

	return names
}
