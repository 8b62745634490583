package normalizer

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"vsnorm/internal/models"
)

func strPtr(s string) *string { return &s }

func TestNewTransformer(t *testing.T) {
	tr := NewTransformer("")
	if tr == nil {
		t.Fatal("NewTransformer returned nil")
	}

	if tr.kbLabel != DefaultKnowledgeBaseSource {
		t.Errorf("kbLabel = %q, want %q", tr.kbLabel, DefaultKnowledgeBaseSource)
	}
}

func TestTransformer_TransformKnowledgeBase(t *testing.T) {
	tr := NewTransformer("")

	item := models.KnowledgeBaseItem{
		Text:         "\n\nHello World\nMore text",
		MainCategory: "Backoffice",
		CategoryFile: "stock.json",
		URL:          strPtr("https://kb/1"),
		Images:       []string{"https://kb/img.png"},
		HasImages:    true,
		ImageCount:   1,
	}

	rec := tr.TransformKnowledgeBase(item)

	if rec.Title != "Hello World" {
		t.Errorf("Title = %q, want %q", rec.Title, "Hello World")
	}

	if rec.Text != item.Text {
		t.Errorf("Text = %q, want unchanged %q", rec.Text, item.Text)
	}

	if rec.Category != "Backoffice" || rec.Subcategory != "stock.json" {
		t.Errorf("Category/Subcategory = %q/%q", rec.Category, rec.Subcategory)
	}

	if rec.Source != DefaultKnowledgeBaseSource {
		t.Errorf("Source = %q, want %q", rec.Source, DefaultKnowledgeBaseSource)
	}

	if rec.URL == nil || *rec.URL != "https://kb/1" {
		t.Errorf("URL = %v, want https://kb/1", rec.URL)
	}

	if !rec.HasImages || rec.ImageCount != 1 {
		t.Errorf("HasImages/ImageCount = %t/%d, want true/1", rec.HasImages, rec.ImageCount)
	}

	if rec.CreatedAt != nil || rec.UpdatedAt != nil || rec.ID != nil {
		t.Error("CreatedAt, UpdatedAt and ID must be null for knowledge base records")
	}

	if rec.Tags == nil || len(rec.Tags) != 0 {
		t.Errorf("Tags = %v, want empty non-nil slice", rec.Tags)
	}
}

func TestTransformer_TransformKnowledgeBase_Defaults(t *testing.T) {
	tr := NewTransformer("Custom KB")

	rec := tr.TransformKnowledgeBase(models.KnowledgeBaseItem{HasImages: true, ImageCount: 4})

	if rec.Title != "" || rec.Category != "" || rec.Subcategory != "" {
		t.Errorf("expected empty title/category/subcategory, got %+v", rec)
	}

	if rec.Source != "Custom KB" {
		t.Errorf("Source = %q, want Custom KB", rec.Source)
	}

	if rec.Images == nil || rec.HasImages || rec.ImageCount != 0 {
		t.Errorf("Images/HasImages/ImageCount = %v/%t/%d, want []/false/0", rec.Images, rec.HasImages, rec.ImageCount)
	}

	if rec.URL != nil {
		t.Errorf("URL = %v, want nil", *rec.URL)
	}
}

func TestTransformer_TransformSupportArticle(t *testing.T) {
	tr := NewTransformer("")

	item := models.SupportArticleItem{
		Title:       "Printing receipts",
		Description: `<p>see <img src="https://x/a.png"> and <img src="https://x/b.png"></p>`,
		Category:    "POS",
		Folder:      "Printing",
		Source:      "Help Desk",
		URL:         strPtr("https://help/1"),
		CreatedAt:   strPtr("2024-01-01T00:00:00Z"),
		UpdatedAt:   strPtr("2024-02-01T00:00:00Z"),
		ID:          json.RawMessage(`1234`),
		Tags:        []string{"printer"},
	}

	rec := tr.TransformSupportArticle(item)

	if rec.Title != "Printing receipts" {
		t.Errorf("Title = %q", rec.Title)
	}

	if rec.Text != "see and" {
		t.Errorf("Text = %q, want %q", rec.Text, "see and")
	}

	wantImages := []string{"https://x/a.png", "https://x/b.png"}
	if !reflect.DeepEqual(rec.Images, wantImages) {
		t.Errorf("Images = %v, want %v", rec.Images, wantImages)
	}

	if !rec.HasImages || rec.ImageCount != 2 {
		t.Errorf("HasImages/ImageCount = %t/%d, want true/2", rec.HasImages, rec.ImageCount)
	}

	if rec.Subcategory != "Printing" || rec.Source != "Help Desk" {
		t.Errorf("Subcategory/Source = %q/%q", rec.Subcategory, rec.Source)
	}

	if string(rec.ID) != "1234" {
		t.Errorf("ID = %s, want 1234", rec.ID)
	}

	if rec.CreatedAt == nil || *rec.CreatedAt != "2024-01-01T00:00:00Z" {
		t.Errorf("CreatedAt = %v", rec.CreatedAt)
	}

	if !reflect.DeepEqual(rec.Tags, []string{"printer"}) {
		t.Errorf("Tags = %v", rec.Tags)
	}
}

func TestTransformer_TransformSupportArticle_TextPrecedence(t *testing.T) {
	tr := NewTransformer("")

	item := models.SupportArticleItem{
		Description: `<p>from html <img src="https://x/a.png"></p>`,
		Text:        strPtr("pre-cleaned"),
	}

	rec := tr.TransformSupportArticle(item)
	if rec.Text != "pre-cleaned" {
		t.Errorf("Text = %q, want pre-cleaned", rec.Text)
	}

	// Images still come from the markup.
	if rec.ImageCount != 1 {
		t.Errorf("ImageCount = %d, want 1", rec.ImageCount)
	}

	item.Text = strPtr("")

	rec = tr.TransformSupportArticle(item)
	if rec.Text != "from html" {
		t.Errorf("Text = %q, want %q for empty pre-cleaned text", rec.Text, "from html")
	}
}

func TestTransformer_TransformSupportArticle_Defaults(t *testing.T) {
	tr := NewTransformer("")

	rec := tr.TransformSupportArticle(models.SupportArticleItem{
		URL: strPtr(""),
		ID:  json.RawMessage(`null`),
	})

	if rec.URL != nil {
		t.Errorf("URL = %q, want nil", *rec.URL)
	}

	if rec.ID != nil {
		t.Errorf("ID = %s, want nil", rec.ID)
	}

	if rec.Tags == nil || rec.Images == nil {
		t.Error("Tags and Images must be non-nil")
	}

	if rec.HasImages || rec.ImageCount != 0 || rec.Text != "" {
		t.Errorf("unexpected defaults: %+v", rec)
	}
}

func TestTransformer_Transform(t *testing.T) {
	tr := NewTransformer("")

	rec, err := tr.Transform(models.KnowledgeBaseItem{Text: "Title\nbody"})
	if err != nil {
		t.Fatalf("Transform returned unexpected error: %v", err)
	}

	if rec.Title != "Title" {
		t.Errorf("Title = %q, want Title", rec.Title)
	}

	rec, err = tr.Transform(&models.SupportArticleItem{Title: "Article"})
	if err != nil {
		t.Fatalf("Transform returned unexpected error: %v", err)
	}

	if rec.Title != "Article" {
		t.Errorf("Title = %q, want Article", rec.Title)
	}
}

func TestTransformer_Transform_Error(t *testing.T) {
	tr := NewTransformer("")

	var nilItem *models.SupportArticleItem

	for _, src := range []models.Source{nil, nilItem} {
		if _, err := tr.Transform(src); !errors.Is(err, ErrUnknownSource) {
			t.Errorf("Transform(%v) error = %v, want ErrUnknownSource", src, err)
		}
	}
}

func TestUnifiedRecord_JSONNulls(t *testing.T) {
	tr := NewTransformer("")

	data, err := json.Marshal(tr.TransformKnowledgeBase(models.KnowledgeBaseItem{Text: "x"}))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	for _, key := range []string{"url", "created_at", "updated_at", "id"} {
		v, ok := got[key]
		if !ok || v != nil {
			t.Errorf("%s = %v (present=%t), want null", key, v, ok)
		}
	}

	for _, key := range []string{"images", "tags"} {
		if _, ok := got[key].([]any); !ok {
			t.Errorf("%s = %v, want []", key, got[key])
		}
	}
}
