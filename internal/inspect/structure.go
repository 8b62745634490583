// Package inspect produces human-readable reports about corpus files.
// None of it is on the data path.
package inspect

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"vsnorm/pkg/utils"
)

// PreviewRunes bounds text previews in reports.
const PreviewRunes = 200

// StructureReport describes the shape of a JSON array of records.
type StructureReport struct {
	Sample          map[string]any
	SamplePreview   string
	Fields          []string
	SampleImages    []any
	Total           int
	SampleTextLen   int
	WithImages      int
	SampleTextIsTag bool
}

// AnalyzeStructure reports field names, a sample record and image usage.
func AnalyzeStructure(items []map[string]any) *StructureReport {
	r := &StructureReport{Total: len(items)}

	fields := make(map[string]bool)
	for _, item := range items {
		for key := range item {
			fields[key] = true
		}
	}

	for key := range fields {
		r.Fields = append(r.Fields, key)
	}

	sort.Strings(r.Fields)

	if len(items) > 0 {
		r.Sample = items[0]

		text, _ := items[0]["text"].(string)
		r.SampleTextLen = len([]rune(text))
		r.SampleTextIsTag = strings.ContainsAny(text, "<>")
		r.SamplePreview = utils.NewStringHelper().TruncateString(text, PreviewRunes)
	}

	for _, item := range items {
		images, ok := item["images"].([]any)
		if !ok || len(images) == 0 {
			continue
		}

		if r.WithImages == 0 {
			r.SampleImages = images
		}

		r.WithImages++
	}

	return r
}

// Print writes the report to w.
func (r *StructureReport) Print(w io.Writer) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📊 Total items: %d\n", r.Total)
	fmt.Fprintf(&sb, "🧩 Fields (%d): %s\n", len(r.Fields), strings.Join(r.Fields, ", "))

	if r.Sample != nil {
		sample, err := marshalIndent(r.Sample)
		if err != nil {
			return err
		}

		fmt.Fprintf(&sb, "\n📄 Sample item:\n%s\n", sample)
		fmt.Fprintf(&sb, "\n🔍 Sample text length: %d\n", r.SampleTextLen)
		fmt.Fprintf(&sb, "   Contains HTML tags: %t\n", r.SampleTextIsTag)
		fmt.Fprintf(&sb, "   Preview: %s\n", r.SamplePreview)
	}

	fmt.Fprintf(&sb, "\n🖼️  Items with images: %d\n", r.WithImages)

	if r.SampleImages != nil {
		images, err := marshalIndent(r.SampleImages)
		if err != nil {
			return err
		}

		fmt.Fprintf(&sb, "   Sample images: %s\n", images)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
