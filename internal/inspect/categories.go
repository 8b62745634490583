package inspect

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"vsnorm/internal/models"
	"vsnorm/internal/report"
)

// CategoryCount is the number of records in one category.
type CategoryCount struct {
	Name  string
	Count int
}

// CountCategories counts records per category, largest first. Ties are
// ordered by name.
func CountCategories(recs []models.UnifiedRecord) []CategoryCount {
	counts := make(map[string]int)
	for _, rec := range recs {
		counts[rec.Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, CategoryCount{Name: name, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// PrintCategories writes the category table to w.
func PrintCategories(w io.Writer, counts []CategoryCount) error {
	table := report.NewTable("Category", "Items")
	table.RightAlign[1] = true

	total := 0

	for _, c := range counts {
		name := c.Name
		if name == "" {
			name = "(none)"
		}

		table.AddRow(name, strconv.Itoa(c.Count))
		total += c.Count
	}

	_, err := fmt.Fprintf(w, "📂 Categories found: %d (%d items)\n\n%s\n", len(counts), total, table.Render())

	return err
}
