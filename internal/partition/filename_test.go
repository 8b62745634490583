package partition

import "testing"

func TestSafeFilename(t *testing.T) {
	const suffix = "_vector_store.json"

	tests := []struct {
		category string
		want     string
	}{
		{category: "FAQs & Setup!", want: "faqs_setup_vector_store.json"},
		{category: "Cowis Customer Help", want: "cowis_customer_help_vector_store.json"},
		{category: "RVE - RFA - POSFLOW etc.  Customer Help", want: "rve_-_rfa_-_posflow_etc_customer_help_vector_store.json"},
		{category: "__Internal__Support__", want: "internal_support_vector_store.json"},
		{category: "Tabs\tand\nnewlines", want: "tabs_and_newlines_vector_store.json"},
		{category: "FAQs\u00a0Setup", want: "faqs_setup_vector_store.json"},
		{category: "Vertical\vtab\u2003em space", want: "vertical_tab_em_space_vector_store.json"},
		{category: "Uncategorized", want: "uncategorized_vector_store.json"},
		{category: "!!!", want: "_vector_store.json"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := SafeFilename(tt.category, suffix); got != tt.want {
				t.Errorf("SafeFilename(%q) = %q, want %q", tt.category, got, tt.want)
			}
		})
	}
}
