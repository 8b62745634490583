package normalizer

import (
	"regexp"
	"strings"

	"vsnorm/pkg/utils"
)

// HTMLCleaner turns an HTML fragment into plain text and harvests its image URLs.
// It is a pattern-based approximation, not a markup parser.
type HTMLCleaner struct {
	imgPattern *regexp.Regexp
	tagPattern *regexp.Regexp
	entities   *strings.Replacer
	strings    *utils.StringHelper
}

// NewHTMLCleaner creates a new HTML cleaner.
func NewHTMLCleaner() *HTMLCleaner {
	return &HTMLCleaner{
		imgPattern: regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["'][^>]*>`),
		tagPattern: regexp.MustCompile(`<[^>]*>`),
		// A single Replacer pass so "&amp;lt;" decodes to "&lt;" and stops there.
		entities: strings.NewReplacer(
			"&nbsp;", " ",
			"&amp;", "&",
			"&lt;", "<",
			"&gt;", ">",
			"&quot;", `"`,
			"&#39;", "'",
			"&hellip;", "...",
			"&mdash;", "—",
			"&ndash;", "–",
		),
		strings: utils.NewStringHelper(),
	}
}

// Clean returns the plain text of html and the src of every <img> tag in
// order of appearance. Images is never nil.
func (c *HTMLCleaner) Clean(html string) (string, []string) {
	images := c.ExtractImages(html)
	if html == "" {
		return "", images
	}

	text := c.tagPattern.ReplaceAllString(html, "")
	text = c.entities.Replace(text)

	return c.strings.NormalizeWhitespace(text), images
}

// ExtractImages returns the src values of all <img> tags in html.
func (c *HTMLCleaner) ExtractImages(html string) []string {
	images := []string{}

	for _, match := range c.imgPattern.FindAllStringSubmatch(html, -1) {
		images = append(images, match[1])
	}

	return images
}
