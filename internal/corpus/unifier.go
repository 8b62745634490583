// Package corpus builds the unified corpus from the knowledge-base file and
// the per-topic support article files.
package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vsnorm/internal/config"
	"vsnorm/internal/jsonio"
	"vsnorm/internal/logger"
	"vsnorm/internal/models"
	"vsnorm/internal/normalizer"
	"vsnorm/pkg/digest"
)

// FileCount is the number of records taken from one support article file.
type FileCount struct {
	Name  string
	Count int
}

// Result summarises one unification run.
type Result struct {
	OutputPath      string
	Digest          string
	PreviousDigest  string
	Changed         bool
	Files           []FileCount
	Categories      []string
	KnowledgeBase   int
	Total           int
	WithImages      int
	BytesWritten    int
	SupportArticles int
}

// Unifier reads every source, maps it to the unified schema and writes the corpus.
type Unifier struct {
	cfg       *config.Config
	log       *logger.Logger
	processor *normalizer.Processor
}

// NewUnifier creates a unifier for cfg.
func NewUnifier(cfg *config.Config, log *logger.Logger) *Unifier {
	return &Unifier{
		cfg:       cfg,
		log:       log,
		processor: normalizer.NewProcessor(cfg.Sources.KnowledgeBaseLabel),
	}
}

// Build reads and transforms every source without writing anything.
// Knowledge-base records come first, then each support article file in
// name order. Any read or parse failure aborts the build.
func (u *Unifier) Build(ctx context.Context) ([]models.UnifiedRecord, *Result, error) {
	res := &Result{}

	u.log.Info("Reading knowledge base", "path", u.cfg.Paths.KnowledgeBase)

	kbItems, err := jsonio.ReadArray[models.KnowledgeBaseItem](u.cfg.Paths.KnowledgeBase)
	if err != nil {
		return nil, nil, err
	}

	all, err := u.processor.ProcessKnowledgeBase(kbItems)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", u.cfg.Paths.KnowledgeBase, err)
	}

	res.KnowledgeBase = len(all)
	u.log.Info("Processed knowledge base items", "count", res.KnowledgeBase)

	files, err := u.SourceFiles()
	if err != nil {
		return nil, nil, err
	}

	u.log.Info("Found vector store files", "count", len(files), "dir", u.cfg.Paths.VectorStoreDir)

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		flog := u.log.With("file", name)
		flog.Info("Processing file")

		path := filepath.Join(u.cfg.Paths.VectorStoreDir, name)

		articles, err := jsonio.ReadArray[models.SupportArticleItem](path)
		if err != nil {
			return nil, nil, err
		}

		recs, err := u.processor.ProcessSupportArticles(articles)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}

		all = append(all, recs...)
		res.Files = append(res.Files, FileCount{Name: name, Count: len(recs)})
		res.SupportArticles += len(recs)

		flog.Info("Added items", "count", len(recs))
	}

	res.Total = len(all)
	res.WithImages, res.Categories = stats(all)

	return all, res, nil
}

// Run builds the corpus and writes it to the unified output path.
// Nothing is written when any source fails. The written file is verified
// against the digest of the encoded corpus, and Changed reports whether it
// differs from the file it replaced.
func (u *Unifier) Run(ctx context.Context) (*Result, error) {
	all, res, err := u.Build(ctx)
	if err != nil {
		return nil, err
	}

	res.OutputPath = u.cfg.Paths.UnifiedOutput

	// A missing or unreadable previous output simply counts as changed.
	if prev, err := digest.File(res.OutputPath); err == nil {
		res.PreviousDigest = prev
	}

	data, err := jsonio.Write(res.OutputPath, all)
	if err != nil {
		return nil, err
	}

	res.BytesWritten = len(data)
	res.Digest = digest.Sum(data)
	res.Changed = res.Digest != res.PreviousDigest

	if err := digest.Verify(res.OutputPath, res.Digest); err != nil {
		return nil, fmt.Errorf("verifying %s: %w", res.OutputPath, err)
	}

	u.log.Info("Wrote unified corpus",
		"path", res.OutputPath,
		"items", res.Total,
		"bytes", res.BytesWritten,
		"sha256", res.Digest,
		"changed", res.Changed,
	)

	return res, nil
}

// SourceFiles lists the support article files in the vector store
// directory, in name order.
func (u *Unifier) SourceFiles() ([]string, error) {
	entries, err := os.ReadDir(u.cfg.Paths.VectorStoreDir)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", jsonio.ErrRead, u.cfg.Paths.VectorStoreDir, err)
	}

	var files []string

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), u.cfg.Sources.FileSuffix) {
			continue
		}

		files = append(files, entry.Name())
	}

	return files, nil
}

// stats counts records with images and lists categories in first-seen order.
func stats(recs []models.UnifiedRecord) (int, []string) {
	withImages := 0
	seen := make(map[string]bool)
	categories := []string{}

	for _, rec := range recs {
		if rec.HasImages {
			withImages++
		}

		if !seen[rec.Category] {
			seen[rec.Category] = true
			categories = append(categories, rec.Category)
		}
	}

	return withImages, categories
}
