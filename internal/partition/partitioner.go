// Package partition splits a unified corpus into one file per category and
// writes a manifest describing the split.
package partition

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"vsnorm/internal/config"
	"vsnorm/internal/jsonio"
	"vsnorm/internal/logger"
	"vsnorm/internal/models"

	"github.com/dustin/go-humanize"
)

// manifestTimeLayout matches millisecond UTC ISO-8601 timestamps.
const manifestTimeLayout = "2006-01-02T15:04:05.000Z"

// Group is the set of records sharing one category. Records are kept as
// read from the corpus and written back byte-for-byte apart from indentation.
type Group struct {
	Name     string
	Filename string
	Records  []json.RawMessage
}

// WrittenFile records the size of one category file.
type WrittenFile struct {
	Path      string
	Size      int64
	OverLimit bool
}

// Result summarises one partition run.
type Result struct {
	Manifest     *models.Manifest
	ManifestPath string
	Files        []WrittenFile
}

// Partitioner groups a corpus by category and writes each group to its own file.
type Partitioner struct {
	cfg *config.Config
	log *logger.Logger
	now func() time.Time
}

// NewPartitioner creates a partitioner for cfg.
func NewPartitioner(cfg *config.Config, log *logger.Logger) *Partitioner {
	return &Partitioner{
		cfg: cfg,
		log: log,
		now: time.Now,
	}
}

// Group buckets recs by category, in lexicographic order of category name.
// Records without a string category go to the configured fallback. Each
// group gets its derived filename, made unique according to the collision policy.
func (p *Partitioner) Group(recs []json.RawMessage) []Group {
	buckets := make(map[string][]json.RawMessage)

	for _, rec := range recs {
		category := p.categoryOf(rec)
		buckets[category] = append(buckets[category], rec)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}

	sort.Strings(names)

	groups := make([]Group, 0, len(names))
	used := make(map[string]string)

	for _, name := range names {
		filename := SafeFilename(name, p.cfg.Partition.FileSuffix)

		if prev, taken := used[filename]; taken {
			if p.cfg.Partition.OnCollision == config.CollisionSuffix {
				filename = p.uniqueFilename(name, used)
			}

			p.log.Warn("Category filename collision",
				"category", name,
				"other", prev,
				"filename", filename,
				"policy", p.cfg.Partition.OnCollision,
			)
		}

		used[filename] = name
		groups = append(groups, Group{Name: name, Filename: filename, Records: buckets[name]})
	}

	return groups
}

// categoryOf reads only the category key of rec. Anything that is not a
// non-empty string, including non-object records, maps to the fallback.
func (p *Partitioner) categoryOf(rec json.RawMessage) string {
	var head struct {
		Category any `json:"category"`
	}

	if err := json.Unmarshal(rec, &head); err == nil {
		if category, ok := head.Category.(string); ok && category != "" {
			return category
		}
	}

	return p.cfg.Partition.FallbackCategory
}

// uniqueFilename appends _2, _3, ... to the stem until the name is unused.
func (p *Partitioner) uniqueFilename(category string, used map[string]string) string {
	stem := safeStem(category)

	for n := 2; ; n++ {
		candidate := stem + "_" + strconv.Itoa(n) + p.cfg.Partition.FileSuffix
		if _, taken := used[candidate]; !taken {
			return candidate
		}
	}
}

// Run reads the unified corpus, writes one file per category and then the manifest.
func (p *Partitioner) Run(ctx context.Context) (*Result, error) {
	recs, err := jsonio.ReadArray[json.RawMessage](p.cfg.Paths.UnifiedOutput)
	if err != nil {
		return nil, err
	}

	return p.Write(ctx, recs)
}

// Write partitions recs into the output directory.
func (p *Partitioner) Write(ctx context.Context, recs []json.RawMessage) (*Result, error) {
	groups := p.Group(recs)
	outDir := p.cfg.Paths.PartitionOutputDir

	p.log.Info("Splitting corpus", "items", len(recs), "categories", len(groups), "dir", outDir)

	res := &Result{}
	manifest := &models.Manifest{
		TotalItems:      len(recs),
		TotalCategories: len(groups),
		Categories:      make([]models.CategoryEntry, 0, len(groups)),
	}

	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(outDir, g.Filename)

		data, err := jsonio.Write(path, g.Records)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", g.Name, err)
		}

		file := WrittenFile{Path: path, Size: int64(len(data))}
		file.OverLimit = p.cfg.Partition.SizeWarnBytes > 0 && file.Size > p.cfg.Partition.SizeWarnBytes
		res.Files = append(res.Files, file)

		p.log.Info("Wrote category",
			"category", g.Name,
			"count", len(g.Records),
			"file", g.Filename,
			"size", humanize.IBytes(uint64(file.Size)),
		)

		if file.OverLimit {
			p.log.Warn("Category file exceeds size limit",
				"file", g.Filename,
				"size", humanize.IBytes(uint64(file.Size)),
				"limit", humanize.IBytes(uint64(p.cfg.Partition.SizeWarnBytes)),
			)
		}

		manifest.Categories = append(manifest.Categories, models.CategoryEntry{
			Name:     g.Name,
			Count:    len(g.Records),
			Filename: g.Filename,
		})
	}

	manifest.CreatedAt = p.now().UTC().Format(manifestTimeLayout)

	res.Manifest = manifest
	res.ManifestPath = p.cfg.ManifestPath()

	if _, err := jsonio.Write(res.ManifestPath, manifest); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	p.log.Info("Wrote manifest", "path", res.ManifestPath)

	return res, nil
}
