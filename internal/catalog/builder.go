package catalog

import (
	"runtime"
	"sync/atomic"

	"github.com/DjordjeVuckovic/course-graph/internal/domain"
	"github.com/DjordjeVuckovic/course-graph/internal/prereq"
	"golang.org/x/sync/errgroup"
)

// BuildStats summarizes one Build call.
type BuildStats struct {
	Records       int
	Courses       int
	Skipped       int
	Duplicates    int
	ParseFailures int
	NoPrereqs     int
}

type Builder struct {
	parser  *prereq.Parser
	workers int
}

type BuilderOption func(*Builder)

// WithWorkers bounds how many prerequisite strings are parsed concurrently.
func WithWorkers(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.workers = n
		}
	}
}

func WithParser(p *prereq.Parser) BuilderOption {
	return func(b *Builder) {
		if p != nil {
			b.parser = p
		}
	}
}

func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		parser:  prereq.NewParser(),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type parseJob struct {
	entry  *Entry
	source string
}

// Build maps the records of one term into a catalog. Records without a number or
// name are skipped. The first record of a course wins; later duplicates only add
// the term label. Parse failures degrade that course's tree to Empty and are
// counted in NoPrereqs as well as ParseFailures.
func (b *Builder) Build(courses []domain.RawCourse, term string) (Catalog, BuildStats) {
	stats := BuildStats{Records: len(courses)}
	cat := make(Catalog)
	var jobs []parseJob

	for _, rc := range courses {
		if !rc.HasIdentity() {
			stats.Skipped++
			continue
		}

		id := rc.General.Number
		if existing, ok := cat[id]; ok {
			existing.Semesters.Add(term)
			stats.Duplicates++
			continue
		}

		e := &Entry{
			Name:       rc.General.Name,
			PrereqTree: prereq.Empty{},
			Prereqs:    NewSet(),
			Semesters:  NewSet(term),
		}
		cat[id] = e
		jobs = append(jobs, parseJob{entry: e, source: rc.General.Prerequisites})
	}

	var failures, bare atomic.Int64
	var g errgroup.Group
	g.SetLimit(b.workers)

	for _, job := range jobs {
		g.Go(func() error {
			tree, err := b.parser.Parse(job.source)
			if err != nil {
				failures.Add(1)
			}
			if prereq.IsEmpty(tree) {
				bare.Add(1)
			}
			job.entry.PrereqTree = tree
			job.entry.Prereqs = NewSet(prereq.References(tree)...)
			return nil
		})
	}
	_ = g.Wait()

	stats.Courses = len(cat)
	stats.ParseFailures = int(failures.Load())
	stats.NoPrereqs = int(bare.Load())
	return cat, stats
}
