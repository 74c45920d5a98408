package collector

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/DjordjeVuckovic/course-graph/internal/domain"
	"github.com/DjordjeVuckovic/course-graph/internal/reader"
)

// Term is one resolved entry of a build manifest.
type Term struct {
	// Index is the manifest position; merge order follows it.
	Index int
	Key   string
	Label string
	Path  string
}

type TermCourses struct {
	Term    Term
	Courses []domain.RawCourse
}

// TermCollector reads every term's course file concurrently.
type TermCollector struct {
	terms []Term
}

func NewTermCollector(terms []Term) *TermCollector {
	return &TermCollector{
		terms: terms,
	}
}

func (tc *TermCollector) Collect(ctx context.Context) (<-chan CollectionResult[TermCourses], error) {
	if len(tc.terms) == 0 {
		return nil, fmt.Errorf("no terms to collect")
	}

	results := make(chan CollectionResult[TermCourses], len(tc.terms))

	var wg sync.WaitGroup
	for _, term := range tc.terms {
		wg.Add(1)
		go func(t Term) {
			defer wg.Done()

			courses, err := readTerm(t.Path)
			if err != nil {
				err = fmt.Errorf("term %s: %w", t.Label, err)
			} else {
				slog.Debug("Term file read", "term", t.Label, "path", t.Path, "records", len(courses))
			}

			select {
			case <-ctx.Done():
			case results <- CollectionResult[TermCourses]{Result: TermCourses{Term: t, Courses: courses}, Err: err}:
			}
		}(term)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results, nil
}

func readTerm(path string) ([]domain.RawCourse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open course file: %w", err)
	}
	defer f.Close()

	return reader.NewCourseReader(f).ReadAll()
}
