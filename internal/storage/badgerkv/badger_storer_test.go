package badgerkv

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/course-graph/internal/catalog"
	"github.com/DjordjeVuckovic/course-graph/internal/prereq"
	"github.com/DjordjeVuckovic/course-graph/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Storer {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStorer_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, storage.ErrNoSnapshot)

	first := catalog.Catalog{
		"00440252": {
			Name: "מערכות ספרתיות",
			PrereqTree: prereq.Or{Children: []prereq.Node{
				prereq.And{Children: []prereq.Node{prereq.Leaf{ID: "00440145"}, prereq.Leaf{ID: "01040016"}}},
				prereq.Leaf{ID: "00440137"},
			}},
			Prereqs:   catalog.NewSet("00440137", "00440145", "01040016"),
			Semesters: catalog.NewSet("חורף"),
		},
		"00440145": {
			Name:       "מעגלים",
			PrereqTree: prereq.Empty{},
			Prereqs:    catalog.NewSet(),
			Semesters:  catalog.NewSet("חורף", "אביב"),
		},
	}
	firstID, err := s.Save(ctx, first)
	require.NoError(t, err)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, first["00440252"].PrereqTree, loaded["00440252"].PrereqTree)
	assert.True(t, first["00440145"].Semesters.Equal(loaded["00440145"].Semesters))
	assert.True(t, prereq.IsEmpty(loaded["00440145"].PrereqTree))

	second := catalog.Catalog{
		"02340114": {Name: "מבוא", PrereqTree: prereq.Empty{}, Prereqs: catalog.NewSet(), Semesters: catalog.NewSet("אביב")},
	}
	_, err = s.Save(ctx, second)
	require.NoError(t, err)

	latest, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"02340114"}, latest.IDs())

	old, err := s.LoadSnapshot(ctx, firstID)
	require.NoError(t, err)
	assert.Len(t, old, 2)
}

func TestStorer_InMemory(t *testing.T) {
	ctx := context.Background()
	s, err := Open("")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Save(ctx, catalog.Catalog{})
	require.NoError(t, err)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
