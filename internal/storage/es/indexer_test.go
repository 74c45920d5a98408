package es

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/course-graph/internal/catalog"
	"github.com/DjordjeVuckovic/course-graph/internal/prereq"
	pkgtesting "github.com/DjordjeVuckovic/course-graph/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexer_SaveAndLoad(t *testing.T) {
	if !pkgtesting.IntegrationEnabled() {
		t.Skip("set INTEGRATION_TESTS=true to run Elasticsearch tests")
	}

	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	indexer, err := NewIndexer(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "courses_test",
	})
	require.NoError(t, err)
	assert.True(t, indexer.HealthChecker().Healthy(ctx))

	first := catalog.Catalog{
		"02340114": {
			Name:       "מבוא",
			PrereqTree: prereq.Leaf{ID: "01040031"},
			Prereqs:    catalog.NewSet("01040031"),
			Semesters:  catalog.NewSet("חורף"),
		},
		"01040031": {
			Name:       "חדו\"א",
			PrereqTree: prereq.Empty{},
			Prereqs:    catalog.NewSet(),
			Semesters:  catalog.NewSet("חורף", "אביב"),
		},
	}
	_, err = indexer.Save(ctx, first)
	require.NoError(t, err)

	second := catalog.Catalog{"01040031": first["01040031"]}
	_, err = indexer.Save(ctx, second)
	require.NoError(t, err)

	_, err = indexer.client.Indices.Refresh().Index(indexer.indexName).Do(ctx)
	require.NoError(t, err)

	loaded, err := indexer.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
}
