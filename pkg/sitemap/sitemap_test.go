package sitemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contentkit/pkg/sitemap"
)

func testIndex() *sitemap.Index {
	return sitemap.NewIndex([]*sitemap.Page{
		{
			Path:  "/",
			Title: "Home",
			Children: []*sitemap.Page{
				{
					Path:        "/projects",
					Title:       "Projects",
					Description: "Selected work",
					Children: []*sitemap.Page{
						{Path: "/projects/design-system", Title: "Design System"},
					},
				},
				{Path: "/about", Title: "About"},
			},
		},
	})
}

func TestFind(t *testing.T) {
	t.Parallel()

	idx := testIndex()

	p, ok := idx.Find("/projects")
	require.True(t, ok)
	assert.Equal(t, "Projects", p.Title)
	assert.Equal(t, "Selected work", p.Description)

	_, ok = idx.Find("/projects/")
	assert.False(t, ok, "lookup is exact-path only")

	_, ok = idx.Find("/missing")
	assert.False(t, ok)
}

func TestBreadcrumbs(t *testing.T) {
	t.Parallel()

	idx := testIndex()

	trail := idx.Breadcrumbs("/projects/design-system")
	require.Len(t, trail, 3)
	assert.Equal(t, "Home", trail[0].Title)
	assert.Equal(t, "Projects", trail[1].Title)
	assert.Equal(t, "Design System", trail[2].Title)

	assert.Nil(t, idx.Breadcrumbs("/missing"))

	root := idx.Breadcrumbs("/")
	require.Len(t, root, 1)
	assert.Equal(t, "Home", root[0].Title)
}

func TestWalk(t *testing.T) {
	t.Parallel()

	idx := testIndex()

	var paths []string
	idx.Walk(func(p *sitemap.Page, depth int) bool {
		paths = append(paths, p.Path)
		return true
	})
	assert.Equal(t, []string{"/", "/projects", "/projects/design-system", "/about"}, paths)

	// Early stop.
	var visited int
	idx.Walk(func(p *sitemap.Page, depth int) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)
}

func TestDuplicatePathFirstWins(t *testing.T) {
	t.Parallel()

	idx := sitemap.NewIndex([]*sitemap.Page{
		{Path: "/x", Title: "First"},
		{Path: "/x", Title: "Second"},
	})

	p, ok := idx.Find("/x")
	require.True(t, ok)
	assert.Equal(t, "First", p.Title)
}
