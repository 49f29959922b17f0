package sitemap

// Page is one node of the site directory.
type Page struct {
	Path        string  `json:"path"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Children    []*Page `json:"children,omitempty"`
}

// Index answers path lookups over a fixed page tree. Build it once with
// NewIndex; it holds no mutable state afterwards.
type Index struct {
	roots  []*Page
	byPath map[string]*Page
	trails map[string][]*Page
}

// NewIndex builds an index over the given root pages. The tree is walked
// once; on duplicate paths the first page registered wins.
func NewIndex(roots []*Page) *Index {
	idx := &Index{
		roots:  roots,
		byPath: make(map[string]*Page),
		trails: make(map[string][]*Page),
	}
	for _, root := range roots {
		idx.register(root, nil)
	}
	return idx
}

func (idx *Index) register(p *Page, ancestors []*Page) {
	if p == nil {
		return
	}
	trail := make([]*Page, len(ancestors), len(ancestors)+1)
	copy(trail, ancestors)
	trail = append(trail, p)

	if _, exists := idx.byPath[p.Path]; !exists {
		idx.byPath[p.Path] = p
		idx.trails[p.Path] = trail
	}
	for _, child := range p.Children {
		idx.register(child, trail)
	}
}

// Find returns the page registered at exactly path.
func (idx *Index) Find(path string) (*Page, bool) {
	p, ok := idx.byPath[path]
	return p, ok
}

// Breadcrumbs returns the root-to-leaf trail ending at path, or nil for an
// unknown path.
func (idx *Index) Breadcrumbs(path string) []*Page {
	trail, ok := idx.trails[path]
	if !ok {
		return nil
	}
	out := make([]*Page, len(trail))
	copy(out, trail)
	return out
}

// Roots returns the top-level pages the index was built from.
func (idx *Index) Roots() []*Page {
	return idx.roots
}

// Walk visits every registered page depth-first. Returning false from fn
// stops the walk.
func (idx *Index) Walk(fn func(p *Page, depth int) bool) {
	var walk func(p *Page, depth int) bool
	walk = func(p *Page, depth int) bool {
		if !fn(p, depth) {
			return false
		}
		for _, child := range p.Children {
			if !walk(child, depth+1) {
				return false
			}
		}
		return true
	}
	for _, root := range idx.roots {
		if !walk(root, 0) {
			return
		}
	}
}
