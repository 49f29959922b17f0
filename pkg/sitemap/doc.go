// Package sitemap provides a read-only hierarchical page directory for
// navigation and breadcrumb UI.
//
// An Index is built once from a tree of page descriptors and never mutated
// afterwards: it answers exact-path lookups and produces the root-to-leaf
// breadcrumb trail for any known path. The content store does not depend on
// it; presentation code consumes it alongside the content Resolver.
//
//	idx := sitemap.NewIndex([]*sitemap.Page{{
//		Path:  "/",
//		Title: "Home",
//		Children: []*sitemap.Page{
//			{Path: "/projects", Title: "Projects"},
//		},
//	}})
//
//	trail := idx.Breadcrumbs("/projects") // [Home, Projects]
package sitemap
