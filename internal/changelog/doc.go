// Package changelog holds the changelog document model and its YAML loader.
//
// A document is a repository path plus releases in authoring order. Each
// release carries named sections, per-package changes and changes rolled up
// from dependency repositories. Every changes block maps a fixed set of
// categories to entry lists; see CategoryType.
//
// Mapping order is preserved exactly as written, so rendering the same file
// twice always produces the same output.
package changelog
