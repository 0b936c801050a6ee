package resdesk

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Post is an article published on the blog.
type Post struct {
	Path     string   `json:"path"`
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"` // Lowercase substrings that select the post
}

// DefaultPosts is the catalog searched by the internal search box.
var DefaultPosts = []Post{
	{
		Path:     string(TargetAdaptivePost),
		Title:    "AI-Driven Adaptive Learning using Q-Learning",
		Keywords: []string{"adaptive"},
	},
}

// PostIndex is a keyword index over the blog's own posts.
type PostIndex struct {
	posts []Post
}

// NewPostIndex returns an index over a copy of posts.
// If posts is nil, DefaultPosts is used.
func NewPostIndex(posts []Post) *PostIndex {
	if posts == nil {
		posts = DefaultPosts
	}
	return &PostIndex{posts: slices.Clone(posts)}
}

// Search returns the posts whose keywords occur in text, in catalog order.
// Empty text matches nothing.
func (idx *PostIndex) Search(text string) []Post {
	if text == "" {
		return nil
	}
	lowered := strings.ToLower(text)

	var found []Post
	for _, p := range idx.posts {
		for _, kw := range p.Keywords {
			if strings.Contains(lowered, kw) {
				found = append(found, p)
				break
			}
		}
	}
	return found
}

// Render searches for text and writes the matching posts as links to the
// internal results region. The region is cleared first, even for empty text.
func (idx *PostIndex) Render(surface DisplaySurface, text string) []Post {
	found := idx.Search(text)
	if surface == nil {
		return found
	}
	items := make([]ListItem, 0, len(found))
	for _, p := range found {
		items = append(items, ListItem{Text: p.Title, Href: p.Path})
	}
	surface.RenderList(TargetInternalResults, items)
	return found
}

// PostContent is a post converted for terminal reading.
type PostContent struct {
	Path     string
	Title    string
	Markdown string
	Outline  []Heading
}

// PostReader loads posts from the site and converts them to Markdown.
type PostReader struct {
	Source    AssetSource
	Extractor Extractor
	Converter Converter
}

// Read loads the post at path.
// Returns EINVALID for an empty path.
func (r *PostReader) Read(ctx context.Context, path string) (*PostContent, error) {
	if strings.TrimSpace(path) == "" {
		return nil, Errorf(EINVALID, "post path required")
	}

	raw, err := r.Source.ReadAsset(ctx, path)
	if err != nil {
		return nil, err
	}

	extracted, err := r.Extractor.Extract(string(raw))
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}

	md, err := r.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}

	return &PostContent{
		Path:     path,
		Title:    extracted.Title,
		Markdown: md,
		Outline:  Outline(md),
	}, nil
}
