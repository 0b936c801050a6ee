package resdesk

// Target names a region of the blog page or a navigation destination.
type Target string

// Page regions and destinations known to the blog front end.
const (
	TargetSearch          Target = "search"
	TargetCitations       Target = "citations"
	TargetInternalSearch  Target = "internal-search"
	TargetHistory         Target = "history"
	TargetResponse        Target = "assistantResponse"
	TargetInternalResults Target = "internalResults"
	TargetCitationOutput  Target = "citationOutput"
	TargetVibe            Target = "vibeText"

	// TargetAdaptivePost is a full page, not a region.
	TargetAdaptivePost Target = "posts/ai-adaptive-learning.html"
)

// ListItem is a single entry rendered into a list region.
type ListItem struct {
	Text string
	Href string // Optional link destination
}

// DisplaySurface writes plain text and lists into named page regions.
// Implementations silently skip targets they do not know about.
type DisplaySurface interface {
	// SetText replaces the text content of the target.
	SetText(target Target, text string)

	// RenderList replaces the contents of the target with the given items.
	// The list is recreated in full on every call.
	RenderList(target Target, items []ListItem)
}

// TextItems wraps plain strings as list items without links.
func TextItems(texts []string) []ListItem {
	items := make([]ListItem, 0, len(texts))
	for _, t := range texts {
		items = append(items, ListItem{Text: t})
	}
	return items
}
