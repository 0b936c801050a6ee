package resdesk

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar) has been removed.
	ContentHTML string
}

// Extractor extracts the main content of a post, removing page chrome.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// ExtractorChain tries each extractor in order and returns the first result
// with non-empty content.
type ExtractorChain []Extractor

// Extract implements Extractor.
func (c ExtractorChain) Extract(html string) (*ExtractResult, error) {
	var lastErr error
	var title string
	for _, e := range c {
		result, err := e.Extract(html)
		if err != nil {
			lastErr = err
			continue
		}
		if title == "" {
			title = result.Title
		}
		if result.ContentHTML != "" {
			if result.Title == "" {
				result.Title = title
			}
			return result, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, Errorf(ENOTFOUND, "no content extracted")
}
