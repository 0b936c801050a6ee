package resdesk

import "fmt"

// CitationStyle names a citation format.
type CitationStyle string

// Supported citation styles.
const (
	StyleIEEE CitationStyle = "ieee"
	StyleAPA  CitationStyle = "apa"
)

// Citation holds the free-text fields of a reference.
// Fields are used verbatim; no validation is performed.
type Citation struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	Venue  string `json:"venue"`
	Year   string `json:"year"`
}

// IEEE formats the citation as: Author, "Title," Venue, Year.
func (c Citation) IEEE() string {
	return fmt.Sprintf("%s, \"%s,\" %s, %s.", c.Author, c.Title, c.Venue, c.Year)
}

// APA formats the citation as: Author (Year). Title. Venue.
func (c Citation) APA() string {
	return fmt.Sprintf("%s (%s). %s. %s.", c.Author, c.Year, c.Title, c.Venue)
}

// Format formats the citation in the given style.
// Returns EINVALID for unknown styles.
func (c Citation) Format(style CitationStyle) (string, error) {
	switch style {
	case StyleIEEE:
		return c.IEEE(), nil
	case StyleAPA:
		return c.APA(), nil
	default:
		return "", Errorf(EINVALID, "unknown citation style %q", string(style))
	}
}

// RenderCitation writes the formatted citation to the citation output region.
func RenderCitation(surface DisplaySurface, c Citation, style CitationStyle) (string, error) {
	text, err := c.Format(style)
	if err != nil {
		return "", err
	}
	if surface != nil {
		surface.SetText(TargetCitationOutput, text)
	}
	return text, nil
}
