package resdesk

import (
	"strconv"
	"strings"
	"unicode"
)

// Heading is an entry in the outline of a post.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// Outline returns the ATX headings of a Markdown post in document order.
// Lines inside fenced code blocks are skipped. Repeated anchors get a
// numeric suffix.
func Outline(markdown string) []Heading {
	var headings []Heading
	seen := make(map[string]int)
	inFence := false

	for line := range strings.Lines(markdown) {
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		level, title, ok := parseHeading(line)
		if !ok {
			continue
		}

		anchor := slugify(title)
		if n, dup := seen[anchor]; dup {
			seen[anchor] = n + 1
			anchor += "-" + strconv.Itoa(n)
		} else {
			seen[anchor] = 1
		}
		headings = append(headings, Heading{Level: level, Title: title, Anchor: anchor})
	}
	return headings
}

func parseHeading(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level == len(line) || line[level] != ' ' {
		return 0, "", false
	}
	title := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line[level:]), "#"))
	if title == "" {
		return 0, "", false
	}
	return level, title, true
}

// slugify lowercases title, joins words with hyphens and drops punctuation.
func slugify(title string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			pending = true
		}
	}
	return b.String()
}
