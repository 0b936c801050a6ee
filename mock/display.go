package mock

import "github.com/fwojciec/resdesk"

var _ resdesk.DisplaySurface = (*DisplaySurface)(nil)

// DisplaySurface is a mock implementation of resdesk.DisplaySurface
// that records the last value written to each target.
type DisplaySurface struct {
	Texts map[resdesk.Target]string
	Lists map[resdesk.Target][]resdesk.ListItem
	Calls int
}

// NewDisplaySurface returns an empty DisplaySurface.
func NewDisplaySurface() *DisplaySurface {
	return &DisplaySurface{
		Texts: make(map[resdesk.Target]string),
		Lists: make(map[resdesk.Target][]resdesk.ListItem),
	}
}

func (s *DisplaySurface) SetText(target resdesk.Target, text string) {
	s.Texts[target] = text
	s.Calls++
}

func (s *DisplaySurface) RenderList(target resdesk.Target, items []resdesk.ListItem) {
	s.Lists[target] = append([]resdesk.ListItem(nil), items...)
	s.Calls++
}
