package resdesk

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
)

// HistoryKey is the storage key holding the JSON-encoded query history.
const HistoryKey = "searchHistory"

// MaxHistory is the maximum number of queries kept in the history.
const MaxHistory = 5

// History is the bounded, deduplicated list of recent literature queries.
// Index 0 is the most recent query. A query already present keeps its
// position when recorded again.
//
// A History is owned by a single session and is not safe for concurrent use.
type History struct {
	store   KeyValueStore
	surface DisplaySurface
	queries []string
}

// NewHistory loads the persisted history from store and returns a History
// bound to it. The surface may be nil, in which case nothing is rendered.
func NewHistory(ctx context.Context, store KeyValueStore, surface DisplaySurface) *History {
	return &History{
		store:   store,
		surface: surface,
		queries: LoadHistory(ctx, store),
	}
}

// LoadHistory reads the persisted history from store.
// Returns an empty history if nothing is stored, the store fails, or the
// stored value is not a JSON array of strings.
func LoadHistory(ctx context.Context, store KeyValueStore) []string {
	if store == nil {
		return []string{}
	}
	raw, err := store.Get(ctx, HistoryKey)
	if err != nil {
		return []string{}
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return []string{}
	}
	return normalizeHistory(stored)
}

// normalizeHistory drops empty and repeated entries and enforces MaxHistory,
// keeping the first occurrence of each query.
func normalizeHistory(stored []string) []string {
	queries := make([]string, 0, MaxHistory)
	for _, q := range stored {
		if len(queries) == MaxHistory {
			break
		}
		if q == "" || slices.Contains(queries, q) {
			continue
		}
		queries = append(queries, q)
	}
	return queries
}

// Queries returns a copy of the history, most recent first.
func (h *History) Queries() []string {
	return slices.Clone(h.queries)
}

// RecordQuery adds query to the front of the history.
// Empty queries and queries already in the history are ignored. After a
// change the whole history is persisted and re-rendered. Persistence failures
// are ignored; the in-memory history stays authoritative for the session.
func (h *History) RecordQuery(ctx context.Context, query string) {
	if strings.TrimSpace(query) == "" {
		return
	}
	if slices.Contains(h.queries, query) {
		return
	}

	queries := make([]string, 0, MaxHistory)
	queries = append(queries, query)
	queries = append(queries, h.queries...)
	if len(queries) > MaxHistory {
		queries = queries[:MaxHistory]
	}
	h.queries = queries

	h.persist(ctx)
	h.Render()
}

// Clear removes every query from the history and persists the empty list.
func (h *History) Clear(ctx context.Context) {
	h.queries = []string{}
	h.persist(ctx)
	h.Render()
}

// Render writes the full history to the history region of the surface.
func (h *History) Render() {
	if h.surface == nil {
		return
	}
	h.surface.RenderList(TargetHistory, TextItems(h.queries))
}

func (h *History) persist(ctx context.Context) {
	if h.store == nil {
		return
	}
	buf, err := json.Marshal(h.queries)
	if err != nil {
		return
	}
	_ = h.store.Set(ctx, HistoryKey, string(buf))
}
