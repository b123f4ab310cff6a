package state

import (
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Entry is one page offered by the jump list.
type Entry struct {
	Number int
	Title  string
}

// Jump holds the page-jump list: the full page index, the entries matching the
// current query and the highlighted entry.
type Jump struct {
	Full           []Entry
	Items          []Entry
	Query          string
	Cursor         int
	ViewportOffset int
}

// NewJump builds a jump list over entries with an empty query.
func NewJump(entries []Entry) *Jump {
	j := &Jump{Full: cloneEntries(entries)}
	j.SetQuery("")
	return j
}

// SetQuery filters the list and moves the cursor to the best match.
func (j *Jump) SetQuery(query string) {
	j.Query = query
	j.Items = FilterEntries(j.Full, query)
	j.Cursor = 0
	j.ViewportOffset = 0
	if idx := BestMatchIndex(j.Items, query); idx >= 0 {
		j.Cursor = idx
	}
}

// Selected returns the highlighted entry.
func (j *Jump) Selected() (Entry, bool) {
	if j.Cursor < 0 || j.Cursor >= len(j.Items) {
		return Entry{}, false
	}
	return j.Items[j.Cursor], true
}

// MoveUp moves the cursor up, wrapping to the last entry.
func (j *Jump) MoveUp() bool {
	n := len(j.Items)
	if n == 0 {
		return false
	}
	old := j.Cursor
	if j.Cursor > 0 {
		j.Cursor--
	} else {
		j.Cursor = n - 1
	}
	return old != j.Cursor
}

// MoveDown moves the cursor down, wrapping to the first entry.
func (j *Jump) MoveDown() bool {
	n := len(j.Items)
	if n == 0 {
		return false
	}
	old := j.Cursor
	if j.Cursor < n-1 {
		j.Cursor++
	} else {
		j.Cursor = 0
	}
	return old != j.Cursor
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (j *Jump) EnsureCursorVisible(maxVisible int) {
	if len(j.Items) == 0 {
		j.Cursor = 0
		j.ViewportOffset = 0
		return
	}
	if j.Cursor < 0 {
		j.Cursor = 0
	}
	if j.Cursor >= len(j.Items) {
		j.Cursor = len(j.Items) - 1
	}
	if maxVisible <= 0 {
		j.ViewportOffset = 0
		return
	}
	maxOffset := len(j.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if j.ViewportOffset > maxOffset {
		j.ViewportOffset = maxOffset
	}
	if j.Cursor < j.ViewportOffset {
		j.ViewportOffset = j.Cursor
	}
	if upper := j.ViewportOffset + maxVisible - 1; j.Cursor > upper {
		j.ViewportOffset = j.Cursor - maxVisible + 1
	}
}

// FilterEntries returns the entries whose title fuzzily matches query, or
// failing that whose title or page number contains it.
func FilterEntries(entries []Entry, query string) []Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneEntries(entries)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles(entries))
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Entry, 0, len(matches))
		for idx, entry := range entries {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, entry)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Title), lower) || strconv.Itoa(entry.Number) == trimmed {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// BestMatchIndex prefers an exact page number, then an exact title, then a
// title prefix, then the closest fuzzy match.
func BestMatchIndex(entries []Entry, query string) int {
	if len(entries) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		for i, entry := range entries {
			if entry.Number == n {
				return i
			}
		}
	}
	for i, entry := range entries {
		if strings.EqualFold(entry.Title, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Title), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles(entries))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

func titles(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Title
	}
	return out
}

func cloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
