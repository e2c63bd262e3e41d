package pagecount

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// File is one tracked document with its estimated page count.
type File struct {
	Name  string
	Type  string
	Size  int64
	Pages int
}

// Tracker holds the ordered list of files currently attached to an order and
// derives the aggregate page count and range string after every change.
type Tracker struct {
	est      *Estimator
	files    []File
	selected map[int]bool
}

// NewTracker creates a tracker using the given estimator.
func NewTracker(est *Estimator) *Tracker {
	return &Tracker{est: est, selected: make(map[int]bool)}
}

// Add estimates the file's page count and appends it. Files outside the MIME
// allow-list are rejected with ErrUnsupportedType and never tracked.
func (t *Tracker) Add(name, mimeType string, size int64, data []byte) (File, error) {
	if !Allowed(mimeType) {
		return File{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}
	f := File{
		Name:  name,
		Type:  mimeType,
		Size:  size,
		Pages: t.est.Pages(mimeType, size, data),
	}
	t.files = append(t.files, f)
	return f, nil
}

// Remove drops the file at the given position. Out-of-range indexes are
// ignored.
func (t *Tracker) Remove(index int) {
	if index < 0 || index >= len(t.files) {
		return
	}
	t.files = append(t.files[:index], t.files[index+1:]...)
}

// Files returns the tracked files in order.
func (t *Tracker) Files() []File {
	return t.files
}

// TotalPages recomputes the aggregate page count over all tracked files.
func (t *Tracker) TotalPages() int {
	total := 0
	for _, f := range t.files {
		total += f.Pages
	}
	return total
}

// DefaultRange is the range string reported after every add or remove:
// "1-N" while pages are tracked, otherwise "all".
func (t *Tracker) DefaultRange() string {
	total := t.TotalPages()
	if total > 0 {
		return fmt.Sprintf("1-%d", total)
	}
	return "all"
}

// Select marks a 1-based page as individually chosen in the preview.
func (t *Tracker) Select(page int) {
	if page < 1 {
		return
	}
	t.selected[page] = true
}

// Deselect unmarks a page.
func (t *Tracker) Deselect(page int) {
	delete(t.selected, page)
}

// SelectedRange overrides the default range with the comma-joined sorted
// selection; with nothing selected it reverts to "all".
func (t *Tracker) SelectedRange() string {
	if len(t.selected) == 0 {
		return "all"
	}
	pages := make([]int, 0, len(t.selected))
	for p := range t.selected {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}
