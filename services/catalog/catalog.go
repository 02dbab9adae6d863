// Package catalog holds the icon catalog and the query engine the gallery
// consumes.
//
// The catalog is built once from declarative data and is read-only for the
// life of the process, so a Store can be shared by any number of goroutines
// without locking. Every read preserves catalog insertion order.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"freevector_app_go/models"
)

// DisplayLimit is how many results the gallery renders
const DisplayLimit = 24

// ErrInvalidCategory is returned when a category is not in the declared set
var ErrInvalidCategory = errors.New("invalid category")

// Store is an immutable, ordered icon catalog with a category index.
type Store struct {
	records     []models.IconRecord
	byID        map[string]int
	byCategory  map[models.IconCategory][]int
	popular     []int
	fingerprint string
}

var (
	defaultStore *Store
	defaultOnce  sync.Once
)

// Default returns the process-wide catalog built from the bundled icon data
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = MustNewStore(iconData)
	})
	return defaultStore
}

// NewStore validates records and builds a store that keeps their order.
// Tags are copied so later changes to the input cannot reach the store.
func NewStore(records []models.IconRecord) (*Store, error) {
	s := &Store{
		records:    make([]models.IconRecord, len(records)),
		byID:       make(map[string]int, len(records)),
		byCategory: make(map[models.IconCategory][]int),
	}

	for i, r := range records {
		if err := validateRecord(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if prev, dup := s.byID[r.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %q (first seen at %d)", i, r.ID, prev)
		}

		r.Tags = append([]string(nil), r.Tags...)
		s.records[i] = r
		s.byID[r.ID] = i
		s.byCategory[r.Category] = append(s.byCategory[r.Category], i)
		if r.Popular {
			s.popular = append(s.popular, i)
		}
	}

	s.fingerprint = computeFingerprint(s.records)
	return s, nil
}

// MustNewStore is NewStore for static data; it panics on invalid records
func MustNewStore(records []models.IconRecord) *Store {
	s, err := NewStore(records)
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return s
}

func validateRecord(r models.IconRecord) error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("empty id")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("icon %q: empty name", r.ID)
	}
	if strings.TrimSpace(r.DisplayName) == "" {
		return fmt.Errorf("icon %q: empty display name", r.ID)
	}
	if r.Category == models.CategoryAll || !r.Category.IsDeclared() {
		return fmt.Errorf("icon %q: %w %q", r.ID, ErrInvalidCategory, r.Category)
	}
	for _, tag := range r.Tags {
		if tag != strings.ToLower(tag) {
			return fmt.Errorf("icon %q: tag %q is not lowercase", r.ID, tag)
		}
	}
	return nil
}

// Len returns the number of records
func (s *Store) Len() int {
	return len(s.records)
}

// Fingerprint identifies the catalog content; it changes only when the data does
func (s *Store) Fingerprint() string {
	return s.fingerprint
}

// AllIcons returns the full catalog in insertion order.
// The returned slice is a copy; the Tags slices are shared and must not be modified.
func (s *Store) AllIcons() []models.IconRecord {
	out := make([]models.IconRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Lookup finds a record by id
func (s *Store) Lookup(id string) (models.IconRecord, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.IconRecord{}, false
	}
	return s.records[i], true
}

// Categories returns the declared category set, All first
func (s *Store) Categories() []models.IconCategory {
	out := make([]models.IconCategory, len(models.IconCategories))
	copy(out, models.IconCategories)
	return out
}

// CategoryCounts returns the record count of every declared category in
// display order. All counts the whole catalog; empty categories report 0.
func (s *Store) CategoryCounts() []models.CategoryCount {
	out := make([]models.CategoryCount, 0, len(models.IconCategories))
	for _, c := range models.IconCategories {
		n := len(s.byCategory[c])
		if c == models.CategoryAll {
			n = len(s.records)
		}
		out = append(out, models.CategoryCount{Category: c, Slug: c.Slug(), Count: n})
	}
	return out
}

// ByCategory returns the records of a category in catalog order. All returns
// the full catalog; a category outside the declared set is ErrInvalidCategory.
func (s *Store) ByCategory(category models.IconCategory) ([]models.IconRecord, error) {
	if !category.IsDeclared() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if category == models.CategoryAll {
		return s.AllIcons(), nil
	}

	idx := s.byCategory[category]
	out := make([]models.IconRecord, len(idx))
	for i, j := range idx {
		out[i] = s.records[j]
	}
	return out, nil
}

// Filter combines a category and a free-text query. The query is trimmed and
// lower-cased; a blank query returns the category unchanged. A record is kept
// when the query is a substring of its name, display name or any tag.
func (s *Store) Filter(category models.IconCategory, query string) ([]models.IconRecord, error) {
	q := NormalizeQuery(query)
	if q == "" {
		return s.ByCategory(category)
	}
	if !category.IsDeclared() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	out := make([]models.IconRecord, 0)
	keep := func(i int) {
		if MatchesQuery(s.records[i], q) {
			out = append(out, s.records[i])
		}
	}

	if category == models.CategoryAll {
		for i := range s.records {
			keep(i)
		}
	} else {
		for _, i := range s.byCategory[category] {
			keep(i)
		}
	}
	return out, nil
}

// PopularIcons returns the records flagged popular, in catalog order
func (s *Store) PopularIcons() []models.IconRecord {
	out := make([]models.IconRecord, len(s.popular))
	for i, j := range s.popular {
		out[i] = s.records[j]
	}
	return out
}

// Related returns up to limit other records from the same category
func (s *Store) Related(id string, limit int) []models.IconRecord {
	i, ok := s.byID[id]
	if !ok || limit <= 0 {
		return []models.IconRecord{}
	}

	out := make([]models.IconRecord, 0, limit)
	for _, j := range s.byCategory[s.records[i].Category] {
		if j == i {
			continue
		}
		out = append(out, s.records[j])
		if len(out) == limit {
			break
		}
	}
	return out
}

// NormalizeQuery trims surrounding whitespace and lower-cases the query
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// MatchesQuery reports whether an already normalized query is a substring of
// the record's name, display name or one of its tags (case-insensitive).
func MatchesQuery(r models.IconRecord, normalized string) bool {
	if strings.Contains(strings.ToLower(r.Name), normalized) {
		return true
	}
	if strings.Contains(strings.ToLower(r.DisplayName), normalized) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), normalized) {
			return true
		}
	}
	return false
}

// ParseCategory resolves a request value to a declared category. It accepts
// the exact category name or its slug; an empty value selects All.
func ParseCategory(value string) (models.IconCategory, error) {
	if value == "" {
		return models.CategoryAll, nil
	}
	for _, c := range models.IconCategories {
		if string(c) == value || c.Slug() == value {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, value)
}
