// Package engine implements the categorize assignment engine: a live,
// editable partition of a question's items across named buckets, driven by
// discrete move events. Every item sits in exactly one bucket at all times;
// the canonical answer mapping is a pure projection of the partition.
package engine

import (
	"fmt"

	"github.com/ankursharma200/QuestForm/internal/apperrors"
	"github.com/ankursharma200/QuestForm/internal/model"
)

// BucketUnassigned is the pool holding items not yet dragged into a category.
const BucketUnassigned = "unassigned"

// Assignment tracks which item currently sits in which bucket for one
// Categorize question. It is not safe for concurrent use; each filling
// session owns its own instance.
type Assignment struct {
	items      []model.CategorizeItem
	categories []string

	order   []string            // bucket iteration order: unassigned first, then categories
	buckets map[string][]string // bucket name -> ordered item keys
	text    map[string]string   // item key -> item text
}

// itemKey identifies an item inside the engine: the persisted item id when
// present, otherwise the item text (never-persisted drafts have no id yet).
func itemKey(item model.CategorizeItem) string {
	if item.ID != "" {
		return item.ID
	}
	return item.Text
}

// NewAssignment places every item of q into the unassigned pool, in the
// original item order. q must be a Categorize question.
func NewAssignment(q model.Question) (*Assignment, error) {
	if q.Type != model.QuestionTypeCategorize {
		return nil, fmt.Errorf("%w: assignment engine requires Categorize, got %q", apperrors.ErrInvalidQuestionType, q.Type)
	}

	a := &Assignment{
		items:      append([]model.CategorizeItem(nil), q.Items...),
		categories: append([]string(nil), q.Categories...),
	}
	a.Reset()
	return a, nil
}

// Reset discards all prior placement and returns every item to the
// unassigned pool. Used when a filler reloads the question.
func (a *Assignment) Reset() {
	a.order = make([]string, 0, len(a.categories)+1)
	a.buckets = make(map[string][]string, len(a.categories)+1)
	a.text = make(map[string]string, len(a.items))

	a.order = append(a.order, BucketUnassigned)
	a.buckets[BucketUnassigned] = []string{}
	for _, cat := range a.categories {
		if _, ok := a.buckets[cat]; ok {
			continue
		}
		a.order = append(a.order, cat)
		a.buckets[cat] = []string{}
	}

	for _, item := range a.items {
		key := itemKey(item)
		if _, ok := a.text[key]; ok {
			// Duplicate key: keeping a single placement preserves the
			// exactly-one-bucket invariant.
			continue
		}
		a.text[key] = item.Text
		a.buckets[BucketUnassigned] = append(a.buckets[BucketUnassigned], key)
	}
}

// Locate returns the bucket currently containing the item.
func (a *Assignment) Locate(key string) (string, error) {
	if _, ok := a.text[key]; !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrItemNotFound, key)
	}
	for _, bucket := range a.order {
		for _, k := range a.buckets[bucket] {
			if k == key {
				return bucket, nil
			}
		}
	}
	// Unreachable while the partition invariant holds.
	return "", fmt.Errorf("%w: %q", apperrors.ErrItemNotFound, key)
}

// Move removes the item from its current bucket and inserts it into bucket
// at index. A negative index appends; an out-of-range index clamps to the
// nearest valid position. Moving an item to the position it already occupies
// is a no-op and does not reorder siblings.
func (a *Assignment) Move(key, bucket string, index int) error {
	if _, ok := a.buckets[bucket]; !ok {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownBucket, bucket)
	}
	current, err := a.Locate(key)
	if err != nil {
		return err
	}

	src := a.buckets[current]
	from := 0
	for i, k := range src {
		if k == key {
			from = i
			break
		}
	}

	if bucket == current {
		to := index
		if to < 0 || to > len(src)-1 {
			to = len(src) - 1
		}
		if to == from {
			return nil
		}
		moved := make([]string, 0, len(src))
		moved = append(moved, src[:from]...)
		moved = append(moved, src[from+1:]...)
		moved = append(moved[:to], append([]string{key}, moved[to:]...)...)
		a.buckets[current] = moved
		return nil
	}

	dst := a.buckets[bucket]
	to := index
	if to < 0 || to > len(dst) {
		to = len(dst)
	}

	remaining := make([]string, 0, len(src)-1)
	remaining = append(remaining, src[:from]...)
	remaining = append(remaining, src[from+1:]...)

	inserted := make([]string, 0, len(dst)+1)
	inserted = append(inserted, dst[:to]...)
	inserted = append(inserted, key)
	inserted = append(inserted, dst[to:]...)

	a.buckets[current] = remaining
	a.buckets[bucket] = inserted
	return nil
}

// CanonicalAnswer derives the storage-ready mapping item text -> category
// name by scanning every bucket except the unassigned pool. Items still in
// the pool are simply absent: a partial categorization is submittable.
func (a *Assignment) CanonicalAnswer() model.CategorizeAnswer {
	out := make(model.CategorizeAnswer)
	for _, bucket := range a.order {
		if bucket == BucketUnassigned {
			continue
		}
		for _, key := range a.buckets[bucket] {
			out[a.text[key]] = bucket
		}
	}
	return out
}

// RestoreAssignment rehydrates a prior answer for redisplay. Items whose
// mapped category is no longer declared on the question stay unassigned;
// mapping entries for unknown item texts are ignored. This keeps restored
// answers compatible with forms edited after submission.
func RestoreAssignment(q model.Question, answer model.CategorizeAnswer) (*Assignment, error) {
	a, err := NewAssignment(q)
	if err != nil {
		return nil, err
	}
	for _, item := range a.items {
		cat, ok := answer[item.Text]
		if !ok || cat == BucketUnassigned {
			continue
		}
		if _, declared := a.buckets[cat]; !declared {
			continue
		}
		if err := a.Move(itemKey(item), cat, -1); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Bucket returns a copy of the ordered item keys currently in the bucket.
func (a *Assignment) Bucket(name string) ([]string, error) {
	keys, ok := a.buckets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownBucket, name)
	}
	return append([]string(nil), keys...), nil
}

// Buckets returns a copy of the full partition keyed by bucket name.
func (a *Assignment) Buckets() map[string][]string {
	out := make(map[string][]string, len(a.buckets))
	for name, keys := range a.buckets {
		out[name] = append([]string(nil), keys...)
	}
	return out
}

// BucketOrder returns the bucket names in presentation order: the unassigned
// pool first, then each category.
func (a *Assignment) BucketOrder() []string {
	return append([]string(nil), a.order...)
}

// ItemText returns the display text for an item key.
func (a *Assignment) ItemText(key string) (string, error) {
	text, ok := a.text[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrItemNotFound, key)
	}
	return text, nil
}

// ItemCount returns the number of tracked items.
func (a *Assignment) ItemCount() int {
	return len(a.text)
}
