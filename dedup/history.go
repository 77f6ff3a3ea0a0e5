// ABOUTME: This file tracks coupon titles already published this process lifetime
// ABOUTME: Implements the filter-or-reset policy that keeps the channel fed
package dedup

import "coupon-herald/models"

// History is the set of posted titles. It is owned by the single scheduler
// loop and is not safe for concurrent use; making source queries parallel
// requires revisiting that ownership first.
type History struct {
	posted map[string]struct{}
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{posted: make(map[string]struct{})}
}

// FilterNew returns the candidates whose titles have not been posted yet.
// When a non-empty batch contains nothing new, the feed is exhausted: the
// history is cleared and the original batch returned unchanged, trading
// occasional repetition for always having something to post.
func (h *History) FilterNew(batch []models.Coupon) []models.Coupon {
	fresh := make([]models.Coupon, 0, len(batch))
	for _, c := range batch {
		if !h.Contains(c.Title) {
			fresh = append(fresh, c)
		}
	}

	if len(fresh) == 0 && len(batch) > 0 {
		h.Reset()
		return batch
	}

	return fresh
}

// Record marks a title as posted.
func (h *History) Record(title string) {
	h.posted[title] = struct{}{}
}

// Contains reports whether a title has been posted this epoch.
func (h *History) Contains(title string) bool {
	_, ok := h.posted[title]
	return ok
}

// Len returns the number of posted titles in the current epoch.
func (h *History) Len() int {
	return len(h.posted)
}

// Reset clears the history, starting a new epoch.
func (h *History) Reset() {
	h.posted = make(map[string]struct{})
}
