package models

// Coupon is one discovered promotion, normalized from whichever source found
// it. Title doubles as the dedup key for the process-lifetime history, so
// sources must not rewrite it after discovery.
type Coupon struct {
	Title       string
	Description string
	Link        string
	ImageURL    string // empty when the source carried no thumbnail
	Source      string // originating site or feed URL
}
