// ABOUTME: This file turns one coupon into a caption plus a card image
// ABOUTME: Image strategy is download, then page og:image, then local render
package artifact

import (
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"coupon-herald/config"
	"coupon-herald/models"
)

// maxImageBytes bounds a downloaded card image.
const maxImageBytes = 10 << 20

// Producer composes the outbound caption and fills the artifact slot. The
// slot is a single fixed path overwritten each cycle; whether a file exists
// there after Produce is the only signal downstream should trust.
type Producer struct {
	path      string
	fontPath  string
	client    *http.Client
	shortener URLShortener
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

// NewProducer creates a producer writing into the configured artifact slot.
func NewProducer(cfg config.ArtifactConfig, shortener URLShortener, logger *slog.Logger) *Producer {
	return &Producer{
		path:      cfg.Path,
		fontPath:  cfg.FontPath,
		client:    &http.Client{Timeout: cfg.DownloadTimeout},
		shortener: shortener,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

// ArtifactPath returns the fixed artifact slot path.
func (p *Producer) ArtifactPath() string {
	return p.path
}

// Produce composes the caption for a coupon and tries to place a card image
// in the artifact slot. Every image failure is absorbed; the caption always
// comes back usable.
func (p *Producer) Produce(ctx context.Context, c models.Coupon) string {
	caption := p.composeCaption(ctx, c)
	p.resolveImage(ctx, c)
	return caption
}

// composeCaption builds "title, description, link" with the link shortened
// when the shortener cooperates and the original URL otherwise.
func (p *Producer) composeCaption(ctx context.Context, c models.Coupon) string {
	title := p.clean(c.Title)
	description := p.clean(c.Description)
	link := p.shortener.Shorten(ctx, c.Link)

	return fmt.Sprintf("🎁 %s\n\n📝 %s\n\n🔗 %s", title, description, link)
}

// clean strips markup from source-provided text. Search snippets and feed
// descriptions routinely carry tags and entities.
func (p *Producer) clean(text string) string {
	return strings.TrimSpace(html.UnescapeString(p.sanitizer.Sanitize(text)))
}

// resolveImage fills the artifact slot: thumbnail download first, then the
// coupon page's og:image, then a locally rendered card. The stale slot from
// the previous cycle is removed up front so a failed chain leaves nothing.
func (p *Producer) resolveImage(ctx context.Context, c models.Coupon) {
	_ = os.Remove(p.path)

	imageURL := c.ImageURL
	if imageURL == "" && c.Link != "" {
		imageURL = p.pageImage(ctx, c.Link)
	}

	if imageURL != "" {
		err := p.download(ctx, imageURL)
		if err == nil {
			return
		}
		p.logger.Warn("image download failed", "url", imageURL, "title", c.Title, "error", err)
	}

	if err := p.render(c.Title); err != nil {
		p.logger.Warn("card render failed", "title", c.Title, "error", err)
	}
}

// download fetches an image into the artifact slot.
func (p *Producer) download(ctx context.Context, imageURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return fmt.Errorf("build image request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch image: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return fmt.Errorf("read image body: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("empty image body")
	}

	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("write artifact slot: %w", err)
	}

	return nil
}

// pageImage fetches the coupon page and extracts its og:image URL, for
// results whose search entry carried no thumbnail. Best effort.
func (p *Producer) pageImage(ctx context.Context, pageURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug("page image lookup failed", "url", pageURL, "error", err)
		return ""
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return ""
	}

	src, _ := doc.Find(`meta[property="og:image"]`).Attr("content")
	return strings.TrimSpace(src)
}
