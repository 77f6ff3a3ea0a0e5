package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Daily Deals</title>
    <item>
      <title>Half-price headphones</title>
      <link>https://deals.example.com/1</link>
      <description>Today only</description>
      <enclosure url="https://deals.example.com/1.jpg" type="image/jpeg" length="1000"/>
    </item>
    <item>
      <title>Grocery voucher</title>
      <link>https://deals.example.com/2</link>
      <description>Stackable</description>
    </item>
    <item>
      <title></title>
      <link>https://deals.example.com/untitled</link>
    </item>
  </channel>
</rss>`

func TestFeedSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(feedFixture))
	}))
	defer srv.Close()

	src := NewFeedSource(srv.URL, time.Second)

	coupons, err := src.Fetch(context.Background())
	require.NoError(t, err)

	// The untitled item is skipped.
	require.Len(t, coupons, 2)

	assert.Equal(t, "Half-price headphones", coupons[0].Title)
	assert.Equal(t, "Today only", coupons[0].Description)
	assert.Equal(t, "https://deals.example.com/1", coupons[0].Link)
	assert.Equal(t, "https://deals.example.com/1.jpg", coupons[0].ImageURL)
	assert.Equal(t, srv.URL, coupons[0].Source)

	assert.Empty(t, coupons[1].ImageURL)
}

func TestFeedSource_Fetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	src := NewFeedSource(srv.URL, time.Second)

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
}
