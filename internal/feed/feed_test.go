package feed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoadJSONMessage(t *testing.T) {
	out, err := Load(filepath.Join("..", "..", "testdata", "feed.json"))
	require.NoError(t, err)

	require.Len(t, out.News, 5)
	require.Len(t, out.Events, 3)
	require.Len(t, out.Citations, 1)
	assert.Equal(t, "City council approves new cycle lanes", out.News[0].Name)
	assert.Equal(t, "Transport", out.News[0].Category)
	assert.Equal(t, "Main Square", out.Events[0].Location)
	assert.True(t, out.Events[0].Upcoming)

	cards := out.NewsCards()
	require.Len(t, cards, 5)
	assert.Equal(t, CardNews, cards[1].Kind)
	assert.Equal(t, "Oct 02, 2026", cards[1].Date)
	assert.Equal(t, "", cards[4].ImageURL)

	events := out.EventCards()
	require.Len(t, events, 3)
	assert.Equal(t, CardEvent, events[2].Kind)
	assert.Equal(t, "Harbour Front", events[2].Tag)
	assert.Equal(t, "Nov 07, 2026", events[2].Date)
}

func TestDecode(t *testing.T) {
	cases := []struct {
		name   string
		ext    string
		data   string
		news   int
		events int
	}{
		{"bare json", ".json", `{"news":[{"news_name":"a"}],"events":[]}`, 1, 0},
		{"empty json", "json", "  \n", 0, 0},
		{"yaml message", ".yaml", "secondary_output:\n  events:\n    - event_name: run\n      event_location: park\n", 0, 1},
		{"bare yml", ".YML", "news:\n  - news_name: a\n  - news_name: b\n", 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Decode(tc.ext, []byte(tc.data))
			require.NoError(t, err)
			assert.Len(t, out.News, tc.news)
			assert.Len(t, out.Events, tc.events)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(".toml", []byte("x = 1"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Decode(".json", []byte("{"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"2026-10-14":           "Oct 14, 2026",
		"3 Nov 2026":           "Nov 03, 2026",
		"03 Nov 2026":          "Nov 03, 2026",
		"3 November 2026":      "Nov 03, 2026",
		"2026-10-14T09:30:00Z": "Oct 14, 2026",
		"  2026-01-05  ":       "Jan 05, 2026",
		"31 Foo 2026":          "31 Foo 2026",
		"":                     "",
		"   ":                  "",
		"soon":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatDate(in), "input %q", in)
	}
}

func TestNilOutputCards(t *testing.T) {
	var out *SecondaryOutput
	assert.Nil(t, out.NewsCards())
	assert.Nil(t, out.EventCards())
	assert.Equal(t, "event", CardEvent.String())
	assert.Equal(t, "news", CardNews.String())
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"news":[{"news_name":"one"}]}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type result struct {
		out *SecondaryOutput
		err error
	}
	got := make(chan result, 8)
	err := Watch(ctx, path, nil, func(out *SecondaryOutput, err error) {
		got <- result{out, err}
	})
	require.NoError(t, err)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(`{"news":[{"news_name":"one"},{"news_name":"two"}]}`), 0o644))

	select {
	case r := <-got:
		require.NoError(t, r.err)
		assert.Len(t, r.out.News, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	// Give the watcher goroutine a moment to observe cancellation before
	// goleak checks.
	time.Sleep(50 * time.Millisecond)
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "feed.json"), nil, func(*SecondaryOutput, error) {})
	assert.Error(t, err)
}
