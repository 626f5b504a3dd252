package archive

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fazecat/newspulse/Internal/utils/config"
)

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Archive.BaseURL = baseURL
	cfg.Archive.Query = "Israel"
	cfg.Archive.Location = "Gaza Strip"
	cfg.Archive.StepDays = 7
	cfg.Archive.CooldownSeconds = 60
	cfg.Archive.MaxRateLimitRetries = 3
	cfg.Archive.RequestTimeoutSecs = 5
	return cfg
}

func docsJSON(headlines ...string) string {
	out := `{"response":{"docs":[`
	for i, h := range headlines {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"headline":{"main":%q},"pub_date":"2023-10-07T12:0%d:00+0000"}`, h, i)
	}
	return out + `]}}`
}

func TestFetchDayPaginationTermination(t *testing.T) {
	var requests int32
	pages := []string{
		docsJSON("first", "second"),
		docsJSON("third"),
		docsJSON(), // empty page ends the day
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := atomic.AddInt32(&requests, 1) - 1
		if int(page) >= len(pages) {
			t.Errorf("unexpected request for page %d", page)
			http.Error(w, "too far", http.StatusBadRequest)
			return
		}
		if got := r.URL.Query().Get("page"); got != fmt.Sprint(page) {
			t.Errorf("request %d asked for page %q", page, got)
		}
		fmt.Fprint(w, pages[page])
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "test-key")

	articles, err := client.FetchDay(context.Background(), 2023, 10, 7)
	if err != nil {
		t.Fatalf("FetchDay returned error: %v", err)
	}

	if got := atomic.LoadInt32(&requests); got != 3 {
		t.Errorf("expected 3 requests (2 pages + terminator), got %d", got)
	}

	wantHeadlines := []string{"first", "second", "third"}
	if len(articles) != len(wantHeadlines) {
		t.Fatalf("expected %d articles, got %d", len(wantHeadlines), len(articles))
	}
	for i, want := range wantHeadlines {
		if articles[i].Headline != want {
			t.Errorf("article %d headline = %q, want %q", i, articles[i].Headline, want)
		}
	}
	if articles[0].PublishedAt != "2023-10-07 12:00:00" {
		t.Errorf("timestamp not reformatted: %q", articles[0].PublishedAt)
	}
}

func TestFetchDayRateLimitRetry(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&requests, 1)
		switch {
		case n <= 2:
			w.WriteHeader(http.StatusTooManyRequests)
		case n == 3:
			fmt.Fprint(w, docsJSON("after throttle"))
		default:
			fmt.Fprint(w, docsJSON())
		}
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "test-key")

	var sleeps int
	client.SetSleep(func(d time.Duration) {
		sleeps++
		if d != 60*time.Second {
			t.Errorf("cooldown = %v, want 60s", d)
		}
	})

	articles, err := client.FetchDay(context.Background(), 2023, 10, 7)
	if err != nil {
		t.Fatalf("FetchDay returned error: %v", err)
	}

	if sleeps != 2 {
		t.Errorf("cooldown wait invoked %d times, want 2", sleeps)
	}
	if len(articles) != 1 || articles[0].Headline != "after throttle" {
		t.Errorf("unexpected articles after retry: %+v", articles)
	}
}

func TestFetchDayRateLimitCap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "test-key")

	var sleeps int
	client.SetSleep(func(time.Duration) { sleeps++ })

	articles, err := client.FetchDay(context.Background(), 2023, 10, 7)
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("expected no articles, got %d", len(articles))
	}
	if sleeps != 3 {
		t.Errorf("cooldown invoked %d times, want 3 (the configured cap)", sleeps)
	}
}

func TestFetchDayAbandonsDayOnHardFailure(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&requests, 1) == 1 {
			fmt.Fprint(w, docsJSON("kept page"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "test-key")

	articles, err := client.FetchDay(context.Background(), 2023, 10, 7)
	if err != nil {
		t.Fatalf("hard failure should degrade to partial data, got error: %v", err)
	}
	if len(articles) != 1 || articles[0].Headline != "kept page" {
		t.Errorf("partial results lost: %+v", articles)
	}
}

func TestFetchDayQueryParameters(t *testing.T) {
	var gotQuery, gotFilter, gotBegin, gotEnd, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = q.Get("q")
		gotFilter = q.Get("fq")
		gotBegin = q.Get("begin_date")
		gotEnd = q.Get("end_date")
		gotKey = q.Get("api-key")
		fmt.Fprint(w, docsJSON())
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "test-key")
	if _, err := client.FetchDay(context.Background(), 2023, 10, 7); err != nil {
		t.Fatalf("FetchDay returned error: %v", err)
	}

	if gotQuery != "Israel" {
		t.Errorf("q = %q", gotQuery)
	}
	if gotFilter != `glocations:("Gaza Strip")` {
		t.Errorf("fq = %q", gotFilter)
	}
	if gotBegin != "20231007" || gotEnd != "20231007" {
		t.Errorf("date window = %q..%q, want single day 20231007", gotBegin, gotEnd)
	}
	if gotKey != "test-key" {
		t.Errorf("api-key = %q", gotKey)
	}
}
