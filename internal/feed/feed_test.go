// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pdiddy/preprint-digest/pkg/types"
)

// stubSource returns canned records or an error.
type stubSource struct {
	name    string
	records []types.Preprint
	err     error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(_ context.Context, _ []string, _ time.Time, _ types.FeedConfig) ([]types.Preprint, error) {
	return s.records, s.err
}

func record(title string, date time.Time) types.Preprint {
	return types.Preprint{
		Title:    title,
		Feed:     "test",
		Authors:  "Anon",
		Date:     date,
		Abstract: "abstract of " + title,
		URL:      "https://example.org/" + title,
	}
}

func TestFetchAllKeepsRequestOrder(t *testing.T) {
	d := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	a := &stubSource{name: "a", records: []types.Preprint{record("A1", d), record("A2", d)}}
	b := &stubSource{name: "b", records: []types.Preprint{record("B1", d)}}

	lists, err := FetchAll(context.Background(), []Request{
		{Source: a}, {Source: b},
	}, d, types.FeedConfig{})
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("len(lists) = %d, want 2", len(lists))
	}
	if len(lists[0]) != 2 || lists[0][0].Title != "A1" {
		t.Errorf("lists[0] = %v, want source a's records first", lists[0])
	}
	if len(lists[1]) != 1 || lists[1][0].Title != "B1" {
		t.Errorf("lists[1] = %v, want source b's records second", lists[1])
	}
}

func TestFetchAllSourceFailure(t *testing.T) {
	d := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	a := &stubSource{name: "a", records: []types.Preprint{record("A1", d)}}
	b := &stubSource{name: "b", err: fmt.Errorf("connection refused")}

	_, err := FetchAll(context.Background(), []Request{
		{Source: a}, {Source: b},
	}, d, types.FeedConfig{})
	if err == nil {
		t.Fatal("FetchAll should fail when a source fails")
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %T, want *FetchError", err)
	}
	if fe.Source != "b" {
		t.Errorf("FetchError.Source = %q, want %q", fe.Source, "b")
	}
}

func TestFetchAllNoRequests(t *testing.T) {
	lists, err := FetchAll(context.Background(), nil, time.Now(), types.FeedConfig{})
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(lists) != 0 {
		t.Errorf("len(lists) = %d, want 0", len(lists))
	}
}
