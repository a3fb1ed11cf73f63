// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/preprint-digest/pkg/types"
)

func TestRenderEmptyList(t *testing.T) {
	html, err := Render(nil, "physics.bio-ph, cs.AI", ContentAbstract)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("document should start with a doctype")
	}
	if !strings.Contains(html, "</html>") {
		t.Error("document should be closed")
	}
	if !strings.Contains(html, "<h1>Preprints: physics.bio-ph, cs.AI</h1>") {
		t.Error("document should contain the subtitle heading")
	}
	if strings.Contains(html, `class="preprint"`) {
		t.Error("empty record list should render no preprint blocks")
	}
}

func TestRenderBlocksInInputOrder(t *testing.T) {
	records := []types.Preprint{
		{
			Title:    "A",
			Authors:  "Ada Lovelace",
			Date:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			Abstract: "First abstract.",
			URL:      "https://example.org/a",
		},
		{
			Title:    "B",
			Authors:  "Alan Turing",
			Date:     time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
			Abstract: "Second abstract.",
			URL:      "https://example.org/b",
		},
	}

	html, err := Render(records, "test", ContentAbstract)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	linkA := `<a href="https://example.org/a">A</a>`
	linkB := `<a href="https://example.org/b">B</a>`
	idxA := strings.Index(html, linkA)
	idxB := strings.Index(html, linkB)
	if idxA < 0 {
		t.Fatalf("document missing linked heading %q", linkA)
	}
	if idxB < 0 {
		t.Fatalf("document missing linked heading %q", linkB)
	}
	if idxA > idxB {
		t.Error("record A should render before record B")
	}

	for _, want := range []string{"2025-04-01", "2025-04-02", "Ada Lovelace", "First abstract.", "Second abstract."} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestRenderEscapesFeedText(t *testing.T) {
	records := []types.Preprint{
		{
			Title:    "On <b>Bold</b> Claims & Small Models",
			Authors:  "X <script>alert(1)</script>",
			Date:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			Abstract: "We compare a < b & c.",
			URL:      "https://example.org/x",
		},
	}

	html, err := Render(records, "safety & soundness", ContentAbstract)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if strings.Contains(html, "<b>Bold</b>") || strings.Contains(html, "<script>") {
		t.Error("feed markup must not pass through unescaped")
	}
	for _, want := range []string{
		"On &lt;b&gt;Bold&lt;/b&gt; Claims &amp; Small Models",
		"safety &amp; soundness",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing escaped text %q", want)
		}
	}
}

func TestRenderUnknownContentField(t *testing.T) {
	_, err := Render(nil, "test", ContentField("fulltext"))
	if err == nil {
		t.Fatal("Render should reject an unknown content field")
	}
	var re *RenderError
	if !errors.As(err, &re) {
		t.Errorf("error = %T, want *RenderError", err)
	}
}

// TestPipelineEndToEnd runs aggregate and render together over fixed
// fetcher outputs.
func TestPipelineEndToEnd(t *testing.T) {
	arxivList := []types.Preprint{pp("B", "arxiv", apr2)}
	biorxivList := []types.Preprint{pp("A", "biorxiv", apr1)}

	records := Aggregate(testLogger(), arxivList, biorxivList)
	if len(records) != 2 || records[0].Title != "A" || records[1].Title != "B" {
		t.Fatalf("aggregate order = %v, want [A B]", records)
	}

	html, err := Render(records, "e2e", ContentAbstract)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	idxA := strings.Index(html, `<a href="https://example.org/A">A</a>`)
	idxB := strings.Index(html, `<a href="https://example.org/B">B</a>`)
	if idxA < 0 || idxB < 0 {
		t.Fatal("document missing linked headings for A and B")
	}
	if idxA > idxB {
		t.Error("A should render before B")
	}
}
