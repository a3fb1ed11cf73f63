// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/pdiddy/preprint-digest/pkg/types"
)

// ContentField selects which record field fills the body of each preprint
// block in the report.
type ContentField string

// ContentAbstract renders the abstract text in each preprint block.
const ContentAbstract ContentField = "abstract"

// RenderError reports a failed report rendering.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return fmt.Sprintf("rendering report: %v", e.Err) }

func (e *RenderError) Unwrap() error { return e.Err }

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Preprints</title>
    <style>
        body {
            font-family: "Times New Roman", Times, serif;
            margin: 40px;
            background-color: #fdfdfd;
            color: #000;
            line-height: 1.6;
        }
        h1 {
            text-align: center;
            margin-bottom: 50px;
        }
        .preprint {
            margin-bottom: 40px;
            padding-bottom: 20px;
            border-bottom: 1px solid #ccc;
        }
        .preprint-title {
            font-size: 1.4em;
            font-weight: bold;
            margin-bottom: 5px;
        }
        .preprint-date {
            margin-bottom: 10px;
        }
        .preprint-authors {
            font-style: italic;
            margin-bottom: 10px;
        }
        .preprint-abstract {
            margin-top: 10px;
            font-size: 1em;
        }
    </style>
</head>
<body>
    <h1>Preprints: {{.Subtitle}}</h1>
{{range .Blocks}}    <div class="preprint">
        <div class="preprint-title"><a href="{{.URL}}">{{.Title}}</a></div>
        <div class="preprint-date">{{.Date}}</div>
        <div class="preprint-authors">{{.Authors}}</div>
        <div class="preprint-abstract">{{.Content}}</div>
    </div>
{{end}}</body>
</html>
`

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

// block is one rendered preprint entry.
type block struct {
	Title   string
	Date    string
	Authors string
	URL     string
	Content string
}

// Render serializes the records into a single self-contained HTML document
// in input order. All feed-derived text is HTML-escaped by the template
// engine. Render performs no I/O; writing the document is the caller's
// responsibility.
func Render(records []types.Preprint, subtitle string, content ContentField) (string, error) {
	if content != ContentAbstract {
		return "", &RenderError{Err: fmt.Errorf("unknown content field %q", content)}
	}

	blocks := make([]block, 0, len(records))
	for _, r := range records {
		blocks = append(blocks, block{
			Title:   r.Title,
			Date:    r.Date.Format("2006-01-02"),
			Authors: r.Authors,
			URL:     r.URL,
			Content: r.Abstract,
		})
	}

	var b strings.Builder
	data := struct {
		Subtitle string
		Blocks   []block
	}{Subtitle: subtitle, Blocks: blocks}

	if err := reportTmpl.Execute(&b, data); err != nil {
		return "", &RenderError{Err: err}
	}
	return b.String(), nil
}
