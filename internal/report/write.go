// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
)

// WriteError reports a failed report write.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("writing report %s: %v", e.Path, e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }

// WriteReport writes the rendered document to path, overwriting any
// previous report.
func WriteReport(path, html string) error {
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
