// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Export writes every event, oldest first, as zstd-compressed JSON and
// returns the number of events written.
func (j *Journal) Export(ctx context.Context, w io.Writer) (int, error) {
	var events []Event
	if err := j.db.NewSelect().Model(&events).Order("id ASC").Scan(ctx); err != nil {
		return 0, fmt.Errorf("export events: %w", err)
	}
	if events == nil {
		events = []Event{}
	}

	zstdWriter, err := zstd.NewWriter(w)
	if err != nil {
		return 0, fmt.Errorf("could not create zstd writer: %w", err)
	}

	encoder := json.NewEncoder(zstdWriter)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(events); err != nil {
		_ = zstdWriter.Close()
		return 0, fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	if err := zstdWriter.Close(); err != nil {
		return 0, fmt.Errorf("could not flush zstd writer: %w", err)
	}
	return len(events), nil
}

// ReadExport decodes events written by Export.
func ReadExport(r io.Reader) ([]Event, error) {
	zstdReader, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zstdReader.Close()

	var events []Event
	if err := json.NewDecoder(zstdReader).Decode(&events); err != nil {
		return nil, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	return events, nil
}
