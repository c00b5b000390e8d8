// Package warnlog parses headerless comma-delimited warning logs into minute-keyed
// datasets. Rows may have any field count; a layout is inferred once per parse from
// the widest row and applied uniformly. Values stay text, only the timestamp column
// is interpreted.
package warnlog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Parse reads a raw buffer into a Dataset. Rows whose timestamp fails every parse
// strategy are dropped and counted, never reported individually. A zero-record
// result is valid output, not an error; only malformed delimited framing fails.
func Parse(data []byte) (*Dataset, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read delimited input: %w", err)
	}
	maxFields := 0
	for _, row := range rows {
		if len(row) > maxFields {
			maxFields = len(row)
		}
	}
	layout := InferLayout(maxFields)
	ds := &Dataset{Layout: layout}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		ts, ok := ParseTimestamp(row[ColTimestamp])
		if !ok {
			ds.Dropped++
			continue
		}
		fields := row
		if len(fields) > layout.Width {
			fields = fields[:layout.Width]
		}
		ds.Records = append(ds.Records, Record{
			Timestamp: ts,
			Minute:    ts.Truncate(time.Minute),
			Fields:    fields,
		})
	}
	Debugf("parsed %d records, dropped %d, layout width=%d full=%v",
		len(ds.Records), ds.Dropped, layout.Width, layout.Full)
	return ds, nil
}

// Cache memoizes Parse by content digest. Parsing is a pure function of the
// bytes, so a hit returns the previously built Dataset without re-reading the
// input. Purely a recomputation saver; correctness never depends on it.
type Cache struct {
	mu sync.Mutex
	m  map[uint64]*Dataset
}

func NewCache() *Cache { return &Cache{m: map[uint64]*Dataset{}} }

// Load returns the memoized Dataset for byte-identical input, parsing on first
// sight. Datasets are immutable once built, so sharing the pointer is safe.
func (c *Cache) Load(data []byte) (*Dataset, error) {
	key := xxhash.Sum64(data)
	c.mu.Lock()
	ds, ok := c.m[key]
	c.mu.Unlock()
	if ok {
		Debugf("loader cache hit (%d bytes)", len(data))
		return ds, nil
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.m[key] = ds
	c.mu.Unlock()
	return ds, nil
}
