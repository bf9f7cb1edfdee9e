package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"video-player/internal/filesystem"
	"video-player/internal/logging"
)

// LoadFile reads a catalog text file and returns the resulting Library.
// Stale NFS handles on open are retried.
func LoadFile(path string) (*Library, error) {
	f, err := filesystem.OpenWithRetry(path, filesystem.DefaultRetryConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Warn("failed to close catalog file %s: %v", path, err)
		}
	}()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	logging.Debug("Loaded %d videos from %s", len(records), path)
	return NewLibrary(records), nil
}

// Parse reads records in the "Title | video_id | #tag1 , #tag2" format.
// Blank lines are skipped and the tag column may be empty or absent.
func Parse(r io.Reader) ([]VideoRecord, error) {
	var records []VideoRecord

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		record, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func parseLine(line string) (VideoRecord, error) {
	parts := strings.Split(line, "|")
	if len(parts) < 2 || len(parts) > 3 {
		return VideoRecord{}, fmt.Errorf("expected 2 or 3 '|' separated fields, got %d", len(parts))
	}

	record := VideoRecord{
		Title: strings.TrimSpace(parts[0]),
		ID:    strings.TrimSpace(parts[1]),
	}
	if record.ID == "" {
		return VideoRecord{}, fmt.Errorf("missing video id")
	}
	if record.Title == "" {
		return VideoRecord{}, fmt.Errorf("missing title for video %s", record.ID)
	}

	record.Tags = []string{}
	if len(parts) == 3 {
		tags := lo.Map(strings.Split(parts[2], ","), func(tag string, _ int) string {
			return strings.TrimSpace(tag)
		})
		record.Tags = lo.Filter(tags, func(tag string, _ int) bool {
			return tag != ""
		})
	}

	return record, nil
}
