package playlist

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
)

func TestWriteWPL(t *testing.T) {
	var buf bytes.Buffer
	entries := []Entry{
		{ID: "v1", Title: "Amazing Cats"},
		{ID: "v2", Title: "Funny <Dogs> & co"},
	}

	if err := WriteWPL(&buf, "My_List", entries); err != nil {
		t.Fatalf("WriteWPL failed: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "<?xml") {
		t.Errorf("Expected XML header, got %q", buf.String()[:20])
	}

	var doc WPL
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Output is not valid XML: %v", err)
	}

	if doc.Head.Title != "My_List" {
		t.Errorf("Expected title My_List, got %q", doc.Head.Title)
	}
	if len(doc.Body.Seq.Media) != 2 {
		t.Fatalf("Expected 2 media entries, got %d", len(doc.Body.Seq.Media))
	}
	if doc.Body.Seq.Media[1].Title != "Funny <Dogs> & co" {
		t.Errorf("Expected title to round trip escaping, got %q", doc.Body.Seq.Media[1].Title)
	}

	var count string
	for _, m := range doc.Head.Meta {
		if m.Name == "ItemCount" {
			count = m.Content
		}
	}
	if count != "2" {
		t.Errorf("Expected ItemCount meta of 2, got %q", count)
	}
}

func TestWriteWPLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWPL(&buf, "Empty", nil); err != nil {
		t.Fatalf("WriteWPL failed: %v", err)
	}

	var doc WPL
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Output is not valid XML: %v", err)
	}
	if len(doc.Body.Seq.Media) != 0 {
		t.Errorf("Expected no media, got %d", len(doc.Body.Seq.Media))
	}
}
