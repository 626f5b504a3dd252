package export

import (
	"path/filepath"
	"testing"

	"github.com/fazecat/newspulse/Internal/types"
)

func TestWriteReadRoundTrip(t *testing.T) {
	records := []types.ArticleRecord{
		{Headline: "plain headline", PubDate: "2023-10-07", PubTime: "12:00:00"},
		{Headline: `has "quotes", commas, and | a pipe`, PubDate: "2023-10-08", PubTime: "06:30:15"},
		{Headline: "malformed row kept with empty fields", PubDate: "", PubTime: ""},
	}

	path := filepath.Join(t.TempDir(), "sorted_articles.csv")

	if err := WriteRecords(path, records); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	got, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}

	if len(got) != len(records) {
		t.Fatalf("got %d records, want %d", len(got), len(records))
	}
	for i := range records {
		if got[i] != records[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], records[i])
		}
	}
}

func TestWriteEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	if err := WriteRecords(path, nil); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	got, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
