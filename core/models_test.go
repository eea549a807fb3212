package core

import (
	"strings"
	"testing"
	"time"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "test content",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
		{
			name:     "japanese content",
			content:  "今日は仕事でプレゼンがあった。",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %s vs %s", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestNewRecordID(t *testing.T) {
	now := time.Now()
	id := NewRecordID(RecordTypeDiary, now)

	if !strings.HasPrefix(string(id), "diary-") {
		t.Errorf("NewRecordID() = %s, want diary- prefix", id)
	}

	other := NewRecordID(RecordTypeAnswer, now.Add(time.Nanosecond))
	if id == other {
		t.Errorf("NewRecordID() produced same ID for different type and time")
	}
}

func TestDemoContexts(t *testing.T) {
	records := DemoContexts()
	if len(records) != 5 {
		t.Fatalf("DemoContexts() returned %d records, want 5", len(records))
	}

	seen := make(map[ID]bool)
	for _, record := range records {
		if record.Id == "" {
			t.Errorf("demo record has empty ID")
		}
		if seen[record.Id] {
			t.Errorf("duplicate demo record ID %s", record.Id)
		}
		seen[record.Id] = true

		if record.Emotions.OverallScore < 1 || record.Emotions.OverallScore > 5 {
			t.Errorf("demo record %s has score %f outside [1,5]", record.Id, record.Emotions.OverallScore)
		}
	}
}

func TestDemoContexts_FreshCopies(t *testing.T) {
	first := DemoContexts()
	first[0].Content = "mutated"
	first[0].Keywords[0] = "mutated"

	second := DemoContexts()
	if second[0].Content == "mutated" {
		t.Errorf("DemoContexts() shares record pointers between calls")
	}
	if second[0].Keywords[0] == "mutated" {
		t.Errorf("DemoContexts() shares keyword slices between calls")
	}
}
