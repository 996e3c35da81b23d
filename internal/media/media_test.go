package media

import (
	"testing"

	"github.com/opsboard/opsboard/internal/model"
)

func TestDriveFileID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://drive.google.com/file/d/1AbC-d_3fG/view?usp=sharing", "1AbC-d_3fG"},
		{"https://drive.google.com/open?id=xyz", ""},
		{"https://images.pexels.com/photos/1.jpeg", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DriveFileID(tt.url); got != tt.want {
			t.Errorf("DriveFileID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestDriveURLBuilders(t *testing.T) {
	if got := DrivePreviewURL("abc"); got != "https://drive.google.com/file/d/abc/preview" {
		t.Errorf("preview = %q", got)
	}
	if got := DriveThumbnailURL("abc"); got != "https://drive.google.com/thumbnail?id=abc&sz=w400" {
		t.Errorf("thumbnail = %q", got)
	}
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		url  string
		want Kind
	}{
		{"https://example.com/clip.MP4", KindVideo},
		{"https://example.com/pic.jpeg", KindImage},
		{"https://youtube.com/watch?v=1", KindVideo},
		{"https://images.pexels.com/photos/1", KindImage},
		// extension wins over host pattern
		{"https://pexels.com/download/clip.webm", KindVideo},
		{"https://drive.google.com/file/d/abc/view", KindImage},
		{"", KindImage},
	}

	for _, tt := range tests {
		if got := DetectKind(tt.url); got != tt.want {
			t.Errorf("DetectKind(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestEventMedia(t *testing.T) {
	ev := model.NewEvent(model.Record{
		model.EventRecordCol(1):   "https://images.pexels.com/photos/1.jpeg",
		model.EventRecordCol(2):   "   ",
		model.EventRecordCol(3):   "https://drive.google.com/file/d/FILE42/view",
		model.EventSolutionCol(1): "https://example.com/after.mp4",
	})

	records, solutions := EventMedia(ev)
	if len(records) != 2 {
		t.Fatalf("got %d record items, want 2 (blank slot skipped)", len(records))
	}
	if records[0].Kind != KindImage || records[0].Title != "Registro del Problema 1" {
		t.Errorf("records[0] = %+v", records[0])
	}
	if records[1].FileID != "FILE42" || records[1].URL != "FILE42" {
		t.Errorf("drive item should carry its file ID: %+v", records[1])
	}

	if len(solutions) != 1 || solutions[0].Kind != KindVideo {
		t.Fatalf("solutions = %+v", solutions)
	}
}
