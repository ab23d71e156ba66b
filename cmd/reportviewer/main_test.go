package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/report"
)

func TestPushRecent(t *testing.T) {
	list := []string{"a", "b", "c"}
	got := pushRecent(list, "b", 10)
	if strings.Join(got, ",") != "b,a,c" {
		t.Fatalf("unexpected order: %v", got)
	}
	got = pushRecent([]string{"a", "b", "c"}, "d", 2)
	if strings.Join(got, ",") != "d,a" {
		t.Fatalf("expected cap of 2, got %v", got)
	}
}

func TestSplitRecentAndExisting(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "keep.yaml")
	if err := os.WriteFile(keep, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	got := existing(splitRecent(keep + "\n\n" + filepath.Join(dir, "gone.yaml") + "\n"))
	if len(got) != 1 || got[0] != keep {
		t.Fatalf("expected only %s, got %v", keep, got)
	}
}

func TestTruncatePath(t *testing.T) {
	if got := truncatePath("short.yaml", 60); got != "short.yaml" {
		t.Fatalf("short path changed: %q", got)
	}
	long := "/home/staff/surveys/2025/spring/district/classroom_experience_ratings.yaml"
	got := truncatePath(long, 50)
	if len(got) > 50 || !strings.HasSuffix(got, "classroom_experience_ratings.yaml") {
		t.Fatalf("bad truncation %q", got)
	}
}

func TestExportName(t *testing.T) {
	if got := exportName("/tmp/ratings.yaml"); got != "ratings.png" {
		t.Fatalf("got %q", got)
	}
}

func TestExportPNGWithoutWindow(t *testing.T) {
	exportPNG(nil)
	exportPNG(&uiState{filePath: "/tmp/ratings.yaml"})

	a := test.NewTempApp(t)
	w := a.NewWindow("export")
	defer w.Close()
	exportPNG(&uiState{app: a, window: w})
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adoption.yaml")
	if err := os.WriteFile(path, []byte("responses:\n  Yes: 329\n  No: 38\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := renderFile(context.Background(), path, "", 640, ""); err == nil {
		t.Fatal("expected an error without a report name")
	}
	img, def, err := renderFile(context.Background(), path, report.Adoption, 640, "adoption.yaml")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if img.Bounds().Dx() != 640 {
		t.Fatalf("width %d, want 640", img.Bounds().Dx())
	}
	line := statusLine(def, img, 1500*time.Microsecond)
	if !strings.Contains(line, "adoption report, 367 responses in 2 categories") {
		t.Fatalf("status line %q", line)
	}
}

func TestPrefsRoundTrip(t *testing.T) {
	a := test.NewTempApp(t)
	dir := t.TempDir()
	f := filepath.Join(dir, "r.yaml")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	st := &uiState{app: a, filePath: f, reportName: "ratings", width: 1200, showHints: true}
	savePrefs(st)
	addRecentFile(st, f)

	got := &uiState{app: a}
	loadPrefs(got)
	if got.filePath != f || got.reportName != "ratings" || got.width != 1200 || !got.showHints {
		t.Fatalf("prefs not restored: %+v", got)
	}
	if r := recentFiles(got); len(r) != 1 || r[0] != f {
		t.Fatalf("recent files %v", r)
	}
	clearRecentFiles(got)
	if r := recentFiles(got); len(r) != 0 {
		t.Fatalf("recent files not cleared: %v", r)
	}
}
