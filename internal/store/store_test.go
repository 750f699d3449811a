package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"eventbingo/internal/board"
	"eventbingo/internal/catalog"
)

func openSlots(t *testing.T) *Slots {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestLoadBoard_MissingSlot(t *testing.T) {
	s := openSlots(t)
	if _, res := s.LoadBoard(); res != DecodeMissing {
		t.Fatalf("LoadBoard result = %v, want DecodeMissing", res)
	}
}

func TestSaveBoard_RoundTrip(t *testing.T) {
	s := openSlots(t)
	g := board.Fresh(catalog.Default())
	g = board.Toggle(g, 0, 0)
	g = board.Toggle(g, 4, 2)

	if err := s.SaveBoard(g); err != nil {
		t.Fatalf("SaveBoard: %v", err)
	}

	loaded, res := s.LoadBoard()
	if res != DecodeOK {
		t.Fatalf("LoadBoard result = %v, want DecodeOK", res)
	}
	if loaded != g {
		t.Fatal("loaded grid differs from saved grid")
	}
}

func TestLoadBoard_MalformedJSON(t *testing.T) {
	s := openSlots(t)
	if err := os.WriteFile(filepath.Join(s.Dir(), BoardKey), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, res := s.LoadBoard(); res != DecodeInvalid {
		t.Fatalf("LoadBoard result = %v, want DecodeInvalid", res)
	}
}

func TestLoadBoard_WrongShape(t *testing.T) {
	s := openSlots(t)

	// 2×2 grid: valid JSON, wrong dimensions.
	payload := `[[{"question":"a","checked":false},{"question":"b","checked":true}],` +
		`[{"question":"c","checked":false},{"question":"d","checked":false}]]`
	if err := os.WriteFile(filepath.Join(s.Dir(), BoardKey), []byte(payload), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, res := s.LoadBoard(); res != DecodeInvalid {
		t.Fatalf("LoadBoard result = %v, want DecodeInvalid", res)
	}
}

func TestSaveBoard_PersistedLayout(t *testing.T) {
	s := openSlots(t)
	g := board.Fresh(catalog.Default())
	if err := s.SaveBoard(g); err != nil {
		t.Fatalf("SaveBoard: %v", err)
	}

	bytes, err := os.ReadFile(filepath.Join(s.Dir(), BoardKey))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	// The on-disk layout is part of the contract: a JSON array of arrays of
	// {question, checked} objects with lower-case keys.
	got := string(bytes)
	if got[0] != '[' {
		t.Fatalf("board slot starts with %q, want JSON array", got[0])
	}
	for _, want := range []string{`"question"`, `"checked"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("board slot missing %s key", want)
		}
	}
}

func TestThemeSlot_RoundTrip(t *testing.T) {
	s := openSlots(t)

	if _, res := s.LoadTheme(); res != DecodeMissing {
		t.Fatalf("LoadTheme result = %v, want DecodeMissing", res)
	}

	if err := s.SaveTheme("dark"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}

	v, res := s.LoadTheme()
	if res != DecodeOK {
		t.Fatalf("LoadTheme result = %v, want DecodeOK", res)
	}
	if v != "dark" {
		t.Fatalf("LoadTheme = %q, want %q", v, "dark")
	}

	// The theme slot is a bare literal, nothing else.
	bytes, err := os.ReadFile(filepath.Join(s.Dir(), ThemeKey))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(bytes) != "dark" {
		t.Fatalf("theme slot = %q, want %q", string(bytes), "dark")
	}
}

func TestSlots_AreIndependent(t *testing.T) {
	s := openSlots(t)
	if err := s.SaveTheme("light"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}

	// Board slot untouched by theme writes.
	if _, res := s.LoadBoard(); res != DecodeMissing {
		t.Fatalf("LoadBoard result = %v, want DecodeMissing", res)
	}
}
