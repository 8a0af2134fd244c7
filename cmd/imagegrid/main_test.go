package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseLabels(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "Cat", []string{"Cat"}},
		{"several", "Cat,Dog,Bird", []string{"Cat", "Dog", "Bird"}},
		{"trims whitespace", " Cat , Dog ", []string{"Cat", "Dog"}},
		{"keeps empty slots", "Cat,,Bird", []string{"Cat", "", "Bird"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLabels(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseLabels(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInputSummary(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "photo.png")
	f, err := os.Create(good)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	bad := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(bad, []byte("not pixels"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := inputSummary([]string{good, bad, "https://example.com/a.png"})
	want := []string{
		good + ": 3x2",
		bad + ": unreadable",
		"https://example.com/a.png: remote",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("inputSummary = %v, want %v", got, want)
	}
}
