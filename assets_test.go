package csv2html

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNewStyleLoader - Public loader construction
// ---------------------------------------------------------------------------

func TestNewStyleLoader(t *testing.T) {
	t.Parallel()

	custom := t.TempDir()
	if err := os.MkdirAll(filepath.Join(custom, "styles"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(custom, "styles", "brand.css"), []byte("dt { color: navy; }"), 0o600); err != nil {
		t.Fatal(err)
	}
	notDir := filepath.Join(custom, "file.txt")
	if err := os.WriteFile(notDir, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		basePath  string
		wantStyle string
		wantErr   error
	}{
		{name: "embedded only", basePath: "", wantStyle: "print"},
		{name: "custom directory", basePath: custom, wantStyle: "brand"},
		{name: "custom falls back to embedded", basePath: custom, wantStyle: "compact"},
		{name: "missing directory", basePath: filepath.Join(custom, "missing"), wantErr: ErrInvalidAssetPath},
		{name: "file instead of directory", basePath: notDir, wantErr: ErrInvalidAssetPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, err := NewStyleLoader(tt.basePath)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewStyleLoader() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewStyleLoader() unexpected error: %v", err)
			}

			css, err := loader.LoadStyle(tt.wantStyle)
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.wantStyle, err)
			}
			if css == "" {
				t.Errorf("LoadStyle(%q) returned empty CSS", tt.wantStyle)
			}
			if !slices.Contains(loader.Styles(), tt.wantStyle) {
				t.Errorf("Styles() = %v, want it to contain %q", loader.Styles(), tt.wantStyle)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNewStyleLoader_UnknownStyle - Missing names report ErrStyleNotFound
// ---------------------------------------------------------------------------

func TestNewStyleLoader_UnknownStyle(t *testing.T) {
	t.Parallel()

	loader, err := NewStyleLoader("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loader.LoadStyle("neon"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(neon) error = %v, want ErrStyleNotFound", err)
	}
}
