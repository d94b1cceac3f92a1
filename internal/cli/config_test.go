package cli

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/quietzone/ean13/pkg/errors"
	"github.com/quietzone/ean13/pkg/render"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeConfig(t, `
[profile.retail]
module_width = 3.0
height = 80.0
foreground = "#336699"
isbn = true
`)

	p, err := loadProfile(path, "retail")
	if err != nil {
		t.Fatalf("loadProfile: %v", err)
	}
	if p.ModuleWidth == nil || *p.ModuleWidth != 3 {
		t.Errorf("ModuleWidth = %v, want 3", p.ModuleWidth)
	}
	if p.Height == nil || *p.Height != 80 {
		t.Errorf("Height = %v, want 80", p.Height)
	}
	if p.ISBN == nil || !*p.ISBN {
		t.Errorf("ISBN = %v, want true", p.ISBN)
	}
	if p.QuietZone != nil {
		t.Errorf("QuietZone = %v, want unset", p.QuietZone)
	}
}

func TestLoadProfileMissing(t *testing.T) {
	path := writeConfig(t, `[profile.retail]`)

	_, err := loadProfile(path, "nope")
	if !errors.Is(err, errors.ErrCodeInvalidProfile) {
		t.Errorf("error = %v, want INVALID_PROFILE", err)
	}

	_, err = loadProfile(filepath.Join(t.TempDir(), "absent.toml"), "retail")
	if !errors.Is(err, errors.ErrCodeInvalidProfile) {
		t.Errorf("error = %v, want INVALID_PROFILE", err)
	}
}

func TestProfileApplyPrecedence(t *testing.T) {
	path := writeConfig(t, `
[profile.retail]
module_width = 3.0
height = 80.0
foreground = "#336699"
`)

	p, err := loadProfile(path, "retail")
	if err != nil {
		t.Fatalf("loadProfile: %v", err)
	}

	opts := render.Defaults()
	opts.Height = 99 // pretend --height was given

	changed := map[string]bool{"height": true}
	if err := p.apply(&opts, func(flag string) bool { return changed[flag] }); err != nil {
		t.Fatalf("apply: %v", err)
	}

	// Flag beats profile, profile beats default.
	if opts.Height != 99 {
		t.Errorf("Height = %v, want flag value 99", opts.Height)
	}
	if opts.ModuleWidth != 3 {
		t.Errorf("ModuleWidth = %v, want profile value 3", opts.ModuleWidth)
	}
	if opts.QuietZone != render.DefaultQuietZone {
		t.Errorf("QuietZone = %v, want default", opts.QuietZone)
	}
	if opts.Foreground != (color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}) {
		t.Errorf("Foreground = %v", opts.Foreground)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#000000", want: color.RGBA{A: 0xff}},
		{in: "#ffffff", want: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#abc", want: color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}},
		{in: "336699", want: color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}},
		{in: "#12345", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseHexColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidOption) {
					t.Errorf("error = %v, want INVALID_OPTION", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHexColor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
