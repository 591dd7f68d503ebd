package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/dragboard/internal/theme"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/boards

[canvas]
width = 800
height = 600

[notify]
save = false
copy = true

[theme.my_custom_theme]
Background = #111111
Stroke = #FFFFFF
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}

	if cfg.SaveDir != "/tmp/boards" {
		t.Errorf("Expected save_dir '/tmp/boards', got '%s'", cfg.SaveDir)
	}

	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 600 {
		t.Errorf("Unexpected canvas size %+v", cfg.Canvas)
	}

	if cfg.Notify.Save {
		t.Error("Expected notify.save to be false")
	}
	if !cfg.Notify.Copy {
		t.Error("Expected notify.copy to be true")
	}

	theme, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}

	if theme.Background.R != 0x11 || theme.Background.G != 0x11 || theme.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", theme.Background)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Canvas.Width != DefaultWidth || cfg.Canvas.Height != DefaultHeight {
		t.Errorf("Unexpected default canvas %+v", cfg.Canvas)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"[canvas]\nwidth = wide", "[canvas]"},
		{"[canvas]\nheight = -4", "[canvas]"},
		{"[notify]\nsave = maybe", "[notify]"},
		{"[theme.x]\nStroke = #1", "[theme.x]"},
	}
	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.input))
		if err == nil {
			t.Errorf("Parse(%q) expected error", tt.input)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Parse(%q) error %q should mention %q", tt.input, err, tt.want)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/boards

[canvas]
width = 640
height = 480

[notify]
save = true
copy = false

[theme.custom]
Name = custom
Background = #000000
Stroke = #FFFFFF
ShapeFill = #FF000080
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	// 4. Compare relevant fields
	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("SaveDir mismatch: %q vs %q", cfg.SaveDir, cfg2.SaveDir)
	}
	if cfg.Canvas != cfg2.Canvas {
		t.Errorf("Canvas mismatch: %+v vs %+v", cfg.Canvas, cfg2.Canvas)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	// Check theme persistence
	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestResolveTheme(t *testing.T) {
	cfg := New()
	cfg.Theme = "fromconfig"
	tests := []struct {
		flag, env, want string
	}{
		{"flag", "env", "flag"},
		{"", "env", "env"},
		{"", "", "fromconfig"},
	}
	for _, tt := range tests {
		if got := cfg.ResolveTheme(tt.flag, tt.env); got != tt.want {
			t.Errorf("ResolveTheme(%q, %q) = %q, want %q", tt.flag, tt.env, got, tt.want)
		}
	}
}

func TestLoadThemePrefersConfigSection(t *testing.T) {
	cfg, err := Parse(strings.NewReader("[theme.dark]\nStroke = #010101\n"))
	if err != nil {
		t.Fatal(err)
	}
	l := &theme.Loader{ConfigDir: t.TempDir(), SystemDir: t.TempDir()}
	th, err := cfg.LoadTheme("dark", l)
	if err != nil {
		t.Fatal(err)
	}
	if th.Stroke.R != 1 {
		t.Errorf("expected config section theme, got %+v", th)
	}
	if th, err := cfg.LoadTheme("blueprint", l); err != nil || th.Name != "blueprint" {
		t.Errorf("embedded fallback = %v, %v", th, err)
	}
}

func TestLoaderPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")

	l := NewLoader("v1.0.0", "")
	if got := l.GetConfigPath(); got != "" {
		t.Fatalf("expected no config, got %q", got)
	}

	dir := filepath.Join(home, ".config", "dragboard")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "config.rc")
	if err := os.WriteFile(path, []byte("[canvas]\nwidth = 320\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := l.GetConfigPath(); got != path {
		t.Fatalf("GetConfigPath = %q, want %q", got, path)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.Width != 320 {
		t.Errorf("width = %d", cfg.Canvas.Width)
	}

	override := filepath.Join(t.TempDir(), "other.rc")
	if err := os.WriteFile(override, []byte("theme = dark\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := NewLoader("v1.0.0", override).GetConfigPath(); got != override {
		t.Errorf("override path ignored: %q", got)
	}
}
