package camera

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 860 || cfg.Height != 480 {
		t.Errorf("Expected 860x480, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Framerate != 15 {
		t.Errorf("Expected Framerate=15, got %d", cfg.Framerate)
	}
	if cfg.Debug {
		t.Error("Expected debug preview off by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		errors int
	}{
		{"default", DefaultConfig(), 0},
		{"zero width", Config{Width: 0, Height: 480, Framerate: 15}, 1},
		{"negative height", Config{Width: 860, Height: -1, Framerate: 15}, 1},
		{"zero framerate", Config{Width: 860, Height: 480, Framerate: 0}, 1},
		{"too big", Config{Width: MaxWidth + 1, Height: MaxHeight + 1, Framerate: MaxFramerate + 1}, 3},
	}

	for _, tc := range tests {
		if got := tc.cfg.Validate(); len(got) != tc.errors {
			t.Errorf("%s: expected %d errors, got %v", tc.name, tc.errors, got)
		}
	}
}

func TestPresets_AllValid(t *testing.T) {
	presets := Presets()
	if len(presets) != len(PresetNames()) {
		t.Fatalf("Presets() has %d entries, PresetNames() has %d", len(presets), len(PresetNames()))
	}

	for _, name := range PresetNames() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Errorf("preset %q missing", name)
			continue
		}
		if errs := cfg.Validate(); len(errs) > 0 {
			t.Errorf("preset %q invalid: %v", name, errs)
		}
	}
}

func TestGetPreset(t *testing.T) {
	if cfg := GetPreset(PresetLegacy); cfg == nil || cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("legacy preset = %+v, want 640x480", cfg)
	}
	if GetPreset("8k") != nil {
		t.Error("Expected nil for unknown preset")
	}
}

func TestConfig_String(t *testing.T) {
	if got := DefaultConfig().String(); got != "860x480@15 debug=false" {
		t.Errorf("String() = %q", got)
	}
}
