package internal

import (
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestHTTPConfig_PortBounds(t *testing.T) {
	cases := []struct {
		port int
		ok   bool
	}{
		{3000, true},
		{1, true},
		{65535, true},
		{0, false},
		{65536, false},
		{-1, false},
	}
	for _, c := range cases {
		cfg := HTTPConfig{Port: c.port}
		err := cfg.Validate()
		if c.ok && err != nil {
			t.Errorf("port %d should pass: %v", c.port, err)
		}
		if !c.ok && err == nil {
			t.Errorf("port %d should fail", c.port)
		}
	}
}

func TestNotesConfig_PathRequired(t *testing.T) {
	cfg := NotesConfig{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty notes path should fail")
	}
}

func TestGeminiConfig_EmptyAPIKeyAllowed(t *testing.T) {
	cfg := NewDefaultConfig().Gemini
	cfg.APIKey = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("missing credential must not fail validation: %v", err)
	}
}

func TestGeminiConfig_ModelRequired(t *testing.T) {
	cfg := NewDefaultConfig().Gemini
	cfg.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty model should fail")
	}
}

func TestGeminiConfig_SamplingBounds(t *testing.T) {
	cfg := NewDefaultConfig().Gemini
	cfg.TopP = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("topP > 1 should fail")
	}

	cfg = NewDefaultConfig().Gemini
	cfg.MaxOutputTokens = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero maxOutputTokens should fail")
	}
}

func TestGeminiConfig_GenerationConfig(t *testing.T) {
	cfg := NewDefaultConfig().Gemini
	gen := cfg.GenerationConfig()
	if gen.Temperature != 0.7 || gen.TopK != 40 || gen.TopP != 0.95 || gen.MaxOutputTokens != 1024 {
		t.Errorf("generation config = %+v", gen)
	}
}
