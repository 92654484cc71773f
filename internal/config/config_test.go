package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero size defaults, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled by default")
	}
	if cfg.App.Title != "weft" {
		t.Fatalf("expected default title weft, got %q", cfg.App.Title)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected tracing disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{
		"WEFT_WIDTH=100",
		"WEFT_TITLE=from-env",
		"WEFT_TRACE=true",
	}
	cfg, err := LoadArgs([]string{"--width", "80", "--title", "from-flag"}, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag width 80, got %d", cfg.App.Width)
	}
	if cfg.App.Title != "from-flag" {
		t.Fatalf("expected flag title, got %q", cfg.App.Title)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from environment")
	}
}

func TestLoadArgsEnvironmentDefaults(t *testing.T) {
	environ := []string{
		"WEFT_HEIGHT=30",
		"WEFT_FOOTER=false",
		"WEFT_LOG_FILE=/tmp/weft.log",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Height != 30 {
		t.Fatalf("expected env height 30, got %d", cfg.App.Height)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled via env")
	}
	if cfg.Logging.FilePath != "/tmp/weft.log" {
		t.Fatalf("expected env log file, got %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--height", "-5"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsRecordsFlagsAndArgs(t *testing.T) {
	args := []string{"--width", "42"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Flags["width"] != "42" {
		t.Fatalf("expected recorded width flag, got %q", cfg.Flags["width"])
	}
	if len(cfg.Args) != 2 || cfg.Args[0] != "--width" {
		t.Fatalf("expected argv recorded, got %v", cfg.Args)
	}
}
