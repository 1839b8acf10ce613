package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Data.File != "data/insurabook.json" {
		t.Errorf("default data file = %q, want %q", cfg.Data.File, "data/insurabook.json")
	}
	if !cfg.Data.SeedSamples {
		t.Error("default seed_samples = false, want true")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.UI.Plain {
		t.Error("default ui.plain = true, want false")
	}
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(`
data:
  file: /tmp/book.json
  seed_samples: false
logging:
  level: debug
  file: ""
ui:
  plain: true
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Data.File != "/tmp/book.json" {
		t.Errorf("data file = %q, want %q", cfg.Data.File, "/tmp/book.json")
	}
	if cfg.Data.SeedSamples {
		t.Error("seed_samples = true, want false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.File != "" {
		t.Errorf("log file = %q, want empty", cfg.Logging.File)
	}
	if !cfg.UI.Plain {
		t.Error("ui.plain = false, want true")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("Load() should return defaults for missing file, got error: %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(missing) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("{{invalid yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("Load(invalid YAML) should return error")
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(`
logging:
  level: warn
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level = %q, want %q", cfg.Logging.Level, "warn")
	}
	// Unset fields should retain defaults.
	if cfg.Logging.File != ".insurabook/insurabook.log" {
		t.Errorf("log file = %q, want default", cfg.Logging.File)
	}
	if cfg.Data.File != "data/insurabook.json" {
		t.Errorf("data file = %q, want default", cfg.Data.File)
	}
}

func TestLoad_LayeredPriority(t *testing.T) {
	// Setup: user config sets data file and level, project config overrides level.
	userDir := t.TempDir()
	projectDir := t.TempDir()

	userCfg := filepath.Join(userDir, "config.yaml")
	if err := os.WriteFile(userCfg, []byte(`
data:
  file: /home/agent/book.json
logging:
  level: debug
`), 0o644); err != nil {
		t.Fatal(err)
	}

	projectCfg := filepath.Join(projectDir, "config.yaml")
	if err := os.WriteFile(projectCfg, []byte(`
logging:
  level: error
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLayered(userCfg, projectCfg)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	// Data file from user config (project doesn't set it).
	if cfg.Data.File != "/home/agent/book.json" {
		t.Errorf("data file = %q, want %q", cfg.Data.File, "/home/agent/book.json")
	}
	// Level from project config (overrides user).
	if cfg.Logging.Level != "error" {
		t.Errorf("log level = %q, want %q", cfg.Logging.Level, "error")
	}
	// SeedSamples retains default when neither layer sets it.
	if !cfg.Data.SeedSamples {
		t.Error("seed_samples = false, want default true")
	}
}

func TestLoadLayered_UnknownField(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("ui:\n  colour: red\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadLayered(cfgPath); err == nil {
		t.Fatal("LoadLayered() should reject unknown field 'colour'")
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		envs    map[string]string
		wantErr bool
		check   func(*testing.T, Config)
	}{
		{
			name: "INSURABOOK_DATA_FILE overrides data file",
			envs: map[string]string{"INSURABOOK_DATA_FILE": "/custom/book.json"},
			check: func(t *testing.T, c Config) {
				if c.Data.File != "/custom/book.json" {
					t.Errorf("data file = %q, want %q", c.Data.File, "/custom/book.json")
				}
			},
		},
		{
			name: "INSURABOOK_LOG_LEVEL overrides level",
			envs: map[string]string{"INSURABOOK_LOG_LEVEL": "debug"},
			check: func(t *testing.T, c Config) {
				if c.Logging.Level != "debug" {
					t.Errorf("log level = %q, want %q", c.Logging.Level, "debug")
				}
			},
		},
		{
			name: "empty INSURABOOK_LOG_FILE disables logging",
			envs: map[string]string{"INSURABOOK_LOG_FILE": ""},
			check: func(t *testing.T, c Config) {
				if c.Logging.File != "" {
					t.Errorf("log file = %q, want empty", c.Logging.File)
				}
			},
		},
		{
			name: "INSURABOOK_SEED overrides seeding",
			envs: map[string]string{"INSURABOOK_SEED": "false"},
			check: func(t *testing.T, c Config) {
				if c.Data.SeedSamples {
					t.Error("seed_samples = true, want false")
				}
			},
		},
		{
			name:    "invalid INSURABOOK_SEED returns error",
			envs:    map[string]string{"INSURABOOK_SEED": "sometimes"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envs {
				t.Setenv(k, v)
			}
			cfg := DefaultConfig()
			err := cfg.ApplyEnv()

			if tt.wantErr {
				if err == nil {
					t.Fatal("ApplyEnv() should return error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnv() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(`
data:
  fiel: book.json
`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("Load() should return error for unknown field 'fiel'")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:    "empty data file",
			modify:  func(c *Config) { c.Data.File = "" },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:   "logging disabled",
			modify: func(c *Config) { c.Logging.File = "" },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_CommentOnlyFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("# just a comment\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load(comment-only) error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(comment-only) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoadLayered_AllMissing(t *testing.T) {
	cfg, err := LoadLayered("/no/user.yaml", "/no/project.yaml")
	if err != nil {
		t.Fatalf("LoadLayered(all missing) error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("got %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load(empty) error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(empty) = %+v, want defaults %+v", *cfg, want)
	}
}
