package config

import (
	"errors"
	"runtime"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults with path", func(c *Config) {}, false},
		{"set without path", func(c *Config) { c.Path = ""; c.Set = []string{"a.mp4"} }, false},
		{"unknown video codec", func(c *Config) { c.VideoCodec = "mpeg2" }, true},
		{"empty video codec", func(c *Config) { c.VideoCodec = "" }, true},
		{"unknown audio codec", func(c *Config) { c.AudioCodec = "flac" }, true},
		{"negative threads", func(c *Config) { c.Threads = -2 }, true},
		{"explicit depth", func(c *Config) { c.MaxDepth = 0 }, false},
		{"invalid depth", func(c *Config) { c.MaxDepth = -5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Path = "/media"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NoInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = "   "
	if err := cfg.Validate(); !errors.Is(err, ErrNoInput) {
		t.Fatalf("Validate() = %v, want ErrNoInput", err)
	}
}

func TestMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VideoCodec = VideoAV1
	cfg.AudioCodec = AudioOpus

	vm, ok := cfg.Mode().(VideoMode)
	if !ok {
		t.Fatalf("Mode() = %T, want VideoMode", cfg.Mode())
	}
	if vm.VideoCodec != VideoAV1 || vm.AudioCodec != AudioOpus {
		t.Errorf("Mode() = %+v", vm)
	}

	cfg.Images = true
	if _, ok := cfg.Mode().(ImageMode); !ok {
		t.Fatalf("Mode() = %T, want ImageMode", cfg.Mode())
	}
}

func TestWorkers(t *testing.T) {
	tests := []struct {
		name    string
		threads int
		images  bool
		want    int
	}{
		{"auto video", 0, false, runtime.NumCPU()},
		{"auto images", 0, true, 1},
		{"explicit video", 3, false, 3},
		{"explicit images", 4, true, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Threads = tt.threads
			cfg.Images = tt.images
			if got := cfg.Workers(); got != tt.want {
				t.Errorf("Workers() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExtensions(t *testing.T) {
	video := VideoMode{}.Extensions()
	if len(video) != 5 || video[0] != "mp4" {
		t.Errorf("video extensions = %v", video)
	}
	images := ImageMode{}.Extensions()
	if len(images) != 5 || images[0] != "png" {
		t.Errorf("image extensions = %v", images)
	}
}
