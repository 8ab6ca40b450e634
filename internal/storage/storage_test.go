package storage

import (
	"os"
	"testing"
)

func TestOptionsRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	// Fresh store serves defaults.
	opts, err := s.LoadOptions()
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.HashMB != 64 {
		t.Errorf("default HashMB = %d, want 64", opts.HashMB)
	}

	opts.HashMB = 256
	opts.DefaultDepth = 12
	if err := s.SaveOptions(opts); err != nil {
		t.Fatalf("SaveOptions: %v", err)
	}

	loaded, err := s.LoadOptions()
	if err != nil {
		t.Fatalf("LoadOptions after save: %v", err)
	}
	if loaded.HashMB != 256 || loaded.DefaultDepth != 12 {
		t.Errorf("loaded options = %+v, want HashMB 256, DefaultDepth 12", loaded)
	}
	if loaded.LastUsed.IsZero() {
		t.Error("LastUsed not stamped on save")
	}
}

func TestFirstLaunch(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	first, err := s.IsFirstLaunch()
	if err != nil {
		t.Fatalf("IsFirstLaunch: %v", err)
	}
	if !first {
		t.Error("fresh store not reported as first launch")
	}

	if err := s.MarkFirstLaunchComplete(); err != nil {
		t.Fatalf("MarkFirstLaunchComplete: %v", err)
	}

	first, err = s.IsFirstLaunch()
	if err != nil {
		t.Fatalf("IsFirstLaunch: %v", err)
	}
	if first {
		t.Error("store still reported as first launch after marking complete")
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}
}
