package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/voxcast/pkg/config"
)

// run executes the CLI with args in an isolated home and working directory
// and returns what it printed to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--quiet"))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestSnapshotIsReproducible(t *testing.T) {
	dir := isolate(t)
	png := filepath.Join(dir, "frame.png")
	args := []string{"snapshot", "--width", "32", "--height", "32", "--frames", "3", "--yaw", "0.4"}

	first, err := run(t, append(args, "--out", png)...)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if _, err := os.Stat(png); err != nil {
		t.Fatalf("snapshot did not write a PNG: %v", err)
	}

	second, err := run(t, append(args, "--out", "")...)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if strings.TrimSpace(first) == "" || first != second {
		t.Errorf("checksums differ: %q vs %q", first, second)
	}

	other, err := run(t, "snapshot", "--width", "32", "--height", "32", "--seed", "1", "--out", "")
	if err != nil {
		t.Fatal(err)
	}
	if other == first {
		t.Error("a different seed rendered the same frame")
	}
}

func TestSnapshotRejectsBadSize(t *testing.T) {
	isolate(t)
	if _, err := run(t, "snapshot", "--width", "30", "--out", ""); err == nil {
		t.Error("expected an error for a width that is not a multiple of 4")
	}
	if _, err := run(t, "snapshot", "--size", "12", "--out", ""); err == nil {
		t.Error("expected an error for a world size that is not a power of two")
	}
}

func TestExportThenInspect(t *testing.T) {
	dir := isolate(t)
	glb := filepath.Join(dir, "world.glb")

	if _, err := run(t, "export", "--size", "8", "--generator", "terrace", "-o", glb); err != nil {
		t.Fatalf("export: %v", err)
	}
	out, err := run(t, "inspect", glb)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	// The lower half of an 8^3 terrace is a 8x4x8 box: 2*(64+32+32) quads.
	if !strings.Contains(out, "1024 vertices, 512 triangles") || !strings.Contains(out, "size 8x4x8") {
		t.Errorf("inspect output = %q", out)
	}
}

func TestRecordThenInspect(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "s"+recordingExt)

	if _, err := run(t, "record", "--frames", "5", "--width", "16", "--height", "16", "-o", path); err != nil {
		t.Fatalf("record: %v", err)
	}
	out, err := run(t, "inspect", path)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(out, "5 frames of 16x16") {
		t.Errorf("inspect output = %q", out)
	}
}

func TestInspectUnknownFormat(t *testing.T) {
	isolate(t)
	if _, err := run(t, "inspect", "model.obj"); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestBench(t *testing.T) {
	isolate(t)
	out, err := run(t, "bench", "--frames", "3", "--warmup", "0", "--width", "16", "--height", "16")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	for _, want := range []string{"16x16, 3 frames", "frame time", "hit ratio"} {
		if !strings.Contains(out, want) {
			t.Errorf("bench output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigInitAndShow(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "conf", "voxcast.yaml")

	if _, err := run(t, "config", "init", path, "--seed", "5", "--texture", "checker"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := run(t, "config", "init", path); err == nil {
		t.Error("config init overwrote an existing file without --force")
	}

	cfg, err := config.Load(config.NewViper(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Seed != 5 || cfg.Render.Texture != "checker" {
		t.Errorf("written config = %+v", cfg)
	}

	out, err := run(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "seed: 5") || !strings.Contains(out, "texture: checker") {
		t.Errorf("config show output:\n%s", out)
	}
}
