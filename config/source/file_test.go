package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFileSource_Load(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "application.yaml", `
app:
  name: orders
modules:
  web:
    addr: ":8080"
    readTimeout: 5s
`)

	src := &FileSource{BasePath: dir}
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	app := got["app"].(map[string]any)
	if app["name"] != "orders" {
		t.Errorf("app name = %v", app["name"])
	}
	web := got["modules"].(map[string]any)["web"].(map[string]any)
	if web["addr"] != ":8080" {
		t.Errorf("web addr = %v", web["addr"])
	}
}

func TestFileSource_Load_ProfileOverlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "application.yaml", `
debug: false
modules:
  web:
    addr: ":8080"
    readTimeout: 5s
`)
	writeFile(t, dir, "application.prod.yaml", `
debug: true
modules:
  web:
    addr: ":80"
`)

	src := &FileSource{BasePath: dir, Profile: "prod"}
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got["debug"] != true {
		t.Errorf("debug = %v, want true", got["debug"])
	}
	web := got["modules"].(map[string]any)["web"].(map[string]any)
	if web["addr"] != ":80" {
		t.Errorf("web addr = %v, want :80 (overlay wins)", web["addr"])
	}
	if web["readTimeout"] != "5s" {
		t.Errorf("web readTimeout = %v, want 5s (base preserved)", web["readTimeout"])
	}
}

func TestFileSource_Load_MissingProfileIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "application.yml", "debug: true\n")

	src := &FileSource{BasePath: dir, Profile: "ghost"}
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got["debug"] != true {
		t.Errorf("debug = %v", got["debug"])
	}
}

func TestFileSource_Load_MissingBaseFile(t *testing.T) {
	src := &FileSource{BasePath: t.TempDir()}
	_, err := src.Load(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}
