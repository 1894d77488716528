package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	f, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f != nil {
		t.Fatalf("Load returned %+v for a directory without config", f)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), "show_lang: ru-RU\n")

	f, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.ShowLang != "ru-RU" {
		t.Fatalf("ShowLang = %q", f.ShowLang)
	}
	if f.DisplayLimit != 10 {
		t.Fatalf("DisplayLimit = %d, want default 10", f.DisplayLimit)
	}
	if f.PreviewFile != "preview.html" {
		t.Fatalf("PreviewFile = %q, want default preview.html", f.PreviewFile)
	}
}

func TestLoadFull(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `files:
  - american.xml
  - russian.xml
languages:
  - en-US
  - ru-RU
show_lang: ru-RU
display_limit: 5
warnings_as_errors: true
preview: true
preview_file: out.html
`)

	f, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(f.Files, []string{"american.xml", "russian.xml"}) {
		t.Fatalf("Files = %v", f.Files)
	}
	if !reflect.DeepEqual(f.Languages, []string{"en-US", "ru-RU"}) {
		t.Fatalf("Languages = %v", f.Languages)
	}
	if f.DisplayLimit != 5 || !f.WarningsAsErrors || !f.Preview || f.PreviewFile != "out.html" {
		t.Fatalf("parsed config = %+v", f)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), "files: [unclosed\n")
	if _, err := Load(dir); err == nil {
		t.Fatal("Load accepted malformed YAML")
	}
}

func TestLoadIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, IndexFileName)
	writeFile(t, path, `["american.xml", "sub/russian.xml", "/abs/french.xml"]`)

	files, err := LoadIndex(path)
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	want := []string{
		filepath.Join(dir, "american.xml"),
		filepath.Join(dir, "sub", "russian.xml"),
		"/abs/french.xml",
	}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("LoadIndex = %v, want %v", files, want)
	}
}

func TestLoadIndexMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, IndexFileName)
	writeFile(t, path, `{"not": "an array"}`)
	if _, err := LoadIndex(path); err == nil {
		t.Fatal("LoadIndex accepted a non-array document")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}
