package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAssetResolver_Resolve(t *testing.T) {
	r := NewAssetResolver("/data")

	got, err := r.Resolve("Assets/10.jpg")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	expected := filepath.Join("/data", "Assets", "10.jpg")
	if got != expected {
		t.Errorf("Resolve() = %s, expected %s", got, expected)
	}

	for _, bad := range []string{"../secret.jpg", "/etc/passwd", "Assets/../../x.jpg"} {
		if _, err := r.Resolve(bad); !errors.Is(err, ErrAssetOutsideBase) {
			t.Errorf("Resolve(%q) error = %v, expected ErrAssetOutsideBase", bad, err)
		}
	}

	if _, err := r.Resolve(""); err == nil {
		t.Error("Expected error for empty asset path")
	}
}

func TestAssetResolver_DefaultBaseDir(t *testing.T) {
	if got := NewAssetResolver("").BaseDir(); got != DefaultAssetsDir {
		t.Errorf("BaseDir() = %s, expected %s", got, DefaultAssetsDir)
	}
}

func TestAssetResolver_Load(t *testing.T) {
	base := t.TempDir()
	if err := CreateDirectoryIfNotExists(filepath.Join(base, "Assets")); err != nil {
		t.Fatal(err)
	}
	content := []byte("not really a jpeg")
	if err := os.WriteFile(filepath.Join(base, "Assets", "11.jpg"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewAssetResolver(base)
	res, err := r.Load("Assets/11.jpg")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if res.Name() != "11.jpg" {
		t.Errorf("Name() = %s, expected 11.jpg", res.Name())
	}
	if string(res.Content()) != string(content) {
		t.Error("Loaded content does not match file")
	}

	if _, err := r.Load("Assets/missing.jpg"); err == nil {
		t.Error("Expected error for missing asset")
	}
}
