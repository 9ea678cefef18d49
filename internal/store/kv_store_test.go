package store

import (
	"errors"
	"os"
	"strings"
	"testing"
)

// fastKDF keeps scrypt cheap in tests.
var fastKDF = scryptParams{N: 1 << 10, R: 8, P: 1}

func TestFileKVStore_SetGetRemove(t *testing.T) {
	s := NewFileKVStore(t.TempDir())

	if _, ok, err := s.GetItem("authToken"); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}
	if err := s.SetItem("authToken", "tok"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if err := s.SetItem("authUser", `{"id":"u1"}`); err != nil {
		t.Fatalf("set user: %v", err)
	}

	got, ok, err := s.GetItem("authToken")
	if err != nil || !ok || got != "tok" {
		t.Fatalf("GetItem = %q, %v, %v", got, ok, err)
	}

	if err := s.RemoveItem("authToken", "authUser"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := s.GetItem("authUser"); ok {
		t.Fatal("authUser must be gone")
	}
	if _, err := os.Stat(s.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("empty store should delete its file, stat err = %v", err)
	}
}

func TestFileKVStore_RemoveKeepsOtherKeys(t *testing.T) {
	s := NewFileKVStore(t.TempDir())
	_ = s.SetItem("authToken", "tok")
	_ = s.SetItem("theme", "dark")

	if err := s.RemoveItem("authToken"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if v, ok, _ := s.GetItem("theme"); !ok || v != "dark" {
		t.Fatalf("theme lost: %q %v", v, ok)
	}
}

func TestFileKVStore_FilePermissions(t *testing.T) {
	s := NewFileKVStore(t.TempDir())
	if err := s.SetItem("authToken", "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	info, err := os.Stat(s.Path())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("mode = %o, want 600", perm)
	}
}

func TestSealedKVStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewSealedKVStore(dir, "correct horse")
	s.kdf = fastKDF

	if err := s.SetItem("authToken", "secret-token"); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(raw), "secret-token") {
		t.Fatal("token stored in plaintext")
	}

	reopened := NewSealedKVStore(dir, "correct horse")
	got, ok, err := reopened.GetItem("authToken")
	if err != nil || !ok || got != "secret-token" {
		t.Fatalf("GetItem = %q, %v, %v", got, ok, err)
	}
}

func TestSealedKVStore_WrongPassphrase(t *testing.T) {
	dir := t.TempDir()
	s := NewSealedKVStore(dir, "right")
	s.kdf = fastKDF
	if err := s.SetItem("authToken", "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}

	wrong := NewSealedKVStore(dir, "wrong")
	if _, _, err := wrong.GetItem("authToken"); !errors.Is(err, ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
}
