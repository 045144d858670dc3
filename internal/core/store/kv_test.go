package store

import (
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	kv, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = kv.Close() }()
}

func TestGet_UnsetKey(t *testing.T) {
	kv := openTestKV(t)

	value, ok, err := kv.Get("session", "token")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Errorf("Expected ok=false for unset key, got value %q", value)
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("session", "token", "T1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, ok, err := kv.Get("session", "token")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || value != "T1" {
		t.Errorf("Get() = (%q, %v), want (\"T1\", true)", value, ok)
	}
}

func TestSet_Overwrites(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("session", "token", "old"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set("session", "token", "new"); err != nil {
		t.Fatal(err)
	}

	value, _, err := kv.Get("session", "token")
	if err != nil {
		t.Fatal(err)
	}
	if value != "new" {
		t.Errorf("Expected overwritten value %q, got %q", "new", value)
	}
}

func TestNamespaces_AreIndependent(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("session", "token", "T1"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set("historial", "token", "not-a-token"); err != nil {
		t.Fatal(err)
	}

	if err := kv.ClearNamespace("historial"); err != nil {
		t.Fatalf("ClearNamespace() error = %v", err)
	}

	value, ok, err := kv.Get("session", "token")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || value != "T1" {
		t.Errorf("Clearing one namespace touched another: got (%q, %v)", value, ok)
	}
}

func TestSetMany_WritesAllKeys(t *testing.T) {
	kv := openTestKV(t)

	err := kv.SetMany("session", map[string]string{
		"token": "T1",
		"role":  "dueno",
		"email": "a@b.com",
	})
	if err != nil {
		t.Fatalf("SetMany() error = %v", err)
	}

	for key, want := range map[string]string{"token": "T1", "role": "dueno", "email": "a@b.com"} {
		value, ok, err := kv.Get("session", key)
		if err != nil {
			t.Fatal(err)
		}
		if !ok || value != want {
			t.Errorf("Get(%q) = (%q, %v), want (%q, true)", key, value, ok, want)
		}
	}
}

func TestClearNamespace_RemovesEverything(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.SetMany("session", map[string]string{"token": "T1", "role": "dueno"}); err != nil {
		t.Fatal(err)
	}
	if err := kv.ClearNamespace("session"); err != nil {
		t.Fatalf("ClearNamespace() error = %v", err)
	}

	for _, key := range []string{"token", "role"} {
		_, ok, err := kv.Get("session", key)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Errorf("Key %q survived ClearNamespace", key)
		}
	}
}

func TestPersistence_AcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	kv, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Set("session", "token", "T1"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = reopened.Close() }()

	value, ok, err := reopened.Get("session", "token")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || value != "T1" {
		t.Errorf("Value did not survive reopen: got (%q, %v)", value, ok)
	}
}
