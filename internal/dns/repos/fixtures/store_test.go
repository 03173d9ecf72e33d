package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/packetforge/dns-codec/internal/dns/wire"
)

func tempDB(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	return filepath.Join(dir, "fixtures.db")
}

func TestStore_SaveLoad(t *testing.T) {
	dbPath := tempDB(t)
	st, err := New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(); _ = os.Remove(dbPath) })

	payload := []byte{0x01, 0x02, 0x03, 0x04}
	if err := st.Save("mdns-probe-query", wire.ProtoMDNS, payload); err != nil {
		t.Fatalf("Save: %v", err)
	}

	proto, data, err := st.Load("mdns-probe-query")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if proto != wire.ProtoMDNS {
		t.Errorf("expected ProtoMDNS, got %v", proto)
	}
	if string(data) != string(payload) {
		t.Errorf("expected %v, got %v", payload, data)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	st, err := New(tempDB(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	if _, _, err := st.Load("nope"); err == nil {
		t.Fatal("expected error loading a missing capture")
	}
}

func TestStore_ListAndDelete(t *testing.T) {
	st, err := New(tempDB(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	if err := st.Save("a", wire.ProtoDNS, []byte("a")); err != nil {
		t.Fatalf("Save a: %v", err)
	}
	if err := st.Save("b", wire.ProtoLLMNR, []byte("b")); err != nil {
		t.Fatalf("Save b: %v", err)
	}

	names, err := st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %v", names)
	}

	if err := st.Delete("a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	names, err = st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 1 || names[0] != "b" {
		t.Fatalf("expected [b] after delete, got %v", names)
	}
}

func TestStore_OverwriteOnSave(t *testing.T) {
	st, err := New(tempDB(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	if err := st.Save("probe", wire.ProtoDNS, []byte("first")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := st.Save("probe", wire.ProtoLLMNR, []byte("second")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	proto, data, err := st.Load("probe")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if proto != wire.ProtoLLMNR || string(data) != "second" {
		t.Fatalf("expected overwritten capture, got proto=%v data=%q", proto, data)
	}
}
