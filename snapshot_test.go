package pallet

import (
	"os"
	"path/filepath"
	"testing"
)

func snapshotFixture(t *testing.T) (*Storage, ComponentID, ComponentID, ComponentID) {
	t.Helper()
	s := Factory.NewStorage()
	pos, _ := RegisterComponent[Position](s, "position")
	name, _ := RegisterComponent[Name](s, "name")
	health, _ := RegisterComponent[Health](s, "health")
	return s, pos, name, health
}

func TestSnapshotRoundTrip(t *testing.T) {
	src, pos, name, health := snapshotFixture(t)

	e1 := src.NewEntity()
	Set(src, e1, pos, Position{1, 2})
	Set(src, e1, name, Name{"alpha"})

	e2 := src.NewEntity()
	Set(src, e2, health, Health{30, 100})

	e3 := src.NewEntity() // empty record
	_ = e3

	cfg := SnapshotConfig{Path: filepath.Join(t.TempDir(), "world.snap"), Compression: "fastest"}
	if err := WriteSnapshot(src, cfg); err != nil {
		t.Fatalf("WriteSnapshot error = %v", err)
	}

	dst, dpos, dname, dhealth := snapshotFixture(t)
	if err := ReadSnapshot(dst, cfg.Path); err != nil {
		t.Fatalf("ReadSnapshot error = %v", err)
	}

	if dst.Size() != 3 {
		t.Fatalf("restored %d entities, want 3", dst.Size())
	}

	gotPos, err := Get[Position](dst, e1, dpos)
	if err != nil || gotPos != (Position{1, 2}) {
		t.Errorf("restored position = %+v, %v", gotPos, err)
	}
	gotName, err := Get[Name](dst, e1, dname)
	if err != nil || gotName.Value != "alpha" {
		t.Errorf("restored name = %+v, %v", gotName, err)
	}
	gotHealth, err := Get[Health](dst, e2, dhealth)
	if err != nil || gotHealth != (Health{30, 100}) {
		t.Errorf("restored health = %+v, %v", gotHealth, err)
	}

	rec, ok := dst.Find(e3)
	if !ok || rec.PresenceMask() != 0 {
		t.Error("empty record did not survive the round trip")
	}

	// Restored records are a consumed baseline.
	if r1, _ := dst.Find(e1); r1.Dirty() {
		t.Error("restored record reports dirty")
	}

	// The id counter must land past the restored ids.
	if en := dst.NewEntity(); en <= e3 {
		t.Errorf("NewEntity() = %d after restore, collides with restored ids", en)
	}
}

func TestSnapshotLayoutMismatch(t *testing.T) {
	src, pos, _, _ := snapshotFixture(t)
	en := src.NewEntity()
	Set(src, en, pos, Position{1, 2})

	cfg := SnapshotConfig{Path: filepath.Join(t.TempDir(), "world.snap")}
	if err := WriteSnapshot(src, cfg); err != nil {
		t.Fatalf("WriteSnapshot error = %v", err)
	}

	dst := Factory.NewStorage()
	RegisterComponent[Position](dst, "position")
	RegisterComponent[Health](dst, "hitpoints")
	if err := ReadSnapshot(dst, cfg.Path); err == nil {
		t.Error("ReadSnapshot into a different layout returned no error")
	}
}

func TestLoadSnapshotConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "snapshot.yaml")
	yaml := "path: /var/lib/pallet/world.snap\ncompression: better\nindex_db: /var/lib/pallet/index.db\n"
	if err := os.WriteFile(file, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnapshotConfig(file)
	if err != nil {
		t.Fatalf("LoadSnapshotConfig error = %v", err)
	}
	if cfg.Path != "/var/lib/pallet/world.snap" || cfg.Compression != "better" || cfg.IndexDB != "/var/lib/pallet/index.db" {
		t.Errorf("cfg = %+v", cfg)
	}

	// Missing path is rejected, missing compression defaults.
	if err := os.WriteFile(file, []byte("compression: fastest\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshotConfig(file); err == nil {
		t.Error("config without path returned no error")
	}

	if err := os.WriteFile(file, []byte("path: a.snap\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadSnapshotConfig(file)
	if err != nil || cfg.Compression != "default" {
		t.Errorf("cfg = %+v, %v, want default compression", cfg, err)
	}
}
