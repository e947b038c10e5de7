package pallet

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// Snapshot persistence for a whole Storage. The file is a zstd stream: one
// JSON header line describing the component layout, then a gob body with one
// blob per record. Flat components travel as their raw packed bytes; boxed
// components travel as gob-encoded values and are re-boxed on load, since
// holder handles mean nothing outside the storage that issued them.

const snapshotVersion = 1

type snapshotHeader struct {
	Version    int      `json:"version"`
	Entities   int      `json:"entities"`
	Components []string `json:"components"`
}

type recordBlob struct {
	Entity     uint32
	Components uint64
	Flat       [][]byte
	Boxed      []any
}

// WriteSnapshot persists every record of the storage to cfg.Path.
func WriteSnapshot(s *Storage, cfg SnapshotConfig) error {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	level, err := encoderLevel(cfg.Compression)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(level))
	if err != nil {
		return err
	}
	defer enc.Close()

	bw := bufio.NewWriterSize(enc, 256*1024)
	defer bw.Flush()

	header := snapshotHeader{
		Version:    snapshotVersion,
		Entities:   len(s.records),
		Components: s.componentNames(),
	}
	hb, _ := json.Marshal(header)
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	s.registerGobValues()
	ge := gob.NewEncoder(bw)
	for _, rec := range s.records {
		if err := ge.Encode(s.blobFor(rec)); err != nil {
			return fmt.Errorf("gob encode: %w", err)
		}
	}
	return nil
}

// ReadSnapshot loads a snapshot into the storage. The storage must carry the
// exact component registrations the snapshot was written with. Records are
// created with Make, so entity ids survive the round trip and the id counter
// lands past the highest restored id. Restored records come back clean: the
// snapshot is treated as a consumed baseline, not as fresh writes.
func ReadSnapshot(s *Storage, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)
	line, err := br.ReadBytes('\n')
	if err != nil {
		return fmt.Errorf("read snapshot header: %w", err)
	}
	var header snapshotHeader
	if err := json.Unmarshal(line, &header); err != nil {
		return fmt.Errorf("parse snapshot header: %w", err)
	}
	if header.Version != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", header.Version)
	}
	if err := s.checkComponentNames(header.Components); err != nil {
		return err
	}

	s.registerGobValues()
	gd := gob.NewDecoder(br)
	for i := 0; i < header.Entities; i++ {
		var blob recordBlob
		if err := gd.Decode(&blob); err != nil {
			return fmt.Errorf("gob decode: %w", err)
		}
		s.restoreBlob(blob)
	}
	return nil
}

func encoderLevel(name string) (zstd.EncoderLevel, error) {
	switch name {
	case "fastest":
		return zstd.SpeedFastest, nil
	case "", "default":
		return zstd.SpeedDefault, nil
	case "better":
		return zstd.SpeedBetterCompression, nil
	}
	return 0, fmt.Errorf("unknown compression level %q", name)
}

func (s *Storage) componentNames() []string {
	names := make([]string, len(s.components))
	for i, comp := range s.components {
		names[i] = comp.name
	}
	return names
}

func (s *Storage) checkComponentNames(names []string) error {
	if len(names) != len(s.components) {
		return fmt.Errorf("snapshot has %d components, storage has %d", len(names), len(s.components))
	}
	for i, name := range names {
		if s.components[i].name != name {
			return fmt.Errorf("snapshot component %d is %q, storage has %q", i, name, s.components[i].name)
		}
	}
	return nil
}

// registerGobValues makes every boxed component's concrete type known to
// gob, which only sees them as interface values inside recordBlob.
func (s *Storage) registerGobValues() {
	for _, comp := range s.components {
		if !comp.flat {
			gob.Register(comp.zero())
		}
	}
}

func (s *Storage) blobFor(rec *Record) recordBlob {
	blob := recordBlob{
		Entity:     uint32(rec.en),
		Components: uint64(rec.components),
	}
	for c := ComponentID(0); c < ComponentID(len(s.components)); c++ {
		if !rec.components.ContainsBit(c) {
			continue
		}
		off := s.offset(rec.components, c)
		if comp := &s.components[c]; comp.flat {
			blob.Flat = append(blob.Flat, rec.data[off:off+comp.size])
		} else {
			blob.Boxed = append(blob.Boxed, s.holderValue(handleAt(rec.data, off)))
		}
	}
	return blob
}

// restoreBlob rebuilds one record in place. Components arrive in ascending
// id order, which is exactly the packing order, so the buffer is rebuilt by
// appending span after span.
func (s *Storage) restoreBlob(blob recordBlob) {
	rec := s.Make(Entity(blob.Entity))
	rec.releaseHolders()
	rec.components = 0
	rec.dirty = 0
	rec.data = rec.data[:0]

	restored := Mask(blob.Components)
	flat, boxed := 0, 0
	for c := ComponentID(0); c < ComponentID(len(s.components)); c++ {
		if !restored.ContainsBit(c) {
			continue
		}
		if comp := &s.components[c]; comp.flat {
			rec.data = append(rec.data, blob.Flat[flat]...)
			flat++
		} else {
			handle := s.newHolder(c, blob.Boxed[boxed])
			boxed++
			var span [holderHandleSize]byte
			putHandle(span[:], 0, handle)
			rec.data = append(rec.data, span[:]...)
		}
	}
	rec.components = restored
}
