package heuristic

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// writeUint16Array and readUint16Array isolate the raw wire format (flat
// little-endian uint16s, no header) from file-size validation, so the
// encoding itself can be exercised against a small in-memory buffer
// without allocating a full-size table.
func writeUint16Array(w io.Writer, data []uint16) error {
	return binary.Write(w, binary.LittleEndian, data)
}

func readUint16Array(r io.Reader, data []uint16) error {
	return binary.Read(r, binary.LittleEndian, data)
}

// SaveCorner writes t to path as a raw little-endian uint16 array of
// exactly NumCornerStates entries (2*NumCornerStates bytes total), the
// exact layout spec.md §6 mandates.
func SaveCorner(path string, t CornerTable) error {
	if len(t) != NumCornerStates {
		return fmt.Errorf("heuristic: corner table has %d entries, want %d", len(t), NumCornerStates)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeUint16Array(f, t)
}

// LoadCorner reads a corner table previously written by SaveCorner.
func LoadCorner(path string) (CornerTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t := make(CornerTable, NumCornerStates)
	if err := readUint16Array(f, t); err != nil {
		return nil, fmt.Errorf("heuristic: reading corner table: %w", err)
	}
	return t, nil
}

// SaveEdgeProjection writes t to path as a raw byte array of exactly
// NumEdgeProjectionStates entries.
func SaveEdgeProjection(path string, t EdgeProjectionTable) error {
	if len(t) != NumEdgeProjectionStates {
		return fmt.Errorf("heuristic: edge projection table has %d entries, want %d", len(t), NumEdgeProjectionStates)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(t)
	return err
}

// LoadEdgeProjection reads an edge projection table previously written
// by SaveEdgeProjection.
func LoadEdgeProjection(path string) (EdgeProjectionTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t := make(EdgeProjectionTable, NumEdgeProjectionStates)
	if _, err := io.ReadFull(f, t); err != nil {
		return nil, fmt.Errorf("heuristic: reading edge projection table: %w", err)
	}
	return t, nil
}
