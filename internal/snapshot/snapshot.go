// Package snapshot implements the on-disk dump format written by
// memarena-inspect: a JSON document describing an arena's region list at a
// point in time, gated by a semantic format version and protected by a
// checksum so a reader can refuse a snapshot from an incompatible or
// corrupted writer.
package snapshot

import (
	"encoding/json"
	"fmt"

	semver "github.com/Masterminds/semver/v3"
	"github.com/dolthub/maphash"
)

// FormatVersion is the semantic version of the snapshot document shape
// produced by this build. Readers check a snapshot's version against
// SupportedConstraint rather than requiring an exact match. The checksum is
// recomputed over the fields this reader's Document declares, so a snapshot
// whose document carries fields unknown to the reader fails the checksum
// check even when its version is accepted.
const FormatVersion = "1.0.0"

// SupportedConstraint accepts any snapshot sharing this build's major
// version. A breaking format change bumps FormatVersion's major and this
// constraint together.
const SupportedConstraint = "^1.0.0"

var hasher = maphash.NewHasher[string]()

// Region is one region's observable state at snapshot time.
type Region struct {
	Index     int    `json:"index"`
	Used      uint64 `json:"used"`
	Capacity  uint64 `json:"capacity"`
	Free      uint64 `json:"free"`
	AllocCnt  int64  `json:"alloc_cnt"`
	LastAlloc uint64 `json:"last_alloc"`
	IsTail    bool   `json:"is_tail"`
}

// Document is the full snapshot body, before checksumming.
type Document struct {
	FormatVersion string   `json:"format_version"`
	PageSize      uint64   `json:"page_size"`
	DefaultSize   uint64   `json:"default_size"`
	EmbedSize     uint64   `json:"embed_size"`
	Regions       []Region `json:"regions"`
}

// Snapshot is a Document plus its checksum, the unit actually written to
// and read from disk.
type Snapshot struct {
	Document Document `json:"document"`
	Checksum uint64   `json:"checksum"`
}

// New builds a Snapshot over doc, stamping FormatVersion and computing the
// checksum.
func New(doc Document) Snapshot {
	doc.FormatVersion = FormatVersion
	return Snapshot{Document: doc, Checksum: checksum(doc)}
}

// Marshal serializes the snapshot to indented JSON.
func (s Snapshot) Marshal() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Parse decodes a snapshot and validates its format version and checksum.
func Parse(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: decode: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}

	return s, nil
}

// Validate checks the document's format version against SupportedConstraint
// and recomputes the checksum to detect truncation or tampering.
func (s Snapshot) Validate() error {
	constraint, err := semver.NewConstraint(SupportedConstraint)
	if err != nil {
		return fmt.Errorf("snapshot: invalid support constraint %q: %w", SupportedConstraint, err)
	}

	v, err := semver.NewVersion(s.Document.FormatVersion)
	if err != nil {
		return fmt.Errorf("snapshot: invalid format_version %q: %w", s.Document.FormatVersion, err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("snapshot: format_version %s is not supported by this reader (%s)", v, SupportedConstraint)
	}

	if want := checksum(s.Document); want != s.Checksum {
		return fmt.Errorf("snapshot: checksum mismatch: got %#x, want %#x", s.Checksum, want)
	}

	return nil
}

func checksum(doc Document) uint64 {
	// The checksum covers the canonical JSON encoding of the document
	// rather than its in-memory layout, so it is stable across platforms.
	body, err := json.Marshal(doc)
	if err != nil {
		return 0
	}

	return hasher.Hash(string(body))
}
