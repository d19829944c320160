package snapshot

import "testing"

func TestRoundTrip(t *testing.T) {
	doc := Document{
		PageSize:    4096,
		DefaultSize: 65536,
		Regions: []Region{
			{Index: 0, Used: 128, Capacity: 4096, Free: 3968, AllocCnt: 2, IsTail: true},
		},
	}

	s := New(doc)

	data, err := s.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got.Document.PageSize != doc.PageSize {
		t.Fatalf("PageSize = %d, want %d", got.Document.PageSize, doc.PageSize)
	}

	if got.Document.FormatVersion != FormatVersion {
		t.Fatalf("FormatVersion = %q, want %q", got.Document.FormatVersion, FormatVersion)
	}
}

func TestParseRejectsTamperedChecksum(t *testing.T) {
	s := New(Document{PageSize: 4096})

	data, err := s.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	tampered := make([]byte, len(data))
	copy(tampered, data)

	// Flipping the page_size digit invalidates the checksum without
	// breaking JSON syntax.
	for i, b := range tampered {
		if b == '4' {
			tampered[i] = '5'
			break
		}
	}

	if _, err := Parse(tampered); err == nil {
		t.Fatal("expected Parse to reject a tampered document")
	}
}

func TestParseRejectsUnsupportedVersion(t *testing.T) {
	s := New(Document{PageSize: 4096})
	s.Document.FormatVersion = "2.0.0"
	s.Checksum = checksum(s.Document)

	data, err := s.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if _, err := Parse(data); err == nil {
		t.Fatal("expected Parse to reject an unsupported major version")
	}
}
