package schematic

import (
	"testing"

	"github.com/nicolasmd87/voxelmesh/internal/blockkey"
)

func TestMemoryIterChunksOrderingAndBounds(t *testing.T) {
	m := NewMemory(32, 32, 32)
	stone := blockkey.New("minecraft:stone", nil)

	m.Set(0, 0, 0, stone)
	m.Set(1, 0, 0, stone)
	m.Set(16, 0, 0, stone)
	m.Set(-1, 0, 0, stone)

	cursor := m.IterChunks(16)

	var chunks []RawChunk
	for {
		c, ok := cursor.Next()
		if !ok {
			break
		}
		chunks = append(chunks, c)
	}

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks (x=-1, x=0..15, x=16), got %d", len(chunks))
	}

	for i := 1; i < len(chunks); i++ {
		prev, cur := chunks[i-1].Origin, chunks[i].Origin
		if !lexLess(prev, cur) {
			t.Fatalf("chunk origins not lexicographic: %v then %v", prev, cur)
		}
	}

	if got, ok := m.GetBlock(0, 0, 0); !ok || !got.Equal(stone) {
		t.Fatal("expected stone at origin")
	}
	if _, ok := m.GetBlock(100, 100, 100); ok {
		t.Fatal("out-of-bounds read should return false, not panic or default")
	}
}

func lexLess(a, b [3]int32) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	if a[1] != b[1] {
		return a[1] < b[1]
	}
	return a[2] < b[2]
}
