package meshadapter

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/nicolasmd87/voxelmesh/internal/category"
)

func categoryFromUint32(v uint32) category.Category {
	return category.Category(int(v))
}

// nodeMagic mirrors the teacher's "MESH" magic-numbered header idiom
// (internal/renderer/mesh_serialization.go), repurposed for our Node.
const nodeMagic uint32 = 0x4e4f4445 // "NODE"
const nodeVersion uint32 = 1

// EncodeBinary gzip-compresses a Node into the wire format a build-session
// sink hands to the host process.
func EncodeBinary(n *Node) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)

	if err := binary.Write(gz, binary.LittleEndian, nodeMagic); err != nil {
		return nil, err
	}
	if err := binary.Write(gz, binary.LittleEndian, nodeVersion); err != nil {
		return nil, err
	}
	if err := binary.Write(gz, binary.LittleEndian, uint32(n.Category)); err != nil {
		return nil, err
	}
	if err := binary.Write(gz, binary.LittleEndian, n.Origin); err != nil {
		return nil, err
	}
	if err := binary.Write(gz, binary.LittleEndian, n.Scale); err != nil {
		return nil, err
	}

	if err := writeFloat32Slice(gz, n.Positions); err != nil {
		return nil, err
	}
	if err := writeFloat32Slice(gz, n.Normals); err != nil {
		return nil, err
	}
	if err := writeFloat32Slice(gz, n.UVs); err != nil {
		return nil, err
	}
	if err := writeUint32Slice(gz, n.Indices); err != nil {
		return nil, err
	}

	if err := binary.Write(gz, binary.LittleEndian, uint32(len(n.Groups))); err != nil {
		return nil, err
	}
	for _, g := range n.Groups {
		if err := binary.Write(gz, binary.LittleEndian, g.MaterialIndex); err != nil {
			return nil, err
		}
		if err := binary.Write(gz, binary.LittleEndian, int32(g.Start)); err != nil {
			return nil, err
		}
		if err := binary.Write(gz, binary.LittleEndian, int32(g.Count)); err != nil {
			return nil, err
		}
	}

	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBinary reverses EncodeBinary. Material texture/tint/rotation are not
// round-tripped (they live in the registry, looked up by MaterialIndex on
// the receiving side).
func DecodeBinary(data []byte) (*Node, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("meshadapter: gzip reader: %w", err)
	}
	defer gz.Close()

	var magic, version, cat uint32
	if err := binary.Read(gz, binary.LittleEndian, &magic); err != nil {
		return nil, err
	}
	if magic != nodeMagic {
		return nil, fmt.Errorf("meshadapter: bad magic %x", magic)
	}
	if err := binary.Read(gz, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if version != nodeVersion {
		return nil, fmt.Errorf("meshadapter: unsupported version %d", version)
	}
	if err := binary.Read(gz, binary.LittleEndian, &cat); err != nil {
		return nil, err
	}

	n := &Node{Category: categoryFromUint32(cat)}

	if err := binary.Read(gz, binary.LittleEndian, &n.Origin); err != nil {
		return nil, err
	}
	if err := binary.Read(gz, binary.LittleEndian, &n.Scale); err != nil {
		return nil, err
	}

	var err2 error
	if n.Positions, err2 = readFloat32Slice(gz); err2 != nil {
		return nil, err2
	}
	if n.Normals, err2 = readFloat32Slice(gz); err2 != nil {
		return nil, err2
	}
	if n.UVs, err2 = readFloat32Slice(gz); err2 != nil {
		return nil, err2
	}
	if n.Indices, err2 = readUint32Slice(gz); err2 != nil {
		return nil, err2
	}

	var groupCount uint32
	if err := binary.Read(gz, binary.LittleEndian, &groupCount); err != nil {
		return nil, err
	}
	n.Groups = make([]MaterialGroup, groupCount)
	for i := range n.Groups {
		var materialIndex uint32
		var start, count int32
		if err := binary.Read(gz, binary.LittleEndian, &materialIndex); err != nil {
			return nil, err
		}
		if err := binary.Read(gz, binary.LittleEndian, &start); err != nil {
			return nil, err
		}
		if err := binary.Read(gz, binary.LittleEndian, &count); err != nil {
			return nil, err
		}
		n.Groups[i] = MaterialGroup{MaterialIndex: materialIndex, Start: int(start), Count: int(count)}
	}

	return n, nil
}

func writeFloat32Slice(w io.Writer, s []float32) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, s)
}

func readFloat32Slice(r io.Reader) ([]float32, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	s := make([]float32, n)
	if n == 0 {
		return s, nil
	}
	if err := binary.Read(r, binary.LittleEndian, s); err != nil {
		return nil, err
	}
	return s, nil
}

func writeUint32Slice(w io.Writer, s []uint32) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, s)
}

func readUint32Slice(r io.Reader) ([]uint32, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	s := make([]uint32, n)
	if n == 0 {
		return s, nil
	}
	if err := binary.Read(r, binary.LittleEndian, s); err != nil {
		return nil, err
	}
	return s, nil
}
