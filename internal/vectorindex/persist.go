package vectorindex

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orion-labs/orionwiki/internal/core/domain"
)

// Vector file layout: magic, format version, dimension and vector count as
// little-endian uint32 headers, followed by count*dim float32 values in
// row-major order. Metadata is a sibling JSON array of chunk records; the
// two files must always be written and loaded together.
const (
	fileMagic     = uint32(0x4F575649) // "OWVI"
	formatVersion = uint32(1)

	// headerSize is the byte length of the four uint32 header fields.
	headerSize = int64(16)
)

// Save writes the vector data and the metadata sequence as two co-located
// artifacts. Parent directories are created as needed.
func (ix *Index) Save(vectorPath, metaPath string) error {
	if err := os.MkdirAll(filepath.Dir(vectorPath), 0o700); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(metaPath), 0o700); err != nil {
		return fmt.Errorf("create meta dir: %w", err)
	}

	f, err := os.Create(vectorPath)
	if err != nil {
		return fmt.Errorf("create vector file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	header := []uint32{fileMagic, formatVersion, uint32(ix.dim), uint32(len(ix.vectors))}
	for _, h := range header {
		if err := binary.Write(w, binary.LittleEndian, h); err != nil {
			return fmt.Errorf("write vector header: %w", err)
		}
	}
	for _, vec := range ix.vectors {
		if err := binary.Write(w, binary.LittleEndian, vec); err != nil {
			return fmt.Errorf("write vector data: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush vector file: %w", err)
	}

	meta, err := json.MarshalIndent(ix.records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	if err := os.WriteFile(metaPath, meta, 0o600); err != nil {
		return fmt.Errorf("write metadata file: %w", err)
	}
	return nil
}

// Load reads an index previously written by Save. A metadata file whose
// record count disagrees with the vector file's count is rejected: the
// index-aligned invariant must hold before first use.
func Load(vectorPath, metaPath string) (*Index, error) {
	f, err := os.Open(vectorPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrIndexNotFound, vectorPath)
		}
		return nil, fmt.Errorf("open vector file: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var magic, version, dim, count uint32
	for _, dst := range []*uint32{&magic, &version, &dim, &count} {
		if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
			return nil, fmt.Errorf("read vector header: %w", err)
		}
	}
	if magic != fileMagic {
		return nil, fmt.Errorf("%w: not a vector index file: %s", domain.ErrInvalidInput, vectorPath)
	}
	if version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported vector index version %d", domain.ErrInvalidInput, version)
	}
	if dim == 0 {
		return nil, fmt.Errorf("%w: vector file declares zero dimension", domain.ErrInvalidInput)
	}

	// The declared count must agree with the file size before anything is
	// allocated from it; a corrupted header must not drive allocation.
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat vector file: %w", err)
	}
	want := headerSize + int64(count)*int64(dim)*4
	if info.Size() != want {
		return nil, fmt.Errorf("%w: vector file size %d does not match declared count %d (dim %d)",
			domain.ErrInvalidInput, info.Size(), count, dim)
	}

	vectors := make([][]float32, count)
	for i := range vectors {
		vec := make([]float32, dim)
		if err := binary.Read(r, binary.LittleEndian, vec); err != nil {
			return nil, fmt.Errorf("read vector %d: %w", i, err)
		}
		vectors[i] = vec
	}

	metaBytes, err := os.ReadFile(metaPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrIndexNotFound, metaPath)
		}
		return nil, fmt.Errorf("read metadata file: %w", err)
	}

	var records []domain.Chunk
	if err := json.Unmarshal(metaBytes, &records); err != nil {
		return nil, fmt.Errorf("parse metadata file: %w", err)
	}

	if len(records) != int(count) {
		return nil, fmt.Errorf("%w: metadata holds %d records, vector file holds %d vectors",
			domain.ErrInvalidInput, len(records), count)
	}

	return &Index{
		dim:     int(dim),
		vectors: vectors,
		records: records,
	}, nil
}
