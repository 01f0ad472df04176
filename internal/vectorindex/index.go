// Package vectorindex implements a flat, exhaustive nearest-neighbour
// index over float32 embeddings with squared Euclidean distance.
//
// Search compares the query against every stored vector, giving exact
// nearest neighbours at O(n*D) per query. Corpora are single-repository
// scale (thousands of chunks, not millions), so exactness wins over
// approximate structures here.
package vectorindex

import (
	"fmt"
	"sort"

	"github.com/orion-labs/orionwiki/internal/core/domain"
)

// Index owns a dense matrix of vectors and a parallel ordered sequence of
// chunk records, index-aligned 1:1. The dimension is fixed at creation for
// the lifetime of the index.
type Index struct {
	dim     int
	vectors [][]float32
	records []domain.Chunk
}

// New creates an empty index bound to the given dimension.
func New(dim int) (*Index, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dimension must be positive, got %d", domain.ErrInvalidInput, dim)
	}
	return &Index{dim: dim}, nil
}

// Dim returns the fixed embedding dimension.
func (ix *Index) Dim() int {
	return ix.dim
}

// Len returns the number of stored vectors.
func (ix *Index) Len() int {
	return len(ix.vectors)
}

// Add appends vectors and their records in input order. The call is
// atomic: every vector is validated against the index dimension before
// anything is appended, so a failing add leaves the index unchanged.
// On success the records are immediately searchable.
func (ix *Index) Add(vectors [][]float32, records []domain.Chunk) error {
	if len(vectors) != len(records) {
		return fmt.Errorf("%w: %d vectors for %d records", domain.ErrInvalidInput, len(vectors), len(records))
	}
	for i, v := range vectors {
		if len(v) != ix.dim {
			return fmt.Errorf("%w: vector %d has dimension %d, index expects %d",
				domain.ErrDimensionMismatch, i, len(v), ix.dim)
		}
	}

	ix.vectors = append(ix.vectors, vectors...)
	ix.records = append(ix.records, records...)
	return nil
}

// Search returns up to k records ordered by ascending squared L2 distance
// to the query (nearest first). An index holding fewer than k vectors
// returns as many as exist; an empty index returns an empty result,
// never an error.
func (ix *Index) Search(query []float32, k int) ([]domain.RetrievedChunk, error) {
	if len(query) != ix.dim {
		return nil, fmt.Errorf("%w: query has dimension %d, index expects %d",
			domain.ErrDimensionMismatch, len(query), ix.dim)
	}
	if k <= 0 || len(ix.vectors) == 0 {
		return []domain.RetrievedChunk{}, nil
	}

	type scored struct {
		pos   int
		score float32
	}

	all := make([]scored, len(ix.vectors))
	for i, v := range ix.vectors {
		all[i] = scored{pos: i, score: squaredL2(query, v)}
	}

	sort.SliceStable(all, func(a, b int) bool {
		return all[a].score < all[b].score
	})

	if k > len(all) {
		k = len(all)
	}

	results := make([]domain.RetrievedChunk, 0, k)
	for _, s := range all[:k] {
		// Copy the record; stored metadata is never handed out mutably.
		results = append(results, domain.RetrievedChunk{
			Chunk: ix.records[s.pos],
			Score: s.score,
		})
	}
	return results, nil
}

func squaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
