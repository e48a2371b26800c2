package vector

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDimensionMismatch is returned when a vector does not match the index dimension.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrEmptyVector is returned when an empty vector is added or searched.
	ErrEmptyVector = errors.New("empty vector")
)

// Hit is one nearest-neighbor result.
type Hit struct {
	Position int
	Score    float32
}

// FlatIndex is an exact inner-product index over L2-normalized vectors.
// Positions are assigned in insertion order. A FlatIndex is not safe for
// concurrent Add; once filled it may be searched concurrently.
type FlatIndex struct {
	dim     int
	vectors [][]float32
}

// NewFlatIndex creates an index for vectors of the given dimension.
// A dimension of 0 is fixed by the first Add.
func NewFlatIndex(dim int) *FlatIndex {
	return &FlatIndex{dim: dim}
}

// Dim returns the vector dimension of the index.
func (ix *FlatIndex) Dim() int {
	return ix.dim
}

// Len returns the number of indexed vectors.
func (ix *FlatIndex) Len() int {
	return len(ix.vectors)
}

// Add normalizes v and appends it, returning its position.
func (ix *FlatIndex) Add(v []float32) (int, error) {
	if len(v) == 0 {
		return 0, ErrEmptyVector
	}
	if ix.dim == 0 {
		ix.dim = len(v)
	}
	if len(v) != ix.dim {
		return 0, fmt.Errorf("%w: expected %d, got %d", ErrDimensionMismatch, ix.dim, len(v))
	}
	ix.vectors = append(ix.vectors, Normalize(v))
	return len(ix.vectors) - 1, nil
}

// Search normalizes the query and returns the topK positions with the
// highest inner product, best first. Scores are not thresholded. Equal
// scores keep insertion order.
func (ix *FlatIndex) Search(query []float32, topK int) ([]Hit, error) {
	if topK <= 0 || len(ix.vectors) == 0 {
		return nil, nil
	}
	if len(query) == 0 {
		return nil, ErrEmptyVector
	}
	if len(query) != ix.dim {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrDimensionMismatch, ix.dim, len(query))
	}

	q := Normalize(query)
	hits := make([]Hit, len(ix.vectors))
	for pos, v := range ix.vectors {
		hits[pos] = Hit{Position: pos, Score: Dot(q, v)}
	}

	slices.SortStableFunc(hits, func(a, b Hit) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}
