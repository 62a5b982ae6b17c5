package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccardDistanceMicroCase(t *testing.T) {
	ctx := getContext()
	defer putContext(ctx)
	// [1,2,3,4] vs [1,2,3] as rune-coded sets: distance = 1 - 3/4 = 0.25.
	a := []rune{1, 2, 3, 4}
	b := []rune{1, 2, 3}
	assert.InDelta(t, 0.25, JaccardDistance(ctx, a, b), 1e-9)
}

func TestJaccardEmptyEmptyIsOne(t *testing.T) {
	ctx := getContext()
	defer putContext(ctx)
	assert.Equal(t, 1.0, Jaccard(ctx, nil, nil))
}

func TestJaccardEmptyVsNonemptyIsZero(t *testing.T) {
	ctx := getContext()
	defer putContext(ctx)
	assert.Equal(t, 0.0, Jaccard(ctx, nil, []rune("a")))
	assert.Equal(t, 0.0, Jaccard(ctx, []rune("a"), nil))
}

func TestJaccardSymmetric(t *testing.T) {
	ctx := getContext()
	defer putContext(ctx)
	a, b := []rune("mailbox"), []rune("maiblox")
	assert.Equal(t, Jaccard(ctx, a, b), Jaccard(ctx, b, a))
}

func TestJaccardDisjointNonemptyIsOneDistance(t *testing.T) {
	ctx := getContext()
	defer putContext(ctx)
	assert.Equal(t, 0.0, Jaccard(ctx, []rune("abc"), []rune("xyz")))
}

func TestJaccardIdenticalSetsIsOne(t *testing.T) {
	ctx := getContext()
	defer putContext(ctx)
	assert.Equal(t, 1.0, Jaccard(ctx, []rune("banana"), []rune("aabnn")))
}
