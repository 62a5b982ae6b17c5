package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAddSearchDestroy(t *testing.T) {
	id := CreateStore()
	defer DestroyStore(id)

	AddRecord(id, "10", 0, "Pencil case", nil, nil)
	AddRecord(id, "20", 0, "Leather pencil case", nil, nil)

	count := RunSearch(id, "pencil", nil, nil)
	require.Greater(t, count, 0)
	ids := GetResultIDs(id)
	assert.Len(t, ids, count)
}

func TestUnknownStoreIDIsFatal(t *testing.T) {
	assert.Panics(t, func() { SetLimit(999999, 5) })
	assert.Panics(t, func() { DestroyStore(999999) })
}

func TestMalformedWordsIsFatal(t *testing.T) {
	id := CreateStore()
	defer DestroyStore(id)
	assert.Panics(t, func() {
		AddRecord(id, "1", 0, "anything", nil, []int32{1, 2, 3})
	}, "words[] length not a multiple of 6 must be fatal")
}

func TestAddRecordAndSearchUTF8Bytes(t *testing.T) {
	id := CreateStore()
	defer DestroyStore(id)

	AddRecordUTF8Bytes(id, "10", 0, []byte("Pencil case"), nil, nil)
	AddRecordUTF8Bytes(id, "20", 0, []byte("Leather pencil case"), nil, nil)

	count := RunSearchUTF8Bytes(id, []byte("pencil"), nil, nil)
	require.Greater(t, count, 0)
	assert.Len(t, GetResultIDs(id), count)
}

func TestSetLimitAndHighlightWith(t *testing.T) {
	id := CreateStore()
	defer DestroyStore(id)
	SetLimit(id, 1)
	HighlightWith(id, "<", ">")

	AddRecord(id, "10", 0, "Pencil case", nil, nil)
	AddRecord(id, "20", 0, "Pen case", nil, nil)

	count := RunSearch(id, "pen", nil, nil)
	assert.LessOrEqual(t, count, 1)
	titles := GetResultTitles(id)
	if count > 0 {
		assert.Contains(t, titles, "<")
	}
}
