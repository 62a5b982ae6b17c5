package abi

import "unsafe"

// Zero-copy byte/string conversions, grounded on the teacher's
// unsafe.go. There they back a byte-buffer hot path inside the engine
// itself; here they back the one place this repo actually receives
// raw bytes from a caller rather than a Go string: a cgo shim handing
// over a host-owned char* buffer via Go's C.GoBytes without an extra
// copy before it's handed to the string-based AddRecord/RunSearch.
//
// Safe here because: the returned string is only read for the
// duration of the call below, never retained past it, and the
// underlying buffer is never mutated afterward by this package.
func unsafeBytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// AddRecordUTF8Bytes is AddRecord for a caller that holds the title as
// a raw UTF-8 byte buffer (e.g. a cgo shim wrapping a host's char*)
// rather than a Go string, converting without copying.
func AddRecordUTF8Bytes(storeID uint64, recordID string, rating int, sourceUTF8 []byte, classes, words []int32) {
	AddRecord(storeID, recordID, rating, unsafeBytesToString(sourceUTF8), classes, words)
}

// RunSearchUTF8Bytes is RunSearch for a raw UTF-8 byte buffer query.
func RunSearchUTF8Bytes(storeID uint64, sourceUTF8 []byte, classes, words []int32) int {
	return RunSearch(storeID, unsafeBytesToString(sourceUTF8), classes, words)
}
