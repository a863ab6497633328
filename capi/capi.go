// Package main is the C-ABI facade for foreign callers. Built with
// `go build -buildmode=c-shared` (or c-archive), it exports two entry
// points mirroring the reference implementation's `extern "C"` functions,
// plus free_hash_string, the deallocator for hash_buffer_raw's result.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"strings"
	"unsafe"

	"github.com/cosmorse/fuzzyhash"
)

// hash_buffer_raw hashes length bytes at ptr and returns an owned C string.
// The caller must release it with free_hash_string.
//
//export hash_buffer_raw
func hash_buffer_raw(ptr *C.char, length C.size_t) *C.char {
	data := C.GoBytes(unsafe.Pointer(ptr), C.int(length))
	hash, err := ssdeep.Bytes(data)
	if err != nil {
		return C.CString("")
	}
	return C.CString(hash)
}

// compare_strings_raw decodes both C strings leniently (invalid UTF-8 is
// replaced, not rejected) and returns the comparator's score, or 0 on any
// parse failure.
//
//export compare_strings_raw
func compare_strings_raw(first, second *C.char) C.uint32_t {
	a := strings.ToValidUTF8(C.GoString(first), "�")
	b := strings.ToValidUTF8(C.GoString(second), "�")

	score, err := ssdeep.Compare(a, b)
	if err != nil {
		return 0
	}
	return C.uint32_t(score)
}

// free_hash_string releases a string previously returned by
// hash_buffer_raw. It is the matching deallocator the FFI contract requires.
//
//export free_hash_string
func free_hash_string(ptr *C.char) {
	C.free(unsafe.Pointer(ptr))
}

func main() {}
