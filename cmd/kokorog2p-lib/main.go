// Package main builds as a c-shared library exposing the
// grapheme-to-phoneme pipeline over a C ABI: token arrays as a
// {data pointer, count} record and phonemes as a NUL-terminated
// string. Every returned buffer is owned by the caller and released
// through the matching kokoro_free_* function.
//
// Build with:
//
//	go build -buildmode=c-shared -o libkokorog2p.so ./cmd/kokorog2p-lib
package main

/*
#include <stdint.h>
#include <stdlib.h>

typedef struct {
	int64_t *data;
	size_t   len;
} kokoro_token_array;
*/
import "C"

import (
	"log/slog"
	"sync"
	"unsafe"

	"github.com/example/go-kokoro-g2p/internal/pipeline"
)

const defaultLanguage = "en-us"

var (
	g2pOnce sync.Once
	g2p     *pipeline.G2P
)

func sharedG2P() *pipeline.G2P {
	g2pOnce.Do(func() {
		g2p = pipeline.New(slog.Default())
	})
	return g2p
}

func goLanguage(language *C.char) string {
	if language == nil {
		return defaultLanguage
	}
	lang := C.GoString(language)
	if lang == "" {
		return defaultLanguage
	}
	return lang
}

//export kokoro_text_to_tokens
func kokoro_text_to_tokens(text, language *C.char) C.kokoro_token_array {
	empty := C.kokoro_token_array{}
	if text == nil {
		return empty
	}

	res, err := sharedG2P().Process(C.GoString(text), goLanguage(language))
	if err != nil || len(res.Tokens) == 0 {
		return empty
	}

	n := len(res.Tokens)
	buf := C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(C.int64_t(0))))
	if buf == nil {
		return empty
	}

	out := unsafe.Slice((*int64)(buf), n)
	copy(out, res.Tokens)

	return C.kokoro_token_array{
		data: (*C.int64_t)(buf),
		len:  C.size_t(n),
	}
}

//export kokoro_free_tokens
func kokoro_free_tokens(array C.kokoro_token_array) {
	if array.data != nil {
		C.free(unsafe.Pointer(array.data))
	}
}

//export kokoro_text_to_phonemes
func kokoro_text_to_phonemes(text, language *C.char) *C.char {
	if text == nil {
		return nil
	}

	res, err := sharedG2P().Process(C.GoString(text), goLanguage(language))
	if err != nil {
		return nil
	}

	return C.CString(res.Phonemes)
}

//export kokoro_free_string
func kokoro_free_string(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

var (
	versionOnce sync.Once
	versionPtr  *C.char
)

//export kokoro_version
func kokoro_version() *C.char {
	versionOnce.Do(func() {
		versionPtr = C.CString("0.4.0")
	})
	return versionPtr
}

func main() {}
