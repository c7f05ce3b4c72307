//go:build js && wasm

// WASM kernel exposing the grapheme-to-phoneme pipeline to JavaScript
// as a global KokoroG2PKernel object.
package main

import (
	"log/slog"
	"syscall/js"

	"github.com/example/go-kokoro-g2p/internal/pipeline"
)

var g2p = pipeline.New(slog.Default())

func main() {
	kernel := map[string]any{
		"version":   "0.4.0-wasm",
		"languages": js.FuncOf(listLanguages),
		"phonemize": js.FuncOf(phonemizeText),
		"tokenize":  js.FuncOf(tokenizeText),
	}

	js.Global().Set("KokoroG2PKernel", js.ValueOf(kernel))
	println("KokoroG2P wasm kernel loaded")
	select {}
}

func listLanguages(js.Value, []js.Value) any {
	langs := pipeline.Languages()
	out := make([]any, len(langs))
	for i, lang := range langs {
		out[i] = lang
	}
	return js.ValueOf(out)
}

// phonemizeText(text, language?) → {language, phonemes} or {error}.
func phonemizeText(_ js.Value, args []js.Value) any {
	text, lang, errVal := kernelArgs(args)
	if errVal != nil {
		return errVal
	}

	canonical, err := pipeline.CanonicalLanguage(lang)
	if err != nil {
		return errorValue(err)
	}

	res, err := g2p.Process(text, canonical)
	if err != nil {
		return errorValue(err)
	}

	return js.ValueOf(map[string]any{
		"language": canonical,
		"phonemes": res.Phonemes,
	})
}

// tokenizeText(text, language?) → {language, tokens} or {error}.
// Token IDs are returned as float64-safe numbers; the vocabulary is
// far below 2^53, so no precision is lost crossing the JS boundary.
func tokenizeText(_ js.Value, args []js.Value) any {
	text, lang, errVal := kernelArgs(args)
	if errVal != nil {
		return errVal
	}

	canonical, err := pipeline.CanonicalLanguage(lang)
	if err != nil {
		return errorValue(err)
	}

	res, err := g2p.Process(text, canonical)
	if err != nil {
		return errorValue(err)
	}

	tokens := make([]any, len(res.Tokens))
	for i, tok := range res.Tokens {
		tokens[i] = float64(tok)
	}

	return js.ValueOf(map[string]any{
		"language": canonical,
		"tokens":   tokens,
	})
}

func kernelArgs(args []js.Value) (text, lang string, errVal any) {
	if len(args) < 1 || args[0].Type() != js.TypeString {
		return "", "", errorMessage("text argument is required")
	}
	text = args[0].String()

	lang = "en-us"
	if len(args) > 1 && args[1].Type() == js.TypeString && args[1].String() != "" {
		lang = args[1].String()
	}
	return text, lang, nil
}

func errorValue(err error) any {
	return errorMessage(err.Error())
}

func errorMessage(msg string) any {
	return js.ValueOf(map[string]any{"error": msg})
}
