package zh

// Tone sandhi for connected speech. Rules apply in place, in fixed
// order: 一 (yi), 不 (bu), then third-tone. Each rule only lowers or
// flips tones based on the right neighbor, so a second application is
// a no-op.

// ApplySandhi rewrites tones across a syllable sequence.
func ApplySandhi(syllables []Syllable) {
	applyYiSandhi(syllables)
	applyBuSandhi(syllables)
	applyThirdToneSandhi(syllables)
}

// applyYiSandhi: 一 reads tone 2 before a fourth tone and tone 4
// before tones 1-3. Phrase-final 一 keeps its citation tone.
func applyYiSandhi(syllables []Syllable) {
	for i := range syllables {
		if syllables[i].Syllable != "yi" || syllables[i].Tone != 1 {
			continue
		}
		if i+1 >= len(syllables) {
			continue
		}
		switch syllables[i+1].Tone {
		case 4:
			syllables[i].Tone = 2
		case 1, 2, 3:
			syllables[i].Tone = 4
		}
	}
}

// applyBuSandhi: 不 reads tone 2 before a fourth tone.
func applyBuSandhi(syllables []Syllable) {
	for i := 0; i+1 < len(syllables); i++ {
		if syllables[i].Syllable == "bu" && syllables[i].Tone == 4 && syllables[i+1].Tone == 4 {
			syllables[i].Tone = 2
		}
	}
}

// applyThirdToneSandhi: in a run of third tones, all but the last
// become tone 2.
func applyThirdToneSandhi(syllables []Syllable) {
	for i := 0; i+1 < len(syllables); i++ {
		if syllables[i].Tone == 3 && syllables[i+1].Tone == 3 {
			syllables[i].Tone = 2
		}
	}
}
