package lexicon

import "strings"

const (
	primaryStress   = "ˈ"
	secondaryStress = "ˌ"

	// Vowel symbols that can carry stress.
	stressVowels = "AIOQWYaiuæɑɒɔəɛɜɪʊʌᵻ"
)

// ApplyStress rewrites the stress marks of a phoneme string.
//
//	level < -1  strip all stress
//	level = -1  demote primary to secondary
//	level =  0  demote if primary present, otherwise add secondary
//	level =  1  promote secondary to primary, or add secondary if none
//	level >  1  add primary stress if none present
//
// Strings with no stressable vowel are returned unchanged.
func ApplyStress(phonemes string, level int) string {
	hasPrimary := strings.Contains(phonemes, primaryStress)
	hasSecondary := strings.Contains(phonemes, secondaryStress)

	switch {
	case level < -1:
		stripped := strings.ReplaceAll(phonemes, primaryStress, "")
		return strings.ReplaceAll(stripped, secondaryStress, "")
	case level == -1 || (level == 0 && hasPrimary):
		demoted := strings.ReplaceAll(phonemes, secondaryStress, "")
		return strings.ReplaceAll(demoted, primaryStress, secondaryStress)
	case (level == 0 || level == 1) && !hasPrimary && !hasSecondary:
		if !strings.ContainsAny(phonemes, stressVowels) {
			return phonemes
		}
		return secondaryStress + phonemes
	case level >= 1 && !hasPrimary && hasSecondary:
		return strings.ReplaceAll(phonemes, secondaryStress, primaryStress)
	case level > 1 && !hasPrimary && !hasSecondary:
		if !strings.ContainsAny(phonemes, stressVowels) {
			return phonemes
		}
		return primaryStress + phonemes
	}
	return phonemes
}
