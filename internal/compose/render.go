package compose

import "hankey/internal/jamo"

// Render resolves a stack to the single character it currently displays.
// ok is false only for the empty stack.
func Render(s Stack) (rune, bool) {
	if len(s) == 0 {
		return 0, false
	}

	if s[0].Role == RoleVowelAlone {
		m := s[0].Vowel
		if len(s) > 1 {
			if combined, ok := jamo.CombineVowels(m, s[1].Vowel); ok {
				m = combined
			}
		}
		return m.Rune(), true
	}

	// A lone initial is the standalone consonant jamo, not a syllable block.
	if len(s) == 1 {
		return s[0].Consonant.Rune(), true
	}

	// The vowel identity space and the 21 medial positions share one order,
	// so the identity doubles as the medial index.
	medial := jamo.Moeum(0)
	final := 0
	for i := 1; i < len(s); i++ {
		slot := s[i]
		switch slot.Role {
		case RoleMedial:
			medial = slot.Vowel
		case RoleMedialCombined:
			if combined, ok := jamo.CombineVowels(medial, slot.Vowel); ok {
				medial = combined
			}
		case RoleFinal, RoleFinalGeminate:
			if idx, ok := jamo.FinalIndex(slot.Consonant); ok {
				final = idx
			}
		case RoleFinalCluster:
			if combined, ok := jamo.CombineFinals(s[i-1].Consonant, slot.Consonant); ok {
				if idx, ok := jamo.FinalIndex(combined); ok {
					final = idx
				}
			}
		}
	}

	initial, _ := jamo.InitialIndex(s[0].Consonant)
	code := jamo.SyllableBase + (initial*jamo.MedialCount+int(medial))*jamo.FinalCount + final
	return rune(code), true
}

// RenderString is Render for callers that want "" instead of a missing rune.
func RenderString(s Stack) string {
	r, ok := Render(s)
	if !ok {
		return ""
	}
	return string(r)
}
