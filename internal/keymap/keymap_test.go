package keymap

import (
	"testing"

	"hankey/internal/jamo"
)

func classifyRune(t *testing.T, l *Layout, key rune, shift bool) jamo.Input {
	t.Helper()
	in, ok := l.Classify(key, shift)
	if !ok {
		t.Fatalf("expected key %q (shift=%v) to classify", key, shift)
	}
	return in
}

func TestDubeolsikConsonants(t *testing.T) {
	l := Dubeolsik()

	in := classifyRune(t, l, 'r', false)
	if in.Kind != jamo.KindConsonant || in.Jaeum.Rune() != 'ㄱ' || in.Doubled {
		t.Fatalf("r: got %q doubled=%v", in.Jaeum.Rune(), in.Doubled)
	}

	in = classifyRune(t, l, 'r', true)
	if in.Jaeum.Rune() != 'ㄲ' || !in.Doubled {
		t.Fatalf("shift+r: got %q doubled=%v, want ㄲ doubled", in.Jaeum.Rune(), in.Doubled)
	}

	// Shift over a consonant without a shifted variant falls back to plain.
	in = classifyRune(t, l, 's', true)
	if in.Jaeum.Rune() != 'ㄴ' || in.Doubled {
		t.Fatalf("shift+s: got %q doubled=%v, want plain ㄴ", in.Jaeum.Rune(), in.Doubled)
	}

	in = classifyRune(t, l, 't', true)
	if in.Jaeum.Rune() != 'ㅆ' || !in.Doubled {
		t.Fatalf("shift+t: got %q doubled=%v, want ㅆ doubled", in.Jaeum.Rune(), in.Doubled)
	}
}

func TestDubeolsikVowels(t *testing.T) {
	l := Dubeolsik()

	in := classifyRune(t, l, 'k', false)
	if in.Kind != jamo.KindVowel || in.Moeum.Rune() != 'ㅏ' {
		t.Fatalf("k: got %q, want ㅏ", in.Moeum.Rune())
	}
	if in.Doubled {
		t.Fatalf("vowels are never doubled")
	}

	in = classifyRune(t, l, 'o', true)
	if in.Moeum.Rune() != 'ㅒ' {
		t.Fatalf("shift+o: got %q, want ㅒ", in.Moeum.Rune())
	}

	// Shift over a vowel with no distinct variant keeps the plain identity.
	in = classifyRune(t, l, 'k', true)
	if in.Moeum.Rune() != 'ㅏ' {
		t.Fatalf("shift+k: got %q, want ㅏ", in.Moeum.Rune())
	}
}

func TestClassifyUnmappedKey(t *testing.T) {
	l := Dubeolsik()
	for _, key := range []rune{'1', ' ', '.', 'ß'} {
		if _, ok := l.Classify(key, false); ok {
			t.Fatalf("expected key %q to be unmapped", key)
		}
	}
}

func TestDubeolsikCoversAlphabet(t *testing.T) {
	l := Dubeolsik()
	mapped := 0
	for key := 'a'; key <= 'z'; key++ {
		if _, ok := l.Classify(key, false); ok {
			mapped++
		}
	}
	if mapped != 26 {
		t.Fatalf("expected all 26 letter keys mapped, got %d", mapped)
	}
	if err := l.validate(); err != nil {
		t.Fatalf("builtin layout failed validation: %v", err)
	}
}
