// Package keymap maps (key, shift) pairs onto jamo inputs. A layout is a
// pure lookup table; it holds no composition state.
package keymap

import (
	"fmt"

	"hankey/internal/jamo"
)

type consonantKey struct {
	plain    jamo.Jaeum
	shifted  jamo.Jaeum
	hasShift bool
}

type vowelKey struct {
	plain   jamo.Moeum
	shifted jamo.Moeum
}

// Layout is an immutable keyboard layout. Keys are the unshifted key runes
// the host reports (lowercase letters for the builtin layouts).
type Layout struct {
	name       string
	consonants map[rune]consonantKey
	vowels     map[rune]vowelKey
}

func (l *Layout) Name() string { return l.name }

// Classify resolves one keystroke. Doubled is set only when shift was held
// and the key defines a shifted consonant; shift over a plain-only consonant
// falls back to the plain identity. Unmapped keys report ok=false and the
// caller forwards the keystroke untouched.
func (l *Layout) Classify(key rune, shift bool) (jamo.Input, bool) {
	if l == nil {
		return jamo.Input{}, false
	}
	if ck, ok := l.consonants[key]; ok {
		if shift && ck.hasShift {
			return jamo.Consonant(ck.shifted, true), true
		}
		return jamo.Consonant(ck.plain, false), true
	}
	if vk, ok := l.vowels[key]; ok {
		if shift {
			return jamo.Vowel(vk.shifted), true
		}
		return jamo.Vowel(vk.plain), true
	}
	return jamo.Input{}, false
}

func newLayout(name string) *Layout {
	return &Layout{
		name:       name,
		consonants: make(map[rune]consonantKey),
		vowels:     make(map[rune]vowelKey),
	}
}

func (l *Layout) addConsonant(key rune, plain rune, shifted rune) {
	entry := consonantKey{}
	j, ok := jamo.JaeumOf(plain)
	if !ok {
		panic(fmt.Sprintf("keymap: %q is not a consonant jamo", plain))
	}
	entry.plain = j
	if shifted != 0 {
		sj, ok := jamo.JaeumOf(shifted)
		if !ok {
			panic(fmt.Sprintf("keymap: %q is not a consonant jamo", shifted))
		}
		entry.shifted = sj
		entry.hasShift = true
	}
	l.consonants[key] = entry
}

func (l *Layout) addVowel(key rune, plain rune, shifted rune) {
	pm, ok := jamo.MoeumOf(plain)
	if !ok {
		panic(fmt.Sprintf("keymap: %q is not a vowel jamo", plain))
	}
	sm, ok := jamo.MoeumOf(shifted)
	if !ok {
		panic(fmt.Sprintf("keymap: %q is not a vowel jamo", shifted))
	}
	l.vowels[key] = vowelKey{plain: pm, shifted: sm}
}

// validate enforces the load-time contract: every consonant a layout can
// emit must be usable as an initial, every vowel must sit inside the medial
// space. Violations are configuration errors, never keystroke-time surprises.
func (l *Layout) validate() error {
	for key, ck := range l.consonants {
		if _, ok := jamo.InitialIndex(ck.plain); !ok {
			return fmt.Errorf("layout %s: key %q maps to %q, which cannot start a syllable", l.name, key, ck.plain.Rune())
		}
		if ck.hasShift {
			if _, ok := jamo.InitialIndex(ck.shifted); !ok {
				return fmt.Errorf("layout %s: shifted key %q maps to %q, which cannot start a syllable", l.name, key, ck.shifted.Rune())
			}
		}
	}
	for key, vk := range l.vowels {
		if !vk.plain.Valid() || !vk.shifted.Valid() {
			return fmt.Errorf("layout %s: key %q maps outside the vowel space", l.name, key)
		}
	}
	return nil
}
