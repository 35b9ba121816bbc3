// Package jamo defines the jamo identity spaces and the static combination
// tables shared by the classifier, the composition automata, and the renderer.
package jamo

// Unicode constants for the Hangul blocks in use.
const (
	ConsonantBase = 0x3131
	VowelBase     = 0x314F
	SyllableBase  = 0xAC00

	InitialCount = 19
	MedialCount  = 21
	FinalCount   = 28

	consonantSpan = 30
)

// Jaeum identifies a consonant jamo as an offset into the compatibility
// consonant block. It is an identity, not a codepoint.
type Jaeum int

// Moeum identifies a vowel jamo as an offset into the compatibility vowel
// block.
type Moeum int

func (j Jaeum) Valid() bool { return j >= 0 && j < consonantSpan }

func (m Moeum) Valid() bool { return m >= 0 && m < MedialCount }

// Rune returns the standalone compatibility-jamo character.
func (j Jaeum) Rune() rune { return rune(ConsonantBase + int(j)) }

func (m Moeum) Rune() rune { return rune(VowelBase + int(m)) }

// JaeumOf maps a compatibility-jamo consonant rune back to its identity.
func JaeumOf(r rune) (Jaeum, bool) {
	j := Jaeum(r - ConsonantBase)
	return j, j.Valid()
}

// MoeumOf maps a compatibility-jamo vowel rune back to its identity.
func MoeumOf(r rune) (Moeum, bool) {
	m := Moeum(r - VowelBase)
	return m, m.Valid()
}

// Kind tags an Input as consonant or vowel.
type Kind int

const (
	KindConsonant Kind = iota
	KindVowel
)

func (k Kind) String() string {
	switch k {
	case KindConsonant:
		return "consonant"
	case KindVowel:
		return "vowel"
	default:
		return "unknown"
	}
}

// Input is one classified keystroke. Doubled marks an explicit
// shift-doubling request and is meaningful for consonants only.
type Input struct {
	Kind    Kind
	Jaeum   Jaeum
	Moeum   Moeum
	Doubled bool
}

// Consonant builds a consonant input.
func Consonant(j Jaeum, doubled bool) Input {
	return Input{Kind: KindConsonant, Jaeum: j, Doubled: doubled}
}

// Vowel builds a vowel input.
func Vowel(m Moeum) Input {
	return Input{Kind: KindVowel, Moeum: m}
}
