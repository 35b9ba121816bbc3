package keymap

// Dubeolsik returns the standard two-set layout. Consonant keys with a
// shifted entry produce the doubled jamo; the rest ignore shift. Vowel keys
// always define both variants, most of them identical.
func Dubeolsik() *Layout {
	l := newLayout("dubeolsik")

	l.addConsonant('r', 'ㄱ', 'ㄲ')
	l.addConsonant('s', 'ㄴ', 0)
	l.addConsonant('e', 'ㄷ', 'ㄸ')
	l.addConsonant('f', 'ㄹ', 0)
	l.addConsonant('a', 'ㅁ', 0)
	l.addConsonant('q', 'ㅂ', 'ㅃ')
	l.addConsonant('t', 'ㅅ', 'ㅆ')
	l.addConsonant('d', 'ㅇ', 0)
	l.addConsonant('w', 'ㅈ', 'ㅉ')
	l.addConsonant('c', 'ㅊ', 0)
	l.addConsonant('z', 'ㅋ', 0)
	l.addConsonant('x', 'ㅌ', 0)
	l.addConsonant('v', 'ㅍ', 0)
	l.addConsonant('g', 'ㅎ', 0)

	l.addVowel('k', 'ㅏ', 'ㅏ')
	l.addVowel('o', 'ㅐ', 'ㅒ')
	l.addVowel('i', 'ㅑ', 'ㅑ')
	l.addVowel('j', 'ㅓ', 'ㅓ')
	l.addVowel('p', 'ㅔ', 'ㅖ')
	l.addVowel('u', 'ㅕ', 'ㅕ')
	l.addVowel('h', 'ㅗ', 'ㅗ')
	l.addVowel('y', 'ㅛ', 'ㅛ')
	l.addVowel('n', 'ㅜ', 'ㅜ')
	l.addVowel('b', 'ㅠ', 'ㅠ')
	l.addVowel('m', 'ㅡ', 'ㅡ')
	l.addVowel('l', 'ㅣ', 'ㅣ')

	return l
}
