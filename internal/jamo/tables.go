package jamo

var (
	initials = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	finals   = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

var (
	vowelPairs = map[[2]rune]rune{
		{'ㅗ', 'ㅏ'}: 'ㅘ',
		{'ㅗ', 'ㅐ'}: 'ㅙ',
		{'ㅗ', 'ㅣ'}: 'ㅚ',
		{'ㅜ', 'ㅓ'}: 'ㅝ',
		{'ㅜ', 'ㅔ'}: 'ㅞ',
		{'ㅜ', 'ㅣ'}: 'ㅟ',
		{'ㅡ', 'ㅣ'}: 'ㅢ',
	}
	finalPairs = map[[2]rune]rune{
		{'ㄱ', 'ㅅ'}: 'ㄳ',
		{'ㄴ', 'ㅈ'}: 'ㄵ',
		{'ㄴ', 'ㅎ'}: 'ㄶ',
		{'ㄹ', 'ㄱ'}: 'ㄺ',
		{'ㄹ', 'ㅁ'}: 'ㄻ',
		{'ㄹ', 'ㅂ'}: 'ㄼ',
		{'ㄹ', 'ㅅ'}: 'ㄽ',
		{'ㄹ', 'ㅌ'}: 'ㄾ',
		{'ㄹ', 'ㅍ'}: 'ㄿ',
		{'ㄹ', 'ㅎ'}: 'ㅀ',
		{'ㅂ', 'ㅅ'}: 'ㅄ',
	}
)

var (
	initialIndex = buildInitialIndex(initials)
	finalIndex   = buildFinalIndex(finals)
	vowelCombine = buildMoeumPairs(vowelPairs)
	finalCombine = buildJaeumPairs(finalPairs)
)

func buildInitialIndex(list []rune) map[Jaeum]int {
	idx := make(map[Jaeum]int, len(list))
	for i, r := range list {
		j, _ := JaeumOf(r)
		idx[j] = i
	}
	return idx
}

func buildFinalIndex(list []rune) map[Jaeum]int {
	idx := make(map[Jaeum]int, len(list))
	for i, r := range list {
		if r == 0 {
			continue
		}
		j, _ := JaeumOf(r)
		idx[j] = i
	}
	return idx
}

func buildMoeumPairs(src map[[2]rune]rune) map[[2]Moeum]Moeum {
	dst := make(map[[2]Moeum]Moeum, len(src))
	for pair, combined := range src {
		first, _ := MoeumOf(pair[0])
		second, _ := MoeumOf(pair[1])
		value, _ := MoeumOf(combined)
		dst[[2]Moeum{first, second}] = value
	}
	return dst
}

func buildJaeumPairs(src map[[2]rune]rune) map[[2]Jaeum]Jaeum {
	dst := make(map[[2]Jaeum]Jaeum, len(src))
	for pair, combined := range src {
		first, _ := JaeumOf(pair[0])
		second, _ := JaeumOf(pair[1])
		value, _ := JaeumOf(combined)
		dst[[2]Jaeum{first, second}] = value
	}
	return dst
}

// CombineVowels resolves an ordered medial pair into a combined vowel.
// The lookup is ordered: (first-seen, newly-input), never symmetric.
func CombineVowels(first, second Moeum) (Moeum, bool) {
	combined, ok := vowelCombine[[2]Moeum{first, second}]
	return combined, ok
}

// CombineFinals resolves an ordered final-consonant pair into a cluster.
func CombineFinals(first, second Jaeum) (Jaeum, bool) {
	combined, ok := finalCombine[[2]Jaeum{first, second}]
	return combined, ok
}

// InitialIndex projects a consonant onto the 19 initial positions.
func InitialIndex(j Jaeum) (int, bool) {
	idx, ok := initialIndex[j]
	return idx, ok
}

// FinalIndex projects a consonant onto the 27 final positions. Index 0 is
// reserved for "no final" and is never returned here.
func FinalIndex(j Jaeum) (int, bool) {
	idx, ok := finalIndex[j]
	return idx, ok
}
