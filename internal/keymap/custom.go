package keymap

import (
	"fmt"
	"path/filepath"
	"strings"

	ini "gopkg.in/ini.v1"

	"hankey/internal/jamo"
)

// LoadCustom reads a layout from an INI file:
//
//	name = my-layout
//	[consonants]
//	r = ㄱ,ㄲ
//	s = ㄴ
//	[vowels]
//	o = ㅐ,ㅒ
//	k = ㅏ
//
// A consonant's second value is its shifted (doubled) jamo and may be
// omitted; a vowel's second value defaults to its plain one. Every mapping
// is validated here so a bad file fails at load, not mid-keystroke.
func LoadCustom(path string) (*Layout, error) {
	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}

	name := file.Section("").Key("name").MustString(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	l := newLayout(name)

	for _, key := range file.Section("consonants").Keys() {
		keyRune, err := singleRune(key.Name())
		if err != nil {
			return nil, fmt.Errorf("layout %s: consonant key: %w", name, err)
		}
		plain, shifted, err := parseJamoPair(key.String())
		if err != nil {
			return nil, fmt.Errorf("layout %s: key %q: %w", name, keyRune, err)
		}
		entry := consonantKey{}
		j, ok := jamo.JaeumOf(plain)
		if !ok {
			return nil, fmt.Errorf("layout %s: key %q: %q is not a consonant jamo", name, keyRune, plain)
		}
		entry.plain = j
		if shifted != 0 {
			sj, ok := jamo.JaeumOf(shifted)
			if !ok {
				return nil, fmt.Errorf("layout %s: key %q: %q is not a consonant jamo", name, keyRune, shifted)
			}
			entry.shifted = sj
			entry.hasShift = true
		}
		l.consonants[keyRune] = entry
	}

	for _, key := range file.Section("vowels").Keys() {
		keyRune, err := singleRune(key.Name())
		if err != nil {
			return nil, fmt.Errorf("layout %s: vowel key: %w", name, err)
		}
		plain, shifted, err := parseJamoPair(key.String())
		if err != nil {
			return nil, fmt.Errorf("layout %s: key %q: %w", name, keyRune, err)
		}
		if shifted == 0 {
			shifted = plain
		}
		pm, ok := jamo.MoeumOf(plain)
		if !ok {
			return nil, fmt.Errorf("layout %s: key %q: %q is not a vowel jamo", name, keyRune, plain)
		}
		sm, ok := jamo.MoeumOf(shifted)
		if !ok {
			return nil, fmt.Errorf("layout %s: key %q: %q is not a vowel jamo", name, keyRune, shifted)
		}
		l.vowels[keyRune] = vowelKey{plain: pm, shifted: sm}
	}

	if len(l.consonants) == 0 && len(l.vowels) == 0 {
		return nil, fmt.Errorf("layout %s: no key mappings defined", name)
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func singleRune(s string) (rune, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) != 1 {
		return 0, fmt.Errorf("%q is not a single key", s)
	}
	return runes[0], nil
}

func parseJamoPair(value string) (rune, rune, error) {
	parts := strings.Split(value, ",")
	if len(parts) == 0 || len(parts) > 2 {
		return 0, 0, fmt.Errorf("expected one or two jamo, got %q", value)
	}
	plain, err := singleRune(parts[0])
	if err != nil {
		return 0, 0, err
	}
	if len(parts) == 1 || strings.TrimSpace(parts[1]) == "" {
		return plain, 0, nil
	}
	shifted, err := singleRune(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return plain, shifted, nil
}
