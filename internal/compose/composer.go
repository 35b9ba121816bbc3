// Package compose implements the syllable composition automata: an ordered
// stack of role-tagged jamo slots and the transition function that folds one
// classified keystroke at a time into it.
package compose

import "hankey/internal/jamo"

// Role tags a composition slot.
type Role int

const (
	RoleInitial Role = iota
	RoleMedial
	RoleMedialCombined
	RoleFinal
	RoleFinalGeminate
	RoleFinalCluster
	RoleVowelAlone
	RoleVowelAloneCombined
)

func (r Role) String() string {
	switch r {
	case RoleInitial:
		return "initial"
	case RoleMedial:
		return "medial"
	case RoleMedialCombined:
		return "medial-combined"
	case RoleFinal:
		return "final"
	case RoleFinalGeminate:
		return "final-geminate"
	case RoleFinalCluster:
		return "final-cluster"
	case RoleVowelAlone:
		return "vowel-alone"
	case RoleVowelAloneCombined:
		return "vowel-alone-combined"
	default:
		return "unknown"
	}
}

func (r Role) vowel() bool {
	return r == RoleMedial || r == RoleMedialCombined ||
		r == RoleVowelAlone || r == RoleVowelAloneCombined
}

// Slot is one tagged entry in the composition stack. The identity it carries
// lives in the domain its role dictates; use the constructors.
type Slot struct {
	Role      Role
	Consonant jamo.Jaeum
	Vowel     jamo.Moeum
}

func initialSlot(j jamo.Jaeum) Slot { return Slot{Role: RoleInitial, Consonant: j} }

func medialSlot(m jamo.Moeum) Slot { return Slot{Role: RoleMedial, Vowel: m} }

func medialCombinedSlot(m jamo.Moeum) Slot { return Slot{Role: RoleMedialCombined, Vowel: m} }

func finalSlot(j jamo.Jaeum, geminate bool) Slot {
	role := RoleFinal
	if geminate {
		role = RoleFinalGeminate
	}
	return Slot{Role: role, Consonant: j}
}

func clusterSlot(j jamo.Jaeum) Slot { return Slot{Role: RoleFinalCluster, Consonant: j} }

func vowelAloneSlot(m jamo.Moeum) Slot { return Slot{Role: RoleVowelAlone, Vowel: m} }

func vowelAloneCombinedSlot(m jamo.Moeum) Slot {
	return Slot{Role: RoleVowelAloneCombined, Vowel: m}
}

// Stack is the syllable currently being built, oldest slot first. The empty
// stack renders to nothing; every non-empty prefix renders to exactly one
// displayable character.
type Stack []Slot

func (s Stack) Len() int { return len(s) }

func (s Stack) Top() (Slot, bool) {
	if len(s) == 0 {
		return Slot{}, false
	}
	return s[len(s)-1], true
}

func (s Stack) push(slot Slot) Stack {
	out := make(Stack, len(s), len(s)+1)
	copy(out, s)
	return append(out, slot)
}

// Pop removes the most recent slot. It is the backspace primitive: one
// keystroke of composition is unwound per call.
func (s Stack) Pop() Stack {
	if len(s) == 0 {
		return nil
	}
	out := make(Stack, len(s)-1)
	copy(out, s[:len(s)-1])
	return out
}

// Transition is the outcome of feeding one input to a stack.
type Transition struct {
	// Stack is the active composition after the input.
	Stack Stack
	// Completed is the finalized syllable a migration closed off, with its
	// top final slot stripped. Nil unless Migrated.
	Completed Stack
	// Migrated reports that the input's vowel pulled the previous final
	// across the syllable boundary.
	Migrated bool
	// Reset reports that an invalid sequence discarded the previous stack
	// before the input was re-applied to an empty one.
	Reset bool
}

// Apply consumes one classified input. Invalid sequences are never errors:
// the stack is discarded and the input starts a fresh composition. The
// reset-and-reapply transition is a loop, not recursion.
func Apply(s Stack, in jamo.Input) Transition {
	tr := Transition{}
	for {
		top, ok := s.Top()
		if !ok {
			if in.Kind == jamo.KindVowel {
				tr.Stack = Stack{vowelAloneSlot(in.Moeum)}
			} else {
				tr.Stack = Stack{initialSlot(in.Jaeum)}
			}
			return tr
		}

		switch top.Role {
		case RoleInitial:
			if in.Kind == jamo.KindVowel {
				tr.Stack = s.push(medialSlot(in.Moeum))
				return tr
			}

		case RoleMedial:
			if in.Kind == jamo.KindConsonant {
				if _, ok := jamo.FinalIndex(in.Jaeum); ok {
					tr.Stack = s.push(finalSlot(in.Jaeum, in.Doubled))
					return tr
				}
			} else if _, ok := jamo.CombineVowels(top.Vowel, in.Moeum); ok {
				tr.Stack = s.push(medialCombinedSlot(in.Moeum))
				return tr
			}

		case RoleMedialCombined:
			// A syllable accepts at most one vowel combination.
			if in.Kind == jamo.KindConsonant {
				if _, ok := jamo.FinalIndex(in.Jaeum); ok {
					tr.Stack = s.push(finalSlot(in.Jaeum, in.Doubled))
					return tr
				}
			}

		case RoleFinal:
			if in.Kind == jamo.KindConsonant {
				if _, ok := jamo.CombineFinals(top.Consonant, in.Jaeum); ok {
					tr.Stack = s.push(clusterSlot(in.Jaeum))
					return tr
				}
			} else {
				s = migrate(&tr, s, top)
				continue
			}

		case RoleFinalGeminate, RoleFinalCluster:
			if in.Kind == jamo.KindVowel {
				s = migrate(&tr, s, top)
				continue
			}

		case RoleVowelAlone:
			if in.Kind == jamo.KindVowel {
				if _, ok := jamo.CombineVowels(top.Vowel, in.Moeum); ok {
					tr.Stack = s.push(vowelAloneCombinedSlot(in.Moeum))
					return tr
				}
			}

		case RoleVowelAloneCombined:
			// always resets
		}

		s = nil
		tr.Reset = true
	}
}

// migrate strips the top final slot: the remainder is the finalized syllable
// and the stripped consonant seeds a fresh stack as its initial. For a
// cluster only the second member moves; the first stays behind as the
// finalized syllable's final.
func migrate(tr *Transition, s Stack, top Slot) Stack {
	tr.Completed = s.Pop()
	tr.Migrated = true
	return Stack{initialSlot(top.Consonant)}
}
