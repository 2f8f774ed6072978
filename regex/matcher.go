package regex

// Matcher pairs an NFA with its precomputed epsilon-closures and performs
// whole-string match tests. Once constructed, a Matcher's closures are
// immutable and a *Matcher is safe to share across goroutines without any
// additional synchronization.
type Matcher struct {
	nfa      *NFA
	closures [][]int
}

// Compile builds a Matcher for the given pattern: parse to postfix, build
// the NFA, precompute epsilon-closures, in one call.
func Compile(pattern string) (*Matcher, error) {
	exprs, err := compileExprs(pattern)
	if err != nil {
		return nil, err
	}
	nfa, err := Build(exprs)
	if err != nil {
		return nil, err
	}
	return newMatcher(nfa), nil
}

func newMatcher(nfa *NFA) *Matcher {
	closures := make([][]int, len(nfa.States))
	for i := range nfa.States {
		seen := make([]bool, len(nfa.States))
		closures[i] = epsilonClosure(nfa, i, seen)
	}
	return &Matcher{nfa: nfa, closures: closures}
}

// epsilonClosure returns the set of state indices reachable from idx via
// only Split edges, including idx itself.
func epsilonClosure(nfa *NFA, idx int, seen []bool) []int {
	if seen[idx] {
		return nil
	}
	seen[idx] = true
	out := []int{idx}
	st := nfa.States[idx]
	if st.Kind == StateSplit {
		if st.Left != invalid {
			out = append(out, epsilonClosure(nfa, st.Left, seen)...)
		}
		if st.Right != invalid {
			out = append(out, epsilonClosure(nfa, st.Right, seen)...)
		}
	}
	return out
}

// NFA exposes the underlying automaton, read-only, for invariant tests.
func (m *Matcher) NFA() *NFA {
	return m.nfa
}

// Matches reports whether s, taken as a whole, is accepted by the
// automaton: starting from the closure of the head state, each rune of s
// advances every currently-active Transition state whose condition
// matches, replacing the active set with the union of the closures of the
// resulting states.
func (m *Matcher) Matches(s string) bool {
	active := make([]bool, len(m.nfa.States))
	for _, idx := range m.closures[m.nfa.Head] {
		active[idx] = true
	}
	for _, r := range s {
		next := make([]bool, len(m.nfa.States))
		any := false
		for idx, on := range active {
			if !on {
				continue
			}
			st := m.nfa.States[idx]
			if st.Kind == StateTransition && st.Cond.Matches(r) && st.Next != invalid {
				for _, c := range m.closures[st.Next] {
					next[c] = true
					any = true
				}
			}
		}
		active = next
		if !any {
			// No state survives; nothing more can ever match. Short
			// circuit rather than iterating the rest of s against an
			// all-false active set.
			return false
		}
	}
	for idx, on := range active {
		if on && m.nfa.States[idx].Kind == StateAccept {
			return true
		}
	}
	return false
}
