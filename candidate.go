// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

// checkCandidates validates the precondition shared by tryKey, tryString,
// and their *Index variants: candidates must be sorted by byte value
// (non-decreasing). When allowEmpty is false the list must also be
// non-empty; only ExpectString and ExpectStringIndex pass false, so
// TryKey, TryKeyIndex, TryString and TryStringIndex accept an empty list
// and report no match. Violating this precondition is a caller error,
// not a data error, so it panics rather than returning a FormatError.
func checkCandidates(candidates []string, allowEmpty bool) {
	if len(candidates) == 0 {
		if allowEmpty {
			return
		}
		panic("pulljson: candidate list must not be empty")
	}
	for i := 1; i < len(candidates); i++ {
		if candidates[i-1] > candidates[i] {
			panic("pulljson: candidate list must be sorted")
		}
	}
}

// candidateMatcher implements the prefix-refinement algorithm described in
// §4.1 of the design: candidates share a sorted order, so as each source
// byte is fed in, the window of still-viable candidates only narrows. This
// achieves O(longest candidate) time regardless of how many candidates
// there are.
type candidateMatcher struct {
	candidates []string
	min, max   int
	i          int
	dead       bool
}

func newCandidateMatcher(candidates []string) *candidateMatcher {
	return &candidateMatcher{candidates: candidates, min: 0, max: len(candidates)}
}

// feed advances the matcher by one source byte. It reports whether any
// candidate remains viable; once it returns false the matcher is dead and
// every subsequent call also returns false.
func (m *candidateMatcher) feed(b byte) bool {
	if m.dead {
		return false
	}
	oldMax := m.max
	for m.min < oldMax {
		c := m.candidates[m.min]
		if len(c) > m.i && c[m.i] == b {
			break
		}
		m.min++
	}
	if m.min >= oldMax {
		m.dead = true
		return false
	}
	j := m.min + 1
	for j < oldMax {
		c := m.candidates[j]
		if len(c) > m.i && c[m.i] == b {
			j++
		} else {
			break
		}
	}
	m.max = j
	m.i++
	return true
}

// finish reports the matched candidate's index once the closing quote has
// been reached, or (-1, false) if no candidate matches exactly.
func (m *candidateMatcher) finish() (int, bool) {
	if m.dead || m.min >= m.max {
		return -1, false
	}
	if len(m.candidates[m.min]) == m.i {
		return m.min, true
	}
	return -1, false
}
