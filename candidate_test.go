// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import (
	"testing"

	"github.com/creachadair/mds/mtest"
)

func TestCandidateMatcher(t *testing.T) {
	candidates := []string{"apple", "apply", "banana"}
	tests := []struct {
		input   string
		wantIdx int
		wantOK  bool
	}{
		{"apple", 0, true},
		{"apply", 1, true},
		{"banana", 2, true},
		{"ap", -1, false},
		{"applesauce", -1, false},
		{"cherry", -1, false},
		{"", -1, false},
	}
	for _, test := range tests {
		m := newCandidateMatcher(candidates)
		ok := true
		for i := 0; i < len(test.input); i++ {
			if !m.feed(test.input[i]) {
				ok = false
				break
			}
		}
		idx, matched := m.finish()
		if !ok {
			idx, matched = -1, false
		}
		if idx != test.wantIdx || matched != test.wantOK {
			t.Errorf("match(%q) = %d, %v; want %d, %v", test.input, idx, matched, test.wantIdx, test.wantOK)
		}
	}
}

func TestCheckCandidatesPanicsOnUnsorted(t *testing.T) {
	mtest.MustPanic(t, func() {
		checkCandidates([]string{"b", "a"}, true)
	})
}

func TestCheckCandidatesPanicsOnEmptyWhenDisallowed(t *testing.T) {
	mtest.MustPanic(t, func() {
		checkCandidates(nil, false)
	})
}

func TestCheckCandidatesAllowsEmpty(t *testing.T) {
	checkCandidates(nil, true) // must not panic
}
