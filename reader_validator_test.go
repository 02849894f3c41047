// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pulljson

import (
	"testing"

	"github.com/creachadair/mds/mtest"
)

func TestValidateReaderAcceptsWellFormedTraversal(t *testing.T) {
	r := ValidateReader(NewTextReader(`{"a": [1, 2], "b": "x"}`))
	if err := r.ExpectObject(); err != nil {
		t.Fatalf("ExpectObject: %v", err)
	}
	for {
		key, ok := r.NextKey()
		if !ok {
			break
		}
		switch key {
		case "a":
			if err := r.ExpectArray(); err != nil {
				t.Fatalf("ExpectArray: %v", err)
			}
			for r.HasNext() {
				if _, err := r.ExpectInt(); err != nil {
					t.Fatalf("ExpectInt: %v", err)
				}
			}
		default:
			if _, err := r.ExpectStr(); err != nil {
				t.Fatalf("ExpectStr: %v", err)
			}
		}
	}
}

func TestValidateReaderRejectsSecondTopLevelValue(t *testing.T) {
	r := ValidateReader(NewTextReader(`true`))
	if _, err := r.ExpectBool(); err != nil {
		t.Fatalf("first ExpectBool: %v", err)
	}
	mtest.MustPanic(t, func() {
		r.ExpectBool()
	})
}

func TestValidateReaderRejectsKeyOutsideObject(t *testing.T) {
	r := ValidateReader(NewTextReader(`[1, 2]`))
	if err := r.ExpectArray(); err != nil {
		t.Fatal(err)
	}
	mtest.MustPanic(t, func() {
		r.NextKey()
	})
}

func TestValidateReaderCopyTracksIndependently(t *testing.T) {
	r := ValidateReader(NewTextReader(`[1, 2]`))
	if err := r.ExpectArray(); err != nil {
		t.Fatal(err)
	}
	cp := r.Copy()
	if !r.HasNext() {
		t.Fatal("original HasNext() = false")
	}
	if _, err := r.ExpectInt(); err != nil {
		t.Fatal(err)
	}
	// The copy's validator state must not have advanced alongside r.
	if !cp.HasNext() {
		t.Fatal("copy HasNext() = false")
	}
	if _, err := cp.ExpectInt(); err != nil {
		t.Fatal(err)
	}
}
