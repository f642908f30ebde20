/*
 *  seqdb_test.go
 *  uniflip
 *
 *  Created by Haibao Tang on 03/07/21
 *  Copyright © 2021 Haibao Tang. All rights reserved.
 */

package uniflip_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tanghaibao/uniflip"
)

func TestReverseComplement(t *testing.T) {
	for _, tc := range []struct {
		seq  string
		want string
	}{
		{"AACCG", "CGGTT"},
		{"ACGT", "ACGT"}, // its own reverse complement
		{"TCGTAGCATG", "CATGCTACGA"},
		{"", ""},
	} {
		got, err := uniflip.ReverseComplement([]byte(tc.seq))
		if err != nil {
			t.Fatalf("ReverseComplement(%s) failed: %v", tc.seq, err)
		}
		if !bytes.Equal(got, []byte(tc.want)) {
			t.Errorf("ReverseComplement(%s)=%s; want %s", tc.seq, got, tc.want)
		}
	}
}

func TestReverseComplementInvalidBase(t *testing.T) {
	_, err := uniflip.ReverseComplement([]byte("ACGN"))
	if err == nil {
		t.Fatal("Expected error for invalid base, got nil")
	}
	if !strings.Contains(err.Error(), "'N'") {
		t.Errorf("Expected error to name the offending byte, got: %v", err)
	}
}

func TestSeqDBAddInvalidBase(t *testing.T) {
	db := uniflip.NewSeqDB()
	if err := db.Add("good", []byte("ACGT")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	err := db.Add("bad", []byte("ACXT"))
	if err == nil {
		t.Fatal("Expected error for invalid base, got nil")
	}
	if !strings.Contains(err.Error(), "sequence 1") || !strings.Contains(err.Error(), "bad") {
		t.Errorf("Expected error to name sequence 1 (bad), got: %v", err)
	}
	if db.Len() != 1 {
		t.Errorf("Expected rejected sequence to be dropped, store has %d", db.Len())
	}
}

func TestSeqDBAccessors(t *testing.T) {
	db := uniflip.NewSeqDB()
	if err := db.Add("u0", []byte("AACCG")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if db.Len() != 1 {
		t.Fatalf("Expected 1 sequence, got %d", db.Len())
	}
	if got := string(db.Seq(0)); got != "AACCG" {
		t.Errorf("Seq(0)=%s; want AACCG", got)
	}
	if got := string(db.RC(0)); got != "CGGTT" {
		t.Errorf("RC(0)=%s; want CGGTT", got)
	}
	if got := db.Name(0); got != "u0" {
		t.Errorf("Name(0)=%s; want u0", got)
	}

	// The store owns its copy of the sequence
	s := []byte("AACCG")
	db2 := uniflip.NewSeqDB()
	_ = db2.Add("u0", s)
	s[0] = 'T'
	if got := string(db2.Seq(0)); got != "AACCG" {
		t.Errorf("Store aliased caller bytes: Seq(0)=%s", got)
	}
}
