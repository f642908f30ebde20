/**
 * Filename: /Users/bao/code/uniflip/seqdb.go
 * Path: /Users/bao/code/uniflip
 * Created Date: Saturday, March 6th 2021, 9:31:08 pm
 * Author: bao
 *
 * Copyright (c) 2021 Haibao Tang
 */

package uniflip

import "fmt"

// complement maps each nucleotide to its Watson-Crick pair; zero marks an
// invalid byte
var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
}

// ReverseComplement returns the reverse complement of a nucleotide sequence.
// A byte outside {A,C,G,T} is a data error.
func ReverseComplement(s []byte) ([]byte, error) {
	rc := make([]byte, len(s))
	for i, c := range s {
		b := complement[c]
		if b == 0 {
			return nil, fmt.Errorf("invalid base %q at position %d", c, i)
		}
		rc[len(s)-1-i] = b
	}
	return rc, nil
}

// SeqDB is an ordered, random-access store of unitig sequences. Each unitig
// is validated on insert and kept together with its reverse complement, so
// that boundary substrings of either orientation can be taken directly.
type SeqDB struct {
	names []string
	seqs  [][]byte
	rcs   [][]byte
}

// NewSeqDB returns an empty sequence store
func NewSeqDB() *SeqDB {
	return &SeqDB{}
}

// Add validates and appends one unitig. The id of the new unitig is the
// store size before the call.
func (db *SeqDB) Add(name string, s []byte) error {
	rc, err := ReverseComplement(s)
	if err != nil {
		return fmt.Errorf("sequence %d (%s): %v", db.Len(), name, err)
	}
	cp := make([]byte, len(s))
	copy(cp, s)
	db.names = append(db.names, name)
	db.seqs = append(db.seqs, cp)
	db.rcs = append(db.rcs, rc)
	return nil
}

// Len returns the number of unitigs in the store
func (db *SeqDB) Len() int {
	return len(db.seqs)
}

// Seq returns the i-th unitig as stored
func (db *SeqDB) Seq(i int) []byte {
	return db.seqs[i]
}

// RC returns the reverse complement of the i-th unitig
func (db *SeqDB) RC(i int) []byte {
	return db.rcs[i]
}

// Name returns the identifier of the i-th unitig
func (db *SeqDB) Name(i int) string {
	return db.names[i]
}
