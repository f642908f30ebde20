/*
 * Filename: /Users/bao/code/uniflip/flip.go
 * Path: /Users/bao/code/uniflip
 * Created Date: Sunday, March 7th 2021, 3:05:41 pm
 * Author: bao
 *
 * Copyright (c) 2021 Haibao Tang
 */

package uniflip

import (
	"io"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// Flipper reads unitigs from a FASTA/FASTQ file, picks an orientation per
// unitig that minimizes the number of unitigs without a predecessor in the
// overlap graph, and writes the oriented unitigs back out. Headers and
// quality scores are preserved; only the sequence is possibly
// reverse-complemented.
type Flipper struct {
	Fastafile    string
	Outfastafile string
	K            int
	LineWidth    int
}

// Run kicks off the Flipper
func (r *Flipper) Run() error {
	db, records, err := readFastx(r.Fastafile)
	if err != nil {
		return err
	}
	g, err := BuildGraph(db, r.K)
	if err != nil {
		return err
	}
	assignment := Orient(g)
	log.Noticef("%s unitigs have a predecessor, %d dummy nodes remain",
		Percentage(Score(g, assignment), db.Len()), Dummies(g, assignment))
	if err := writeFastx(r.Outfastafile, records, db, assignment, r.LineWidth); err != nil {
		return err
	}
	log.Notice("Success")
	return nil
}

// Assesser reports how many unitigs keep a predecessor in the input
// orientations versus the recomputed ones, without writing any sequence
type Assesser struct {
	Fastafile string
	K         int
}

// Run kicks off the Assesser
func (r *Assesser) Run() error {
	db, _, err := readFastx(r.Fastafile)
	if err != nil {
		return err
	}
	g, err := BuildGraph(db, r.K)
	if err != nil {
		return err
	}

	asGiven := make([]Orientation, db.Len())
	log.Noticef("As given: %s unitigs have a predecessor",
		Percentage(Score(g, asGiven), db.Len()))

	assignment := Orient(g)
	log.Noticef("After flipping: %s unitigs have a predecessor, %d dummy nodes remain",
		Percentage(Score(g, assignment), db.Len()), Dummies(g, assignment))
	return nil
}

// readFastx loads all records of a FASTA/FASTQ file into memory and builds
// the validated sequence store from them
func readFastx(fastafile string) (*SeqDB, []*fastx.Record, error) {
	log.Noticef("Parse fastafile `%s`", fastafile)
	reader, err := fastx.NewDefaultReader(fastafile)
	if err != nil {
		return nil, nil, err
	}
	seq.ValidateSeq = false // This flag makes parsing FASTA much faster

	db := NewSeqDB()
	var records []*fastx.Record
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rec = rec.Clone() // The reader reuses its record buffer
		if err := db.Add(string(rec.ID), rec.Seq.Seq); err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}
	log.Noticef("Loaded %d unitigs from `%s`", db.Len(), fastafile)
	return db, records, nil
}

// writeFastx re-emits the records in input order, substituting the reverse
// complement for every unitig assigned Reverse. For FASTQ the quality
// string is reversed alongside.
func writeFastx(outfile string, records []*fastx.Record, db *SeqDB, assignment []Orientation, lineWidth int) error {
	outfh, err := xopen.Wopen(outfile)
	if err != nil {
		return err
	}
	defer outfh.Close()

	flipped := 0
	for i, rec := range records {
		if assignment[i] == Reverse {
			rec.Seq.Seq = db.RC(i)
			if len(rec.Seq.Qual) > 0 {
				reverseBytes(rec.Seq.Qual)
			}
			flipped++
		}
		rec.FormatToWriter(outfh, lineWidth)
	}
	log.Noticef("Flipped %s unitigs; written to `%s`",
		Percentage(flipped, len(records)), outfile)
	return nil
}
