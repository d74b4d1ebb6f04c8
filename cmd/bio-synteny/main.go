package main

//
// bio-synteny
//
// Reads a FASTA file, runs bifurcation enumeration over every sequence it
// contains, and writes out the original-coordinate span of every discovered
// bifurcation.
//
// Example:
//
//    bio-synteny -k 31 -fasta genome.fa -output breakpoints.tsv

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/synteny/bifurcation"
	"github.com/grailbio/synteny/breakpoints"
	"github.com/grailbio/synteny/dnaseq"
	"github.com/grailbio/synteny/encoding/fasta"
)

// Opts collects the tunable parameters of the bifurcation scan.
type Opts struct {
	// K is the window length used by the bifurcation enumerator.
	K int
	// ProgressMod is the number of windows scanned between progress log
	// lines.
	ProgressMod int64
	// Clean requests that every record be cleaned (lowercase bases
	// capitalized, other non-ACGTN bytes folded to 'N') when the FASTA is
	// loaded. Records are not rejected when it is false: fasta.Sequence
	// applies the same cleaning to any record that still holds such bytes.
	Clean bool
}

// DefaultOpts mirrors the k=31 default used throughout the reference
// sequencing literature for unique-anchor k-mers.
var DefaultOpts = Opts{K: 31, ProgressMod: 1_000_000, Clean: true}

func usage() {
	fmt.Fprintf(os.Stderr, `bio-synteny: enumerate De Bruijn-graph bifurcations in a FASTA file.

Usage:
  bio-synteny [flags] -fasta /path/to/genome.fa -output /path/to/breakpoints.tsv
`)
	os.Exit(1)
}

// Stats collects run totals across every sequence processed.
type Stats struct {
	// Sequences is the number of FASTA records scanned.
	Sequences int
	// Bifurcations is the total number of distinct bifurcation ids written
	// to the output.
	Bifurcations int
}

// Merge adds the field values of two Stats and returns the sum.
func (s Stats) Merge(o Stats) Stats {
	s.Sequences += o.Sequences
	s.Bifurcations += o.Bifurcations
	return s
}

func scanOne(f fasta.Fasta, name string, opts Opts, out *bufio.Writer) (Stats, error) {
	seq, err := f.Sequence(name)
	if err != nil {
		return Stats{}, err
	}
	idx := bifurcation.NewShardedIndex()
	bifurcation.ProgressMod = opts.ProgressMod
	n := bifurcation.EnumerateBifurcations(seq, idx, opts.K)

	bps := breakpoints.New()
	record := func(begin dnaseq.StrandIterator) {
		win := dnaseq.NewWindow(begin, opts.K)
		for win.Valid() {
			it := win.Begin()
			id := idx.GetBifurcation(it, opts.K)
			if id != bifurcation.NoBifurcation {
				bps.Add(seq, it, opts.K, id)
			}
			win.Move()
		}
	}
	// A bifurcation's id can be seeded or assigned from either strand
	// (bifurcation.EnumerateBifurcations emits on both), so both strands
	// must be walked here too or ids with no forward-strand occurrence are
	// silently dropped from the output.
	record(seq.PositiveBegin())
	record(seq.NegativeBegin())

	found := 0
	for id := int32(0); id < int32(n); id++ {
		if bp := bps.ByID(id); bp != nil {
			found++
			if _, err := fmt.Fprintf(out, "%s\t%d\t%d\t%d\n", name, id, bp.Start, bp.End); err != nil {
				return Stats{}, err
			}
		}
	}
	log.Printf("bio-synteny: %s: %d bifurcations", name, found)
	return Stats{Sequences: 1, Bifurcations: found}, nil
}

func run(fastaPath, outputPath string, opts Opts) error {
	in, err := os.Open(fastaPath)
	if err != nil {
		return err
	}
	defer in.Close() // nolint: errcheck

	var fastaOpts []fasta.Opt
	if opts.Clean {
		fastaOpts = append(fastaOpts, fasta.OptClean)
	}
	f, err := fasta.New(in, fastaOpts...)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(out)

	start := time.Now()
	var total Stats
	for _, name := range f.SeqNames() {
		stats, err := scanOne(f, name, opts, bw)
		if err != nil {
			out.Close() // nolint: errcheck
			return err
		}
		total = total.Merge(stats)
	}

	once := errors.Once{}
	once.Set(bw.Flush())
	once.Set(out.Close())
	if err := once.Err(); err != nil {
		return err
	}
	log.Printf("bio-synteny: scanned %d sequences, %d bifurcations total, in %s",
		total.Sequences, total.Bifurcations, time.Since(start))
	return nil
}

func main() {
	flag.Usage = usage

	var fastaPath, outputPath string
	opts := DefaultOpts
	flag.StringVar(&fastaPath, "fasta", "", "Input FASTA file (optionally gzip-compressed).")
	flag.StringVar(&outputPath, "output", "", "Output TSV file: seqName, bifurcation id, original-coordinate start, end.")
	flag.IntVar(&opts.K, "k", DefaultOpts.K, "Window length used by the bifurcation enumerator.")
	flag.Int64Var(&opts.ProgressMod, "progress-mod", DefaultOpts.ProgressMod, "Windows scanned between progress log lines.")
	flag.BoolVar(&opts.Clean, "clean", DefaultOpts.Clean, "Fold non-ACGTN bytes to 'N' when loading the FASTA (records are cleaned before scanning either way).")

	cleanup := grail.Init()
	defer cleanup()

	if fastaPath == "" || outputPath == "" {
		log.Fatal("both -fasta and -output are required")
	}
	if opts.K < 2 {
		log.Fatal("-k must be >= 2")
	}

	if err := run(fastaPath, outputPath, opts); err != nil {
		log.Fatalf("bio-synteny: %v", err)
	}
}
