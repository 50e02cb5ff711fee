// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package polydd implements reduced, ordered, shared decision diagrams over a
fixed set of variables: Binary Decision Diagrams (BDD) for Boolean functions,
Zero-suppressed Decision Diagrams (ZDD) for families of subsets, and
permutation diagrams (πDD / Rot-πDD) for sets of permutations.

Basics

A Factory owns a single shared node store and is created with New, which
fixes the kind of diagram (BDD or ZDD, see Kind) and the number of variables
Varnum. Each variable is an (integer) index in the interval [0..Varnum),
with lower indices ordered closer to the root. Diagrams are built and
combined through Apply-style operators (And, Or, Not) and read back with the
counting and enumeration routines in count.go, parameterized by a
GeneratingFunction.

Edges carry a Multiplicity, which defaults to the trivial unit monoid
(ordinary sets) but can be switched to unsigned-integer multiplicities to
represent multisets (see Uint32Multiplicity).

The permutation layer (permvar.go, permapply.go, permcompose.go,
permbuild.go) builds on top of a ZDD Factory: it fixes a variable basis of
transpositions or left-rotations over {1..n} and represents sets of
permutations as ZDDs over that basis.

Use of build tags

Like the library this package is derived from, verbose cache/GC statistics
and extra logging are gated behind a `debug` build tag so that production
builds avoid the bookkeeping overhead.

Automatic memory management

The library is written in pure Go. Nodes are appended monotonically to the
store and only reclaimed by an explicit call to GC; callers that keep edges
across a GC call must renumber them through the returned Renaming, as
described in the Factory.GC documentation.
*/
package polydd
