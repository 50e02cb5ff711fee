// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

// _MAXVAR is the maximal number of levels in a diagram (also the max number
// of variables), the 21-bit limit of the teacher library this package
// descends from. No bits are reserved for marking: the garbage collector
// keeps its marks in a separate slice.
const _MAXVAR int32 = 0x1FFFFF

// _MAXREFCOUNT is the maximal value of the external reference counter kept
// by pin. New pins the single-variable nodes so they are never collected;
// the sinks are never collected and are not pinned.
const _MAXREFCOUNT int32 = 0x3FF

// _MINFREENODES is the default value of the Minfreenodes option, which the
// Factory stores but does not read.
const _MINFREENODES int = 20

// _DEFAULTMAXNODEINC bounds how much the node table can grow in one resize.
const _DEFAULTMAXNODEINC int = 1 << 20

// addrFalse and addrTrue are the two reserved sink addresses (invariant
// "Node address" in the data model: all other addresses are allocated
// sequentially starting at 2).
const (
	addrFalse Address = 0
	addrTrue  Address = 1
)

// Address is an index into a Factory's node store. The two reserved values
// addrFalse and addrTrue denote the sinks; every other value is the index of
// a stored interior node.
type Address int
