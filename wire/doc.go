// Package wire packs and unpacks the records exchanged over a
// transport.Transport into fixed-width, little-endian byte slices:
// morton.Key, morton.Point, leaf.Leaf, and block weight records (a
// morton.Key followed by a uint64 count, not a bare count). Every record
// type has a fixed encoded size, so slices
// of records pack as flat, length-free byte strings, and unpacking only
// needs the byte count to recover the record count.
package wire
