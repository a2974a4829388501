package sokoban

import (
	"hash/crc32"
	"hash/crc64"
)

// jonesTable is the reflected CRC-64/Jones table (polynomial 0xad93d23594c935a9).
var jonesTable = crc64.MakeTable(0x95ac9329ac4bc9b5)

// crc64Jones continues a CRC-64/Jones computation with zero init and no
// final xor, so it can be fed incrementally. The standard library
// implementation inverts on entry and exit, hence the double negation.
func crc64Jones(crc uint64, p []byte) uint64 {
	return ^crc64.Update(^crc, jonesTable, p)
}

// fingerprint computes the level identity: CRC-64/Jones seeded with the
// player start (x, y), then every cell in row-major order.
func fingerprint(f *field, width, height int, start Coord) uint64 {
	crc := crc64Jones(0, []byte{byte(start.X), byte(start.Y)})
	row := make([]byte, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			row[x] = byte(f[x][y])
		}
		crc = crc64Jones(crc, row)
	}
	return crc
}

// legacyFingerprint reproduces the CRC32 written by old versions of the
// game. It walks x up to the height and y up to the width, so it covers the
// wrong part of the field, and it ignores the player start. Solutions saved
// under this key can only be found by computing it the same way.
func legacyFingerprint(f *field, width, height int) uint32 {
	h := crc32.NewIEEE()
	col := make([]byte, height)
	for y := 0; y < width; y++ {
		for x := 0; x < height; x++ {
			col[x] = byte(f[x][y])
		}
		h.Write(col)
	}
	return h.Sum32()
}
