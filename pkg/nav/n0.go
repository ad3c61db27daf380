package nav

import "encoding/binary"

// N0Packet is the fixed 32-byte little-endian telemetry record:
//
//	offset 0     'N'
//	offset 1-3   reserved, zero
//	offset 4-7   uint32  time of week [ms]
//	offset 8-11  int32   latitude  [deg * 1e7]
//	offset 12-15 int32   longitude [deg * 1e7]
//	offset 16-19 int32   height    [m * 1e4]
//	offset 20-25 int16x3 v_north, v_east, v_down [m/s * 1e2]
//	offset 26-31 int16x3 heading, pitch, roll    [deg * 1e2]
//
// The record size is part of the type; encoding has no error path.
type N0Packet [32]byte

// EncodeN0 serializes one snapshot into an N0 record. itowSeconds is the
// GPS time of week in seconds. Every fixed-point conversion truncates
// toward zero; the format is lossy and encode-only.
func EncodeN0(itowSeconds float64, d Data) N0Packet {
	var p N0Packet
	p[0] = 'N'
	binary.LittleEndian.PutUint32(p[4:8], uint32(itowSeconds*1000))
	binary.LittleEndian.PutUint32(p[8:12], uint32(int32(Rad2Deg(d.Latitude())*1e7)))
	binary.LittleEndian.PutUint32(p[12:16], uint32(int32(Rad2Deg(d.Longitude())*1e7)))
	binary.LittleEndian.PutUint32(p[16:20], uint32(int32(d.Height()*1e4)))
	binary.LittleEndian.PutUint16(p[20:22], uint16(int16(d.VNorth()*1e2)))
	binary.LittleEndian.PutUint16(p[22:24], uint16(int16(d.VEast()*1e2)))
	binary.LittleEndian.PutUint16(p[24:26], uint16(int16(d.VDown()*1e2)))
	binary.LittleEndian.PutUint16(p[26:28], uint16(int16(Rad2Deg(d.Heading())*1e2)))
	binary.LittleEndian.PutUint16(p[28:30], uint16(int16(Rad2Deg(d.Pitch())*1e2)))
	binary.LittleEndian.PutUint16(p[30:32], uint16(int16(Rad2Deg(d.Roll())*1e2)))
	return p
}
