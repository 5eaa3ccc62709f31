package ledgercell

import "encoding/binary"

/*
Record is the decoded form of the state persisted in an account buffer. The
on-disk layout is a fixed field order with little-endian integers and a
length-prefixed name:

-----------------------------------------------------------
| counter(4) | counter_seed(4) | name_len(4) | name bytes |
-----------------------------------------------------------

There is no version field. Changing this layout is a breaking format change:
it requires allocating fresh accounts, never migrating old ones in place.
*/
type Record struct {
	Counter     uint32
	CounterSeed uint32
	Name        string
}

// recordHeaderSize covers the two counters and the name length prefix.
const recordHeaderSize = 12

// EncodedSize returns the number of bytes EncodeInto writes for the record.
func (r Record) EncodedSize() int {
	return recordHeaderSize + len(r.Name)
}

// EncodeInto writes the record into buf starting at offset 0, in the fixed
// field order. If the encoded record doesn't fit, it returns
// CodeCapacityExceeded before writing anything, leaving buf byte-for-byte
// unchanged; there are no partial writes. Bytes past the encoded length
// keep whatever contents they had.
func (r Record) EncodeInto(buf []byte) error {
	if size := r.EncodedSize(); size > len(buf) {
		return errorf(CodeCapacityExceeded, "encoded record is %d bytes, account holds %d", size, len(buf))
	}
	binary.LittleEndian.PutUint32(buf[0:4], r.Counter)
	binary.LittleEndian.PutUint32(buf[4:8], r.CounterSeed)
	binary.LittleEndian.PutUint32(buf[8:recordHeaderSize], uint32(len(r.Name)))
	copy(buf[recordHeaderSize:], r.Name)
	return nil
}

// DecodeRecord reads a record from the start of buf. Decoding is total: any
// field whose bytes aren't fully present, or a name whose length prefix
// overruns the buffer, decodes as its zero value. Freshly allocated account
// storage therefore decodes as the zero Record instead of erroring, the one
// place non-canonical bytes are accepted silently.
func DecodeRecord(buf []byte) Record {
	var r Record
	if len(buf) >= 4 {
		r.Counter = binary.LittleEndian.Uint32(buf[0:4])
	}
	if len(buf) >= 8 {
		r.CounterSeed = binary.LittleEndian.Uint32(buf[4:8])
	}
	if len(buf) >= recordHeaderSize {
		if n := int(binary.LittleEndian.Uint32(buf[8:recordHeaderSize])); n >= 0 && n <= len(buf)-recordHeaderSize {
			r.Name = string(buf[recordHeaderSize : recordHeaderSize+n])
		}
	}
	return r
}

// apply merges an update into a copy of the record. Payload-carried fields
// overwrite wholesale. Counter isn't payload-driven: it advances by one on
// every successful invocation no matter what the payload says.
func (r Record) apply(u updateRequest) Record {
	r.Counter++
	r.CounterSeed = u.CounterSeed
	r.Name = u.Name
	return r
}
