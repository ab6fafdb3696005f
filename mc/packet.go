package mc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	ErrInvalidPacketID  = errors.New("invalid packet id")
	ErrMalformedVarInt  = errors.New("malformed varint")
	ErrPacketTooBig     = errors.New("packet contains too much data")
	ErrConnectionClosed = errors.New("connection closed before packet was complete")
)

// MaxPacketSize is the maximum length prefix ReadPacket accepts,
// the same bound the vanilla protocol uses (3 varint bytes fully set).
const MaxPacketSize = 2097151

// Packet is the raw representation of a message that is send between the client and the server
type Packet struct {
	ID   byte
	Data []byte
}

// Scan decodes and copies the Packet data into the fields
func (pk Packet) Scan(fields ...FieldDecoder) error {
	return ScanFields(bytes.NewReader(pk.Data), fields...)
}

// Marshal encodes the packet with its length prefixed envelope
func (pk Packet) Marshal() []byte {
	var packedData []byte
	data := []byte{pk.ID}
	data = append(data, pk.Data...)
	packetLength := VarInt(int32(len(data))).Encode()
	packedData = append(packedData, packetLength...)

	return append(packedData, data...)
}

// ScanFields decodes a byte stream into fields
func ScanFields(r DecodeReader, fields ...FieldDecoder) error {
	for _, field := range fields {
		if err := field.Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// MarshalPacket transforms an ID and Fields into a Packet
func MarshalPacket(ID byte, fields ...FieldEncoder) Packet {
	var pkt Packet
	pkt.ID = ID

	for _, v := range fields {
		pkt.Data = append(pkt.Data, v.Encode()...)
	}

	return pkt
}

// ReadPacket decodes a byte stream and cuts the first Packet out.
// The remainder of the packet is only read once the length prefix
// has been satisfied, so a stream that closes halfway through a
// frame reports ErrConnectionClosed instead of a short packet.
func ReadPacket(r DecodeReader) (Packet, error) {
	var packetLength VarInt
	if err := packetLength.Decode(r); err != nil {
		return Packet{}, readError(err)
	}

	if packetLength < 1 {
		return Packet{}, fmt.Errorf("packet length %d too short", packetLength)
	}
	if packetLength > MaxPacketSize {
		return Packet{}, ErrPacketTooBig
	}

	data := make([]byte, packetLength)
	if _, err := io.ReadFull(r, data); err != nil {
		return Packet{}, readError(err)
	}

	return Packet{
		ID:   data[0],
		Data: data[1:],
	}, nil
}

// readError maps stream-end conditions onto ErrConnectionClosed,
// everything else passes through untouched.
func readError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrConnectionClosed
	}
	return err
}
