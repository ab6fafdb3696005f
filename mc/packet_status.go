package mc

import (
	"time"
)

const (
	ClientBoundResponsePacketID byte = 0x00
	ServerBoundRequestPacketID  byte = 0x00
	ServerBoundPingPacketID     byte = 0x01
	ClientBoundPongPacketID     byte = 0x01
)

type ServerBoundRequest struct{}

func (pk ServerBoundRequest) Marshal() Packet {
	return MarshalPacket(
		ServerBoundRequestPacketID,
	)
}

type ClientBoundResponse struct {
	JSONResponse String
}

func (pk ClientBoundResponse) Marshal() Packet {
	return MarshalPacket(
		ClientBoundResponsePacketID,
		pk.JSONResponse,
	)
}

func UnmarshalClientBoundResponse(packet Packet) (ClientBoundResponse, error) {
	var pk ClientBoundResponse

	if packet.ID != ClientBoundResponsePacketID {
		return pk, ErrInvalidPacketID
	}

	if err := packet.Scan(
		&pk.JSONResponse,
	); err != nil {
		return pk, err
	}

	return pk, nil
}

// NewServerBoundPing returns a ping packet carrying the current
// nanosecond clock, so consecutive pings never share a payload.
func NewServerBoundPing() ServerBoundPing {
	return ServerBoundPing{
		Payload: Long(time.Now().UnixNano()),
	}
}

type ServerBoundPing struct {
	Payload Long
}

func (pk ServerBoundPing) Marshal() Packet {
	return MarshalPacket(
		ServerBoundPingPacketID,
		pk.Payload,
	)
}

func UnmarshalServerBoundPing(packet Packet) (ServerBoundPing, error) {
	var pk ServerBoundPing

	if packet.ID != ServerBoundPingPacketID {
		return pk, ErrInvalidPacketID
	}

	if err := packet.Scan(
		&pk.Payload,
	); err != nil {
		return pk, err
	}

	return pk, nil
}

type ClientBoundPong struct {
	Payload Long
}

func (pk ClientBoundPong) Marshal() Packet {
	return MarshalPacket(
		ClientBoundPongPacketID,
		pk.Payload,
	)
}

func UnmarshalClientBoundPong(packet Packet) (ClientBoundPong, error) {
	var pk ClientBoundPong

	if packet.ID != ClientBoundPongPacketID {
		return pk, ErrInvalidPacketID
	}

	if err := packet.Scan(
		&pk.Payload,
	); err != nil {
		return pk, err
	}

	return pk, nil
}

// ResponseJSON is the wire shape of the status response body.
type ResponseJSON struct {
	Version     VersionJSON     `json:"version"`
	Players     PlayersJSON     `json:"players"`
	Description DescriptionJSON `json:"description"`
	Favicon     string          `json:"favicon,omitempty"`
}

type VersionJSON struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}

type PlayersJSON struct {
	Max    int                `json:"max"`
	Online int                `json:"online"`
	Sample []PlayerSampleJSON `json:"sample,omitempty"`
}

type PlayerSampleJSON struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type DescriptionJSON struct {
	Text string `json:"text"`
}
