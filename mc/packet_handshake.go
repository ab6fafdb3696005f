package mc

const (
	ServerBoundHandshakePacketID byte = 0x00

	StatusState = 1

	HandshakeStatusState = VarInt(StatusState)
)

type mcTypesHandshake struct {
	ProtocolVersion VarInt
	ServerAddress   String
	ServerPort      UnsignedShort
	NextState       VarInt
}

// ServerBoundHandshake is the first packet on a fresh connection,
// declaring the protocol version and the state the client wants
// to continue in.
type ServerBoundHandshake struct {
	ProtocolVersion int
	ServerAddress   string
	ServerPort      uint16
	NextState       int
}

func (pk ServerBoundHandshake) Marshal() Packet {
	return MarshalPacket(
		ServerBoundHandshakePacketID,
		VarInt(pk.ProtocolVersion),
		String(pk.ServerAddress),
		UnsignedShort(pk.ServerPort),
		VarInt(pk.NextState),
	)
}

func UnmarshalServerBoundHandshake(packet Packet) (ServerBoundHandshake, error) {
	var pk mcTypesHandshake
	var hs ServerBoundHandshake

	if packet.ID != ServerBoundHandshakePacketID {
		return hs, ErrInvalidPacketID
	}

	if err := packet.Scan(
		&pk.ProtocolVersion,
		&pk.ServerAddress,
		&pk.ServerPort,
		&pk.NextState,
	); err != nil {
		return hs, err
	}
	hs = ServerBoundHandshake{
		ProtocolVersion: int(pk.ProtocolVersion),
		ServerAddress:   string(pk.ServerAddress),
		ServerPort:      uint16(pk.ServerPort),
		NextState:       int(pk.NextState),
	}
	return hs, nil
}

func (pk ServerBoundHandshake) IsStatusRequest() bool {
	return VarInt(pk.NextState) == HandshakeStatusState
}
