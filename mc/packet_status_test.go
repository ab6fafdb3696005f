package mc_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/realDragonium/mcping/mc"
)

func TestServerBoundRequest_Marshal(t *testing.T) {
	pk := mc.ServerBoundRequest{}.Marshal()

	if pk.ID != mc.ServerBoundRequestPacketID {
		t.Error("invalid packet id")
	}

	if len(pk.Data) != 0 {
		t.Errorf("got: %v; want an empty body", pk.Data)
	}
}

func TestClientBoundResponse_Marshal(t *testing.T) {
	tt := []struct {
		packet          mc.ClientBoundResponse
		marshaledPacket mc.Packet
	}{
		{
			packet: mc.ClientBoundResponse{
				JSONResponse: mc.String(""),
			},
			marshaledPacket: mc.Packet{
				ID:   0x00,
				Data: []byte{0x00},
			},
		},
		{
			packet: mc.ClientBoundResponse{
				JSONResponse: mc.String("Hello, World!"),
			},
			marshaledPacket: mc.Packet{
				ID:   0x00,
				Data: []byte{0x0d, 0x48, 0x65, 0x6c, 0x6c, 0x6f, 0x2c, 0x20, 0x57, 0x6f, 0x72, 0x6c, 0x64, 0x21},
			},
		},
	}

	for _, tc := range tt {
		pk := tc.packet.Marshal()

		if pk.ID != mc.ClientBoundResponsePacketID {
			t.Error("invalid packet id")
		}

		if !bytes.Equal(pk.Data, tc.marshaledPacket.Data) {
			t.Errorf("got: %v, want: %v", pk.Data, tc.marshaledPacket.Data)
		}
	}
}

func TestUnmarshalClientBoundResponse(t *testing.T) {
	tt := []struct {
		packet             mc.Packet
		unmarshalledPacket mc.ClientBoundResponse
	}{
		{
			packet: mc.Packet{
				ID:   0x00,
				Data: []byte{0x00},
			},
			unmarshalledPacket: mc.ClientBoundResponse{
				JSONResponse: "",
			},
		},
		{
			packet: mc.Packet{
				ID:   0x00,
				Data: []byte{0x0d, 0x48, 0x65, 0x6c, 0x6c, 0x6f, 0x2c, 0x20, 0x57, 0x6f, 0x72, 0x6c, 0x64, 0x21},
			},
			unmarshalledPacket: mc.ClientBoundResponse{
				JSONResponse: mc.String("Hello, World!"),
			},
		},
	}

	for _, tc := range tt {
		actual, err := mc.UnmarshalClientBoundResponse(tc.packet)
		if err != nil {
			t.Error(err)
		}

		expected := tc.unmarshalledPacket

		if actual.JSONResponse != expected.JSONResponse {
			t.Errorf("got: %v, want: %v", actual, expected)
		}
	}
}

func TestUnmarshalClientBoundResponse_WrongPacketID(t *testing.T) {
	packet := mc.Packet{
		ID:   0x01,
		Data: []byte{0x00},
	}

	_, err := mc.UnmarshalClientBoundResponse(packet)

	if !errors.Is(err, mc.ErrInvalidPacketID) {
		t.Errorf("got: %v; want: %v", err, mc.ErrInvalidPacketID)
	}
}

func TestServerBoundPing_Marshal(t *testing.T) {
	ping := mc.ServerBoundPing{Payload: mc.Long(42)}

	pk := ping.Marshal()

	if pk.ID != mc.ServerBoundPingPacketID {
		t.Error("invalid packet id")
	}

	expectedData := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2a}
	if !bytes.Equal(pk.Data, expectedData) {
		t.Errorf("got: %v; want: %v", pk.Data, expectedData)
	}
}

func TestNewServerBoundPing(t *testing.T) {
	ping := mc.NewServerBoundPing()

	if ping.Payload == 0 {
		t.Error("expected a non zero ping payload")
	}
}

func TestUnmarshalClientBoundPong(t *testing.T) {
	pong := mc.ClientBoundPong{Payload: mc.Long(1577098983024)}

	actual, err := mc.UnmarshalClientBoundPong(pong.Marshal())
	if err != nil {
		t.Fatal(err)
	}

	if actual.Payload != pong.Payload {
		t.Errorf("got: %v; want: %v", actual.Payload, pong.Payload)
	}
}

func TestUnmarshalClientBoundPong_WrongPacketID(t *testing.T) {
	packet := mc.Packet{
		ID:   0x00,
		Data: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2a},
	}

	_, err := mc.UnmarshalClientBoundPong(packet)

	if !errors.Is(err, mc.ErrInvalidPacketID) {
		t.Errorf("got: %v; want: %v", err, mc.ErrInvalidPacketID)
	}
}

func TestUnmarshalServerBoundPing(t *testing.T) {
	ping := mc.ServerBoundPing{Payload: mc.Long(-7)}

	actual, err := mc.UnmarshalServerBoundPing(ping.Marshal())
	if err != nil {
		t.Fatal(err)
	}

	if actual.Payload != ping.Payload {
		t.Errorf("got: %v; want: %v", actual.Payload, ping.Payload)
	}
}
