package mcping

import (
	"errors"

	"github.com/realDragonium/mcping/mc"
)

var (
	ErrConnectionFailed = errors.New("failed to connect to server")
	ErrInvalidConnState = errors.New("connection is in the wrong state for this call")
	ErrInvalidStatus    = errors.New("invalid status response")
	ErrPingMismatch     = errors.New("pong payload differs from the ping payload")

	// ErrUnexpectedPacket is returned when the server answers with a
	// packet id that doesnt belong to the packet we are waiting for.
	ErrUnexpectedPacket = mc.ErrInvalidPacketID
)
