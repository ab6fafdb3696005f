package mc

import (
	"bufio"
	"net"
)

type McConn interface {
	ReadPacket() (Packet, error)
	WritePacket(p Packet) error
}

func NewMcConn(conn net.Conn) McConn {
	return mcConn{
		netConn: conn,
		reader:  bufio.NewReader(conn),
	}
}

type mcConn struct {
	netConn net.Conn
	reader  DecodeReader
}

func (conn mcConn) ReadPacket() (Packet, error) {
	return ReadPacket(conn.reader)
}

func (conn mcConn) WritePacket(p Packet) error {
	_, err := conn.netConn.Write(p.Marshal())
	return err
}
