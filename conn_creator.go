package mcping

import (
	"net"

	"github.com/pires/go-proxyproto"
)

type ConnectionCreator interface {
	Conn() func() (net.Conn, error)
}

type ConnectionCreatorFunc func() (net.Conn, error)

func (creator ConnectionCreatorFunc) Conn() func() (net.Conn, error) {
	return creator
}

func BasicConnCreator(addr string, dialer net.Dialer) ConnectionCreatorFunc {
	return func() (net.Conn, error) {
		return dialer.Dial("tcp", addr)
	}
}

// ProxyProtoConnCreator wraps another creator and announces the
// connection with a PROXY protocol v2 header right after dialing,
// for servers that sit behind a proxy expecting one.
func ProxyProtoConnCreator(creator ConnectionCreator) ConnectionCreatorFunc {
	return func() (net.Conn, error) {
		serverConn, err := creator.Conn()()
		if err != nil {
			return serverConn, err
		}
		transportProtocol := proxyproto.TCPv4
		if tcpAddr, ok := serverConn.LocalAddr().(*net.TCPAddr); ok && tcpAddr.IP.To4() == nil {
			transportProtocol = proxyproto.TCPv6
		}
		header := &proxyproto.Header{
			Version:           2,
			Command:           proxyproto.PROXY,
			TransportProtocol: transportProtocol,
			SourceAddr:        serverConn.LocalAddr(),
			DestinationAddr:   serverConn.RemoteAddr(),
		}
		if _, err := header.WriteTo(serverConn); err != nil {
			serverConn.Close()
			return nil, err
		}
		return serverConn, nil
	}
}
