package mcping_test

import (
	"bufio"
	"net"
	"testing"
	"time"

	"github.com/pires/go-proxyproto"
	mcping "github.com/realDragonium/mcping"
)

func TestBasicConnCreator(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		conn.Close()
	}()

	creator := mcping.BasicConnCreator(ln.Addr().String(), net.Dialer{Timeout: time.Second})

	conn, err := creator.Conn()()
	if err != nil {
		t.Fatal(err)
	}
	conn.Close()
}

func TestProxyProtoConnCreator(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	headerCh := make(chan *proxyproto.Header, 1)
	errCh := make(chan error, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			errCh <- err
			return
		}
		defer conn.Close()
		header, err := proxyproto.Read(bufio.NewReader(conn))
		if err != nil {
			errCh <- err
			return
		}
		headerCh <- header
	}()

	inner := mcping.BasicConnCreator(ln.Addr().String(), net.Dialer{Timeout: time.Second})
	creator := mcping.ProxyProtoConnCreator(inner)

	conn, err := creator.Conn()()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	select {
	case err := <-errCh:
		t.Fatal(err)
	case header := <-headerCh:
		if header.Command != proxyproto.PROXY {
			t.Errorf("command: got: %v; want: %v", header.Command, proxyproto.PROXY)
		}
		if header.TransportProtocol != proxyproto.TCPv4 {
			t.Errorf("transport: got: %v; want: %v", header.TransportProtocol, proxyproto.TCPv4)
		}
		if header.SourceAddr.String() != conn.LocalAddr().String() {
			t.Errorf("source addr: got: %v; want: %v", header.SourceAddr, conn.LocalAddr())
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the proxy protocol header")
	}
}
