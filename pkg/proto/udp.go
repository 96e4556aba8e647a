package proto

import (
	"net"

	"github.com/pkg/errors"
)

// NewUDP resolves addr ("host:port") and opens an unconnected datagram
// socket towards it. Every Write becomes exactly one datagram.
func NewUDP(addr string) (*UDP, error) {
	raddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", addr)
	}

	conn, err := net.ListenUDP("udp", nil)
	if err != nil {
		return nil, errors.Wrap(err, "open udp socket")
	}

	return &UDP{conn: conn, raddr: raddr}, nil
}

type UDP struct {
	conn  *net.UDPConn
	raddr *net.UDPAddr
}

func (u *UDP) Addr() string {
	return u.raddr.String()
}

func (u *UDP) Write(p []byte) (n int, err error) {
	return u.conn.WriteToUDP(p, u.raddr)
}

func (u *UDP) Close() error {
	return u.conn.Close()
}
