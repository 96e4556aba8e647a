// Package discovery finds displays on the local network over mDNS.
package discovery

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/hashicorp/mdns"
	"github.com/pkg/errors"
)

const ServiceType = "_oledpad._udp"

// Advertise announces a display listening on port until Shutdown is called
// on the returned server.
func Advertise(port int, info ...string) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, errors.Wrap(err, "hostname")
	}

	service, err := mdns.NewMDNSService(host, ServiceType, "", "", port, nil, info)
	if err != nil {
		return nil, errors.Wrap(err, "create mdns service")
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, errors.Wrap(err, "start mdns server")
	}

	return server, nil
}

// Lookup returns the "host:port" of the first display that answers within
// timeout.
func Lookup(timeout time.Duration) (string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan string)

	go func() {
		var first string
		for e := range entries {
			if addr := entryAddr(e); addr != "" && first == "" {
				first = addr
			}
		}
		done <- first
	}()

	params := mdns.DefaultParams(ServiceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true

	err := mdns.Query(params)
	close(entries)
	addr := <-done

	if err != nil {
		return "", errors.Wrap(err, "mdns query")
	}
	if addr == "" {
		return "", errors.Errorf("no %s service found", ServiceType)
	}
	return addr, nil
}

func entryAddr(e *mdns.ServiceEntry) string {
	if e == nil || e.AddrV4 == nil || e.Port == 0 {
		return ""
	}
	return net.JoinHostPort(e.AddrV4.String(), fmt.Sprint(e.Port))
}
