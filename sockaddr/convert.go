package sockaddr

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"

	"golang.org/x/sys/unix"
)

// FromAddrPort converts an IP address and port to an Inet4 or Inet6 address.
// IPv4-mapped IPv6 addresses stay in the INET6 family.
func FromAddrPort(ap netip.AddrPort) Addr {
	addr := ap.Addr()
	if addr.Is4() {
		return Inet4{Addr: addr.As4(), Port: ap.Port()}
	}
	sa := Inet6{Addr: addr.As16(), Port: ap.Port()}
	if zone := addr.Zone(); zone != "" {
		if id, err := strconv.ParseUint(zone, 10, 32); err == nil {
			sa.ScopeID = uint32(id)
		} else if ifi, err := net.InterfaceByName(zone); err == nil {
			sa.ScopeID = uint32(ifi.Index)
		}
	}
	return sa
}

// FromNetAddr converts the address types of the net package.
func FromNetAddr(addr net.Addr) (Addr, error) {
	switch a := addr.(type) {
	case *net.UnixAddr:
		return Unix{Path: a.Name}, nil
	case *net.UDPAddr:
		return fromNetAddrPort(a.AddrPort()), nil
	case *net.TCPAddr:
		return fromNetAddrPort(a.AddrPort()), nil
	case *net.IPAddr:
		ip, ok := netip.AddrFromSlice(a.IP)
		if !ok {
			return nil, fmt.Errorf("sockaddr: invalid IP address: %v", a.IP)
		}
		return FromAddrPort(netip.AddrPortFrom(ip.Unmap().WithZone(a.Zone), 0)), nil
	default:
		return nil, fmt.Errorf("sockaddr: unsupported address type: %T", addr)
	}
}

// The net package stores IPv4 addresses in their 16 bytes form.
func fromNetAddrPort(ap netip.AddrPort) Addr {
	return FromAddrPort(netip.AddrPortFrom(ap.Addr().Unmap(), ap.Port()))
}

// ToUnix converts addr to the equivalent golang.org/x/sys/unix address.
func ToUnix(addr Addr) unix.Sockaddr {
	switch a := addr.(type) {
	case Unix:
		return &unix.SockaddrUnix{Name: a.Path}
	case Inet4:
		return &unix.SockaddrInet4{Addr: a.Addr, Port: int(a.Port)}
	case Inet6:
		return &unix.SockaddrInet6{Addr: a.Addr, Port: int(a.Port), ZoneId: a.ScopeID}
	default:
		return nil
	}
}

// FromUnix converts a golang.org/x/sys/unix address.
func FromUnix(sa unix.Sockaddr) (Addr, error) {
	switch a := sa.(type) {
	case *unix.SockaddrUnix:
		return Unix{Path: a.Name}, nil
	case *unix.SockaddrInet4:
		return Inet4{Addr: a.Addr, Port: uint16(a.Port)}, nil
	case *unix.SockaddrInet6:
		return Inet6{Addr: a.Addr, Port: uint16(a.Port), ScopeID: a.ZoneId}, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("sockaddr: unsupported address type: %T", sa)
	}
}
