package main

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"net/netip"
	"os"
	"strings"

	"github.com/stealthrocket/sysabi/internal/print/textprint"
	"github.com/stealthrocket/sysabi/internal/stream"
	"github.com/stealthrocket/sysabi/sockaddr"
)

const sockaddrUsage = `
Usage:	sysabi sockaddr [options] <address>
	sysabi sockaddr --decode <hex>

   Encode a socket address in the layout passed to the kernel, or decode the
   hexadecimal bytes of an address returned by the kernel.

   Addresses starting with '@' are abstract unix socket names, addresses
   containing a '/' are unix socket paths, anything else is parsed as an IPv4
   or IPv6 address and port.

Example:

   $ sysabi sockaddr 127.0.0.1:8080
   FAMILY  ADDRESS         LENGTH  BYTES
   INET    127.0.0.1:8080  16      02001f907f0000010000000000000000

Options:
   -d, --decode hex     Decode the address from its hexadecimal representation
   -h, --help           Show this usage information
   -o, --output format  Output format, one of: text, json, yaml
`

type addressEntry struct {
	Family  string `json:"family"  yaml:"family"  text:"FAMILY"`
	Address string `json:"address" yaml:"address" text:"ADDRESS"`
	Length  int    `json:"length"  yaml:"length"  text:"LENGTH"`
	Bytes   string `json:"bytes"   yaml:"bytes"   text:"BYTES"`
}

func sockaddrCommand(ctx context.Context, args []string) error {
	var (
		decode string
		output = outputFormat("text")
	)

	flagSet := newFlagSet("sysabi sockaddr", sockaddrUsage)
	stringVar(flagSet, &decode, "d", "decode")
	customVar(flagSet, &output, "o", "output")

	args, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}
	if _, err := loadConfig(flagSet, &output); err != nil {
		return err
	}

	var entry addressEntry
	if decode != "" {
		if len(args) != 0 {
			return usageError("sysabi sockaddr: unexpected arguments after --decode: %q", args)
		}
		entry, err = decodeAddress(decode)
	} else {
		if len(args) != 1 {
			return usageError("sysabi sockaddr: expected exactly one address")
		}
		entry, err = encodeAddress(args[0])
	}
	if err != nil {
		return err
	}

	w := newWriter(os.Stdout, output, func(w io.Writer) stream.WriteCloser[addressEntry] {
		return textprint.NewTableWriter[addressEntry](w)
	})
	return writeAll(w, entry)
}

func parseAddress(s string) (sockaddr.Addr, error) {
	if strings.HasPrefix(s, "@") || strings.Contains(s, "/") || s == "" {
		return sockaddr.Unix{Path: s}, nil
	}
	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		return nil, err
	}
	return sockaddr.FromAddrPort(ap), nil
}

func encodeAddress(s string) (addressEntry, error) {
	addr, err := parseAddress(s)
	if err != nil {
		return addressEntry{}, err
	}
	var storage sockaddr.Storage
	_, n, err := sockaddr.Encode(addr, &storage)
	if err != nil {
		return addressEntry{}, err
	}
	return newAddressEntry(addr, storage.Bytes(n)), nil
}

func decodeAddress(s string) (addressEntry, error) {
	s = strings.NewReplacer(" ", "", ":", "").Replace(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return addressEntry{}, err
	}
	addr, err := sockaddr.Decode(b)
	if err != nil {
		return addressEntry{}, err
	}
	if addr == nil {
		return addressEntry{}, errors.New("no address to decode")
	}
	return newAddressEntry(addr, b), nil
}

func newAddressEntry(addr sockaddr.Addr, b []byte) addressEntry {
	e := addressEntry{
		Family:  addr.Family().String(),
		Address: addr.String(),
		Length:  len(b),
		Bytes:   hex.EncodeToString(b),
	}
	if e.Address == "" {
		e.Address = "(unnamed)"
	}
	return e
}
