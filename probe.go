package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/nettest"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/stealthrocket/sysabi/cmsg"
	"github.com/stealthrocket/sysabi/internal/print/human"
	"github.com/stealthrocket/sysabi/internal/print/textprint"
	"github.com/stealthrocket/sysabi/internal/stream"
	"github.com/stealthrocket/sysabi/result"
	"github.com/stealthrocket/sysabi/sockaddr"
	"github.com/stealthrocket/sysabi/sockopt"
	"github.com/stealthrocket/sysabi/sys"
)

const probeUsage = `
Usage:	sysabi probe [options]

   Create pairs of datagram sockets bound to the loopback interface, and send
   one datagram from each sender to its receiver with the hop limit (IPv6) or
   TTL (IPv4) attached as ancillary data. Each receiver reports the value it
   decoded from the ancillary data delivered with the datagram.

   The pairs run concurrently. A pair fails if its datagram is not received
   before the timeout, or before the deadline of the command if it is sooner.
   Defaults are read from the probe section of the configuration file.

Example:

   $ sysabi probe --family inet6 --hop-limit 7 --count 2
   PAIR  FAMILY  SENDER         RECEIVER       HOP LIMIT  SIZE  ID
   0     INET6   [::1]:41237    [::1]:52817    7          43    3bd9c2f0-...
   1     INET6   [::1]:37716    [::1]:48809    7          43    c6e8d5bb-...

Options:
   -n, --count n        Number of socket pairs
   -f, --family family  Address family, one of: inet, inet6
   -h, --help           Show this usage information
       --hop-limit n    Hop limit (or TTL) attached to each datagram
   -o, --output format  Output format, one of: text, json, yaml
       --payload text   Text sent before the identifier of each datagram
       --rate rate      Maximum rate of datagrams sent by all pairs (e.g. 100/s)
       --timeout time   How long each receiver waits for its datagram (default 5s)
`

type probeResult struct {
	Pair     int    `json:"pair"      yaml:"pair"      text:"PAIR"`
	Family   string `json:"family"    yaml:"family"    text:"FAMILY"`
	Sender   string `json:"sender"    yaml:"sender"    text:"SENDER"`
	Receiver string `json:"receiver"  yaml:"receiver"  text:"RECEIVER"`
	HopLimit int    `json:"hop-limit" yaml:"hop-limit" text:"HOP LIMIT"`
	Size     int    `json:"size"      yaml:"size"      text:"SIZE"`
	ID       string `json:"id"        yaml:"id"        text:"ID"`
}

type probeOptions struct {
	family   family
	hopLimit int
	payload  string
	timeout  time.Duration
	limiter  *rate.Limiter
}

func probe(ctx context.Context, args []string) error {
	var (
		count    int
		hopLimit int
		payload  string
		fam      family
		limit    human.Rate
		timeout  human.Duration
		output   outputFormat
	)

	flagSet := newFlagSet("sysabi probe", probeUsage)
	intVar(flagSet, &count, "n", "count")
	customVar(flagSet, &fam, "f", "family")
	intVar(flagSet, &hopLimit, "hop-limit")
	customVar(flagSet, &output, "o", "output")
	stringVar(flagSet, &payload, "payload")
	customVar(flagSet, &limit, "rate")
	customVar(flagSet, &timeout, "timeout")

	args, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return usageError("sysabi probe: unexpected arguments: %q", args)
	}

	config, err := loadConfig(flagSet, &output)
	if err != nil {
		return err
	}
	if !isSet(flagSet, "n", "count") {
		count = config.Probe.Count
	}
	if !isSet(flagSet, "f", "family") {
		fam = config.Probe.Family
	}
	if !isSet(flagSet, "hop-limit") {
		hopLimit = config.Probe.HopLimit
	}
	if !isSet(flagSet, "payload") {
		payload = config.Probe.Payload
	}
	if !isSet(flagSet, "rate") {
		limit = config.Probe.Rate
	}
	if !isSet(flagSet, "timeout") {
		timeout = config.Probe.Timeout
	}

	if count < 1 {
		return usageError("sysabi probe: the count must be at least 1")
	}
	if hopLimit < 1 || hopLimit > 255 {
		return usageError("sysabi probe: the hop limit must be between 1 and 255")
	}
	if timeout <= 0 {
		return usageError("sysabi probe: the timeout must be positive")
	}
	if fam == "inet6" && !nettest.SupportsIPv6() {
		return errors.New("IPv6 is not supported on this host")
	}

	opts := probeOptions{
		family:   fam,
		hopLimit: hopLimit,
		payload:  payload,
		timeout:  time.Duration(timeout),
		limiter:  rate.NewLimiter(rate.Inf, 1),
	}
	if limit > 0 {
		opts.limiter = rate.NewLimiter(rate.Limit(limit), 1)
	}

	results := make(chan stream.Optional[probeResult], count)
	group, ctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		pair := i
		group.Go(func() error {
			r, err := runProbe(ctx, pair, opts)
			if err != nil {
				return fmt.Errorf("pair %d: %w", pair, err)
			}
			results <- stream.Ok(r)
			return nil
		})
	}
	go func() {
		if err := group.Wait(); err != nil {
			results <- stream.Err[probeResult](err)
		}
		close(results)
	}()

	w := newWriter(os.Stdout, output, func(w io.Writer) stream.WriteCloser[probeResult] {
		return textprint.NewTableWriter[probeResult](w,
			textprint.OrderBy(func(a, b probeResult) bool { return a.Pair < b.Pair }),
		)
	})
	return copyAndClose[probeResult](w, stream.ChanReader[probeResult](results))
}

type probeSocket struct {
	fd   int
	addr sockaddr.Addr
}

func openProbeSocket(fam sys.Family, local sockaddr.Addr) (*probeSocket, error) {
	fd, err := sys.Socket(fam, sys.DGRAM, sys.SOCK_CLOEXEC, sys.NOPROTO)
	if err != nil {
		return nil, fmt.Errorf("socket: %w", err)
	}
	if err := sys.Bind(fd, local); err != nil {
		closeTraceError(fd)
		return nil, fmt.Errorf("bind %s: %w", local, err)
	}
	addr, err := sys.Getsockname(fd)
	if err != nil {
		closeTraceError(fd)
		return nil, fmt.Errorf("getsockname: %w", err)
	}
	return &probeSocket{fd: fd, addr: addr}, nil
}

// recvTimeout returns the receive timeout of a probe socket: the configured
// timeout, shortened to the deadline of ctx if there is one. The kernel
// treats a zero timeout as infinite, so the result is at least a microsecond.
func recvTimeout(ctx context.Context, timeout time.Duration) *sockopt.Timeout {
	if deadline, ok := ctx.Deadline(); ok {
		if d := time.Until(deadline); d < timeout {
			timeout = d
		}
	}
	if timeout < time.Microsecond {
		timeout = time.Microsecond
	}
	return sockopt.RecvTimeout(timeout)
}

func runProbe(ctx context.Context, pair int, opts probeOptions) (probeResult, error) {
	var (
		fam     sys.Family
		local   sockaddr.Addr
		enable  *sockopt.Int
		send    *sockopt.Int
		receive *sockopt.Int
	)
	switch opts.family {
	case "inet6":
		fam = sys.INET6
		local = sockaddr.Inet6{Addr: [16]byte{15: 1}}
		enable = sockopt.Bool(sockopt.IPv6RecvHopLimit, true)
		send = sockopt.NewInt(sockopt.IPv6HopLimit, int32(opts.hopLimit))
		receive = sockopt.NewInt(sockopt.IPv6HopLimit, -1)
	default:
		fam = sys.INET
		local = sockaddr.Inet4{Addr: [4]byte{127, 0, 0, 1}}
		enable = sockopt.Bool(sockopt.IPv4RecvTTL, true)
		send = sockopt.NewInt(sockopt.IPv4TTL, int32(opts.hopLimit))
		receive = sockopt.NewInt(sockopt.IPv4TTL, -1)
	}

	sender, err := openProbeSocket(fam, local)
	if err != nil {
		return probeResult{}, err
	}
	defer closeTraceError(sender.fd)

	receiver, err := openProbeSocket(fam, local)
	if err != nil {
		return probeResult{}, err
	}
	defer closeTraceError(receiver.fd)

	if err := sys.Setsockopt(receiver.fd, enable); err != nil {
		return probeResult{}, fmt.Errorf("setsockopt %s: %w", enable.Key, err)
	}
	timeout := recvTimeout(ctx, opts.timeout)
	if err := sys.Setsockopt(receiver.fd, timeout); err != nil {
		return probeResult{}, fmt.Errorf("setsockopt %s: %w", timeout.Key, err)
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return probeResult{}, err
	}
	msg := []byte(opts.payload + ":" + id.String())

	if err := opts.limiter.Wait(ctx); err != nil {
		return probeResult{}, err
	}
	if _, err := sys.Sendmsg(sender.fd, receiver.addr, msg, []cmsg.Message{send}, 0); err != nil {
		return probeResult{}, fmt.Errorf("sendmsg: %w", err)
	}

	buf := make([]byte, len(msg)+1)
	n, from, flags, err := sys.Recvmsg(receiver.fd, buf, []cmsg.Message{receive}, 0)
	if err != nil {
		if errors.Is(err, result.EAGAIN) {
			return probeResult{}, fmt.Errorf("recvmsg: no datagram received within %s: %w", timeout.Duration, err)
		}
		return probeResult{}, fmt.Errorf("recvmsg: %w", err)
	}
	switch {
	case flags.Has(sys.MSG_TRUNC), flags.Has(sys.MSG_CTRUNC):
		return probeResult{}, fmt.Errorf("recvmsg: message truncated (flags=%s)", flags)
	case from != sender.addr:
		return probeResult{}, fmt.Errorf("recvmsg: datagram from %v, expected %s", from, sender.addr)
	case string(buf[:n]) != string(msg):
		return probeResult{}, fmt.Errorf("recvmsg: payload mismatch: %q", buf[:n])
	case receive.Value < 0:
		return probeResult{}, fmt.Errorf("recvmsg: no %s in ancillary data", receive.Key)
	}

	return probeResult{
		Pair:     pair,
		Family:   fam.String(),
		Sender:   sender.addr.String(),
		Receiver: receiver.addr.String(),
		HopLimit: int(receive.Value),
		Size:     n,
		ID:       id.String(),
	}, nil
}
