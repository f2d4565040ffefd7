package main

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stealthrocket/sysabi/internal/assert"
)

var sockaddrTests = tests{
	"encoded addresses decode to the same address": func(t *testing.T) {
		for _, addr := range []string{
			"127.0.0.1:8080",
			"[::1]:443",
			"[fe80::1%3]:53",
			"/tmp/sysabi.sock",
			"@sysabi",
		} {
			stdout, stderr, exitCode := sysabi(t, "sockaddr", "-o", "json", addr)
			assert.Equal(t, exitCode, 0)
			assert.Equal(t, stderr, "")

			var encoded addressEntry
			assert.OK(t, json.Unmarshal([]byte(stdout), &encoded))
			assert.Equal(t, encoded.Address, addr)

			stdout, stderr, exitCode = sysabi(t, "sockaddr", "-o", "json", "--decode", encoded.Bytes)
			assert.Equal(t, exitCode, 0)
			assert.Equal(t, stderr, "")

			var decoded addressEntry
			assert.OK(t, json.Unmarshal([]byte(stdout), &decoded))
			assert.Equal(t, decoded, encoded)
		}
	},

	"abstract names are not null terminated": func(t *testing.T) {
		stdout, _, exitCode := sysabi(t, "sockaddr", "-o", "json", "@sysabi")
		assert.Equal(t, exitCode, 0)

		var e addressEntry
		assert.OK(t, json.Unmarshal([]byte(stdout), &e))
		assert.Equal(t, e, addressEntry{
			Family:  "UNIX",
			Address: "@sysabi",
			Length:  9,
			Bytes:   "010000737973616269",
		})
	},

	"paths that do not fit in sockaddr_un cause an error": func(t *testing.T) {
		_, stderr, exitCode := sysabi(t, "sockaddr", "/"+strings.Repeat("x", 107))
		assert.Equal(t, exitCode, 1)
		assert.Equal(t, stderr, "ERR: sysabi sockaddr: sockaddr: unix socket path is too long\n")
	},

	"decoding an address of an unknown family causes an error": func(t *testing.T) {
		_, stderr, exitCode := sysabi(t, "sockaddr", "--decode", "1100")
		assert.Equal(t, exitCode, 1)
		assert.HasPrefix(t, stderr, "ERR: sysabi sockaddr: ")
	},

	"decoding a truncated address causes an error": func(t *testing.T) {
		_, stderr, exitCode := sysabi(t, "sockaddr", "--decode", "0200")
		assert.Equal(t, exitCode, 1)
		assert.Equal(t, stderr, "ERR: sysabi sockaddr: sockaddr: address is shorter than its family requires\n")
	},

	"an address is required": func(t *testing.T) {
		_, _, exitCode := sysabi(t, "sockaddr")
		assert.Equal(t, exitCode, 2)
	},
}

func Example_sockaddr() {
	ctx := context.Background()

	PASS(root(ctx, "sockaddr", "127.0.0.1:8080"))
	// Output:
	// FAMILY  ADDRESS         LENGTH  BYTES
	// INET    127.0.0.1:8080  16      02001f907f0000010000000000000000
}

func Example_sockaddr_decode() {
	ctx := context.Background()

	PASS(root(ctx, "sockaddr", "-o", "json", "--decode", "0a000050000000000000000000000000000000000000000100000000"))
	// Output:
	// {
	//   "family": "INET6",
	//   "address": "[::1]:80",
	//   "length": 28,
	//   "bytes": "0a000050000000000000000000000000000000000000000100000000"
	// }
}

func Example_sockaddr_unix() {
	ctx := context.Background()

	PASS(root(ctx, "sockaddr", "-o", "yaml", "/tmp/x.sock"))
	// Output:
	// family: UNIX
	// address: /tmp/x.sock
	// length: 14
	// bytes: 01002f746d702f782e736f636b00
}
