// SPDX-License-Identifier: GPL-3.0-or-later

// Package demo contains fixture [router.Element] implementations that
// exercise the element contract end to end with real, non-trivial
// dependencies instead of synthetic test doubles. These are reference
// fixtures, not a leaf-element catalog: they are not part of the router's
// public contract.
package demo

import (
	"fmt"
	"net"
	"time"

	"github.com/bassosimone/router"
	"github.com/bassosimone/safeconn"
	"github.com/miekg/dns"
	"golang.org/x/net/http2"
)

// DNSRecordElement is a zero-input, one-output, push-output fixture that
// parses a configured list of zone-file resource-record strings at
// Configure time, the Go-idiomatic analogue of a leaf element that parses a
// packet-summary dump format at configure time (grounded on the original
// repository's ipsumdumpinfo.cc). A malformed record is reported through
// the element's [router.ErrorSink] and its parse error is returned from
// Configure, demonstrating configure-time failure with a real parser
// instead of a synthetic one.
type DNSRecordElement struct {
	// Logger receives the "closing" log line Cleanup emits when the
	// element holds a connection, describing its endpoints via safeconn.
	// Configure sets it to a discard logger if left nil.
	Logger router.SLogger

	records []dns.RR
	conn    net.Conn
}

var _ router.Element = &DNSRecordElement{}

// ClassName implements [router.Element].
func (e *DNSRecordElement) ClassName() string { return "DNSRecord" }

// ConfigurePhase implements [router.Element].
func (e *DNSRecordElement) ConfigurePhase() int { return 0 }

// PortCounts implements [router.Element]: no inputs, one push output.
func (e *DNSRecordElement) PortCounts() (nInputs, nOutputs int) { return 0, 1 }

// ProcessingVector implements [router.Element]: the single output is push.
func (e *DNSRecordElement) ProcessingVector(inputs, outputs []router.Polarity) {
	outputs[0] = router.Push
}

// PortFlow implements [router.Element]: no inputs to flow from.
func (e *DNSRecordElement) PortFlow(dir router.Direction, port int) router.Bitvector {
	return router.NewBitvector(0)
}

// Configure implements [router.Element], parsing each argument as a
// zone-file resource record.
func (e *DNSRecordElement) Configure(args []string, sink router.ErrorSink) error {
	if e.Logger == nil {
		e.Logger = router.DefaultSLogger()
	}
	for _, arg := range args {
		rr, err := dns.NewRR(arg)
		if err != nil {
			sink.Error("bad resource record %q: %s", arg, err)
			return err
		}
		e.records = append(e.records, rr)
	}
	return nil
}

// Initialize implements [router.Element]; nothing further to do.
func (e *DNSRecordElement) Initialize(sink router.ErrorSink) error { return nil }

// InitializePorts implements [router.Element].
func (e *DNSRecordElement) InitializePorts(inputs, outputs []router.Polarity) {}

// ConnectPort implements [router.Element]; it records nothing.
func (e *DNSRecordElement) ConnectPort(isOutput bool, port int, other router.Element, otherPort int) {}

// Cleanup implements [router.Element].
func (e *DNSRecordElement) Cleanup(stage router.CleanupStage) {
	if e.conn == nil {
		return
	}
	e.Logger.Info("closing demo fixture connection", "conn", describeConn(e.conn))
	e.conn.Close()
}

// AddHandlers implements [router.Element], publishing a "records" read
// handler that reports how many resource records were parsed.
func (e *DNSRecordElement) AddHandlers(r *router.Router) {
	r.AddReadHandler(e, "records", func(el router.Element, param string, thunk any, sink router.ErrorSink) (string, error) {
		return fmt.Sprintf("%d", len(el.(*DNSRecordElement).records)), nil
	}, nil)
}

// describeConn logs a connection's endpoints the way the teacher's
// observeconn.go does, tolerating a nil conn.
func describeConn(conn net.Conn) string {
	return fmt.Sprintf("%s local=%s remote=%s", safeconn.Network(conn), safeconn.LocalAddr(conn), safeconn.RemoteAddr(conn))
}

// HTTP2ProbeElement is a one-input push, one-output push fixture that
// builds an [http2.Transport] during Initialize to validate its configured
// frame-size/idle-timeout capabilities — an initialize-time capability
// check with a real transport type, performing no network I/O, the
// analogue of a device-driver leaf element validating hardware
// capabilities at bring-up.
type HTTP2ProbeElement struct {
	MaxReadFrameSize uint32
	ReadIdleTimeout  time.Duration

	transport *http2.Transport
}

var _ router.Element = &HTTP2ProbeElement{}

// ClassName implements [router.Element].
func (e *HTTP2ProbeElement) ClassName() string { return "HTTP2Probe" }

// ConfigurePhase implements [router.Element].
func (e *HTTP2ProbeElement) ConfigurePhase() int { return 10 }

// PortCounts implements [router.Element].
func (e *HTTP2ProbeElement) PortCounts() (nInputs, nOutputs int) { return 1, 1 }

// ProcessingVector implements [router.Element]: a straight push-through.
func (e *HTTP2ProbeElement) ProcessingVector(inputs, outputs []router.Polarity) {
	inputs[0] = router.Push
	outputs[0] = router.Push
}

// PortFlow implements [router.Element]: the single input flows to the
// single output.
func (e *HTTP2ProbeElement) PortFlow(dir router.Direction, port int) router.Bitvector {
	return router.AllBitvector(1)
}

// Configure implements [router.Element], accepting
// "max-read-frame-size=<n>" and "read-idle-timeout=<duration>" arguments.
func (e *HTTP2ProbeElement) Configure(args []string, sink router.ErrorSink) error {
	e.MaxReadFrameSize = 16 << 10
	e.ReadIdleTimeout = 30 * time.Second
	for _, arg := range args {
		var n uint32
		var d time.Duration
		switch {
		case scanKV(arg, "max-read-frame-size", &n):
			e.MaxReadFrameSize = n
		case scanDurationKV(arg, "read-idle-timeout", &d):
			e.ReadIdleTimeout = d
		default:
			sink.Warningf("unrecognized argument %q", arg)
		}
	}
	return nil
}

// Initialize implements [router.Element], constructing the HTTP/2
// transport that validates the configured capabilities without performing
// any network I/O.
func (e *HTTP2ProbeElement) Initialize(sink router.ErrorSink) error {
	e.transport = &http2.Transport{
		MaxReadFrameSize: e.MaxReadFrameSize,
		ReadIdleTimeout:  e.ReadIdleTimeout,
	}
	if e.MaxReadFrameSize == 0 {
		sink.Error("max-read-frame-size must be nonzero")
		return router.ErrInitializeFailed
	}
	return nil
}

// InitializePorts implements [router.Element].
func (e *HTTP2ProbeElement) InitializePorts(inputs, outputs []router.Polarity) {}

// ConnectPort implements [router.Element].
func (e *HTTP2ProbeElement) ConnectPort(isOutput bool, port int, other router.Element, otherPort int) {}

// Cleanup implements [router.Element].
func (e *HTTP2ProbeElement) Cleanup(stage router.CleanupStage) {}

// AddHandlers implements [router.Element].
func (e *HTTP2ProbeElement) AddHandlers(r *router.Router) {
	r.AddReadHandler(e, "max_read_frame_size", func(el router.Element, param string, thunk any, sink router.ErrorSink) (string, error) {
		return fmt.Sprintf("%d", el.(*HTTP2ProbeElement).MaxReadFrameSize), nil
	}, nil)
}

func scanKV(arg, key string, out *uint32) bool {
	prefix := key + "="
	if len(arg) <= len(prefix) || arg[:len(prefix)] != prefix {
		return false
	}
	var n uint32
	if _, err := fmt.Sscanf(arg[len(prefix):], "%d", &n); err != nil {
		return false
	}
	*out = n
	return true
}

func scanDurationKV(arg, key string, out *time.Duration) bool {
	prefix := key + "="
	if len(arg) <= len(prefix) || arg[:len(prefix)] != prefix {
		return false
	}
	d, err := time.ParseDuration(arg[len(prefix):])
	if err != nil {
		return false
	}
	*out = d
	return true
}
