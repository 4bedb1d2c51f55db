package executor

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/tarm/serial"
	"golang.org/x/time/rate"

	"github.com/chrisns/snapmaker-cnc-motion/internal/primitive"
)

// SerialConfig configures a Serial executor's connection to a
// controller board.
type SerialConfig struct {
	Port string
	Baud int

	// WriteRatePerSec caps how many lines per second are written to the
	// wire, independent of how fast the controller acknowledges them.
	WriteRatePerSec float64

	// AckTimeout bounds how long Flush waits for the final
	// acknowledgement before giving up.
	AckTimeout time.Duration
}

// Serial drives a grbl/Smoothieware-style controller: each primitive is
// formatted as one G-code line, written at a rate-limited pace, and
// tracked in a FIFO of outstanding durations that drains as "ok" lines
// arrive on the read side.
type Serial struct {
	cfg     SerialConfig
	conn    *serial.Port
	reader  *bufio.Scanner
	limiter *rate.Limiter

	mu      sync.Mutex
	pending []float64 // durations of primitives written but not yet acked
	closed  bool
}

// NewSerial opens cfg.Port with an exponential backoff retry (the
// board's USB-serial bootloader is often not ready the instant the
// device node appears).
func NewSerial(cfg SerialConfig) (*Serial, error) {
	sc := &serial.Config{Name: cfg.Port, Baud: cfg.Baud, ReadTimeout: 50 * time.Millisecond}

	var conn *serial.Port
	op := func() error {
		c, err := serial.OpenPort(sc)
		if err != nil {
			return err
		}
		conn = c
		return nil
	}
	boff := &backoff.ExponentialBackOff{
		InitialInterval:     25 * time.Millisecond,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         1 * time.Second,
		MaxElapsedTime:      3 * time.Second,
		Clock:               backoff.SystemClock,
	}
	if err := backoff.Retry(op, boff); err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Port, err)
	}

	rateLimit := cfg.WriteRatePerSec
	if rateLimit <= 0 {
		rateLimit = 50
	}

	s := &Serial{
		cfg:     cfg,
		conn:    conn,
		reader:  bufio.NewScanner(conn),
		limiter: rate.NewLimiter(rate.Limit(rateLimit), 1),
	}
	return s, nil
}

// Execute rate-limits, formats and writes one primitive, then records
// its duration as outstanding until an "ok" is read back.
func (s *Serial) Execute(p primitive.MotionPrimitive) error {
	if err := s.limiter.Wait(context.Background()); err != nil {
		return &ExecutorError{LineNumber: p.LineNumber, Op: "execute", Err: err}
	}
	line := formatLine(p)
	if _, err := s.conn.Write([]byte(line + "\n")); err != nil {
		return &ExecutorError{LineNumber: p.LineNumber, Op: "execute", Err: fmt.Errorf("serial write: %w", err)}
	}

	s.mu.Lock()
	s.pending = append(s.pending, p.Duration())
	s.mu.Unlock()

	go s.drainOneAck()
	return nil
}

// drainOneAck blocks for one acknowledgement line and pops the oldest
// pending duration. Errors are swallowed here; Flush surfaces timeouts.
func (s *Serial) drainOneAck() {
	if !s.reader.Scan() {
		return
	}
	line := strings.TrimSpace(s.reader.Text())
	if !strings.HasPrefix(strings.ToLower(line), "ok") {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) > 0 {
		s.pending = s.pending[1:]
	}
}

// QueuedTime sums the durations of primitives written but not yet acked.
func (s *Serial) QueuedTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, d := range s.pending {
		total += d
	}
	return total
}

// Flush polls QueuedTime down to zero or returns a timeout error.
func (s *Serial) Flush() error {
	deadline := time.Now().Add(s.cfg.AckTimeout)
	for s.QueuedTime() > 0 {
		if time.Now().After(deadline) {
			return &ExecutorError{Op: "flush", Err: fmt.Errorf("timed out waiting for %d outstanding acks", s.pendingCount())}
		}
		time.Sleep(5 * time.Millisecond)
	}
	return nil
}

func (s *Serial) pendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Close closes the underlying port. Idempotent.
func (s *Serial) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Close()
}

func formatLine(p primitive.MotionPrimitive) string {
	if p.Kind == primitive.Dwell {
		return fmt.Sprintf("G4 P%.4f", p.DwellSeconds)
	}
	word := "G1"
	if p.Kind == primitive.Rapid {
		word = "G0"
	}
	return fmt.Sprintf("%s X%.4f Y%.4f Z%.4f F%.2f", word, p.End.X, p.End.Y, p.End.Z, p.FeedrateMMPerS*60)
}
