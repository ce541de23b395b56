// Package serialport opens the serial link carrying the rendered byte
// stream and senses link readiness through the modem status lines.
package serialport

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"go.bug.st/serial"
)

// Open opens the serial device in 8N1 mode at the given baud rate
func Open(device string, baud int) (serial.Port, error) {
	port, err := serial.Open(device, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", device, err)
	}
	return port, nil
}

// StatusReader is the slice of serial.Port needed to sense readiness
type StatusReader interface {
	GetModemStatusBits() (*serial.ModemStatusBits, error)
}

// WaitReady polls DSR until the remote terminal reports ready or the timeout
// elapses, whichever comes first. It never fails: a link that stays silent
// is treated as ready and the stream starts anyway, the receiving side
// simply drops bytes it is not listening for. A port that cannot report
// modem status at all counts as ready immediately.
func WaitReady(port StatusReader, clk clockwork.Clock, timeout, poll time.Duration) {
	deadline := clk.Now().Add(timeout)
	for {
		bits, err := port.GetModemStatusBits()
		if err != nil {
			log.Debug().Err(err).Msg("modem status unavailable, assuming link ready")
			return
		}
		if bits.DSR {
			return
		}
		if !clk.Now().Add(poll).Before(deadline) {
			log.Debug().Dur("timeout", timeout).Msg("serial link never reported ready, starting anyway")
			return
		}
		clk.Sleep(poll)
	}
}
