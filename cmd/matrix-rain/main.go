// FILE: cmd/matrix-rain/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/piotrcurious/matrix-rain/clock"
	"github.com/piotrcurious/matrix-rain/config"
	"github.com/piotrcurious/matrix-rain/constant"
	"github.com/piotrcurious/matrix-rain/rain"
	"github.com/piotrcurious/matrix-rain/render"
	"github.com/piotrcurious/matrix-rain/serialport"
	"github.com/piotrcurious/matrix-rain/terminal"
)

var (
	configFlag  = flag.String("config", "", "path to TOML config file")
	deviceFlag  = flag.String("device", "", "serial device carrying the stream (e.g. /dev/ttyUSB0); empty renders to stdout")
	previewFlag = flag.Bool("preview", false, "render interactively on the local terminal instead of a raw stream")
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	// Restore terminal to a sane state even if a frame panics mid-escape
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nmatrix-rain crashed: %v\r\n", r)
			os.Exit(1)
		}
	}()

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debugFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Error().Err(err).Msg("configuration failed")
		os.Exit(1)
	}
	if *deviceFlag != "" {
		cfg.Serial.Device = *deviceFlag
	}

	clk := clockwork.NewRealClock()
	world := rain.NewWorld(cfg.Params(), uint32(time.Now().UnixNano()))
	frame := render.NewFrame(cfg.Columns, cfg.Rows)
	hours := hourSource(&cfg, clk)

	var runErr error
	if *previewFlag {
		runErr = runPreview(&cfg, clk, world, frame, hours)
	} else {
		runErr = runStream(&cfg, clk, world, frame, hours)
	}
	if runErr != nil {
		log.Error().Err(runErr).Msg("rain stopped")
		os.Exit(1)
	}
}

// hourSource picks the clock backing the hour-of-day palette: the host
// clock when trusted, otherwise a simulated hour from run time
func hourSource(cfg *config.Config, clk clockwork.Clock) clock.HourSource {
	if cfg.Palette.UseSystemClock {
		return clock.NewSystem(clk)
	}
	return clock.NewSimulated(clk, cfg.Palette.StartHour)
}

// pickPalette returns the palette for this frame
func pickPalette(cfg *config.Config, hours clock.HourSource) *render.Palette {
	if cfg.Palette.TimeOfDay {
		return render.ByHour(hours.Hour())
	}
	return render.GreenPalette()
}

// runStream drives the raw ANSI byte stream, over serial when a device is
// configured, else to stdout
func runStream(cfg *config.Config, clk clockwork.Clock, world *rain.World, frame *render.Frame, hours clock.HourSource) error {
	var out io.Writer = os.Stdout
	if cfg.Serial.Device != "" {
		port, err := serialport.Open(cfg.Serial.Device, cfg.Serial.Baud)
		if err != nil {
			return err
		}
		defer port.Close()
		serialport.WaitReady(port, clk, cfg.ReadyTimeout(), constant.SerialReadyPoll)
		log.Info().Str("device", cfg.Serial.Device).Int("baud", cfg.Serial.Baud).Msg("streaming")
		out = port
	}

	emitter := render.NewEmitter(out, pickPalette(cfg, hours))
	if err := emitter.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer emitter.Restore()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := clk.NewTicker(cfg.FramePeriod())
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			return nil
		case <-ticker.Chan():
			emitter.SetPalette(pickPalette(cfg, hours))
			world.Step()
			frame.Resolve(world)
			if err := emitter.WriteFrame(frame); err != nil {
				return fmt.Errorf("write frame: %w", err)
			}
		}
	}
}

// runPreview renders into a tcell screen on the local terminal; q or Escape
// quits
func runPreview(cfg *config.Config, clk clockwork.Clock, world *rain.World, frame *render.Frame, hours clock.HourSource) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	ticker := clk.NewTicker(cfg.FramePeriod())
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return nil
		case <-ticker.Chan():
			world.Step()
			frame.Resolve(world)
			render.DrawFrame(screen, frame, pickPalette(cfg, hours))
		}
	}
}
