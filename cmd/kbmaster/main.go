// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// kbmaster runs the USB-facing half of a split board: it scans its own
// local half-matrix, invokes the slave half's key matrix service over
// the UART split link, merges the two, and drives HID and RGB output.
// The slave half (cmd/kbslave) never touches USB; it only answers scan
// requests.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	periph "github.com/kbcore/kbfw"
	"github.com/kbcore/kbfw/boot"
	"github.com/kbcore/kbfw/conn/gpio"
	"github.com/kbcore/kbfw/conn/matrix"
	"github.com/kbcore/kbfw/conn/rgb"
	"github.com/kbcore/kbfw/conn/rotary"
	"github.com/kbcore/kbfw/heartbeat"
	"github.com/kbcore/kbfw/hidif"
	"github.com/kbcore/kbfw/host/sysfs"
	"github.com/kbcore/kbfw/internal/clock"
	"github.com/kbcore/kbfw/internal/config"
	"github.com/kbcore/kbfw/keymap/split"
	"github.com/kbcore/kbfw/processor"
	"github.com/kbcore/kbfw/rpc"
	"github.com/kbcore/kbfw/rpc/services"
	"github.com/kbcore/kbfw/rpc/transport"
	"github.com/kbcore/kbfw/sched"
)

var (
	uartDevice = flag.String("uart", "/dev/ttyACM0", "UART device path to the other half")
	rowPins    = flag.String("row-pins", "20,21,22,23,24", "comma-separated GPIO numbers for the local half's matrix rows")
	colPins    = flag.String("col-pins", "0,1,2,3,4,5,6", "comma-separated GPIO numbers for the local half's matrix columns")
	sidePin    = flag.Int("side-pin", 26, "GPIO number pulled low on the left half, high on the right")
	ledCount   = flag.Int("led-count", split.Rows*split.Cols, "RGB strip LED count")
)

func mainImpl() error {
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("kbmaster: init logger: %w", err)
	}
	defer log.Sync()
	log = log.With(zap.String("instance_id", uuid.NewString()), zap.String("role", "master"))

	if _, err := periph.Init(); err != nil {
		return fmt.Errorf("kbmaster: periph init: %w", err)
	}

	sidePinObj, err := sysfsPin(*sidePin)
	if err != nil {
		return err
	}
	side, err := boot.DetectSide(func() (bool, error) { return sidePinObj.Read() == gpio.High, nil })
	if err != nil {
		return fmt.Errorf("kbmaster: detect side: %w", err)
	}
	log = log.With(zap.String("side", side.String()))

	rows, err := lookupPins(*rowPins)
	if err != nil {
		return err
	}
	cols, err := lookupPins(*colPins)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	port, err := transport.OpenSerial(*uartDevice)
	if err != nil {
		return fmt.Errorf("kbmaster: open uart: %w", err)
	}
	defer port.Close()
	link := transport.NewLink(ctx, port, log)

	client := rpc.NewClient(link)
	go client.Run(ctx, link)
	remoteScanner := services.NewRemoteScanner(client)

	clk := clock.New()
	localScanner := matrix.NewVertical(asMatrixPins(rows), asMatrixPins(cols), clk)
	splitScanner := matrix.NewSplit(localScanner, remoteScanner, side, split.Cols)

	debouncer := processor.NewDebouncer(split.Rows, split.Cols, processor.DefaultWindowTicks(1_000_000))
	mapper := processor.NewMapper(split.InputMap())

	device := hidif.NewLoggingDevice(log)
	reporter := hidif.NewReporter(device)

	frames := sched.NewTryChannel[rgb.Frame]()
	engine := rgb.NewEngine(*ledCount, frames, time.Now)
	renderer := rgb.NewRenderer(frames, rgb.NewLoggingWriter(log))

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error { renderer.Run(gctx); return nil })
	group.Go(func() error { return heartbeat.NewLED(noopPWM{}).Run(gctx) })
	group.Go(func() error {
		return runInputLoop(gctx, splitScanner, debouncer, mapper, reporter, engine, device)
	})

	if err := group.Wait(); err != nil {
		log.Error("task exited with error", zap.Error(err))
		return err
	}
	return nil
}

func runInputLoop(
	ctx context.Context,
	scanner matrix.Scanner,
	debouncer *processor.Debouncer,
	mapper *processor.Mapper,
	reporter *hidif.Reporter,
	engine *rgb.Engine,
	device hidif.Device,
) error {
	var eventBuf []processor.Event
	var rotaryResult rotary.Result
	task := sched.PeriodicTask{
		Period: config.MatrixScanPollPeriod,
		Fn: func(ctx context.Context) error {
			result, err := scanner.Scan(ctx)
			if err != nil {
				return err
			}
			debouncer.Process(&result)

			eventBuf = mapper.Map(processor.Input{KeyMatrixResult: result, RotaryResult: rotaryResult}, eventBuf)
			eventBuf = reporter.Process(eventBuf)
			eventBuf = engine.Process(eventBuf)

			if err := reporter.Flush(ctx); err != nil {
				return err
			}
			return device.Tick(ctx)
		},
	}
	return task.Run(ctx)
}

func lookupPins(csv string) ([]*sysfs.Pin, error) {
	var pins []*sysfs.Pin
	for _, field := range strings.Split(csv, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("kbmaster: invalid gpio number %q: %w", field, err)
		}
		p, err := sysfsPin(n)
		if err != nil {
			return nil, err
		}
		pins = append(pins, p)
	}
	return pins, nil
}

func sysfsPin(number int) (*sysfs.Pin, error) {
	p, ok := sysfs.Pins[number]
	if !ok {
		return nil, fmt.Errorf("kbmaster: gpio%d not found", number)
	}
	return p, nil
}

func asMatrixPins(pins []*sysfs.Pin) []matrix.Pin {
	out := make([]matrix.Pin, len(pins))
	for i, p := range pins {
		out[i] = matrix.GPIOPin{Pin: p}
	}
	return out
}

type noopPWM struct{}

func (noopPWM) SetDutyCycle(uint16) error { return nil }

func main() {
	defer func() {
		if r := recover(); r != nil {
			log, err := zap.NewProduction()
			if err != nil {
				fmt.Fprintf(os.Stderr, "kbmaster: fatal: %v\n", r)
				os.Exit(1)
			}
			log.Fatal("kbmaster: fatal, recovered at main()", zap.Any("panic", r))
		}
	}()
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "kbmaster: %s.\n", err)
		os.Exit(1)
	}
}
