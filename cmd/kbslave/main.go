// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// kbslave runs the link-serving half of a split board: it never
// enumerates as a USB HID device, it only scans its own local
// half-matrix and answers the master half's key matrix RPC requests
// over the UART split link.
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

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	periph "github.com/kbcore/kbfw"
	"github.com/kbcore/kbfw/boot"
	"github.com/kbcore/kbfw/conn/gpio"
	"github.com/kbcore/kbfw/conn/matrix"
	"github.com/kbcore/kbfw/heartbeat"
	"github.com/kbcore/kbfw/host/sysfs"
	"github.com/kbcore/kbfw/internal/clock"
	"github.com/kbcore/kbfw/rpc"
	"github.com/kbcore/kbfw/rpc/services"
	"github.com/kbcore/kbfw/rpc/transport"
)

var (
	uartDevice = flag.String("uart", "/dev/ttyACM0", "UART device path to the other half")
	rowPins    = flag.String("row-pins", "20,21,22,23,24", "comma-separated GPIO numbers for the local half's matrix rows")
	colPins    = flag.String("col-pins", "0,1,2,3,4,5,6", "comma-separated GPIO numbers for the local half's matrix columns")
	sidePin    = flag.Int("side-pin", 26, "GPIO number pulled low on the left half, high on the right")
)

func mainImpl() error {
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("kbslave: init logger: %w", err)
	}
	defer log.Sync()
	log = log.With(zap.String("instance_id", uuid.NewString()), zap.String("role", "slave"))

	if _, err := periph.Init(); err != nil {
		return fmt.Errorf("kbslave: periph init: %w", err)
	}

	sidePinObj, err := sysfsPin(*sidePin)
	if err != nil {
		return err
	}
	side, err := boot.DetectSide(func() (bool, error) { return sidePinObj.Read() == gpio.High, nil })
	if err != nil {
		return fmt.Errorf("kbslave: detect side: %w", err)
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
		return fmt.Errorf("kbslave: open uart: %w", err)
	}
	defer port.Close()
	link := transport.NewLink(ctx, port, log)

	clk := clock.New()
	scanner := matrix.NewVertical(asMatrixPins(rows), asMatrixPins(cols), clk)

	registry := rpc.NewRegistry()
	registry.Register(services.NewKeyMatrixService(scanner))
	server := rpc.NewServer(registry, link, link, log)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error { server.Run(gctx); return nil })
	group.Go(func() error { return heartbeat.NewLED(noopPWM{}).Run(gctx) })

	if err := group.Wait(); err != nil {
		log.Error("task exited with error", zap.Error(err))
		return err
	}
	return nil
}

func lookupPins(csv string) ([]*sysfs.Pin, error) {
	var pins []*sysfs.Pin
	for _, field := range strings.Split(csv, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("kbslave: invalid gpio number %q: %w", field, err)
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
		return nil, fmt.Errorf("kbslave: gpio%d not found", number)
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
				fmt.Fprintf(os.Stderr, "kbslave: fatal: %v\n", r)
				os.Exit(1)
			}
			log.Fatal("kbslave: fatal, recovered at main()", zap.Any("panic", r))
		}
	}()
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "kbslave: %s.\n", err)
		os.Exit(1)
	}
}
