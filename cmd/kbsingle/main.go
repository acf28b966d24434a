// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// kbsingle runs the firmware for a single, non-split board: one key
// matrix, one rotary encoder, one RGB strip, all driven from a single
// process with no split-link traffic.
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
	"github.com/kbcore/kbfw/conn/matrix"
	"github.com/kbcore/kbfw/conn/rgb"
	"github.com/kbcore/kbfw/conn/rotary"
	"github.com/kbcore/kbfw/heartbeat"
	"github.com/kbcore/kbfw/hidif"
	"github.com/kbcore/kbfw/host/sysfs"
	"github.com/kbcore/kbfw/internal/clock"
	"github.com/kbcore/kbfw/internal/config"
	"github.com/kbcore/kbfw/keymap/standard"
	"github.com/kbcore/kbfw/processor"
	"github.com/kbcore/kbfw/sched"
)

var (
	rowPins = flag.String("row-pins", "20,21", "comma-separated GPIO numbers for the matrix rows")
	colPins = flag.String("col-pins", "0,1", "comma-separated GPIO numbers for the matrix columns")

	rotaryPinA = flag.Int("rotary-pin-a", 15, "GPIO number for rotary encoder pin A")
	rotaryPinB = flag.Int("rotary-pin-b", 17, "GPIO number for rotary encoder pin B")

	ledCount = flag.Int("led-count", standard.Rows*standard.Cols, "RGB strip LED count")
)

func mainImpl() error {
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("kbsingle: init logger: %w", err)
	}
	defer log.Sync()
	log = log.With(zap.String("instance_id", uuid.NewString()))

	if _, err := periph.Init(); err != nil {
		return fmt.Errorf("kbsingle: periph init: %w", err)
	}

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

	clk := clock.New()
	scanner := matrix.NewVertical(asMatrixPins(rows), asMatrixPins(cols), clk)
	debouncer := processor.NewDebouncer(len(rows), len(cols), processor.DefaultWindowTicks(1_000_000))
	mapper := processor.NewMapper(standard.InputMap())

	var encoder *rotary.Encoder
	if pa, err := sysfsPin(*rotaryPinA); err == nil {
		if pb, err := sysfsPin(*rotaryPinB); err == nil {
			encoder = rotary.NewEncoder(rotary.GPIOPin{Pin: pa}, rotary.GPIOPin{Pin: pb}, clk, rotary.DentHighPrecision)
		}
	}

	device := hidif.NewLoggingDevice(log)
	reporter := hidif.NewReporter(device)

	frames := sched.NewTryChannel[rgb.Frame]()
	engine := rgb.NewEngine(*ledCount, frames, time.Now)
	renderer := rgb.NewRenderer(frames, rgb.NewLoggingWriter(log))

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error { renderer.Run(gctx); return nil })
	group.Go(func() error {
		return heartbeat.NewLED(noopPWM{}).Run(gctx)
	})
	group.Go(func() error {
		return runInputLoop(gctx, scanner, encoder, debouncer, mapper, reporter, engine, device)
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
	encoder *rotary.Encoder,
	debouncer *processor.Debouncer,
	mapper *processor.Mapper,
	reporter *hidif.Reporter,
	engine *rgb.Engine,
	device hidif.Device,
) error {
	var eventBuf []processor.Event
	task := sched.PeriodicTask{
		Period: config.MatrixScanPollPeriod,
		Fn: func(ctx context.Context) error {
			result, err := scanner.Scan(ctx)
			if err != nil {
				return err
			}
			debouncer.Process(&result)

			var rotaryResult rotary.Result
			if encoder != nil {
				rotaryResult, err = encoder.Scan()
				if err != nil {
					return err
				}
			}

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
			return nil, fmt.Errorf("kbsingle: invalid gpio number %q: %w", field, err)
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
		return nil, fmt.Errorf("kbsingle: gpio%d not found", number)
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

// noopPWM stands in for the heartbeat LED's PWM channel; this binary
// wires no real PWM channel to the heartbeat.
type noopPWM struct{}

func (noopPWM) SetDutyCycle(uint16) error { return nil }

func main() {
	defer func() {
		if r := recover(); r != nil {
			log, err := zap.NewProduction()
			if err != nil {
				fmt.Fprintf(os.Stderr, "kbsingle: fatal: %v\n", r)
				os.Exit(1)
			}
			log.Fatal("kbsingle: fatal, recovered at main()", zap.Any("panic", r))
		}
	}()
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "kbsingle: %s.\n", err)
		os.Exit(1)
	}
}
