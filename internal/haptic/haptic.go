// Package haptic drives an optional vibration motor attached to a GPIO line.
// Pulses are fire-and-forget; platforms without the hardware get Noop.
package haptic

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/XtremePrime/ATM-Software-RELOADED/log2"
	"github.com/juju/errors"
	gpio "github.com/temoto/gpio-cdev-go"
)

type Class uint8

const (
	Short Class = iota // key press feedback
	Medium             // card/cash/receipt movement feedback
)

var classDuration = map[Class]time.Duration{
	Short:  40 * time.Millisecond,
	Medium: 150 * time.Millisecond,
}

type Driver interface {
	Pulse(Class)
}

type Noop struct{}

func (Noop) Pulse(Class) {}

type Config struct {
	Enable  bool   `hcl:"enable,optional"`
	PinChip string `hcl:"pin_chip,optional"`
	Pin     string `hcl:"pin,optional"`
}

// New returns the GPIO driver when enabled, Noop otherwise. A configured but
// unopenable chip is a warning, not a startup failure.
func New(conf *Config, log *log2.Log) Driver {
	if !conf.Enable {
		return Noop{}
	}
	m, err := NewMotor(conf, log)
	if err != nil {
		log.WarningF("haptic disabled (%v)", err)
		return Noop{}
	}
	return m
}

type Motor struct {
	log   *log2.Log
	chip  gpio.Chiper
	lines gpio.Lineser
	set   gpio.LineSetFunc
	busy  uint32
}

func NewMotor(conf *Config, log *log2.Log) (*Motor, error) {
	pin64, err := strconv.ParseUint(conf.Pin, 10, 32)
	if err != nil {
		return nil, errors.Annotatef(err, "haptic pin=%s", conf.Pin)
	}
	pin := uint32(pin64)
	m := &Motor{log: log}
	if m.chip, err = gpio.Open(conf.PinChip, "haptic"); err != nil {
		return nil, errors.Annotatef(err, "haptic chip=%s", conf.PinChip)
	}
	if m.lines, err = m.chip.OpenLines(gpio.GPIOHANDLE_REQUEST_OUTPUT, "haptic", pin); err != nil {
		return nil, errors.Annotatef(err, "haptic open line=%d", pin)
	}
	m.set = m.lines.SetFunc(pin)
	return m, nil
}

// Pulse drives the line high for the class duration. Overlapping pulses are
// dropped rather than queued.
func (m *Motor) Pulse(c Class) {
	if !atomic.CompareAndSwapUint32(&m.busy, 0, 1) {
		return
	}
	go func() {
		defer atomic.StoreUint32(&m.busy, 0)
		m.set(1)
		if err := m.lines.Flush(); err != nil {
			m.log.Errorf("haptic flush (%v)", err)
			return
		}
		time.Sleep(classDuration[c])
		m.set(0)
		_ = m.lines.Flush()
	}()
}
