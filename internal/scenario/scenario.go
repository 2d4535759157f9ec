// Package scenario describes a scripted host session: what the simulated
// radio finds, how the battery drains and which buttons get pressed when.
package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pocket/proto"
)

type Scenario struct {
	Radio   RadioConfig   `yaml:"radio"`
	Battery BatteryConfig `yaml:"battery"`
	Script  []Press       `yaml:"script"`
}

// ---- RADIO ----

type RadioConfig struct {
	Networks    []NetworkConfig `yaml:"networks"`
	ScanDelayMs int             `yaml:"scan_delay_ms"`
	Fail        bool            `yaml:"fail"`
}

type NetworkConfig struct {
	SSID    string `yaml:"ssid"`
	RSSI    int    `yaml:"rssi"`
	Channel int    `yaml:"channel"`
}

// Info converts a validated network entry.
func (n NetworkConfig) Info() proto.WirelessNetworkInfo {
	return proto.WirelessNetworkInfo{SSID: n.SSID, RSSI: int8(n.RSSI), Channel: uint8(n.Channel)}
}

// ---- BATTERY ----

type BatteryConfig struct {
	Start int `yaml:"start"`
	// DrainSeconds is the time it takes to lose one percent. Zero never drains.
	DrainSeconds int `yaml:"drain_s"`
}

// ---- SCRIPT ----

type Press struct {
	AtMs   int    `yaml:"at_ms"`
	Button string `yaml:"button"`
	HoldMs int    `yaml:"hold_ms"`
}

// Button names accepted in a script.
const (
	ButtonUp     = "up"
	ButtonDown   = "down"
	ButtonSelect = "select"
)

const (
	defaultScanDelayMs = 800
	defaultHoldMs      = 80
	defaultBattery     = 100
	defaultDrainS      = 60
	maxSSIDLen         = 32
)

// Default is the scenario used when no file is given.
func Default() *Scenario {
	s := &Scenario{
		Radio: RadioConfig{
			Networks: []NetworkConfig{
				{SSID: "HomeNet", RSSI: -42, Channel: 6},
				{SSID: "CoffeeShop_Guest", RSSI: -67, Channel: 11},
				{SSID: "", RSSI: -80, Channel: 1},
				{SSID: "Printer-Direct-5G", RSSI: -71, Channel: 36},
				{SSID: "Neighbor", RSSI: -88, Channel: 3},
			},
		},
	}
	Normalize(s)
	return s
}

// Load reads, validates and normalizes a scenario file.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return Parse(b)
}

// Parse decodes a scenario document. Unknown keys are rejected.
func Parse(b []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := Validate(&s); err != nil {
		return nil, err
	}
	Normalize(&s)
	return &s, nil
}

// Validate checks the scenario without mutating it.
func Validate(s *Scenario) error {
	if s == nil {
		return fmt.Errorf("scenario: nil")
	}
	for i, n := range s.Radio.Networks {
		if len(n.SSID) > maxSSIDLen {
			return fmt.Errorf("scenario: network %d: ssid longer than %d bytes", i, maxSSIDLen)
		}
		if n.RSSI < -128 || n.RSSI > 0 {
			return fmt.Errorf("scenario: network %q: rssi %d out of range [-128, 0]", n.SSID, n.RSSI)
		}
		if n.Channel < 0 || n.Channel > 255 {
			return fmt.Errorf("scenario: network %q: channel %d out of range", n.SSID, n.Channel)
		}
	}
	if s.Radio.ScanDelayMs < 0 {
		return fmt.Errorf("scenario: radio.scan_delay_ms must not be negative")
	}
	if s.Battery.Start < 0 || s.Battery.Start > 100 {
		return fmt.Errorf("scenario: battery.start %d out of range [0, 100]", s.Battery.Start)
	}
	if s.Battery.DrainSeconds < 0 {
		return fmt.Errorf("scenario: battery.drain_s must not be negative")
	}
	last := -1
	for i, p := range s.Script {
		switch p.Button {
		case ButtonUp, ButtonDown, ButtonSelect:
		default:
			return fmt.Errorf("scenario: script[%d]: unknown button %q", i, p.Button)
		}
		if p.AtMs < 0 || p.HoldMs < 0 {
			return fmt.Errorf("scenario: script[%d]: negative time", i)
		}
		if p.AtMs < last {
			return fmt.Errorf("scenario: script[%d]: at_ms goes backwards", i)
		}
		last = p.AtMs
	}
	return nil
}

// Normalize fills defaults. It must be called only after Validate.
func Normalize(s *Scenario) {
	if s == nil {
		return
	}
	if s.Radio.ScanDelayMs == 0 {
		s.Radio.ScanDelayMs = defaultScanDelayMs
	}
	if s.Battery.Start == 0 {
		s.Battery.Start = defaultBattery
	}
	if s.Battery.DrainSeconds == 0 {
		s.Battery.DrainSeconds = defaultDrainS
	}
	for i := range s.Script {
		if s.Script[i].HoldMs == 0 {
			s.Script[i].HoldMs = defaultHoldMs
		}
	}
}

// Networks returns the configured networks in scan order.
func (s *Scenario) Networks() []proto.WirelessNetworkInfo {
	out := make([]proto.WirelessNetworkInfo, 0, len(s.Radio.Networks))
	for _, n := range s.Radio.Networks {
		out = append(out, n.Info())
	}
	return out
}
