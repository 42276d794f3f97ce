/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package pp16

import (
	"time"
)

const (
	// DefaultTicksPerMicrosecond matches an 80 MHz peripheral clock without divider
	DefaultTicksPerMicrosecond = 80
	// SymbolHighMicroseconds is the carrier burst that starts every symbol
	SymbolHighMicroseconds = 21
	// MaxPulseTicks is the widest duration a pulse word can hold (15 bits)
	MaxPulseTicks = 0x7FFF
	// MaxTicksPerMicrosecond keeps the longest symbol within MaxPulseTicks
	MaxTicksPerMicrosecond = MaxPulseTicks / (maxSymbolMicroseconds - SymbolHighMicroseconds)

	maxSymbolMicroseconds = 147

	pulseLevelHigh = 1 << 15
)

// Pulse is one symbol: a high level followed by a low level, both in peripheral ticks.
// The zero Pulse terminates a sequence.
type Pulse struct {
	High uint16 `json:"high"`
	Low  uint16 `json:"low"`
}

// IsEnd reports whether p is the end-of-transmission marker
func (p Pulse) IsEnd() bool {
	return p == Pulse{}
}

// Code packs the pulse into a 32-bit RMT item: duration0 in bits 0-14 with
// level0 high in bit 15, duration1 in bits 16-30 with level1 low in bit 31.
// The end marker packs to 0.
func (p Pulse) Code() uint32 {
	if p.IsEnd() {
		return 0
	}
	return uint32(p.High&MaxPulseTicks) | pulseLevelHigh | uint32(p.Low&MaxPulseTicks)<<16
}

// Encoder turns frames into pulse sequences for a given peripheral clock
type Encoder struct {
	ticksPerMicrosecond uint16
}

var defaultEncoder = &Encoder{ticksPerMicrosecond: DefaultTicksPerMicrosecond}

// NewEncoder returns an encoder for a clock of ticksPerMicrosecond ticks per microsecond
func NewEncoder(ticksPerMicrosecond uint16) (*Encoder, error) {
	if ticksPerMicrosecond == 0 || ticksPerMicrosecond > MaxTicksPerMicrosecond {
		return nil, ErrTickRate{TicksPerMicrosecond: ticksPerMicrosecond}
	}
	return &Encoder{ticksPerMicrosecond: ticksPerMicrosecond}, nil
}

// DefaultEncoder returns the encoder for DefaultTicksPerMicrosecond
func DefaultEncoder() *Encoder {
	return defaultEncoder
}

func (e *Encoder) TicksPerMicrosecond() uint16 {
	return e.ticksPerMicrosecond
}

// Symbol returns the pulse of a single nibble
func (e *Encoder) Symbol(nibble uint8) Pulse {
	return Pulse{
		High: SymbolHighMicroseconds * e.ticksPerMicrosecond,
		Low:  (SymbolDuration(nibble) - SymbolHighMicroseconds) * e.ticksPerMicrosecond,
	}
}

// Encode produces two pulses per byte, high nibble first, and the end marker.
// The result is a fresh slice owned by the caller.
func (e *Encoder) Encode(frame []byte) []Pulse {
	pulses := make([]Pulse, 0, 2*len(frame)+1)
	for _, b := range frame {
		pulses = append(pulses, e.Symbol(b>>4), e.Symbol(b&0x0F))
	}
	return append(pulses, Pulse{})
}

// Duration converts a pulse to wall time
func (e *Encoder) Duration(p Pulse) time.Duration {
	ticks := time.Duration(p.High) + time.Duration(p.Low)
	return ticks * time.Microsecond / time.Duration(e.ticksPerMicrosecond)
}

// Encode encodes frame with the default encoder
func Encode(frame []byte) []Pulse {
	return defaultEncoder.Encode(frame)
}

// Codes packs a pulse sequence into RMT items
func Codes(pulses []Pulse) []uint32 {
	codes := make([]uint32, len(pulses))
	for i, p := range pulses {
		codes[i] = p.Code()
	}
	return codes
}
