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

package transmit

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"jinr.ru/greenlab/go-esl/pkg/log"
	"jinr.ru/greenlab/go-esl/pkg/pp16"
)

// Transmitter sends one pulse sequence and returns when it has been drained.
// Implementations accept a single in-flight sequence.
type Transmitter interface {
	Transmit(ctx context.Context, pulses []pp16.Pulse) error
}

// WriterTransmitter writes every sequence as a line of hex RMT items,
// the format a serial bridge to the peripheral replays verbatim.
type WriterTransmitter struct {
	w     *bufio.Writer
	file  *os.File
	count int
}

var _ Transmitter = &WriterTransmitter{}

func NewWriterTransmitter(w io.Writer) *WriterTransmitter {
	return &WriterTransmitter{
		w: bufio.NewWriter(w),
	}
}

func NewFileTransmitter(filename string) (*WriterTransmitter, error) {
	file, err := os.Create(filename)
	if err != nil {
		log.Error("Error while creating file: %s", filename)
		return nil, err
	}
	t := NewWriterTransmitter(file)
	t.file = file
	return t, nil
}

func (t *WriterTransmitter) Transmit(ctx context.Context, pulses []pp16.Pulse) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(t.w, FormatCodes(pulses)); err != nil {
		return err
	}
	t.count++
	return nil
}

// Count returns the number of transmitted sequences
func (t *WriterTransmitter) Count() int {
	return t.count
}

// Flush writes buffered lines and closes the file if there is one
func (t *WriterTransmitter) Flush() error {
	if err := t.w.Flush(); err != nil {
		return err
	}
	if t.file != nil {
		if err := t.file.Sync(); err != nil {
			return err
		}
		return t.file.Close()
	}
	return nil
}
