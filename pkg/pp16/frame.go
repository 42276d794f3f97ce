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
	"encoding/binary"
	"encoding/hex"

	"github.com/google/gopacket"

	"jinr.ru/greenlab/go-esl/pkg/layers"
)

// Frame is a complete PP16 frame ready for pulse encoding
type Frame []byte

// Build assembles header, version, reversed PLID, command body and CRC.
// The same inputs always produce the same bytes.
func Build(plid PLID, body Body) Frame {
	pl := &layers.PP16Layer{
		Version: layers.PP16VersionGraphic,
		PLID:    plid,
	}
	cl := &layers.CommandLayer{
		Code:   body.Command(),
		Params: body.Params(),
	}
	buf := gopacket.NewSerializeBuffer()
	// serializeBuffer never fails to prepend or append
	if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, pl, cl); err != nil {
		panic(err)
	}
	return Frame(buf.Bytes())
}

// WakeupFrame builds the frame that wakes the label up
func WakeupFrame(plid PLID) Frame {
	return Build(plid, Wakeup{})
}

// ImageParameterFrame builds the frame announcing an image of imgLen bytes
// drawn at (x, y). Values are not checked against the display size.
func ImageParameterFrame(plid PLID, width, height, x, y, imgLen uint16) Frame {
	return Build(plid, ImageParameter{
		Width:  width,
		Height: height,
		X:      x,
		Y:      y,
		Length: imgLen,
	})
}

// DataFrames splits data into ChunkSize chunks, indexed from 0 on every call.
// Empty data gives no frames.
func DataFrames(plid PLID, data []byte) []Frame {
	var frames []Frame
	var index uint16
	for start := 0; start < len(data); start += ChunkSize {
		end := start + ChunkSize
		if end > len(data) {
			end = len(data)
		}
		frames = append(frames, Build(plid, ImageDataChunk{Index: index, Data: data[start:end]}))
		index++
	}
	return frames
}

// FinalFrame builds the frame that completes an image update
func FinalFrame(plid PLID) Frame {
	return Build(plid, Finalize{})
}

// Command returns the command code or 0 for a truncated frame
func (f Frame) Command() layers.CommandCode {
	if len(f) <= layers.PP16PrefixLen {
		return 0
	}
	return layers.CommandCode(f[layers.PP16PrefixLen])
}

// Checksum returns the CRC trailer of the frame
func (f Frame) Checksum() uint16 {
	if len(f) < layers.PP16HeaderLen+layers.PP16CRCLen {
		return 0
	}
	return binary.LittleEndian.Uint16(f[len(f)-layers.PP16CRCLen:])
}

// Valid reports whether the trailer matches the CRC of everything between
// the header and the trailer
func (f Frame) Valid() bool {
	if len(f) < layers.PP16PrefixLen+layers.PP16CRCLen {
		return false
	}
	return f.Checksum() == layers.CRC16(f[layers.PP16HeaderLen:len(f)-layers.PP16CRCLen])
}

func (f Frame) String() string {
	return hex.EncodeToString(f)
}
