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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jinr.ru/greenlab/go-esl/pkg/layers"
)

var testPLID = PLID{0xd0, 0x39, 0xc3, 0xde}

func TestWakeupFrame(t *testing.T) {
	frame := WakeupFrame(testPLID)

	// 4 header + 1 version + 4 PLID + 1 cmd + 1 param + 2 key + 1 reserved + 22 filler + 2 CRC
	require.Len(t, frame, 38)
	assert.Equal(t, "0000004085dec339d0170100000001010101010101010101010101010101010101010101027f", frame.String())
	assert.Equal(t, layers.CommandWakeup, frame.Command())
	assert.True(t, frame.Valid())
}

func TestImageParameterFrame(t *testing.T) {
	bitmap := NewBitmap(16, 16, 0x00)
	require.Len(t, bitmap, 32)

	frame := ImageParameterFrame(testPLID, 16, 16, 0, 0, uint16(len(bitmap)))

	require.Len(t, frame, 38)
	assert.Equal(t, "0000004085dec339d0340000000500200000010010001000000000000088000000000000d680", frame.String())
	assert.Equal(t, layers.CommandImage, frame.Command())
	// nominal length field, then image length big-endian
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x05}, []byte(frame[10:14]))
	assert.Equal(t, []byte{0x00, 0x20}, []byte(frame[14:16]))
	assert.Equal(t, layers.CRC16(frame[4:36]), frame.Checksum())
}

func TestImageParameterFields(t *testing.T) {
	frame := ImageParameterFrame(testPLID, 0x0128, 0x0098, 0x0102, 0x0304, 0x1450)

	assert.Equal(t, []byte{0x14, 0x50}, []byte(frame[14:16]), "length")
	assert.Equal(t, byte(0x00), frame[16], "unused")
	assert.Equal(t, byte(0x00), frame[17], "type")
	assert.Equal(t, byte(0x01), frame[18], "page")
	assert.Equal(t, []byte{0x01, 0x28}, []byte(frame[19:21]), "width")
	assert.Equal(t, []byte{0x00, 0x98}, []byte(frame[21:23]), "height")
	assert.Equal(t, []byte{0x01, 0x02}, []byte(frame[23:25]), "x")
	assert.Equal(t, []byte{0x03, 0x04}, []byte(frame[25:27]), "y")
	assert.Equal(t, byte(0x88), frame[29], "marker")
	assert.Equal(t, make([]byte, 6), []byte(frame[30:36]), "reserved")
	assert.True(t, frame.Valid())
}

func TestDataFrames(t *testing.T) {
	data := make([]byte, 47)
	for i := range data {
		data[i] = byte(i)
	}

	frames := DataFrames(testPLID, data)

	require.Len(t, frames, 3)
	var payload []byte
	for i, frame := range frames {
		assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x20}, []byte(frame[10:14]))
		assert.Equal(t, []byte{0x00, byte(i)}, []byte(frame[14:16]), "chunk index")
		assert.True(t, frame.Valid())
		payload = append(payload, frame[16:len(frame)-2]...)
	}
	assert.Equal(t, data, payload)
	assert.Len(t, frames[0], 38)
	assert.Len(t, frames[2], 18+7)
}

func TestDataFramesIndexRestartsPerCall(t *testing.T) {
	data := make([]byte, 40)
	first := DataFrames(testPLID, data)
	second := DataFrames(testPLID, data)
	assert.Equal(t, first, second)
	assert.Equal(t, "0000004085dec339d03400000020000000000000000000000000000000000000000000009784", first[0].String())
}

func TestDataFramesSixteenBitIndex(t *testing.T) {
	data := make([]byte, 300*ChunkSize)
	frames := DataFrames(testPLID, data)
	require.Len(t, frames, 300)
	assert.Equal(t, []byte{0x01, 0x2b}, []byte(frames[299][14:16]))
}

func TestDataFramesEmpty(t *testing.T) {
	assert.Empty(t, DataFrames(testPLID, nil))
	assert.Empty(t, DataFrames(testPLID, []byte{}))
}

func TestFinalFrame(t *testing.T) {
	frame := FinalFrame(testPLID)

	require.Len(t, frame, 38)
	assert.Equal(t, "0000004085dec339d03400000001000000000000000000000000000000000000000000007fbd", frame.String())
	assert.True(t, frame.Valid())
}

func TestBuildDeterministic(t *testing.T) {
	bodies := []Body{
		Wakeup{},
		ImageParameter{Width: 8, Height: 8, Length: 20},
		ImageDataChunk{Index: 1, Data: []byte{1, 2, 3}},
		Finalize{},
	}
	for _, body := range bodies {
		a := Build(testPLID, body)
		b := Build(testPLID, body)
		assert.True(t, bytes.Equal(a, b))
		assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x40, 0x85, 0xde, 0xc3, 0x39, 0xd0}, []byte(a[:9]))
	}
}

func TestFrameValid(t *testing.T) {
	frame := WakeupFrame(testPLID)
	corrupted := append(Frame{}, frame...)
	corrupted[12] ^= 0xFF

	assert.True(t, frame.Valid())
	assert.False(t, corrupted.Valid())
	assert.False(t, Frame{0x00, 0x00}.Valid())
	assert.Equal(t, layers.CommandCode(0), Frame{0x00}.Command())
}
