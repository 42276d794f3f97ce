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

	"jinr.ru/greenlab/go-esl/pkg/layers"
)

const (
	// ChunkSize is the image payload carried by one data frame
	ChunkSize = 20
	// fillerLen is the padding of wakeup and finalize frames
	fillerLen = 22

	// The 4-byte length fields below do not match the payload sizes.
	// Labels accept these values, so they are sent literally.
	imageParameterLength uint32 = 0x00000005
	imageDataLength      uint32 = 0x00000020
	finalizeLength       uint32 = 0x00000001

	wakeupParam      = 0x01
	wakeupFiller     = 0x01
	imageTypeRaw     = 0x00
	imagePageFirst   = 0x01
	imageMarker      = 0x88
	imageReservedLen = 6
)

// Body is the command specific part of a frame.
// Implemented by Wakeup, ImageParameter, ImageDataChunk and Finalize.
type Body interface {
	Command() layers.CommandCode
	// Params returns the bytes that follow the command code
	Params() []byte
}

// Wakeup makes the label listen for the following image frames
type Wakeup struct{}

func (Wakeup) Command() layers.CommandCode { return layers.CommandWakeup }

func (Wakeup) Params() []byte {
	params := make([]byte, 0, 4+fillerLen)
	params = append(params, wakeupParam)
	params = append(params, 0x00, 0x00) // key
	params = append(params, 0x00)       // reserved
	for i := 0; i < fillerLen; i++ {
		params = append(params, wakeupFiller)
	}
	return params
}

// ImageParameter announces the geometry and size of the image that follows
type ImageParameter struct {
	Width  uint16
	Height uint16
	X      uint16
	Y      uint16
	// Length is the number of image bytes sent in data frames
	Length uint16
}

func (ImageParameter) Command() layers.CommandCode { return layers.CommandImage }

func (ip ImageParameter) Params() []byte {
	params := make([]byte, 0, 26)
	params = binary.BigEndian.AppendUint32(params, imageParameterLength)
	params = binary.BigEndian.AppendUint16(params, ip.Length)
	params = append(params, 0x00) // unused
	params = append(params, imageTypeRaw, imagePageFirst)
	params = binary.BigEndian.AppendUint16(params, ip.Width)
	params = binary.BigEndian.AppendUint16(params, ip.Height)
	params = binary.BigEndian.AppendUint16(params, ip.X)
	params = binary.BigEndian.AppendUint16(params, ip.Y)
	params = append(params, 0x00, 0x00) // key
	params = append(params, imageMarker)
	params = append(params, make([]byte, imageReservedLen)...)
	return params
}

// ImageDataChunk carries up to ChunkSize bytes of the packed bitmap.
// Data is sent as is, a short last chunk is not padded.
type ImageDataChunk struct {
	Index uint16
	Data  []byte
}

func (ImageDataChunk) Command() layers.CommandCode { return layers.CommandImage }

func (dc ImageDataChunk) Params() []byte {
	params := make([]byte, 0, 6+len(dc.Data))
	params = binary.BigEndian.AppendUint32(params, imageDataLength)
	params = binary.BigEndian.AppendUint16(params, dc.Index)
	return append(params, dc.Data...)
}

// Finalize tells the label to show the received image
type Finalize struct{}

func (Finalize) Command() layers.CommandCode { return layers.CommandImage }

func (Finalize) Params() []byte {
	params := make([]byte, 0, 4+fillerLen)
	params = binary.BigEndian.AppendUint32(params, finalizeLength)
	return append(params, make([]byte, fillerLen)...)
}
