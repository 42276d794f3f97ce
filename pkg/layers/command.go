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

package layers

import (
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

const (
	// CommandLayerNum identifies the layer
	CommandLayerNum = 2102
)

type CommandCode uint8

const (
	// CommandWakeup bit 7 is the ack flag, it is never requested
	CommandWakeup CommandCode = 0x17
	// CommandImage is shared by image parameter, image data and finalize frames
	CommandImage CommandCode = 0x34
)

func (c CommandCode) String() string {
	switch c {
	case CommandWakeup:
		return "Wakeup"
	case CommandImage:
		return "Image"
	}
	return fmt.Sprintf("UnknownCommand(0x%02x)", uint8(c))
}

// CommandLayer is a PP16 command code followed by its parameters
type CommandLayer struct {
	layers.BaseLayer
	Code   CommandCode
	Params []byte
}

var CommandLayerType = gopacket.RegisterLayerType(CommandLayerNum,
	gopacket.LayerTypeMetadata{Name: "PP16CommandLayerType", Decoder: gopacket.DecodeFunc(decodeUnsupported)})

// LayerType returns the type of the command layer in the layer catalog
func (cl *CommandLayer) LayerType() gopacket.LayerType {
	return CommandLayerType
}

// SerializeTo serializes the command into bytes and writes the bytes to the SerializeBuffer
func (cl *CommandLayer) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	bytes, err := b.PrependBytes(1 + len(cl.Params))
	if err != nil {
		return err
	}
	bytes[0] = byte(cl.Code)
	copy(bytes[1:], cl.Params)
	cl.BaseLayer = layers.BaseLayer{
		Contents: bytes,
		Payload:  []byte{},
	}
	return nil
}
