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
	"encoding/binary"
	"errors"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

const (
	// PP16LayerNum identifies the layer
	PP16LayerNum = 2101
	// PP16HeaderLen is the fixed preamble that is not covered by CRC
	PP16HeaderLen = 4
	// PP16PrefixLen is preamble + version + PLID
	PP16PrefixLen = PP16HeaderLen + 1 + 4
	// PP16CRCLen is the CRC-16 trailer, low byte first
	PP16CRCLen = 2
	// PP16VersionGraphic is the protocol version of graphic ESLs
	PP16VersionGraphic = 0x85
)

// PP16Header is the preamble every PP16 frame starts with
var PP16Header = [PP16HeaderLen]byte{0x00, 0x00, 0x00, 0x40}

// ErrDecodeUnsupported is returned by decoders of PP16 layers.
// Frames are only ever built and sent, never received.
var ErrDecodeUnsupported = errors.New("PP16 frame decoding is not supported")

// PP16Layer wraps a command with the PP16 preamble, version, label id and CRC
type PP16Layer struct {
	layers.BaseLayer
	Version byte
	// PLID is big-endian as printed on the label. It goes on air byte-reversed.
	PLID [4]byte
	Crc  uint16
}

var PP16LayerType = gopacket.RegisterLayerType(PP16LayerNum,
	gopacket.LayerTypeMetadata{Name: "PP16LayerType", Decoder: gopacket.DecodeFunc(decodeUnsupported)})

// LayerType returns the type of the PP16 layer in the layer catalog
func (pl *PP16Layer) LayerType() gopacket.LayerType {
	return PP16LayerType
}

// SerializePrefix writes preamble, version and reversed PLID to buf
func (pl *PP16Layer) SerializePrefix(buf []byte) {
	copy(buf[0:PP16HeaderLen], PP16Header[:])
	buf[4] = pl.Version
	buf[5] = pl.PLID[3]
	buf[6] = pl.PLID[2]
	buf[7] = pl.PLID[1]
	buf[8] = pl.PLID[0]
}

// SerializeTo prepends the prefix to the already serialized command and appends CRC.
// The CRC covers everything after the preamble and is stored to Crc.
func (pl *PP16Layer) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	prefix, err := b.PrependBytes(PP16PrefixLen)
	if err != nil {
		return err
	}
	pl.SerializePrefix(prefix)

	pl.Crc = CRC16(b.Bytes()[PP16HeaderLen:])
	tail, err := b.AppendBytes(PP16CRCLen)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(tail, pl.Crc)

	data := b.Bytes()
	pl.BaseLayer = layers.BaseLayer{
		Contents: data[:PP16PrefixLen],
		Payload:  data[PP16PrefixLen : len(data)-PP16CRCLen],
	}
	return nil
}

func decodeUnsupported(data []byte, p gopacket.PacketBuilder) error {
	return ErrDecodeUnsupported
}
