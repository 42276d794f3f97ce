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
	"encoding/hex"
	"strings"
)

const PLIDLen = 4

// PLID is the 4-byte label id, big-endian as printed on the label
type PLID [PLIDLen]byte

// ParsePLID parses 8 hex digits. Separators ':', '-', ' ' and the 0x prefix are ignored.
func ParsePLID(s string) (PLID, error) {
	var plid PLID
	clean := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	clean = strings.NewReplacer(":", "", "-", "", " ", "").Replace(clean)
	if len(clean) != 2*PLIDLen {
		return plid, ErrInvalidPLID{Value: s, What: "must be exactly 4 bytes"}
	}
	if _, err := hex.Decode(plid[:], []byte(clean)); err != nil {
		return plid, ErrInvalidPLID{Value: s, What: err.Error()}
	}
	return plid, nil
}

// PLIDFromBytes checks the length only
func PLIDFromBytes(b []byte) (PLID, error) {
	var plid PLID
	if len(b) != PLIDLen {
		return plid, ErrInvalidPLID{Value: hex.EncodeToString(b), What: "must be exactly 4 bytes"}
	}
	copy(plid[:], b)
	return plid, nil
}

// Reversed returns the id in on-air order, least significant byte first
func (p PLID) Reversed() [PLIDLen]byte {
	return [PLIDLen]byte{p[3], p[2], p[1], p[0]}
}

func (p PLID) String() string {
	return hex.EncodeToString(p[:])
}
