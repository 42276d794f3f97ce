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

const (
	// CRC16Seed is also the polynomial. The receiver expects the accumulator
	// as is, there is no final inversion.
	CRC16Seed = 0x8408
	// CRC16Poly is the reversed representation of x^16 + x^12 + x^5 + 1
	CRC16Poly = 0x8408
)

// CRC16 calculates the PP16 frame checksum bit by bit, least significant bit first
func CRC16(data []byte) uint16 {
	crc := uint16(CRC16Seed)
	for _, b := range data {
		crc ^= uint16(b)
		for i := 0; i < 8; i++ {
			if crc&0x0001 != 0 {
				crc = (crc >> 1) ^ CRC16Poly
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}
