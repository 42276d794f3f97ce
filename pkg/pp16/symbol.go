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

// symbolDurations holds the on-air length of every 4-bit symbol in microseconds
var symbolDurations = [16]uint16{
	27,  // 0000
	51,  // 0001
	35,  // 0010
	43,  // 0011
	147, // 0100
	123, // 0101
	139, // 0110
	131, // 0111
	83,  // 1000
	59,  // 1001
	75,  // 1010
	67,  // 1011
	91,  // 1100
	115, // 1101
	99,  // 1110
	107, // 1111
}

// SymbolDuration returns the duration of a symbol in microseconds.
// Only the low 4 bits of nibble are used.
func SymbolDuration(nibble uint8) uint16 {
	return symbolDurations[nibble&0x0F]
}
