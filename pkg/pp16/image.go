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
	"image"
	"image/color"
)

// RowStride is the number of bytes of one packed bitmap row
func RowStride(width uint16) int {
	return (int(width) + 7) / 8
}

// NewBitmap returns a packed bitmap with every byte set to fill.
// Fill 0x00 gives an all black image.
func NewBitmap(width, height uint16, fill byte) []byte {
	bitmap := make([]byte, RowStride(width)*int(height))
	if fill != 0 {
		for i := range bitmap {
			bitmap[i] = fill
		}
	}
	return bitmap
}

// PadToChunk returns data extended with zero bytes to a multiple of ChunkSize
func PadToChunk(data []byte) []byte {
	padding := (ChunkSize - len(data)%ChunkSize) % ChunkSize
	padded := make([]byte, len(data)+padding)
	copy(padded, data)
	return padded
}

// PackImage converts img to a 1 bpp bitmap, most significant bit first.
// Dark pixels become 0 bits, light pixels 1 bits.
func PackImage(img image.Image) []byte {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	stride := (width + 7) / 8
	bitmap := make([]byte, stride*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			if gray.Y >= 0x80 {
				bitmap[y*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return bitmap
}
