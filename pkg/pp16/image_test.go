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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowStride(t *testing.T) {
	assert.Equal(t, 0, RowStride(0))
	assert.Equal(t, 1, RowStride(1))
	assert.Equal(t, 1, RowStride(8))
	assert.Equal(t, 2, RowStride(9))
	assert.Equal(t, 2, RowStride(16))
	assert.Equal(t, 37, RowStride(296))
}

func TestNewBitmap(t *testing.T) {
	black := NewBitmap(16, 16, 0x00)
	assert.Equal(t, make([]byte, 32), black)

	white := NewBitmap(10, 2, 0xFF)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, white)
}

func TestPadToChunk(t *testing.T) {
	assert.Len(t, PadToChunk(make([]byte, 32)), 40)
	assert.Len(t, PadToChunk(make([]byte, 40)), 40)
	assert.Len(t, PadToChunk(nil), 0)

	padded := PadToChunk([]byte{1, 2, 3})
	assert.Equal(t, byte(3), padded[2])
	assert.Equal(t, make([]byte, 17), padded[3:])
}

func TestPackImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 2))
	img.SetGray(0, 0, color.Gray{Y: 0xFF})
	img.SetGray(9, 0, color.Gray{Y: 0xFF})
	img.SetGray(1, 1, color.Gray{Y: 0x40})

	bitmap := PackImage(img)

	assert.Equal(t, []byte{0x80, 0x40, 0x00, 0x00}, bitmap)
}
