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

package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBitmapRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0xFF}, 0644))

	bitmap, err := LoadBitmap(path, 8, 2)
	require.NoError(t, err)
	assert.Equal(t, &Bitmap{Width: 8, Height: 2, Data: []byte{0x00, 0xFF}}, bitmap)
}

func TestLoadBitmapPicture(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 9, 1))
	img.SetGray(8, 0, color.Gray{Y: 0xFF})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(t.TempDir(), "image.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	bitmap, err := LoadBitmap(path, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint16(9), bitmap.Width)
	assert.Equal(t, uint16(1), bitmap.Height)
	assert.Equal(t, []byte{0x00, 0x80}, bitmap.Data)
}

func TestLoadBitmapMissing(t *testing.T) {
	_, err := LoadBitmap(filepath.Join(t.TempDir(), "missing.png"), 0, 0)
	assert.Error(t, err)
}

func TestBlackBitmap(t *testing.T) {
	bitmap := BlackBitmap(16, 16)
	assert.Len(t, bitmap.Data, 32)
}
