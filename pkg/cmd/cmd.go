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
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"jinr.ru/greenlab/go-esl/pkg/log"
	"jinr.ru/greenlab/go-esl/pkg/pp16"
)

// Bitmap is a packed 1 bpp image with its geometry
type Bitmap struct {
	Width  uint16
	Height uint16
	Data   []byte
}

func isPicture(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".gif", ".jpg", ".jpeg":
		return true
	}
	return false
}

// LoadBitmap reads a picture (png, gif, jpeg) and packs it, or reads an already
// packed raw bitmap. Raw bitmaps carry no geometry, so width and height are used as given.
func LoadBitmap(path string, width, height uint16) (*Bitmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !isPicture(path) {
		log.Debug("Raw bitmap loaded: %s (%d bytes)", path, len(data))
		return &Bitmap{Width: width, Height: height, Data: data}, nil
	}
	return DecodeBitmap(bytes.NewReader(data))
}

// DecodeBitmap decodes a picture and packs it to 1 bpp
func DecodeBitmap(r io.Reader) (*Bitmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	if bounds.Dx() > 0xFFFF || bounds.Dy() > 0xFFFF {
		return nil, ErrPictureTooLarge{Width: bounds.Dx(), Height: bounds.Dy()}
	}
	log.Debug("Picture decoded: format: %s size: %dx%d", format, bounds.Dx(), bounds.Dy())
	return &Bitmap{
		Width:  uint16(bounds.Dx()),
		Height: uint16(bounds.Dy()),
		Data:   pp16.PackImage(img),
	}, nil
}

// BlackBitmap is the all black test image
func BlackBitmap(width, height uint16) *Bitmap {
	return &Bitmap{Width: width, Height: height, Data: pp16.NewBitmap(width, height, 0x00)}
}
