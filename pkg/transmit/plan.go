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

package transmit

import (
	"fmt"
	"math"

	"jinr.ru/greenlab/go-esl/pkg/pp16"
)

const (
	StepWakeup         = "wakeup"
	StepImageParameter = "param"
	StepImageData      = "data"
	StepFinalize       = "final"
)

// Step is a frame to be sent Repeat times in a row
type Step struct {
	Name   string     `json:"name"`
	Frame  pp16.Frame `json:"-"`
	Repeat int        `json:"repeat"`
}

// ImageUpdate is everything needed to draw a packed bitmap on a label
type ImageUpdate struct {
	PLID   pp16.PLID
	Width  uint16
	Height uint16
	X      uint16
	Y      uint16
	// Bitmap is 1 bpp, rows of RowStride(Width) bytes
	Bitmap []byte
}

// ImagePlan returns the frames of a full image update: wakeup repeated
// wakeups times, image parameters, data chunks and finalize.
// The bitmap is padded to whole chunks and the padded length is announced.
func ImagePlan(u ImageUpdate, wakeups int) ([]Step, error) {
	need := pp16.RowStride(u.Width) * int(u.Height)
	if len(u.Bitmap) < need {
		return nil, ErrBitmapTooShort{Need: need, Got: len(u.Bitmap)}
	}
	img := pp16.PadToChunk(u.Bitmap)
	if len(img) > math.MaxUint16 {
		return nil, ErrImageTooLarge{Size: len(img)}
	}

	var steps []Step
	if wakeups > 0 {
		steps = append(steps, Step{Name: StepWakeup, Frame: pp16.WakeupFrame(u.PLID), Repeat: wakeups})
	}
	steps = append(steps, Step{
		Name:   StepImageParameter,
		Frame:  pp16.ImageParameterFrame(u.PLID, u.Width, u.Height, u.X, u.Y, uint16(len(img))),
		Repeat: 1,
	})
	for i, frame := range pp16.DataFrames(u.PLID, img) {
		steps = append(steps, Step{Name: fmt.Sprintf("%s/%d", StepImageData, i), Frame: frame, Repeat: 1})
	}
	steps = append(steps, Step{Name: StepFinalize, Frame: pp16.FinalFrame(u.PLID), Repeat: 1})
	return steps, nil
}
