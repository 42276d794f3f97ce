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

package srv

import (
	"time"

	"jinr.ru/greenlab/go-esl/pkg/pp16"
	"jinr.ru/greenlab/go-esl/pkg/transmit"
)

// Job is a stored image update for one label
type Job struct {
	ID      string    `json:"id"`
	PLID    string    `json:"plid"`
	Width   uint16    `json:"width"`
	Height  uint16    `json:"height"`
	X       uint16    `json:"x"`
	Y       uint16    `json:"y"`
	Wakeups int       `json:"wakeups"`
	Bitmap  []byte    `json:"bitmap"`
	Created time.Time `json:"created"`
}

// JobRequest is the body of a job submission. Missing wakeups means the configured default.
type JobRequest struct {
	PLID    string `json:"plid"`
	Width   uint16 `json:"width"`
	Height  uint16 `json:"height"`
	X       uint16 `json:"x"`
	Y       uint16 `json:"y"`
	Wakeups *int   `json:"wakeups,omitempty"`
	Bitmap  []byte `json:"bitmap"`
}

type JobID struct {
	ID string `json:"id"`
}

// FrameHex is a frame as shown to API users
type FrameHex struct {
	Name   string `json:"name"`
	Frame  string `json:"frame"`
	Repeat int    `json:"repeat,omitempty"`
}

type ImageParamRequest struct {
	Width  uint16 `json:"width"`
	Height uint16 `json:"height"`
	X      uint16 `json:"x"`
	Y      uint16 `json:"y"`
	Length uint16 `json:"length"`
}

type ImageDataRequest struct {
	Bitmap []byte `json:"bitmap"`
	// Pad extends the bitmap to whole chunks before splitting
	Pad bool `json:"pad"`
}

type PulsesRequest struct {
	Frame string `json:"frame"`
}

type PulsesResponse struct {
	TicksPerMicrosecond uint16       `json:"ticksPerMicrosecond"`
	Pulses              []pp16.Pulse `json:"pulses"`
	Codes               []uint32     `json:"codes"`
}

// Update converts the job into the input of transmit.ImagePlan
func (j *Job) Update() (transmit.ImageUpdate, error) {
	plid, err := pp16.ParsePLID(j.PLID)
	if err != nil {
		return transmit.ImageUpdate{}, err
	}
	return transmit.ImageUpdate{
		PLID:   plid,
		Width:  j.Width,
		Height: j.Height,
		X:      j.X,
		Y:      j.Y,
		Bitmap: j.Bitmap,
	}, nil
}

// Plan returns the frames of the job
func (j *Job) Plan() ([]transmit.Step, error) {
	u, err := j.Update()
	if err != nil {
		return nil, err
	}
	return transmit.ImagePlan(u, j.Wakeups)
}

func FrameHexes(steps []transmit.Step) []*FrameHex {
	result := make([]*FrameHex, 0, len(steps))
	for _, step := range steps {
		result = append(result, &FrameHex{Name: step.Name, Frame: step.Frame.String(), Repeat: step.Repeat})
	}
	return result
}
