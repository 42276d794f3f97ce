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

package command

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/imroc/req"

	"jinr.ru/greenlab/go-esl/pkg/config"
	"jinr.ru/greenlab/go-esl/pkg/srv"
)

// ErrApi is returned when the API server answers with a non 200 status
type ErrApi struct {
	Status string
	What   string
}

func (e ErrApi) Error() string {
	if e.What == "" {
		return e.Status
	}
	return fmt.Sprintf("%s: %s", e.Status, e.What)
}

type ApiClient struct {
	*config.Config
	ApiPrefix string
}

func NewApiClient(cfg *config.Config) *ApiClient {
	return &ApiClient{
		Config:    cfg,
		ApiPrefix: fmt.Sprintf("http://%s:%d%s", cfg.Address, cfg.Port, srv.ApiPrefix),
	}
}

func (c *ApiClient) frameUrl(kind, plid string) string {
	return fmt.Sprintf("%s/frame/%s/%s", c.ApiPrefix, kind, plid)
}

func (c *ApiClient) jobUrl(id string) string {
	return fmt.Sprintf("%s/jobs/%s", c.ApiPrefix, id)
}

func checkResponse(r *req.Resp) error {
	if r.Response().StatusCode != http.StatusOK {
		return ErrApi{Status: r.Response().Status, What: strings.TrimSpace(r.String())}
	}
	return nil
}

func (c *ApiClient) getFrame(kind, plid string) (*srv.FrameHex, error) {
	r, err := req.Get(c.frameUrl(kind, plid))
	if err != nil {
		return nil, err
	}
	if err := checkResponse(r); err != nil {
		return nil, err
	}
	frame := &srv.FrameHex{}
	if err := r.ToJSON(frame); err != nil {
		return nil, err
	}
	return frame, nil
}

// WakeupFrame sends request to build the wakeup frame for a label
func (c *ApiClient) WakeupFrame(plid string) (*srv.FrameHex, error) {
	return c.getFrame("wakeup", plid)
}

// FinalFrame sends request to build the finalize frame for a label
func (c *ApiClient) FinalFrame(plid string) (*srv.FrameHex, error) {
	return c.getFrame("final", plid)
}

// ImageParameterFrame sends request to build the image parameter frame
func (c *ApiClient) ImageParameterFrame(plid string, params *srv.ImageParamRequest) (*srv.FrameHex, error) {
	r, err := req.Post(c.frameUrl("param", plid), req.BodyJSON(params))
	if err != nil {
		return nil, err
	}
	if err := checkResponse(r); err != nil {
		return nil, err
	}
	frame := &srv.FrameHex{}
	if err := r.ToJSON(frame); err != nil {
		return nil, err
	}
	return frame, nil
}

// DataFrames sends request to split a bitmap into image data frames
func (c *ApiClient) DataFrames(plid string, bitmap []byte, pad bool) ([]*srv.FrameHex, error) {
	r, err := req.Post(c.frameUrl("data", plid), req.BodyJSON(&srv.ImageDataRequest{Bitmap: bitmap, Pad: pad}))
	if err != nil {
		return nil, err
	}
	if err := checkResponse(r); err != nil {
		return nil, err
	}
	var frames []*srv.FrameHex
	if err := r.ToJSON(&frames); err != nil {
		return nil, err
	}
	return frames, nil
}

// Pulses sends request to encode a hexadecimal frame
func (c *ApiClient) Pulses(frame string) (*srv.PulsesResponse, error) {
	r, err := req.Post(fmt.Sprintf("%s/pulses", c.ApiPrefix), req.BodyJSON(&srv.PulsesRequest{Frame: frame}))
	if err != nil {
		return nil, err
	}
	if err := checkResponse(r); err != nil {
		return nil, err
	}
	pulses := &srv.PulsesResponse{}
	if err := r.ToJSON(pulses); err != nil {
		return nil, err
	}
	return pulses, nil
}

// SubmitJob stores an image update job and returns its id
func (c *ApiClient) SubmitJob(job *srv.JobRequest) (string, error) {
	r, err := req.Post(fmt.Sprintf("%s/jobs", c.ApiPrefix), req.BodyJSON(job))
	if err != nil {
		return "", err
	}
	if err := checkResponse(r); err != nil {
		return "", err
	}
	id := &srv.JobID{}
	if err := r.ToJSON(id); err != nil {
		return "", err
	}
	return id.ID, nil
}

// ListJobs ...
func (c *ApiClient) ListJobs() ([]*srv.Job, error) {
	r, err := req.Get(fmt.Sprintf("%s/jobs", c.ApiPrefix))
	if err != nil {
		return nil, err
	}
	if err := checkResponse(r); err != nil {
		return nil, err
	}
	var jobs []*srv.Job
	if err := r.ToJSON(&jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob ...
func (c *ApiClient) GetJob(id string) (*srv.Job, error) {
	r, err := req.Get(c.jobUrl(id))
	if err != nil {
		return nil, err
	}
	if err := checkResponse(r); err != nil {
		return nil, err
	}
	job := &srv.Job{}
	if err := r.ToJSON(job); err != nil {
		return nil, err
	}
	return job, nil
}

// JobPlan returns frames of a job in transmission order
func (c *ApiClient) JobPlan(id string) ([]*srv.FrameHex, error) {
	r, err := req.Get(fmt.Sprintf("%s/plan", c.jobUrl(id)))
	if err != nil {
		return nil, err
	}
	if err := checkResponse(r); err != nil {
		return nil, err
	}
	var frames []*srv.FrameHex
	if err := r.ToJSON(&frames); err != nil {
		return nil, err
	}
	return frames, nil
}

// DeleteJob ...
func (c *ApiClient) DeleteJob(id string) error {
	r, err := req.Delete(c.jobUrl(id))
	if err != nil {
		return err
	}
	return checkResponse(r)
}
