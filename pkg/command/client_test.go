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
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jinr.ru/greenlab/go-esl/pkg/config"
	"jinr.ru/greenlab/go-esl/pkg/pp16"
	"jinr.ru/greenlab/go-esl/pkg/srv"
)

const testPLID = "d039c3de"

func newTestClient(t *testing.T) *ApiClient {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.WakeupRepeat = 1
	state, err := srv.NewJobState(filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { state.Close() })
	s, err := srv.NewApiServer(context.Background(), cfg, state)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	client := NewApiClient(cfg)
	client.ApiPrefix = ts.URL + srv.ApiPrefix
	return client
}

func TestNewApiClient(t *testing.T) {
	cfg := config.NewDefaultConfig()
	assert.Equal(t, "http://127.0.0.1:8016/api", NewApiClient(cfg).ApiPrefix)
}

func TestClientFrames(t *testing.T) {
	client := newTestClient(t)
	plid, _ := pp16.ParsePLID(testPLID)

	wakeup, err := client.WakeupFrame(testPLID)
	require.NoError(t, err)
	assert.Equal(t, pp16.WakeupFrame(plid).String(), wakeup.Frame)

	final, err := client.FinalFrame(testPLID)
	require.NoError(t, err)
	assert.Equal(t, pp16.FinalFrame(plid).String(), final.Frame)

	param, err := client.ImageParameterFrame(testPLID, &srv.ImageParamRequest{Width: 16, Height: 16, Length: 40})
	require.NoError(t, err)
	assert.Equal(t, pp16.ImageParameterFrame(plid, 16, 16, 0, 0, 40).String(), param.Frame)

	data, err := client.DataFrames(testPLID, make([]byte, 25), false)
	require.NoError(t, err)
	assert.Len(t, data, 2)

	_, err = client.WakeupFrame("nope")
	var apiErr ErrApi
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Status, "400")
}

func TestClientPulses(t *testing.T) {
	client := newTestClient(t)

	pulses, err := client.Pulses("40")
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x27608690, 0x01e08690, 0}, pulses.Codes)
}

func TestClientJobs(t *testing.T) {
	client := newTestClient(t)

	id, err := client.SubmitJob(&srv.JobRequest{PLID: testPLID, Width: 8, Height: 8, Bitmap: make([]byte, 8)})
	require.NoError(t, err)

	job, err := client.GetJob(id)
	require.NoError(t, err)
	assert.Equal(t, 1, job.Wakeups)

	jobs, err := client.ListJobs()
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	plan, err := client.JobPlan(id)
	require.NoError(t, err)
	// wakeup, param, one data chunk, final
	assert.Len(t, plan, 4)

	require.NoError(t, client.DeleteJob(id))
	_, err = client.GetJob(id)
	assert.ErrorAs(t, err, &ErrApi{})
}
