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
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobState(t *testing.T) {
	state, err := NewJobState(filepath.Join(t.TempDir(), "state", "jobs.db"))
	require.NoError(t, err)
	defer state.Close()

	now := time.Now().UTC().Truncate(time.Second)
	second := &Job{ID: "b", PLID: "00000002", Width: 8, Height: 1, Bitmap: []byte{0xAA}, Created: now.Add(time.Second)}
	first := &Job{ID: "a", PLID: "00000001", Width: 8, Height: 1, Bitmap: []byte{0x55}, Wakeups: 3, Created: now}
	require.NoError(t, state.PutJob(second))
	require.NoError(t, state.PutJob(first))

	job, err := state.GetJob("a")
	require.NoError(t, err)
	assert.Equal(t, first.PLID, job.PLID)
	assert.Equal(t, first.Bitmap, job.Bitmap)
	assert.Equal(t, 3, job.Wakeups)
	assert.True(t, first.Created.Equal(job.Created))

	jobs, err := state.GetAllJobs()
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "a", jobs[0].ID)
	assert.Equal(t, "b", jobs[1].ID)

	require.NoError(t, state.DeleteJob("a"))
	_, err = state.GetJob("a")
	assert.ErrorAs(t, err, &ErrJobNotFound{})
	assert.ErrorAs(t, state.DeleteJob("a"), &ErrJobNotFound{})
}

func TestJobPlan(t *testing.T) {
	job := &Job{PLID: "d039c3de", Width: 16, Height: 16, Bitmap: make([]byte, 32), Wakeups: 1}
	steps, err := job.Plan()
	require.NoError(t, err)

	hexes := FrameHexes(steps)
	require.Len(t, hexes, 5)
	assert.Equal(t, "0000004085dec339d0170100000001010101010101010101010101010101010101010101027f", hexes[0].Frame)

	job.PLID = "bad"
	_, err = job.Plan()
	assert.Error(t, err)
}
