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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jinr.ru/greenlab/go-esl/pkg/pp16"
)

var testPLID = pp16.PLID{0xd0, 0x39, 0xc3, 0xde}

// stubTransmitter records every sequence and can fail after a number of calls
type stubTransmitter struct {
	sent      [][]pp16.Pulse
	failAfter int
}

func (s *stubTransmitter) Transmit(ctx context.Context, pulses []pp16.Pulse) error {
	if s.failAfter > 0 && len(s.sent) == s.failAfter {
		return errors.New("peripheral busy")
	}
	s.sent = append(s.sent, pulses)
	return nil
}

func blackSquare() ImageUpdate {
	return ImageUpdate{
		PLID:   testPLID,
		Width:  16,
		Height: 16,
		Bitmap: pp16.NewBitmap(16, 16, 0x00),
	}
}

func TestImagePlan(t *testing.T) {
	steps, err := ImagePlan(blackSquare(), 3)
	require.NoError(t, err)

	// wakeup, param, 2 data chunks (32 bytes padded to 40), final
	require.Len(t, steps, 5)
	assert.Equal(t, StepWakeup, steps[0].Name)
	assert.Equal(t, 3, steps[0].Repeat)
	assert.Equal(t, StepImageParameter, steps[1].Name)
	assert.Equal(t, []byte{0x00, 0x28}, []byte(steps[1].Frame[14:16]), "padded length")
	assert.Equal(t, "data/0", steps[2].Name)
	assert.Equal(t, "data/1", steps[3].Name)
	assert.Equal(t, StepFinalize, steps[4].Name)
	for _, step := range steps {
		assert.True(t, step.Frame.Valid(), step.Name)
	}
}

func TestImagePlanWithoutWakeup(t *testing.T) {
	steps, err := ImagePlan(blackSquare(), 0)
	require.NoError(t, err)
	assert.Equal(t, StepImageParameter, steps[0].Name)
}

func TestImagePlanErrors(t *testing.T) {
	u := blackSquare()
	u.Bitmap = u.Bitmap[:10]
	_, err := ImagePlan(u, 1)
	assert.ErrorAs(t, err, &ErrBitmapTooShort{})

	u = blackSquare()
	u.Bitmap = make([]byte, 70000)
	_, err = ImagePlan(u, 1)
	assert.ErrorAs(t, err, &ErrImageTooLarge{})
}

func TestSequencerRun(t *testing.T) {
	steps, err := ImagePlan(blackSquare(), 4)
	require.NoError(t, err)
	tx := &stubTransmitter{}

	sent, err := NewSequencer(tx, nil, 0).Run(context.Background(), steps)

	require.NoError(t, err)
	assert.Equal(t, 4+1+2+1, sent)
	require.Len(t, tx.sent, sent)
	assert.Equal(t, pp16.Encode(steps[0].Frame), tx.sent[0])
	assert.Equal(t, pp16.Encode(steps[4].Frame), tx.sent[len(tx.sent)-1])
}

func TestSequencerStopsOnFailure(t *testing.T) {
	steps, err := ImagePlan(blackSquare(), 2)
	require.NoError(t, err)
	tx := &stubTransmitter{failAfter: 3}

	sent, err := NewSequencer(tx, nil, 0).Run(context.Background(), steps)

	assert.Equal(t, 3, sent)
	var txErr ErrTransmit
	require.ErrorAs(t, err, &txErr)
	assert.Equal(t, "data/0", txErr.Step)
}

func TestSequencerCanceled(t *testing.T) {
	steps, err := ImagePlan(blackSquare(), 10)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sent, err := NewSequencer(&stubTransmitter{}, nil, 0).Run(ctx, steps)

	assert.Equal(t, 0, sent)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSequencerPacing(t *testing.T) {
	frame := pp16.FinalFrame(testPLID)
	steps := []Step{{Name: StepFinalize, Frame: frame, Repeat: 3}}

	start := time.Now()
	_, err := NewSequencer(&stubTransmitter{}, nil, 20*time.Millisecond).Run(context.Background(), steps)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 35*time.Millisecond)
}

func TestWriterTransmitter(t *testing.T) {
	var buf bytes.Buffer
	tx := NewWriterTransmitter(&buf)

	require.NoError(t, tx.Transmit(context.Background(), pp16.Encode([]byte{0x40})))
	require.NoError(t, tx.Transmit(context.Background(), pp16.Encode(nil)))
	require.NoError(t, tx.Flush())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{"27608690 01e08690 00000000", "00000000"}, lines)
	assert.Equal(t, 2, tx.Count())
}

type fakeToken struct {
	done chan struct{}
	err  error
}

func (t *fakeToken) Wait() bool                     { <-t.done; return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type publishCall struct {
	topic   string
	qos     byte
	payload string
}

// fakePublisher completes tokens immediately unless hang is set
type fakePublisher struct {
	calls []publishCall
	err   error
	hang  bool
}

func (p *fakePublisher) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	p.calls = append(p.calls, publishCall{topic: topic, qos: qos, payload: payload.(string)})
	token := &fakeToken{done: make(chan struct{}), err: p.err}
	if !p.hang {
		close(token.done)
	}
	return token
}

func TestMQTTTransmitter(t *testing.T) {
	pub := &fakePublisher{}
	tx := NewMQTTTransmitter(pub, "esl/pulses", 1, time.Second)

	require.NoError(t, tx.Transmit(context.Background(), pp16.Encode([]byte{0x40})))
	require.Len(t, pub.calls, 1)
	assert.Equal(t, publishCall{topic: "esl/pulses", qos: 1, payload: "27608690 01e08690 00000000"}, pub.calls[0])
	assert.Equal(t, 1, tx.Count())
}

func TestMQTTTransmitterErrors(t *testing.T) {
	failed := NewMQTTTransmitter(&fakePublisher{err: errors.New("not connected")}, "t", 0, time.Second)
	assert.EqualError(t, failed.Transmit(context.Background(), pp16.Encode(nil)), "not connected")
	assert.Equal(t, 0, failed.Count())

	slow := NewMQTTTransmitter(&fakePublisher{hang: true}, "t", 1, 10*time.Millisecond)
	err := slow.Transmit(context.Background(), pp16.Encode(nil))
	assert.ErrorAs(t, err, &ErrMQTTTimeout{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, slow.Transmit(ctx, pp16.Encode(nil)), context.Canceled)
}

func TestSequencerOverMQTT(t *testing.T) {
	steps, err := ImagePlan(blackSquare(), 2)
	require.NoError(t, err)
	pub := &fakePublisher{}
	sent, err := NewSequencer(NewMQTTTransmitter(pub, "t", 1, time.Second), nil, 0).Run(context.Background(), steps)
	require.NoError(t, err)
	assert.Equal(t, 6, sent)
	assert.Len(t, pub.calls, 6)
}
