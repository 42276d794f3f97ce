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
	"context"
	"time"

	"golang.org/x/time/rate"

	"jinr.ru/greenlab/go-esl/pkg/log"
	"jinr.ru/greenlab/go-esl/pkg/pp16"
)

// Sequencer feeds frames to a transmitter one at a time
type Sequencer struct {
	tx      Transmitter
	enc     *pp16.Encoder
	limiter *rate.Limiter
}

// NewSequencer paces frames at least interval apart. Zero interval disables pacing.
func NewSequencer(tx Transmitter, enc *pp16.Encoder, interval time.Duration) *Sequencer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	if enc == nil {
		enc = pp16.DefaultEncoder()
	}
	return &Sequencer{
		tx:      tx,
		enc:     enc,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Run encodes every step once and transmits it Repeat times.
// It stops at the first failure; there are no retries.
func (s *Sequencer) Run(ctx context.Context, steps []Step) (int, error) {
	sent := 0
	for _, step := range steps {
		log.Debug("Frame %s x%d: %s", step.Name, step.Repeat, step.Frame)
		pulses := s.enc.Encode(step.Frame)
		for i := 0; i < step.Repeat; i++ {
			if err := s.limiter.Wait(ctx); err != nil {
				return sent, err
			}
			if err := s.tx.Transmit(ctx, pulses); err != nil {
				return sent, ErrTransmit{Step: step.Name, Err: err}
			}
			sent++
		}
		log.Info("Transmitted %s frame", step.Name)
	}
	return sent, nil
}
