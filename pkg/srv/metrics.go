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
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	MetricsNamespace = "esl"
)

type Metrics struct {
	registry      *prometheus.Registry
	FramesBuilt   *prometheus.CounterVec
	PulsesEncoded prometheus.Counter
	Jobs          *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FramesBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "frames_built_total",
			Help:      "PP16 frames built, by frame kind",
		}, []string{"kind"}),
		PulsesEncoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "pulses_encoded_total",
			Help:      "Pulse symbols produced, including end markers",
		}),
		Jobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "jobs_total",
			Help:      "Image update jobs, by operation",
		}, []string{"op"}),
	}
	m.registry.MustRegister(m.FramesBuilt, m.PulsesEncoded, m.Jobs)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
