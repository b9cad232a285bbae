// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package restx

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 记录调用后端的耗时和次数，nil 的时候什么都不做
type Metrics struct {
	durationVec *prometheus.SummaryVec
	counterVec  *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		durationVec: factory.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: "feedsync",
			Name:      "backend_request_duration_seconds",
			Help:      "调用后端接口的耗时",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, []string{"backend", "method", "resource"}),
		counterVec: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "feedsync",
			Name:      "backend_requests_total",
			Help:      "调用后端接口的次数",
		}, []string{"backend", "method", "resource", "status_code"}),
	}
}

func (m *Metrics) observe(backend, method, resource string, code int, cost time.Duration) {
	if m == nil {
		return
	}
	m.durationVec.WithLabelValues(backend, method, resource).Observe(cost.Seconds())
	m.counterVec.WithLabelValues(backend, method, resource, strconv.Itoa(code)).Inc()
}
