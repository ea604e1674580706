// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cookbook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

var (
	// Store metrics
	entriesAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entries_added_total",
			Help: "Total number of entries accepted by the store",
		},
		[]string{"type"},
	)
	entriesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entries_rejected_total",
			Help: "Total number of entry descriptors rejected by the store",
		},
		[]string{"reason"},
	)

	// Resolution metrics
	resolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_resolutions_total",
			Help: "Total number of recipe resolutions by result",
		},
		[]string{"result"},
	)
	resolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookbook_resolution_duration_seconds",
			Help:    "Duration of recipe resolution in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
	)
)
