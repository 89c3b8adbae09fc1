/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PlacementArgs holds the arguments used to configure the placement
// evaluation engine.
type PlacementArgs struct {
	// Alpha overrides the instance's weight of the communication cost in the
	// combined objective. Must be in [0, 1].
	Alpha *float64 `json:"alpha,omitempty"`

	// Parallelism is the number of workers scoring a batch of solutions.
	Parallelism int32 `json:"parallelism,omitempty"`

	// DecodeCacheTTL is how long a scored chromosome is remembered.
	// Zero disables the cache.
	DecodeCacheTTL metav1.Duration `json:"decodeCacheTTL,omitempty"`

	// ReportName is the name stamped on generated placement reports.
	ReportName string `json:"reportName,omitempty"`
}
