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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	GroupVersion = "placement.dmfb.io/v1alpha1"
	Kind         = "PlacementReport"
)

// PlacementReport is the result document of a placement search run: the
// problem it was produced for and the feasible placements retained.
type PlacementReport struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PlacementReportSpec   `json:"spec,omitempty"`
	Status PlacementReportStatus `json:"status,omitempty"`
}

// PlacementReportSpec describes the problem that was searched.
type PlacementReportSpec struct {
	// Rows and Columns are the chip dimensions
	Rows    int `json:"rows"`
	Columns int `json:"columns"`

	// Alpha is the weight of the communication cost in the combined objective
	Alpha float64 `json:"alpha"`

	// Operations is the number of operations in the assay
	Operations int `json:"operations"`

	// InterferenceEdges and CommunicationEdges are the graph sizes
	InterferenceEdges  int `json:"interferenceEdges"`
	CommunicationEdges int `json:"communicationEdges"`
}

// PlacementReportStatus holds the outcome of the search.
type PlacementReportStatus struct {
	// Phase is Found when at least one feasible placement was retained
	// +kubebuilder:validation:Enum=Found;NotFound
	Phase PlacementPhase `json:"phase,omitempty"`

	// Evaluations is the number of chromosomes evaluated
	Evaluations int64 `json:"evaluations"`

	// FeasibleEvaluations is the number of evaluations satisfying every constraint
	FeasibleEvaluations int64 `json:"feasibleEvaluations"`

	// Selected is the index in Solutions of the placement chosen as the answer
	Selected *int `json:"selected,omitempty"`

	// Solutions are the archive entries in archive order
	Solutions []PlacementSolution `json:"solutions"`

	// GeneratedAt indicates when the report was generated
	GeneratedAt *metav1.Time `json:"generatedAt,omitempty"`
}

// PlacementPhase represents the outcome of a search run
type PlacementPhase string

const (
	// PlacementPhaseFound indicates a feasible placement was found
	PlacementPhaseFound PlacementPhase = "Found"

	// PlacementPhaseNotFound indicates no evaluated placement was feasible
	PlacementPhaseNotFound PlacementPhase = "NotFound"
)

// PlacementSolution is one retained placement.
type PlacementSolution struct {
	// Rank is the non-dominated front of the solution over (D_comm, -T_mix), 0 = best
	Rank int `json:"rank"`

	// Objectives contains the individual objective values
	Objectives ObjectiveValues `json:"objectives"`

	// Operations lists the placement of every operation in ID order
	Operations []OperationPlacement `json:"operations"`
}

// ObjectiveValues contains the values for each optimization objective
type ObjectiveValues struct {
	// Combined is alpha*DComm - (1-alpha)*TMix
	Combined float64 `json:"combined"`

	// DComm is the weighted communication distance
	DComm float64 `json:"dComm"`

	// TMix is the mixing throughput reward
	TMix float64 `json:"tMix"`
}

// OperationPlacement is where one operation sits and how large it is
type OperationPlacement struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Y    int    `json:"y"`

	// Height and Width are the footprint after orientation
	Height int `json:"height"`
	Width  int `json:"width"`

	Rotated bool `json:"rotated,omitempty"`

	// Reservoir is set for Input and Output operations
	Reservoir *int `json:"reservoir,omitempty"`
}
