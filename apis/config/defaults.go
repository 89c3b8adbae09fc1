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

const (
	DefaultParallelism int32 = 1
	DefaultReportName        = "dmfb-placement"
)

// SetDefaults_PlacementArgs sets the default parameters for the placement engine.
func SetDefaults_PlacementArgs(obj *PlacementArgs) {
	if obj.Parallelism == 0 {
		obj.Parallelism = DefaultParallelism
	}
	if obj.ReportName == "" {
		obj.ReportName = DefaultReportName
	}
}
