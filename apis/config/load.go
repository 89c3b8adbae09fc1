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
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadPlacementArgs reads PlacementArgs from a YAML file, then defaults and
// validates them. Unknown fields are rejected.
func LoadPlacementArgs(path string) (*PlacementArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading placement args: %w", err)
	}
	return DecodePlacementArgs(data)
}

// DecodePlacementArgs parses, defaults and validates YAML or JSON data.
func DecodePlacementArgs(data []byte) (*PlacementArgs, error) {
	args := &PlacementArgs{}
	if err := yaml.UnmarshalStrict(data, args); err != nil {
		return nil, fmt.Errorf("decoding placement args: %w", err)
	}
	SetDefaults_PlacementArgs(args)
	if err := ValidatePlacementArgs(nil, args); err != nil {
		return nil, err
	}
	return args, nil
}
