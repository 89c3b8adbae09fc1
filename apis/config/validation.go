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
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ValidatePlacementArgs validates defaulted PlacementArgs.
func ValidatePlacementArgs(path *field.Path, args *PlacementArgs) error {
	var allErrs field.ErrorList

	if args.Alpha != nil && (*args.Alpha < 0 || *args.Alpha > 1) {
		allErrs = append(allErrs, field.Invalid(path.Child("alpha"), *args.Alpha, "must be in the range [0, 1]"))
	}
	if args.Parallelism < 1 {
		allErrs = append(allErrs, field.Invalid(path.Child("parallelism"), args.Parallelism, "must be greater than 0"))
	}
	if args.DecodeCacheTTL.Duration < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("decodeCacheTTL"), args.DecodeCacheTTL.String(), "must not be negative"))
	}
	if args.ReportName == "" {
		allErrs = append(allErrs, field.Required(path.Child("reportName"), ""))
	}

	return allErrs.ToAggregate()
}
