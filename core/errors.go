// Copyright 2025 Poiesic Systems
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


package core

import "errors"

// Domain validation errors
var (
	// ErrUnknownMode indicates a Mode value outside the defined algorithms.
	ErrUnknownMode = errors.New("unknown similarity mode")

	// ErrEmptyPattern indicates a configured pattern is empty.
	ErrEmptyPattern = errors.New("pattern cannot be empty")

	// ErrEmptyAbbreviation indicates an abbreviation token is empty.
	ErrEmptyAbbreviation = errors.New("abbreviation token cannot be empty")
)
