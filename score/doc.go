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


// Package score computes 0-100 similarity scores between strings.
//
// Two algorithms are provided:
//   - Ratio: whole-string similarity from insertion/deletion edit distance
//   - PartialRatio: best same-length window of the longer string against
//     the shorter one, for fuzzy substring containment
//
// Both are deterministic; Ratio is symmetric, and PartialRatio is always
// greater than or equal to Ratio for the same pair.
package score
