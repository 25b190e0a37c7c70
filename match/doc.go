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


// Package match ranks candidate phrases against a query by fuzzy similarity.
//
// The Matcher type implements the search pipeline:
//   - Normalize the query and every candidate phrase
//   - Score each distinct normalized form, in parallel over a worker pool
//   - Keep the top forms, apply the score threshold
//   - Suppress matches excluded by ignore combinations
//
// Results carry the original phrases, sorted by score descending with
// ties broken by candidate-list order. Searches never fail: internal
// faults degrade to lower scores or an empty result and are reported
// through the logger and the optional Monitor.
package match
