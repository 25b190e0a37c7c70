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


// Package normalize provides deterministic text normalization for fuzzy matching.
//
// The Normalizer type applies an ordered pipeline:
//   - Abbreviation expansion (standalone tokens, case-insensitive)
//   - Case folding
//   - Equivalence substitution (regex, unanchored, global)
//   - Whitespace collapse and trim
//
// Normalizing an already-normalized text is a no-op, and digits are
// always preserved. All configured patterns are compiled once at
// construction time so Normalize itself cannot fail.
package normalize
