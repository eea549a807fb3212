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


// Package retrieval ranks a user's diary context against free-text queries.
//
// The relevance score is a composite: embedding cosine similarity, plus 0.1
// for each stored keyword found in the query, plus up to 0.2 for emotional
// alignment between the record's tone and the query's mood. Scoring walks the
// full per-user context; histories are small by design, so there is no ANN
// index in front of it.
package retrieval
