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


// Package local provides deterministic, dependency-free AI service
// implementations.
//
// The embedder is a hashed bag-of-words pseudo-embedding: it trades semantic
// quality for zero external dependencies and full determinism, which is what
// the relevance ranker's composite scoring is calibrated against. The emotion
// analyzer matches a small curated lexicon, and the responder cycles through
// canned empathetic replies. Together they let the whole system run offline.
package local
