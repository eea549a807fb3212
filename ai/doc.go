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


// Package ai provides abstractions for AI services used in Diarit.
//
// This package defines interfaces for AI operations including text embeddings,
// emotion/keyword analysis, and dialogue responses. It follows the dependency
// inversion principle, allowing the core domain and business logic to depend
// on abstractions rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around four key interfaces:
//
//   - Embedder: generates vector embeddings from text
//   - EmotionAnalyzer: produces emotion profiles and keywords from text
//   - Responder: generates free-text replies from enhanced prompts
//   - AIProvider: aggregates AI services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes three implementation sub-packages:
//
//   - ai/local: deterministic, dependency-free implementations. The local
//     embedder is the hashed bag-of-words model the relevance ranker is
//     calibrated against; the local analyzer and responder provide offline
//     demo behavior.
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, local.NewProvider, etc.) return
// INTERFACE types to enforce abstraction and prevent accidental coupling to
// concrete implementations.
//
// Test utility constructors (mock.NewMockEmbedder, mock.NewMockEmotionAnalyzer)
// return CONCRETE types to enable test assertions and behavior injection via
// the mock's public function fields.
package ai
