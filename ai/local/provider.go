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


package local

import (
	"log/slog"

	"github.com/poiesic/diarit/ai"
)

// Provider implements ai.AIProvider with the deterministic local services.
// No network access is needed; it is the default for demo and offline use.
type Provider struct {
	embedder  ai.Embedder
	analyzer  ai.EmotionAnalyzer
	responder ai.Responder
	logger    *slog.Logger
}

var _ ai.AIProvider = (*Provider)(nil)

// NewProvider creates a provider backed by the local embedder, lexicon
// analyzer, and canned responder. maxKeywords bounds keyword extraction;
// values < 1 fall back to the default of 5.
//
// Returns ai.AIProvider interface (not *Provider) to enforce abstraction.
func NewProvider(maxKeywords int) ai.AIProvider {
	return &Provider{
		embedder:  NewEmbedder(),
		analyzer:  NewEmotionAnalyzer(maxKeywords),
		responder: NewResponder(),
		logger:    slog.Default().With("component", "local-provider"),
	}
}

// Embedder returns the hash-based text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// EmotionAnalyzer returns the lexicon emotion/keyword analysis service.
func (p *Provider) EmotionAnalyzer() ai.EmotionAnalyzer {
	return p.analyzer
}

// Responder returns the canned dialogue response service.
func (p *Provider) Responder() ai.Responder {
	return p.responder
}

// Close is a no-op; local services hold no resources.
func (p *Provider) Close() error {
	p.logger.Debug("closing local provider")
	return nil
}
