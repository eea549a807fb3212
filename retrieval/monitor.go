package retrieval

import "github.com/poiesic/diarit/core"

// RankMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps and results during retrieval.
type RankMonitor interface {
	Start(query string)
	AfterQueryEmbedding(vector []float32)
	AfterContextLoad(records []*core.ContextRecord)
	KeywordHit(record *core.ContextRecord, keyword string)
	EmotionAligned(record *core.ContextRecord, boost float64)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of RankMonitor
type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                  {}
func (n *noopMonitor) AfterQueryEmbedding(_ []float32)                 {}
func (n *noopMonitor) AfterContextLoad(_ []*core.ContextRecord)        {}
func (n *noopMonitor) KeywordHit(_ *core.ContextRecord, _ string)      {}
func (n *noopMonitor) EmotionAligned(_ *core.ContextRecord, _ float64) {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)                   {}
