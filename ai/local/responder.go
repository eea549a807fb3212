package local

import (
	"context"
	"sync/atomic"

	"github.com/poiesic/diarit/ai"
)

// cannedResponses are the offline dialogue replies, cycled in order.
// They mirror the empathetic follow-up style the LLM responder is prompted for.
var cannedResponses = []string{
	"それは大変でしたね。もう少し詳しく教えていただけますか？",
	"なるほど、そのような経験をされたんですね。どのように感じましたか？",
	"その気持ち、とてもよく分かります。他に何か心に残っていることはありますか？",
	"素晴らしい気づきですね。その経験から学んだことは何ですか？",
	"それは興味深い視点ですね。もう少し深く掘り下げてみましょう。",
}

// Responder implements ai.Responder without any external service by cycling
// through a fixed set of empathetic follow-up replies.
type Responder struct {
	counter atomic.Uint64
}

var _ ai.Responder = (*Responder)(nil)

// NewResponder creates the canned-response responder.
//
// Returns ai.Responder interface to enforce abstraction.
func NewResponder() ai.Responder {
	return &Responder{}
}

// Respond returns the next canned reply. It never fails.
func (r *Responder) Respond(ctx context.Context, prompt string) (string, error) {
	n := r.counter.Add(1) - 1
	return cannedResponses[n%uint64(len(cannedResponses))], nil
}
