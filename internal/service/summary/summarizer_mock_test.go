package summary

import (
	"context"
	"sync"
)

var _ summarizer = &summarizerMock{}

type summarizerMock struct {
	SummarizeFunc func(ctx context.Context, raw string) (string, error)

	calls struct {
		Summarize []struct {
			Ctx context.Context
			Raw string
		}
	}
	lockSummarize sync.RWMutex
}

func (mock *summarizerMock) Summarize(ctx context.Context, raw string) (string, error) {
	if mock.SummarizeFunc == nil {
		panic("summarizerMock.SummarizeFunc: method is nil but summarizer.Summarize was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Raw string
	}{Ctx: ctx, Raw: raw}
	mock.lockSummarize.Lock()
	mock.calls.Summarize = append(mock.calls.Summarize, callInfo)
	mock.lockSummarize.Unlock()
	return mock.SummarizeFunc(ctx, raw)
}

func (mock *summarizerMock) SummarizeCalls() []struct {
	Ctx context.Context
	Raw string
} {
	mock.lockSummarize.RLock()
	calls := mock.calls.Summarize
	mock.lockSummarize.RUnlock()
	return calls
}
