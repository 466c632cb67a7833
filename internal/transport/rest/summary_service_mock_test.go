package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
	"github.com/heartmarshall/clearcare-backend/internal/service/summary"
)

var _ summaryService = &summaryServiceMock{}

type summaryServiceMock struct {
	SummarizeFunc          func(ctx context.Context, input summary.SummarizeInput) (*domain.SummaryResult, error)
	ListSummariesFunc      func(ctx context.Context, input summary.ListInput) (*summary.ListResult, error)
	DeleteSummaryFunc      func(ctx context.Context, id int64) error
	DeleteAllSummariesFunc func(ctx context.Context) (int64, error)

	calls struct {
		Summarize []struct {
			Ctx   context.Context
			Input summary.SummarizeInput
		}
		ListSummaries []struct {
			Ctx   context.Context
			Input summary.ListInput
		}
		DeleteSummary []struct {
			Ctx context.Context
			ID  int64
		}
		DeleteAllSummaries []struct {
			Ctx context.Context
		}
	}
	lockSummarize          sync.RWMutex
	lockListSummaries      sync.RWMutex
	lockDeleteSummary      sync.RWMutex
	lockDeleteAllSummaries sync.RWMutex
}

func (mock *summaryServiceMock) Summarize(ctx context.Context, input summary.SummarizeInput) (*domain.SummaryResult, error) {
	if mock.SummarizeFunc == nil {
		panic("summaryServiceMock.SummarizeFunc: method is nil but summaryService.Summarize was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input summary.SummarizeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSummarize.Lock()
	mock.calls.Summarize = append(mock.calls.Summarize, callInfo)
	mock.lockSummarize.Unlock()
	return mock.SummarizeFunc(ctx, input)
}

func (mock *summaryServiceMock) SummarizeCalls() []struct {
	Ctx   context.Context
	Input summary.SummarizeInput
} {
	mock.lockSummarize.RLock()
	calls := mock.calls.Summarize
	mock.lockSummarize.RUnlock()
	return calls
}

func (mock *summaryServiceMock) ListSummaries(ctx context.Context, input summary.ListInput) (*summary.ListResult, error) {
	if mock.ListSummariesFunc == nil {
		panic("summaryServiceMock.ListSummariesFunc: method is nil but summaryService.ListSummaries was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input summary.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListSummaries.Lock()
	mock.calls.ListSummaries = append(mock.calls.ListSummaries, callInfo)
	mock.lockListSummaries.Unlock()
	return mock.ListSummariesFunc(ctx, input)
}

func (mock *summaryServiceMock) ListSummariesCalls() []struct {
	Ctx   context.Context
	Input summary.ListInput
} {
	mock.lockListSummaries.RLock()
	calls := mock.calls.ListSummaries
	mock.lockListSummaries.RUnlock()
	return calls
}

func (mock *summaryServiceMock) DeleteSummary(ctx context.Context, id int64) error {
	if mock.DeleteSummaryFunc == nil {
		panic("summaryServiceMock.DeleteSummaryFunc: method is nil but summaryService.DeleteSummary was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteSummary.Lock()
	mock.calls.DeleteSummary = append(mock.calls.DeleteSummary, callInfo)
	mock.lockDeleteSummary.Unlock()
	return mock.DeleteSummaryFunc(ctx, id)
}

func (mock *summaryServiceMock) DeleteSummaryCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteSummary.RLock()
	calls := mock.calls.DeleteSummary
	mock.lockDeleteSummary.RUnlock()
	return calls
}

func (mock *summaryServiceMock) DeleteAllSummaries(ctx context.Context) (int64, error) {
	if mock.DeleteAllSummariesFunc == nil {
		panic("summaryServiceMock.DeleteAllSummariesFunc: method is nil but summaryService.DeleteAllSummaries was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDeleteAllSummaries.Lock()
	mock.calls.DeleteAllSummaries = append(mock.calls.DeleteAllSummaries, callInfo)
	mock.lockDeleteAllSummaries.Unlock()
	return mock.DeleteAllSummariesFunc(ctx)
}

func (mock *summaryServiceMock) DeleteAllSummariesCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAllSummaries.RLock()
	calls := mock.calls.DeleteAllSummaries
	mock.lockDeleteAllSummaries.RUnlock()
	return calls
}
