package summarizer

import (
	"context"
	"sync"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

var _ generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, p domain.Prompt) (string, error)

	calls struct {
		Generate []struct {
			Ctx context.Context
			P   domain.Prompt
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, p domain.Prompt) (string, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but generator.Generate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Prompt
	}{Ctx: ctx, P: p}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, p)
}

func (mock *generatorMock) GenerateCalls() []struct {
	Ctx context.Context
	P   domain.Prompt
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
