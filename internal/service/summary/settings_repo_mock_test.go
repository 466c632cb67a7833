package summary

import (
	"context"
	"sync"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, userID string) (*domain.UserSettings, error)

	calls struct {
		GetOrCreate []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockGetOrCreate sync.RWMutex
}

func (mock *settingsRepoMock) GetOrCreate(ctx context.Context, userID string) (*domain.UserSettings, error) {
	if mock.GetOrCreateFunc == nil {
		panic("settingsRepoMock.GetOrCreateFunc: method is nil but settingsRepo.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, userID)
}

func (mock *settingsRepoMock) GetOrCreateCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGetOrCreate.RLock()
	calls := mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}
