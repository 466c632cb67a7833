package settings

import (
	"context"
	"sync"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, userID string) (*domain.UserSettings, error)
	UpdateFunc      func(ctx context.Context, userID string, patch domain.SettingsPatch) (*domain.UserSettings, error)

	calls struct {
		GetOrCreate []struct {
			Ctx    context.Context
			UserID string
		}
		Update []struct {
			Ctx    context.Context
			UserID string
			Patch  domain.SettingsPatch
		}
	}
	lockGetOrCreate sync.RWMutex
	lockUpdate      sync.RWMutex
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

func (mock *settingsRepoMock) Update(ctx context.Context, userID string, patch domain.SettingsPatch) (*domain.UserSettings, error) {
	if mock.UpdateFunc == nil {
		panic("settingsRepoMock.UpdateFunc: method is nil but settingsRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Patch  domain.SettingsPatch
	}{Ctx: ctx, UserID: userID, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, patch)
}

func (mock *settingsRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID string
	Patch  domain.SettingsPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
