package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

var _ settingsService = &settingsServiceMock{}

type settingsServiceMock struct {
	GetFunc   func(ctx context.Context) (*domain.UserSettings, error)
	PatchFunc func(ctx context.Context, patch domain.SettingsPatch) (*domain.UserSettings, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Patch []struct {
			Ctx   context.Context
			Patch domain.SettingsPatch
		}
	}
	lockGet   sync.RWMutex
	lockPatch sync.RWMutex
}

func (mock *settingsServiceMock) Get(ctx context.Context) (*domain.UserSettings, error) {
	if mock.GetFunc == nil {
		panic("settingsServiceMock.GetFunc: method is nil but settingsService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *settingsServiceMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *settingsServiceMock) Patch(ctx context.Context, patch domain.SettingsPatch) (*domain.UserSettings, error) {
	if mock.PatchFunc == nil {
		panic("settingsServiceMock.PatchFunc: method is nil but settingsService.Patch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Patch domain.SettingsPatch
	}{
		Ctx:   ctx,
		Patch: patch,
	}
	mock.lockPatch.Lock()
	mock.calls.Patch = append(mock.calls.Patch, callInfo)
	mock.lockPatch.Unlock()
	return mock.PatchFunc(ctx, patch)
}

func (mock *settingsServiceMock) PatchCalls() []struct {
	Ctx   context.Context
	Patch domain.SettingsPatch
} {
	mock.lockPatch.RLock()
	calls := mock.calls.Patch
	mock.lockPatch.RUnlock()
	return calls
}
