package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Yordan777/voxclone/internal/backend"
	"github.com/Yordan777/voxclone/internal/config"
	"github.com/Yordan777/voxclone/internal/model"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Provider() backend.Provider {
	args := m.Called()
	return args.Get(0).(backend.Provider)
}

func (m *MockBackend) Synthesize(ctx context.Context, req *backend.Request) (*backend.Response, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*backend.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBackend) Close() error {
	args := m.Called()
	return args.Error(0)
}

func newLoadedInstance(id, path string) *model.Instance {
	instance := model.NewInstance(&config.ModelConfig{}, id, path)
	instance.SetStatus(model.StatusLoaded)
	return instance
}

func TestSynthesize_BackendNotFound(t *testing.T) {
	svc := NewTTS(backend.NewRegistry(), model.NewRegistry())

	_, err := svc.Synthesize(context.Background(), "xtts", "xtts-v2", &backend.Request{})
	assert.ErrorIs(t, err, backend.ErrBackendNotFound)
}

func TestSynthesize_ModelNotFound(t *testing.T) {
	backends := backend.NewRegistry()
	mockBackend := new(MockBackend)
	mockBackend.On("Provider").Return(backend.ProviderXTTS)
	backends.Register(mockBackend)

	svc := NewTTS(backends, model.NewRegistry())

	_, err := svc.Synthesize(context.Background(), backend.ProviderXTTS, "missing", &backend.Request{})
	assert.ErrorIs(t, err, model.ErrModelNotFound)
}

func TestSynthesize_StampsModelPath(t *testing.T) {
	backends := backend.NewRegistry()
	mockBackend := new(MockBackend)
	mockBackend.On("Provider").Return(backend.ProviderXTTS)

	want := &backend.Response{Audio: bytes.NewReader([]byte("wav"))}
	mockBackend.On("Synthesize", mock.Anything, mock.MatchedBy(func(req *backend.Request) bool {
		return req.ModelPath == "/models/xtts-v2" && req.Text == "Hello world"
	})).Return(want, nil)

	backends.Register(mockBackend)

	models := model.NewRegistry()
	models.Set(newLoadedInstance("xtts-v2", "/models/xtts-v2"))

	svc := NewTTS(backends, models)

	resp, err := svc.Synthesize(context.Background(), backend.ProviderXTTS, "xtts-v2", &backend.Request{
		Text:     "Hello world",
		Language: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, want, resp)

	mockBackend.AssertExpectations(t)
}

func TestSynthesize_BackendErrorPropagates(t *testing.T) {
	backends := backend.NewRegistry()
	mockBackend := new(MockBackend)
	mockBackend.On("Provider").Return(backend.ProviderXTTS)
	mockBackend.On("Synthesize", mock.Anything, mock.Anything).Return(nil, errors.New("unsupported language"))
	backends.Register(mockBackend)

	models := model.NewRegistry()
	models.Set(newLoadedInstance("xtts-v2", "/models/xtts-v2"))

	svc := NewTTS(backends, models)

	_, err := svc.Synthesize(context.Background(), backend.ProviderXTTS, "xtts-v2", &backend.Request{})
	assert.EqualError(t, err, "unsupported language")
}

func TestReady(t *testing.T) {
	backends := backend.NewRegistry()
	models := model.NewRegistry()
	svc := NewTTS(backends, models)

	assert.False(t, svc.Ready(backend.ProviderXTTS, "xtts-v2"), "nothing registered")

	mockBackend := new(MockBackend)
	mockBackend.On("Provider").Return(backend.ProviderXTTS)
	backends.Register(mockBackend)

	assert.False(t, svc.Ready(backend.ProviderXTTS, "xtts-v2"), "model missing")

	instance := model.NewInstance(&config.ModelConfig{}, "xtts-v2", "/models/xtts-v2")
	models.Set(instance)
	assert.False(t, svc.Ready(backend.ProviderXTTS, "xtts-v2"), "model not loaded")

	instance.SetStatus(model.StatusLoaded)
	assert.True(t, svc.Ready(backend.ProviderXTTS, "xtts-v2"))
}
