package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/repin-dev/repin/internal/adapters/telemetry"
	"github.com/repin-dev/repin/internal/app"
	"github.com/repin-dev/repin/internal/core/domain"
	"github.com/repin-dev/repin/internal/core/ports/mocks"
	"github.com/repin-dev/repin/internal/engine/lint"
	"github.com/repin-dev/repin/internal/engine/resolve"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestComponents(ctrl *gomock.Controller, loader *mocks.MockManifestLoader, logger *mocks.MockLogger) *app.Components {
	settingsLoader := mocks.NewMockSettingsLoader(ctrl)
	settingsLoader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil).AnyTimes()

	application := app.New(
		loader,
		settingsLoader,
		mocks.NewMockLockStores(ctrl),
		lint.New(logger),
		resolve.New(mocks.NewMockPackageIndex(ctrl), telemetry.NewNoOp(), logger, clockwork.NewFakeClock()),
		logger,
	)

	return &app.Components{App: application, Logger: logger}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	components := newTestComponents(ctrl, mockLoader, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	// Stub Logger Error
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	// Simulate the manifest load failing during execution.
	mockLoader.EXPECT().Load(gomock.Any()).Return(nil, nil, errors.New("load failed")).AnyTimes()
	mockLoader.EXPECT().Discover(gomock.Any()).Return("requirements.txt", nil).AnyTimes()

	components := newTestComponents(ctrl, mockLoader, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"lint"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blockCh := make(chan struct{})

	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLoader.EXPECT().Discover(gomock.Any()).Return("requirements.txt", nil).AnyTimes()
	mockLoader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (*domain.Manifest, []domain.ParseIssue, error) {
		select {
		case <-blockCh:
			return nil, nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, nil, errors.New("timeout in mock")
		}
	}).AnyTimes()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	components := newTestComponents(ctrl, mockLoader, mockLogger)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"lint"}, io.Discard, func(context.Context) (*app.Components, func(), error) {
			return components, func() {}, nil
		})
	}()

	// Wait a bit to ensure run() reaches Load()
	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
