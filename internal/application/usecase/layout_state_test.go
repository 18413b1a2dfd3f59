package usecase_test

import (
	"context"
	"errors"
	"testing"

	mock_port "github.com/bnema/dockpane/internal/application/port/mocks"
	"github.com/bnema/dockpane/internal/application/usecase"
	"github.com/bnema/dockpane/internal/domain/entity"
	repomocks "github.com/bnema/dockpane/internal/domain/repository/mocks"
	"github.com/bnema/dockpane/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testContext() context.Context {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel("disabled")
	return logging.WithContext(context.Background(), logging.New(cfg))
}

const blob = `{"version":1,"theme":"dark","pane_weights":{"a":0.2,"b":0.6},"container_weights":{"root":1},"detached":["a"]}`

func TestLayoutStateUseCase_Snapshot_StoresEngineState(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	engine := mock_port.NewMockLayoutEngine(ctrl)
	engine.EXPECT().SaveState().Return([]byte(blob), nil)

	repo := repomocks.NewMockLayoutStateRepository(t)
	repo.EXPECT().Save(mock.Anything, "work", mock.AnythingOfType("*entity.LayoutState")).
		Run(func(_ context.Context, _ string, state *entity.LayoutState) {
			require.Equal(t, entity.LayoutStateVersion, state.Version)
			require.Equal(t, []string{"a"}, state.Detached)
			require.InDelta(t, 0.6, state.PaneWeights["b"], 1e-9)
		}).
		Return(nil)

	uc := usecase.NewLayoutStateUseCase(repo)
	state, err := uc.Snapshot(ctx, "work", engine)
	require.NoError(t, err)
	assert.Equal(t, "dark", state.Theme)
}

func TestLayoutStateUseCase_Snapshot_EngineFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock_port.NewMockLayoutEngine(ctrl)
	engine.EXPECT().SaveState().Return(nil, errors.New("boom"))

	repo := repomocks.NewMockLayoutStateRepository(t)

	_, err := usecase.NewLayoutStateUseCase(repo).Snapshot(testContext(), "work", engine)
	require.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestLayoutStateUseCase_Snapshot_RequiresName(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock_port.NewMockLayoutEngine(ctrl)
	repo := repomocks.NewMockLayoutStateRepository(t)

	_, err := usecase.NewLayoutStateUseCase(repo).Snapshot(testContext(), "", engine)
	assert.Error(t, err)
}

func TestLayoutStateUseCase_Apply_RestoresBlob(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	state, err := entity.ParseLayoutState([]byte(blob))
	require.NoError(t, err)

	repo := repomocks.NewMockLayoutStateRepository(t)
	repo.EXPECT().Get(mock.Anything, "work").Return(&entity.SavedLayout{Name: "work", State: state}, nil)

	engine := mock_port.NewMockLayoutEngine(ctrl)
	engine.EXPECT().RestoreState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data []byte) error {
			assert.JSONEq(t, blob, string(data))
			return nil
		})

	got, err := usecase.NewLayoutStateUseCase(repo).Apply(ctx, "work", engine)
	require.NoError(t, err)
	assert.Same(t, state, got)
}

func TestLayoutStateUseCase_Apply_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock_port.NewMockLayoutEngine(ctrl)

	repo := repomocks.NewMockLayoutStateRepository(t)
	repo.EXPECT().Get(mock.Anything, "missing").Return(nil, nil)

	_, err := usecase.NewLayoutStateUseCase(repo).Apply(testContext(), "missing", engine)
	assert.ErrorIs(t, err, usecase.ErrLayoutNotFound)
}

func TestLayoutStateUseCase_Apply_EngineErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	restoreErr := errors.New("unknown theme")

	state, err := entity.ParseLayoutState([]byte(blob))
	require.NoError(t, err)

	repo := repomocks.NewMockLayoutStateRepository(t)
	repo.EXPECT().Get(mock.Anything, "work").Return(&entity.SavedLayout{Name: "work", State: state}, nil)

	engine := mock_port.NewMockLayoutEngine(ctrl)
	engine.EXPECT().RestoreState(gomock.Any(), gomock.Any()).Return(restoreErr)

	got, err := usecase.NewLayoutStateUseCase(repo).Apply(testContext(), "work", engine)
	assert.ErrorIs(t, err, restoreErr)
	assert.Same(t, state, got, "stored state is returned with a partial restore")
}

func TestLayoutStateUseCase_Delete(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutStateRepository(t)
	repo.EXPECT().Get(mock.Anything, "work").Return(&entity.SavedLayout{Name: "work", State: entity.NewLayoutState()}, nil)
	repo.EXPECT().Delete(mock.Anything, "work").Return(nil)
	repo.EXPECT().Get(mock.Anything, "gone").Return(nil, nil)

	uc := usecase.NewLayoutStateUseCase(repo)
	require.NoError(t, uc.Delete(ctx, "work"))
	assert.ErrorIs(t, uc.Delete(ctx, "gone"), usecase.ErrLayoutNotFound)
}
