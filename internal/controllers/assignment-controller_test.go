package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quotation-system/internal/dto"
	"quotation-system/internal/services"
)

// fakeBoardService моделирует доску, которая пуста до первой загрузки.
type fakeBoardService struct {
	loaded      bool
	loadCalls   int
	ensureCalls int
}

var _ services.AssignmentBoardServiceInterface = (*fakeBoardService)(nil)

func (f *fakeBoardService) Load(ctx context.Context) error {
	f.loadCalls++
	f.loaded = true
	return nil
}

func (f *fakeBoardService) EnsureLoaded(ctx context.Context) error {
	f.ensureCalls++
	if f.loaded {
		return nil
	}
	return f.Load(ctx)
}

func (f *fakeBoardService) Refresh(ctx context.Context) error { return f.Load(ctx) }

func (f *fakeBoardService) SetFilters(patch dto.BoardFilterDTO) {}

func (f *fakeBoardService) Board() dto.AssignmentBoardDTO {
	if !f.loaded {
		return dto.AssignmentBoardDTO{}
	}
	return dto.AssignmentBoardDTO{
		UnassignedItems: []dto.ItemDTO{{ID: 1, Name: "Кронштейн стальной"}},
		Workloads: []dto.UserWorkloadDTO{
			{User: dto.ShortUserDTO{ID: 1, Fio: "Петров Иван"}, Total: 0},
		},
	}
}

func (f *fakeBoardService) Workloads() []dto.UserWorkloadDTO {
	return f.Board().Workloads
}

func (f *fakeBoardService) Assign(ctx context.Context, payload dto.AssignItemsDTO) error {
	return nil
}

func newBoardRequest(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetBoard_FirstRequestLoadsWorkingSet(t *testing.T) {
	fake := &fakeBoardService{}
	ctrl := NewAssignmentController(fake, zap.NewNop())

	ctx, rec := newBoardRequest(t, "/api/board")
	require.NoError(t, ctrl.GetBoard(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, fake.loadCalls, "первый запрос должен загрузить рабочий набор")
	assert.Contains(t, rec.Body.String(), "Кронштейн стальной",
		"первый ответ не должен быть пустым при заполненном хранилище")

	// Повторный запрос без reload не перечитывает данные.
	ctx, _ = newBoardRequest(t, "/api/board")
	require.NoError(t, ctrl.GetBoard(ctx))
	assert.Equal(t, 1, fake.loadCalls)
}

func TestGetBoard_ReloadForcesFreshLoad(t *testing.T) {
	fake := &fakeBoardService{loaded: true}
	ctrl := NewAssignmentController(fake, zap.NewNop())

	ctx, rec := newBoardRequest(t, "/api/board?reload=true")
	require.NoError(t, ctrl.GetBoard(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, fake.loadCalls, "reload=true перечитывает даже загруженный кадр")
}

func TestGetWorkloads_FirstRequestLoadsWorkingSet(t *testing.T) {
	fake := &fakeBoardService{}
	ctrl := NewAssignmentController(fake, zap.NewNop())

	ctx, rec := newBoardRequest(t, "/api/board/workloads")
	require.NoError(t, ctrl.GetWorkloads(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, fake.loadCalls)
	assert.Contains(t, rec.Body.String(), "Петров Иван")
}
