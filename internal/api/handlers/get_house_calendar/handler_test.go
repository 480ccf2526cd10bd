package get_house_calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	getHouseCalendar "github.com/m04kA/SMC-ResortService/internal/usecase/get_house_calendar"
	"github.com/m04kA/SMC-ResortService/pkg/logger"
)

type useCaseMock struct {
	mock.Mock
}

func (m *useCaseMock) Execute(ctx context.Context, req *getHouseCalendar.Request) (*getHouseCalendar.Response, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*getHouseCalendar.Response)
	return res, args.Error(1)
}

func calendarRequest(query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/houses/2/calendar"+query, nil)
	return mux.SetURLVars(req, map[string]string{"houseId": "2"})
}

func TestHandler_Handle(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &useCaseMock{}
		uc.On("Execute", mock.Anything, &getHouseCalendar.Request{HouseID: 2, Month: "2025-11"}).
			Return(&getHouseCalendar.Response{
				HouseID: 2,
				Month:   "2025-11",
				Days:    []getHouseCalendar.Day{{Date: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), Weekend: true, Price: 12500}},
			}, nil)

		rec := httptest.NewRecorder()
		NewHandler(uc, logger.Nop()).Handle(rec, calendarRequest("?month=2025-11"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"date":"2025-11-01"`)
	})

	t.Run("month required", func(t *testing.T) {
		uc := &useCaseMock{}
		rec := httptest.NewRecorder()
		NewHandler(uc, logger.Nop()).Handle(rec, calendarRequest(""))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("house not found", func(t *testing.T) {
		uc := &useCaseMock{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getHouseCalendar.ErrHouseNotFound)

		rec := httptest.NewRecorder()
		NewHandler(uc, logger.Nop()).Handle(rec, calendarRequest("?month=2025-11"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
