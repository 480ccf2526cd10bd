package get_available_houses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	getAvailableHouses "github.com/m04kA/SMC-ResortService/internal/usecase/get_available_houses"
	"github.com/m04kA/SMC-ResortService/pkg/logger"
)

type useCaseMock struct {
	mock.Mock
}

func (m *useCaseMock) Execute(ctx context.Context, req *getAvailableHouses.Request) (*getAvailableHouses.Response, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*getAvailableHouses.Response)
	return res, args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	checkIn := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)

	t.Run("default guests and empty amenities", func(t *testing.T) {
		uc := &useCaseMock{}
		uc.On("Execute", mock.Anything, &getAvailableHouses.Request{CheckIn: checkIn, CheckOut: checkOut, Guests: domain.MinGuests}).
			Return(&getAvailableHouses.Response{
				CheckIn:  checkIn,
				CheckOut: checkOut,
				Nights:   2,
				Houses: []getAvailableHouses.AvailableHouse{
					{House: &domain.House{ID: 1, Name: "Лесной", Capacity: 4, BaseRate: 10000}, Quote: domain.StayQuote{Total: 22500}},
				},
			}, nil)

		rec := httptest.NewRecorder()
		NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/houses/available?checkIn=2025-10-10&checkOut=2025-10-12", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp SearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Houses, 1)
		assert.Equal(t, 22500.0, resp.Houses[0].TotalPrice)
		assert.NotNil(t, resp.Houses[0].Amenities)
		assert.Equal(t, 2, resp.Nights)
	})

	t.Run("missing dates", func(t *testing.T) {
		uc := &useCaseMock{}
		rec := httptest.NewRecorder()
		NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/houses/available?checkIn=2025-10-10", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid stay", func(t *testing.T) {
		uc := &useCaseMock{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getAvailableHouses.ErrInvalidStay)

		rec := httptest.NewRecorder()
		NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/houses/available?checkIn=2025-10-12&checkOut=2025-10-12", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
