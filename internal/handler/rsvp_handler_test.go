package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wedding-rsvp/internal/handler"
	"wedding-rsvp/internal/model"
	"wedding-rsvp/internal/service/mocks"
	apperrors "wedding-rsvp/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRSVPTestRouter(mockService *mocks.RSVPServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	rsvpHandler := handler.NewRSVPHandler(mockService)
	rsvpHandler.RegisterRoutes(router)
	return router
}

func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sampleRSVP() *model.RSVP {
	return &model.RSVP{
		ID:         1,
		Name:       "Alex",
		Email:      "a@x.com",
		Attendance: model.AttendanceYes,
		GuestCount: 1,
	}
}

func TestCreateRSVP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).Return(sampleRSVP(), nil).Once()

		body := map[string]interface{}{
			"name":       "Alex",
			"email":      "a@x.com",
			"attendance": "yes",
		}
		req := createJSONHTTPRequest("POST", "/rsvp", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var created model.RSVP
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, model.AttendanceYes, created.Attendance)
		assert.Equal(t, 1, created.GuestCount)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - missing email", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		body := map[string]interface{}{
			"name":       "Alex",
			"attendance": "yes",
		}
		req := createJSONHTTPRequest("POST", "/rsvp", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp, "error")
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - invalid attendance", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		body := map[string]interface{}{
			"name":       "Alex",
			"email":      "a@x.com",
			"attendance": "definitely",
		}
		req := createJSONHTTPRequest("POST", "/rsvp", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "yes, no, or maybe")
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - store error", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

		body := map[string]interface{}{
			"name":       "Alex",
			"email":      "a@x.com",
			"attendance": "yes",
		}
		req := createJSONHTTPRequest("POST", "/rsvp", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		// internal detail must not leak
		assert.NotContains(t, w.Body.String(), "connection refused")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - malformed JSON", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		req, _ := http.NewRequest("POST", "/rsvp", bytes.NewBufferString(`{"invalid": json}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestListRSVPs(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		rsvps := []*model.RSVP{
			{ID: 2, Name: "Sam", Email: "s@x.com", Attendance: model.AttendanceNo, GuestCount: 1},
			{ID: 1, Name: "Alex", Email: "a@x.com", Attendance: model.AttendanceYes, GuestCount: 2},
		}
		mockService.On("List", mock.Anything).Return(rsvps, nil).Once()

		req := httptest.NewRequest("GET", "/rsvp", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []*model.RSVP
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[0].ID)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - store error", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		mockService.On("List", mock.Anything).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest("GET", "/rsvp", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestGetRSVP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		mockService.On("GetByID", mock.Anything, 123).Return(&model.RSVP{
			ID: 123, Name: "Alex", Email: "a@x.com", Attendance: model.AttendanceMaybe, GuestCount: 1,
		}, nil).Once()

		req := httptest.NewRequest("GET", "/rsvp/123", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidID", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		req := httptest.NewRequest("GET", "/rsvp/invalid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetByID")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		mockService.On("GetByID", mock.Anything, 99999).Return(nil, apperrors.ErrRSVPNotFound).Once()

		req := httptest.NewRequest("GET", "/rsvp/99999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestUpdateRSVP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		updated := sampleRSVP()
		updated.Attendance = model.AttendanceMaybe
		mockService.On("Update", mock.Anything, 1, mock.Anything).Return(updated, nil).Once()

		body := map[string]interface{}{"attendance": "maybe"}
		req := createJSONHTTPRequest("PUT", "/rsvp/1", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got model.RSVP
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, model.AttendanceMaybe, got.Attendance)
		assert.Equal(t, "Alex", got.Name)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidID", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		req := createJSONHTTPRequest("PUT", "/rsvp/abc", map[string]interface{}{"name": "X"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Update")
	})

	t.Run("InvalidAttendance", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		req := createJSONHTTPRequest("PUT", "/rsvp/1", map[string]interface{}{"attendance": "nope"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Update")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		mockService.On("Update", mock.Anything, 42, mock.Anything).Return(nil, apperrors.ErrRSVPNotFound).Once()

		req := createJSONHTTPRequest("PUT", "/rsvp/42", map[string]interface{}{"name": "X"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("EmptyBodyPassesThrough", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		mockService.On("Update", mock.Anything, 1, model.UpdateRSVPParams{}).Return(sampleRSVP(), nil).Once()

		req := createJSONHTTPRequest("PUT", "/rsvp/1", map[string]interface{}{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestDeleteRSVP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		mockService.On("Delete", mock.Anything, 1).Return(sampleRSVP(), nil).Once()

		req := httptest.NewRequest("DELETE", "/rsvp/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "deleted successfully")
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidID", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		req := httptest.NewRequest("DELETE", "/rsvp/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Delete")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		mockService.On("Delete", mock.Anything, 7).Return(nil, apperrors.ErrRSVPNotFound).Once()

		req := httptest.NewRequest("DELETE", "/rsvp/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestGetStats(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		stats := []*model.AttendanceStats{
			{Attendance: model.AttendanceYes, Count: 1, TotalGuests: 2},
			{Attendance: model.AttendanceNo, Count: 1, TotalGuests: 1},
		}
		mockService.On("Stats", mock.Anything).Return(stats, nil).Once()

		req := httptest.NewRequest("GET", "/stats", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []*model.AttendanceStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - store error", func(t *testing.T) {
		mockService := mocks.NewRSVPServiceMock()
		router := setupRSVPTestRouter(mockService)

		mockService.On("Stats", mock.Anything).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest("GET", "/stats", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockService.AssertExpectations(t)
	})
}
