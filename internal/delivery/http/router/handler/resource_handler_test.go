package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stockroom/internal/delivery/http/middleware"
	"stockroom/internal/delivery/http/validator"
	"stockroom/internal/domain/entity"
	"stockroom/internal/domain/repository"
	mockRepo "stockroom/internal/mocks/repository"
	"stockroom/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// itemHandlerFixtures wires the handler to a real resource service over a
// mocked repository, with echo's validator and error handler in place.
type itemHandlerFixtures struct {
	echo     *echo.Echo
	handler  *ResourceHandler[entity.Item]
	itemRepo *mockRepo.MockRecordRepository[entity.Item]
}

func createTestItemHandler(t *testing.T) itemHandlerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	itemRepo := mockRepo.NewMockRecordRepository[entity.Item](t)
	service := impl.NewItemService(itemRepo, logger)
	h := NewItemHandler(service, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return itemHandlerFixtures{
		echo:     e,
		handler:  h,
		itemRepo: itemRepo,
	}
}

const validItemJSON = `{
	"productType": "Dairy",
	"productBrand": "Amul",
	"productName": "Butter",
	"weightPerUnit": 500,
	"pricePerUnit": 48,
	"sellingPrice": 52,
	"expirationDate": "2026-11-30"
}`

func (fx itemHandlerFixtures) request(method, target, body string) (*httptest.ResponseRecorder, echo.Context) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return rec, fx.echo.NewContext(req, rec)
}

func TestItemHandler_ListAll(t *testing.T) {
	fx := createTestItemHandler(t)

	fx.itemRepo.EXPECT().
		FindAll(mock.Anything).
		Return([]entity.Item{}, nil)

	rec, c := fx.request(http.MethodGet, "/items", "")

	require.NoError(t, fx.handler.ListAll(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestItemHandler_Create(t *testing.T) {
	fx := createTestItemHandler(t)

	fx.itemRepo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("*entity.Item")).
		Return("68b1f0c2a3d4e5f60718293a", nil)

	rec, c := fx.request(http.MethodPost, "/items", validItemJSON)

	require.NoError(t, fx.handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"68b1f0c2a3d4e5f60718293a"`)
}

func TestItemHandler_Create_MissingFields(t *testing.T) {
	fx := createTestItemHandler(t)

	payload := `{"productType": "Dairy", "productName": "Butter"}`
	rec, c := fx.request(http.MethodPost, "/items", payload)

	err := fx.handler.Create(c)
	require.Error(t, err)
	fx.echo.HTTPErrorHandler(err, c)

	// No persistence attempt on an invalid payload; the mock would fail the
	// test on an unexpected Insert call.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "productBrand")
	assert.Contains(t, body, "weightPerUnit")
	assert.Contains(t, body, "pricePerUnit")
	assert.Contains(t, body, "sellingPrice")
	assert.Contains(t, body, "expirationDate")
}

func TestItemHandler_Create_NonNumericWeight(t *testing.T) {
	fx := createTestItemHandler(t)

	payload := strings.Replace(validItemJSON, "500", `"heavy"`, 1)
	rec, c := fx.request(http.MethodPost, "/items", payload)

	err := fx.handler.Create(c)
	require.Error(t, err)
	fx.echo.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "weightPerUnit")
}

func TestItemHandler_Create_MalformedDate(t *testing.T) {
	fx := createTestItemHandler(t)

	payload := strings.Replace(validItemJSON, "2026-11-30", "soon", 1)
	rec, c := fx.request(http.MethodPost, "/items", payload)

	err := fx.handler.Create(c)
	require.Error(t, err)
	fx.echo.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "expirationDate")
}

func TestItemHandler_GetByID_NotFound(t *testing.T) {
	fx := createTestItemHandler(t)

	fx.itemRepo.EXPECT().
		FindByID(mock.Anything, "68b1f0c2a3d4e5f60718293a").
		Return(nil, repository.ErrRecordNotFound)

	rec, c := fx.request(http.MethodGet, "/items/68b1f0c2a3d4e5f60718293a", "")
	c.SetParamNames("id")
	c.SetParamValues("68b1f0c2a3d4e5f60718293a")

	err := fx.handler.GetByID(c)
	require.Error(t, err)
	fx.echo.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ITEM_NOT_FOUND")
}

func TestItemHandler_GetByID_DatabaseFailureHidesInternals(t *testing.T) {
	fx := createTestItemHandler(t)

	fx.itemRepo.EXPECT().
		FindByID(mock.Anything, "68b1f0c2a3d4e5f60718293a").
		Return(nil, errors.New("connection(localhost:27017) socket was unexpectedly closed"))

	rec, c := fx.request(http.MethodGet, "/items/68b1f0c2a3d4e5f60718293a", "")
	c.SetParamNames("id")
	c.SetParamValues("68b1f0c2a3d4e5f60718293a")

	err := fx.handler.GetByID(c)
	require.Error(t, err)
	fx.echo.HTTPErrorHandler(err, c)

	// The response body carries the generic message only; driver error text
	// and host details never reach the client.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "An internal server error occurred.")
	assert.NotContains(t, body, "localhost:27017")
	assert.NotContains(t, body, "socket")
}

func TestItemHandler_GetByID_MalformedID(t *testing.T) {
	fx := createTestItemHandler(t)

	fx.itemRepo.EXPECT().
		FindByID(mock.Anything, "banana").
		Return(nil, repository.ErrInvalidRecordID)

	rec, c := fx.request(http.MethodGet, "/items/banana", "")
	c.SetParamNames("id")
	c.SetParamValues("banana")

	err := fx.handler.GetByID(c)
	require.Error(t, err)
	fx.echo.HTTPErrorHandler(err, c)

	// A malformed identifier reads as not found, not as a client syntax error.
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItemHandler_Delete(t *testing.T) {
	fx := createTestItemHandler(t)

	fx.itemRepo.EXPECT().
		Delete(mock.Anything, "68b1f0c2a3d4e5f60718293a").
		Return(nil)

	rec, c := fx.request(http.MethodDelete, "/items/68b1f0c2a3d4e5f60718293a", "")
	c.SetParamNames("id")
	c.SetParamValues("68b1f0c2a3d4e5f60718293a")

	require.NoError(t, fx.handler.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
