package families

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alphashop/articles-service/app/api"
	"github.com/alphashop/articles-service/models"
)

type MockFamilyRepo struct {
	Families []models.AssortmentFamily
	ListErr  error
}

func (m *MockFamilyRepo) ListFamilies() ([]models.AssortmentFamily, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Families, nil
}

func TestHandleGetAll(t *testing.T) {
	testCases := []struct {
		name               string
		repoSetup          func() *MockFamilyRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "families in description order",
			repoSetup: func() *MockFamilyRepo {
				return &MockFamilyRepo{Families: []models.AssortmentFamily{
					{ID: 2, Description: "Dairy"},
					{ID: 1, Description: "Frozen"},
				}}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []FamilyResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 2)
				assert.Equal(t, "Dairy", resp[0].Description)
				assert.Equal(t, 1, resp[1].ID)
			},
		},
		{
			name: "empty list",
			repoSetup: func() *MockFamilyRepo {
				return &MockFamilyRepo{}
			},
			expectedStatusCode: http.StatusNotFound,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var e api.Error
				err := json.NewDecoder(rec.Body).Decode(&e)
				assert.NoError(t, err)
				assert.Equal(t, api.CodeNotFound, e.Code)
			},
		},
		{
			name: "repository error",
			repoSetup: func() *MockFamilyRepo {
				return &MockFamilyRepo{ListErr: errors.New("db down")}
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewFamiliesHandler(tc.repoSetup())
			req := httptest.NewRequest("GET", "/api/families", nil)
			rec := httptest.NewRecorder()

			handler.HandleGetAll(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}
