package selectOption

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaceBooker/internal/http-server/handlers/wizard/selectOption/mocks"
	"spaceBooker/internal/lib/logger/handlers/slogdiscard"
	"spaceBooker/internal/models"
	"spaceBooker/internal/session"
	"spaceBooker/internal/wizard"
	"spaceBooker/internal/wizard/wizardtest"
)

func TestSelectOptionHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	atSeatClass := func(t *testing.T) *wizard.Wizard {
		w := wizardtest.New(t, "s-1", 1)
		require.NoError(t, w.SelectDestination(context.Background(), 1))
		require.NoError(t, w.Advance(context.Background()))
		return w
	}

	testCases := []struct {
		name           string
		kind           string
		requestBody    string
		wizard         func(t *testing.T) *wizard.Wizard
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Destination",
			kind:        KindDestination,
			requestBody: `{"option_id": 1}`,
			wizard: func(t *testing.T) *wizard.Wizard {
				return wizardtest.New(t, "s-1", 1)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp SelectResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				require.NotNil(t, resp.Wizard.Draft.Destination)
				assert.Equal(t, "Lunar Gateway Station", resp.Wizard.Draft.Destination.Name)
				assert.Len(t, resp.Wizard.SeatClasses, 3)
				assert.Len(t, resp.Wizard.Accommodations, 3)
				assert.True(t, resp.Wizard.CanAdvance)
			},
		},
		{
			name:           "Seat class",
			kind:           KindSeatClass,
			requestBody:    `{"option_id": 2}`,
			wizard:         atSeatClass,
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp SelectResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				require.NotNil(t, resp.Wizard.Draft.SeatClass)
				assert.Equal(t, models.Money(2100000), resp.Wizard.Draft.SeatClass.Price)
				assert.Equal(t, models.Money(2100000), resp.Wizard.Draft.TotalPrice)
			},
		},
		{
			name:           "Accommodation at the wrong step",
			kind:           KindAccommodation,
			requestBody:    `{"option_id": 2}`,
			wizard:         atSeatClass,
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"operation is not allowed at the current step"}`,
		},
		{
			name:           "Unknown option",
			kind:           KindSeatClass,
			requestBody:    `{"option_id": 99}`,
			wizard:         atSeatClass,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"option is not available"}`,
		},
		{
			name:           "Missing option_id",
			kind:           KindDestination,
			requestBody:    `{}`,
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "OptionID")
			},
		},
		{
			name:           "Invalid JSON",
			kind:           KindDestination,
			requestBody:    `{"option_id":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Unknown kind",
			kind:           "spacesuit",
			requestBody:    `{"option_id": 1}`,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"unknown selection kind"}`,
		},
		{
			name:           "Unknown session",
			kind:           KindDestination,
			requestBody:    `{"option_id": 1}`,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"wizard session not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewWizardGetter(t)
			switch {
			case tc.wizard != nil:
				getter.On("Get", "s-1").Return(tc.wizard(t), nil)
			case tc.name == "Unknown session":
				getter.On("Get", "s-1").Return(nil, session.ErrNotFound)
			}

			r := chi.NewRouter()
			r.Post("/wizards/{id}/{kind}", New(logger, getter))

			req, err := http.NewRequest(http.MethodPost, "/wizards/s-1/"+tc.kind, bytes.NewReader([]byte(tc.requestBody)))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
