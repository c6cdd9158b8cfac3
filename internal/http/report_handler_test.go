package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"holiday-reportbot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const testAPIKey = "secret-key"

func setupReportRouter(t *testing.T) *Router {
	t.Helper()
	svc, _ := setupReportService(t, 11)
	reply := svc.HandleMessage(context.Background(), domain.MessageEvent{
		Kind:        domain.MessageEventText,
		DisplayName: "001-王大明",
		Text:        "回報\n圖書館",
	})
	require.False(t, reply.Empty())

	r := NewRouter(zap.NewNop())
	r.RegisterReportRoutes(NewReportHandler(svc, zap.NewNop()), []string{testAPIKey})
	return r
}

func adminGet(r http.Handler, target, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if key != "" {
		req.Header.Set(headerAPIKey, key)
	}
	w := httptest.NewRecorder()
	WithRequestLog(r, zap.NewNop()).ServeHTTP(w, req)
	return w
}

func TestSummaryHandler(t *testing.T) {
	r := setupReportRouter(t)

	w := adminGet(r, "/api/v1/reports/summary?type=1&class=1&date=2024-05-01", testAPIKey)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(headerRequestID))

	var body struct {
		Code   int `json:"code"`
		Result struct {
			Count int    `json:"count"`
			Date  string `json:"date"`
			Text  string `json:"text"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ResultSuccess, body.Code)
	assert.Equal(t, 1, body.Result.Count)
	assert.Equal(t, "2024-05-01", body.Result.Date)
	assert.Equal(t, "1000-1300上午回報\n\n姓名：王大明\n學號：12001\n手機：0912000001\n地點：圖書館\n\n", body.Result.Text)
}

func TestSummaryHandler_RequiresAPIKey(t *testing.T) {
	r := setupReportRouter(t)

	w := adminGet(r, "/api/v1/reports/summary?type=1&class=1", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = adminGet(r, "/api/v1/reports/summary?type=1&class=1", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSummaryHandler_BadQuery(t *testing.T) {
	r := setupReportRouter(t)

	for _, target := range []string{
		"/api/v1/reports/summary?type=9&class=1",
		"/api/v1/reports/summary?type=1",
		"/api/v1/reports/summary?type=1&class=x",
		"/api/v1/reports/summary?type=1&class=1&date=05/01",
		"/api/v1/reports/summary?type=1&class=1&style=fancy",
	} {
		w := adminGet(r, target, testAPIKey)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)

		var body Result[any]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, ResultError, body.Code)
	}
}

func TestExportHandler(t *testing.T) {
	r := setupReportRouter(t)

	w := adminGet(r, "/api/v1/reports/export?type=1&class=1&date=2024-05-01", testAPIKey)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "report-morning-class1-20240501.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("上午回報")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ReportExportHeader, rows[0])
	assert.Equal(t, "12001", rows[1][0])
	assert.Equal(t, "王大明", rows[1][1])
	assert.Equal(t, "圖書館", rows[1][3])
	assert.Equal(t, "無", rows[1][6])
	assert.Equal(t, "11:00:00", rows[1][8])
}

func TestListReportTypesHandler(t *testing.T) {
	r := setupReportRouter(t)

	w := adminGet(r, "/api/v1/report-types", testAPIKey)

	require.Equal(t, http.StatusOK, w.Code)
	var body Result[[]domain.ReportType]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Result, 5)
}
