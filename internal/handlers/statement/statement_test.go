package statement

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/vcarvalho/fiado/internal/apperrors"
	"github.com/vcarvalho/fiado/internal/service/statementservice"
)

func NewMock(t *testing.T, databasePath string) (*StatementHandler, *MockService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := NewMockService(ctrl)
	handler := New(service, databasePath)
	return handler, service
}

func newRequest(target string, id int64) *http.Request {
	req := httptest.NewRequest("GET", target, nil)
	if id > 0 {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", fmt.Sprintf("%d", id))
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func TestDownloadHandler(t *testing.T) {
	handler, service := NewMock(t, "/tmp/fiado.db")

	t.Run("Streams the PDF as an attachment", func(t *testing.T) {
		service.EXPECT().Export(gomock.Any(), int64(1)).
			Return(&statementservice.Statement{
				CustomerName: "Maria Silva",
				PDF:          []byte("%PDF-1.3 fake"),
			}, nil)

		rr := httptest.NewRecorder()
		handler.Download(rr, newRequest("/baixar/1", 1))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="resumo_Maria_Silva.pdf"`, rr.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF-1.3 fake", rr.Body.String())
	})

	t.Run("Unknown customer", func(t *testing.T) {
		service.EXPECT().Export(gomock.Any(), int64(9)).
			Return(nil, fmt.Errorf("customer 9: %w", apperrors.ErrNotFound))

		rr := httptest.NewRecorder()
		handler.Download(rr, newRequest("/baixar/9", 9))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestBackupHandler(t *testing.T) {
	t.Run("Streams the database file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fiado.db")
		require.NoError(t, os.WriteFile(path, []byte("sqlite bytes"), 0o600))

		handler, _ := NewMock(t, path)

		rr := httptest.NewRecorder()
		handler.Backup(rr, newRequest("/backup", 0))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/octet-stream", rr.Header().Get("Content-Type"))
		assert.Equal(t, "sqlite bytes", rr.Body.String())
	})

	t.Run("Missing file is informational", func(t *testing.T) {
		handler, _ := NewMock(t, filepath.Join(t.TempDir(), "missing.db"))

		rr := httptest.NewRecorder()
		handler.Backup(rr, newRequest("/backup", 0))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
