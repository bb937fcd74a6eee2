package statement

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vcarvalho/fiado/internal/apperrors"
	"github.com/vcarvalho/fiado/internal/service/statementservice"
	"github.com/vcarvalho/fiado/pkg/utils"
)

type Service interface {
	Export(ctx context.Context, customerID int64) (*statementservice.Statement, error)
}

type StatementHandler struct {
	statementService Service
	databasePath     string
}

func New(statementService Service, databasePath string) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
		databasePath:     databasePath,
	}
}

// Download godoc
//
//	@Summary		Download statement
//	@Description	Render the customer's history as a PDF and stream it as an attachment
//	@Tags			Statements
//	@Produce		application/pdf
//	@Param			id	path	int	true	"Customer id"
//	@Success		200
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/baixar/{id} [get]
func (h *StatementHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Cliente não encontrado")
		return
	}

	statement, err := h.statementService.Export(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Cliente não encontrado")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	filename := fmt.Sprintf("resumo_%s.pdf", strings.ReplaceAll(statement.CustomerName, " ", "_"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(statement.PDF); err != nil {
		zap.L().Error("can't stream statement", zap.Error(err))
	}
}

// Backup godoc
//
//	@Summary		Download database backup
//	@Description	Stream the raw sqlite database file
//	@Tags			Statements
//	@Produce		application/octet-stream
//	@Success		200
//	@Failure		404	{object}	utils.Response	"No database file yet"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/backup [get]
func (h *StatementHandler) Backup(w http.ResponseWriter, r *http.Request) {
	f, err := os.Open(h.databasePath)
	if err != nil {
		if os.IsNotExist(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Nenhum banco de dados para backup")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="fiado_backup.db"`)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		zap.L().Error("can't stream backup", zap.Error(err))
	}
}
