package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clockwise/timetracker/internal/core/domain"
	"github.com/clockwise/timetracker/internal/core/ports"
)

const defaultRowsPerPage = 10

// RecordHandler handles HTTP requests for time-record operations.
type RecordHandler struct {
	service ports.RecordService
}

func NewRecordHandler(service ports.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// List handles GET /v1/records.
//
// @Summary      List time records
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Param        page           query     int     false  "0-based page index"
// @Param        rows_per_page  query     int     false  "page size"
// @Param        from           query     string  false  "inclusive lower date bound (YYYY-MM-DD)"
// @Param        to             query     string  false  "inclusive upper date bound (YYYY-MM-DD)"
// @Param        user           query     string  false  "owner filter (admin only)"
// @Success      200            {object}  listRecordsResponse
// @Failure      400            {object}  errorResponse
// @Failure      401            {object}  errorResponse
// @Router       /v1/records [get]
func (h *RecordHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	page, err := queryInt(c, "page", 0)
	if err != nil {
		return err
	}
	rowsPerPage, err := queryInt(c, "rows_per_page", defaultRowsPerPage)
	if err != nil {
		return err
	}
	from, to, err := queryDateRange(c)
	if err != nil {
		return err
	}

	result, err := h.service.ListRecords(c.Request().Context(), ports.ListRecordsInput{
		Actor:       actor,
		From:        from,
		To:          to,
		UserID:      c.QueryParam("user"),
		Page:        page,
		RowsPerPage: rowsPerPage,
	})
	if err != nil {
		return err
	}

	items := make([]recordListItemResponse, 0, len(result.Items))
	for _, it := range result.Items {
		item := recordListItemResponse{
			ID:       it.ID,
			Date:     it.Date.Format(dateLayout),
			Hour:     it.Hour,
			Note:     it.Note,
			User:     it.UserID,
			UserName: it.UserName,
		}
		if it.Compliance != nil {
			item.Compliance = &complianceResponse{
				DailyTotal: it.Compliance.DailyTotal,
				Compliant:  it.Compliance.Compliant,
			}
		}
		items = append(items, item)
	}

	return c.JSON(http.StatusOK, listRecordsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:       result.Total,
			Page:        result.Page,
			RowsPerPage: result.RowsPerPage,
			TotalPages:  result.TotalPages,
		},
	})
}

// Create handles POST /v1/records.
//
// @Summary      Create a time record
// @Tags         records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordRequest  true  "Record fields"
// @Success      201   {object}  recordResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/records [post]
func (h *RecordHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	input, err := bindRecordInput(c)
	if err != nil {
		return err
	}

	created, err := h.service.CreateRecord(c.Request().Context(), actor, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toRecordResponse(created))
}

// Get handles GET /v1/records/:id.
//
// @Summary      Get a time record by id
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  recordResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/records/{id} [get]
func (h *RecordHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	rec, err := h.service.GetRecord(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRecordResponse(rec))
}

// Update handles PUT /v1/records/:id.
//
// @Summary      Update a time record
// @Tags         records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Record id"
// @Param        body  body      recordRequest  true  "Record fields"
// @Success      200   {object}  recordResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/records/{id} [put]
func (h *RecordHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	input, err := bindRecordInput(c)
	if err != nil {
		return err
	}

	updated, err := h.service.UpdateRecord(c.Request().Context(), actor, c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRecordResponse(updated))
}

// Delete handles DELETE /v1/records/:id.
//
// @Summary      Delete a time record
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Record id"
// @Success      204  "no content"
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/records/{id} [delete]
func (h *RecordHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteRecord(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Export handles GET /v1/records/export — renders the filtered record set as
// a downloadable HTML document.
//
// @Summary      Export filtered records as HTML
// @Tags         records
// @Produce      html
// @Security     BearerAuth
// @Param        from  query  string  false  "inclusive lower date bound (YYYY-MM-DD)"
// @Param        to    query  string  false  "inclusive upper date bound (YYYY-MM-DD)"
// @Param        user  query  string  false  "owner filter (admin only)"
// @Success      200   {string}  string  "HTML document"
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/records/export [get]
func (h *RecordHandler) Export(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	from, to, err := queryDateRange(c)
	if err != nil {
		return err
	}

	result, err := h.service.ExportRecords(c.Request().Context(), ports.ExportInput{
		Actor:  actor,
		From:   from,
		To:     to,
		UserID: c.QueryParam("user"),
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", result.FileName))
	return c.Blob(http.StatusOK, result.ContentType, result.Body)
}

// --- helpers ---

func bindRecordInput(c echo.Context) (ports.RecordInput, error) {
	var req recordRequest
	if err := c.Bind(&req); err != nil {
		return ports.RecordInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return ports.RecordInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		}
		date = parsed
	}

	return ports.RecordInput{
		Date:   date,
		Hour:   req.Hour,
		Note:   req.Note,
		UserID: req.User,
	}, nil
}

func toRecordResponse(r *domain.Record) recordResponse {
	return recordResponse{
		ID:   r.ID,
		Date: r.Date.Format(dateLayout),
		Hour: r.Hour,
		Note: r.Note,
		User: r.UserID,
	}
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
	}
	return v, nil
}

func queryDateRange(c echo.Context) (from, to time.Time, err error) {
	if raw := c.QueryParam("from"); raw != "" {
		from, err = time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid from, expected YYYY-MM-DD")
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err = time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid to, expected YYYY-MM-DD")
		}
	}
	return from, to, nil
}
