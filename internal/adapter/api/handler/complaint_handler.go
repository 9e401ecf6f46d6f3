package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"campusvoice/internal/domain/policy"
	"campusvoice/internal/usecase"
	"campusvoice/pkg/response"
	"campusvoice/pkg/utils"
)

type ComplaintHandler struct {
	complaintUseCase *usecase.ComplaintUseCase
}

func NewComplaintHandler(complaintUseCase *usecase.ComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUseCase: complaintUseCase,
	}
}

type createComplaintRequest struct {
	IsAnonymous bool   `json:"is_anonymous"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	StudentID   string `json:"student_id"`

	Category    string   `json:"category"`
	Subject     string   `json:"subject"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`

	MediaFiles []string `json:"media_files" validate:"max=5"`
	VoiceNote  string   `json:"voice_note"`

	Building   string `json:"building"`
	Block      string `json:"block"`
	Room       string `json:"room"`
	Department string `json:"department"`
}

func (h *ComplaintHandler) CreateComplaint(c echo.Context) error {
	var req createComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	// Identity is optional here: anonymous submission is allowed, and a
	// logged-in submitter is still recorded even when marked anonymous.
	var owner *policy.Identity
	if identity, ok := c.Get("identity").(policy.Identity); ok {
		owner = &identity
	}

	complaint, err := h.complaintUseCase.Create(c.Request().Context(), owner, usecase.CreateComplaintInput{
		IsAnonymous: req.IsAnonymous,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		StudentID:   req.StudentID,
		Category:    req.Category,
		Subject:     req.Subject,
		Description: req.Description,
		Tags:        req.Tags,
		MediaFiles:  req.MediaFiles,
		VoiceNote:   req.VoiceNote,
		Building:    req.Building,
		Block:       req.Block,
		Room:        req.Room,
		Department:  req.Department,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"id": complaint.ID})
}

func (h *ComplaintHandler) ListComplaints(c echo.Context) error {
	identity := c.Get("identity").(policy.Identity)
	filter := parseListFilter(c)

	items, appliedLimit, err := h.complaintUseCase.List(c.Request().Context(), identity, filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, items, appliedLimit)
}

func (h *ComplaintHandler) GetComplaint(c echo.Context) error {
	identity := c.Get("identity").(policy.Identity)
	id := c.Param("id")

	complaint, err := h.complaintUseCase.Get(c.Request().Context(), identity, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}

func (h *ComplaintHandler) UpdateComplaint(c echo.Context) error {
	identity := c.Get("identity").(policy.Identity)
	id := c.Param("id")

	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdateComplaintInput{Fields: body}
	if comment, ok := body["comment"].(string); ok {
		input.Comment = comment
		delete(body, "comment")
	}
	if isInternal, ok := body["isInternal"].(bool); ok {
		input.IsInternal = isInternal
		delete(body, "isInternal")
	}

	complaint, err := h.complaintUseCase.Update(c.Request().Context(), identity, id, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}

// ExportCSV renders the admin export rows as a CSV attachment. The gate
// and row assembly live in the usecase; this is rendering only.
func (h *ComplaintHandler) ExportCSV(c echo.Context) error {
	identity := c.Get("identity").(policy.Identity)
	filter := parseListFilter(c)

	rows, err := h.complaintUseCase.Export(c.Request().Context(), identity, filter)
	if err != nil {
		return response.Error(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="complaints-report.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	header := []string{
		"complaintId", "subject", "category", "department", "status",
		"urgency", "priority", "assignedTo", "createdAt", "dueAt",
		"slaHours", "description", "studentId", "email", "phone",
		"building", "room",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.ComplaintID, row.Subject, row.Category, row.Department, row.Status,
			row.Urgency, row.Priority, row.AssignedTo, row.CreatedAt, row.DueAt,
			strconv.Itoa(row.SLAHours), row.Description, row.StudentID, row.Email, row.Phone,
			row.Building, row.Room,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func parseListFilter(c echo.Context) policy.ListFilter {
	filter := policy.ListFilter{
		ID:         c.QueryParam("id"),
		Department: c.QueryParam("dept"),
		Status:     c.QueryParam("status"),
		Urgency:    c.QueryParam("urgency"),
		Priority:   c.QueryParam("priority"),
		Limit:      utils.GetLimitParam(c),
	}

	if from, err := parseDate(c.QueryParam("from")); err == nil {
		filter.From = &from
	}
	if to, err := parseDate(c.QueryParam("to")); err == nil {
		filter.To = &to
	}
	if assigned := c.QueryParam("assigned"); assigned == "true" || assigned == "false" {
		v := assigned == "true"
		filter.Assigned = &v
	}

	return filter
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
