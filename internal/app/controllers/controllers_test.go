package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/transferdesk/internal/app/models"
	"github.com/yigit/transferdesk/internal/app/repositories"
	"github.com/yigit/transferdesk/internal/app/services"
	"github.com/yigit/transferdesk/internal/middleware"
	"github.com/yigit/transferdesk/internal/pkg/docstore"
	"github.com/yigit/transferdesk/internal/pkg/filestorage"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string          `json:"code"`
		Field   string          `json:"field"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

type testServer struct {
	router  *gin.Engine
	repos   *repositories.Repositories
	storage *filestorage.LocalStorage
	pec     models.College
	gces    models.College
	program models.Program
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	repos := repositories.NewRepositories(docstore.NewMemoryStore())
	storage, err := filestorage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	s := &testServer{
		repos:   repos,
		storage: storage,
		pec:     models.College{CollegeName: "Pokhara Engineering College", CollegeAddress: "Phirke, Pokhara"},
		gces:    models.College{CollegeName: "Gandaki College of Engineering and Science", CollegeAddress: "Lamachaur, Pokhara"},
		program: models.Program{Name: "Computer Engineering"},
	}
	require.NoError(t, repos.CollegeRepository.Create(ctx, &s.pec))
	require.NoError(t, repos.CollegeRepository.Create(ctx, &s.gces))
	require.NoError(t, repos.ProgramRepository.Create(ctx, &s.program))

	lookups := services.NewLookupService(repos.CollegeRepository, repos.ProgramRepository)
	transfers := services.NewTransferService(lookups, repos.TransferRepository, storage, "edited-pdfs", zerolog.Nop())
	directors := services.NewDirectorService(lookups, repos.CredentialRepository, repos.DirectorRepository, zerolog.Nop())

	lookupCtl := NewLookupController(lookups)
	transferCtl := NewTransferController(transfers, storage, 1<<20)
	directorCtl := NewDirectorController(directors)
	studentCtl := NewStudentController(services.NewStudentService(repos.StudentRepository))
	approvalCtl := NewApprovalController(services.NewApprovalService(repos.ApprovalRepository))
	formCtl := NewFormController(transfers, directors)

	r := gin.New()
	r.Use(middleware.Recovery(zerolog.Nop()))
	api := r.Group("/api/v1")
	api.GET("/colleges", lookupCtl.GetColleges)
	api.GET("/form-options", lookupCtl.GetFormOptions)
	api.GET("/forms/:name", formCtl.GetForm)
	api.POST("/forms/:name/validate", formCtl.ValidateFields)
	api.POST("/transfer-requests", transferCtl.SubmitTransferRequest)
	api.GET("/transfer-requests", transferCtl.GetPendingTransferRequests)
	api.POST("/directors", directorCtl.CreateDirector)
	api.GET("/directors", directorCtl.GetDirectors)
	api.GET("/students", studentCtl.GetStudents)
	api.PUT("/students/:id", studentCtl.UpdateStudent)
	api.DELETE("/students/:id", studentCtl.DeleteStudent)
	api.GET("/dean-approvals", approvalCtl.GetDeanApprovals)
	api.DELETE("/dean-approvals/:id", approvalCtl.DeleteDeanApproval)
	s.router = r
	return s
}

func (s *testServer) do(t *testing.T, req *http.Request) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w.Code, body
}

func (s *testServer) seedStudents(t *testing.T, names ...string) []models.Student {
	t.Helper()
	out := make([]models.Student, 0, len(names))
	for i, name := range names {
		st := models.Student{
			Name:        name,
			PuRegNumber: fmt.Sprintf("2019-1-22-%04d", i),
			College:     s.pec.CollegeName,
			Program:     s.program.Name,
			Semester:    "5",
		}
		require.NoError(t, s.repos.StudentRepository.CreateStudent(context.Background(), &st))
		out = append(out, st)
	}
	return out
}

type tablePayload struct {
	Items      []map[string]any `json:"items"`
	Options    []string         `json:"options"`
	Filter     string           `json:"filter"`
	Pagination struct {
		CurrentPage int `json:"currentPage"`
		TotalPages  int `json:"totalPages"`
		PageSize    int `json:"pageSize"`
		TotalItems  int `json:"totalItems"`
	} `json:"pagination"`
}

func TestStudentTable(t *testing.T) {
	s := newTestServer(t)
	s.seedStudents(t, "Asha", "Bikash", "Asha", "Chandra", "Dipesh", "Elina", "Firoj")

	t.Run("first page uses the default size", func(t *testing.T) {
		code, body := s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/students", nil))
		require.Equal(t, http.StatusOK, code)

		var table tablePayload
		require.NoError(t, json.Unmarshal(body.Data, &table))
		assert.Len(t, table.Items, 5)
		assert.Equal(t, 7, table.Pagination.TotalItems)
		assert.Equal(t, 2, table.Pagination.TotalPages)
		assert.Equal(t, []string{"Asha", "Bikash", "Chandra", "Dipesh", "Elina", "Firoj"}, table.Options)
	})

	t.Run("filter by name", func(t *testing.T) {
		code, body := s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/students?name=Asha&size=8", nil))
		require.Equal(t, http.StatusOK, code)

		var table tablePayload
		require.NoError(t, json.Unmarshal(body.Data, &table))
		assert.Len(t, table.Items, 2)
		assert.Equal(t, "Asha", table.Filter)
		assert.Equal(t, []string{"Asha"}, table.Options)
		assert.Equal(t, 8, table.Pagination.PageSize)
		assert.Equal(t, 1, table.Pagination.TotalPages)
	})

	t.Run("second page", func(t *testing.T) {
		_, body := s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/students?page=1&size=5", nil))
		var table tablePayload
		require.NoError(t, json.Unmarshal(body.Data, &table))
		assert.Len(t, table.Items, 2)
		assert.Equal(t, "Elina", table.Items[0]["name"])
	})

	t.Run("edit is not supported", func(t *testing.T) {
		code, body := s.do(t, httptest.NewRequest(http.MethodPut, "/api/v1/students/x", nil))
		assert.Equal(t, http.StatusNotImplemented, code)
		assert.Equal(t, "SRV_004", body.Error.Code)
	})
}

func TestDeleteStudent(t *testing.T) {
	s := newTestServer(t)
	students := s.seedStudents(t, "Asha", "Bikash")
	url := "/api/v1/students/" + students[0].ID

	code, body := s.do(t, httptest.NewRequest(http.MethodDelete, url, nil))
	assert.Equal(t, http.StatusPreconditionRequired, code)
	assert.Equal(t, "REQ_002", body.Error.Code)

	code, body = s.do(t, httptest.NewRequest(http.MethodDelete, url+"?confirm=false", nil))
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"deleted":false,"message":"Cancelled"}`, string(body.Data))

	code, _ = s.do(t, httptest.NewRequest(http.MethodDelete, url+"?confirm=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = s.do(t, httptest.NewRequest(http.MethodDelete, url+"?confirm=true", nil))
	require.Equal(t, http.StatusOK, code)
	var res struct {
		Deleted bool         `json:"deleted"`
		Message string       `json:"message"`
		Table   tablePayload `json:"table"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &res))
	assert.True(t, res.Deleted)
	assert.Equal(t, "Deleted!", res.Message)
	require.Len(t, res.Table.Items, 1)
	assert.Equal(t, "Bikash", res.Table.Items[0]["name"])

	code, _ = s.do(t, httptest.NewRequest(http.MethodDelete, url+"?confirm=true", nil))
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDeanApprovals(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	a := models.Approval{StudentName: "Asha", RegistrationNumber: "1", Stage: models.StageDean, Status: "pending"}
	other := models.Approval{StudentName: "Bikash", RegistrationNumber: "2", Stage: "registrar", Status: "pending"}
	require.NoError(t, s.repos.ApprovalRepository.Create(ctx, &a))
	require.NoError(t, s.repos.ApprovalRepository.Create(ctx, &other))

	_, body := s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/dean-approvals", nil))
	var table tablePayload
	require.NoError(t, json.Unmarshal(body.Data, &table))
	require.Len(t, table.Items, 1)
	assert.Equal(t, "Asha", table.Items[0]["studentName"])

	code, _ := s.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/dean-approvals/"+a.ID+"?confirm=true", nil))
	assert.Equal(t, http.StatusOK, code)
}

func transferBody(t *testing.T, fields map[string]string, letterName, letterType string, letter []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if letter != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, services.FieldApplicationLetter, letterName))
		h.Set("Content-Type", letterType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(letter)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func (s *testServer) transferFields() map[string]string {
	return map[string]string{
		services.FieldFullName:               "Sita Gurung",
		services.FieldRegistrationNumber:     "2019-1-22-0101",
		services.FieldExamRollNumber:         "19070101",
		services.FieldSourceCollegeName:      s.pec.ID,
		services.FieldDestinationCollegeName: s.gces.ID,
		services.FieldEmail:                  "sita@example.com",
		services.FieldContactNumber:          "9800000000",
		services.FieldProgramEnrolled:        s.program.ID,
		services.FieldCurrentSemester:        "5",
		services.FieldRemarks:                "Family moved",
	}
}

func TestSubmitTransferRequest(t *testing.T) {
	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF\n")

	t.Run("accepted request stores the letter", func(t *testing.T) {
		s := newTestServer(t)
		body, ct := transferBody(t, s.transferFields(), "letter.pdf", "application/pdf", pdf)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transfer-requests", body)
		req.Header.Set("Content-Type", ct)

		code, res := s.do(t, req)
		require.Equal(t, http.StatusCreated, code, string(res.Data))

		var out struct {
			Request struct {
				ID                     string `json:"id"`
				DestinationCollegeName string `json:"destinationCollegeName"`
			} `json:"request"`
			ApplicationLetterURL string `json:"applicationLetterUrl"`
		}
		require.NoError(t, json.Unmarshal(res.Data, &out))
		assert.Equal(t, "/uploads/edited-pdfs/letter.pdf", out.ApplicationLetterURL)
		assert.Equal(t, s.gces.CollegeName, out.Request.DestinationCollegeName)

		stored, err := os.ReadFile(filepath.Join(s.storage.BasePath(), "edited-pdfs", "letter.pdf"))
		require.NoError(t, err)
		assert.Equal(t, pdf, stored)

		_, list := s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/transfer-requests", nil))
		assert.Contains(t, string(list.Data), out.Request.ID)
	})

	t.Run("missing letter is a field error", func(t *testing.T) {
		s := newTestServer(t)
		body, ct := transferBody(t, s.transferFields(), "", "", nil)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transfer-requests", body)
		req.Header.Set("Content-Type", ct)

		code, res := s.do(t, req)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, services.FieldApplicationLetter, res.Error.Field)
	})

	t.Run("not multipart", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transfer-requests", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")

		code, res := s.do(t, req)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "REQ_001", res.Error.Code)
	})
}

func TestCreateDirector(t *testing.T) {
	s := newTestServer(t)
	payload := fmt.Sprintf(`{"name":"Dr. Ramesh Sharma","email":"ramesh@pec.edu.np","college":%q,"password":"secret123"}`, s.pec.ID)

	post := func() (int, envelope) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/directors", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		return s.do(t, req)
	}

	code, body := post()
	require.Equal(t, http.StatusCreated, code)
	var director models.Director
	require.NoError(t, json.Unmarshal(body.Data, &director))
	assert.Equal(t, s.pec.CollegeName, director.College)
	assert.Equal(t, "Phirke, Pokhara", director.Address)
	assert.Equal(t, models.RoleCollegeHead, director.Role)

	code, body = post()
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "RES_002", body.Error.Code)

	_, body = s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/directors", nil))
	assert.Contains(t, string(body.Data), "Dr. Ramesh Sharma")
}

func TestForms(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/forms/transfer", nil))
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), services.FieldApplicationLetter)

	code, _ = s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/forms/unknown", nil))
	assert.Equal(t, http.StatusNotFound, code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/director/validate",
		strings.NewReader(`{"email":"not-an-email","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	code, body = s.do(t, req)
	require.Equal(t, http.StatusOK, code)

	var result FieldValidationResult
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, services.FieldEmail, result.Errors[0].Field)

	_, body = s.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/form-options", nil))
	assert.Contains(t, string(body.Data), s.gces.CollegeName)
}
