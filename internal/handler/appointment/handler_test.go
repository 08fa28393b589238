package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcore/hospital-api/internal/middleware"
	"github.com/medcore/hospital-api/internal/model"
	appointmentService "github.com/medcore/hospital-api/internal/service/appointment"
	"github.com/medcore/hospital-api/pkg/apperror"
	pkgauth "github.com/medcore/hospital-api/pkg/auth"
)

type stubPatientRepo struct {
	getByUserIDFn func(ctx context.Context, userID uuid.UUID) (*model.Patient, error)
	getProfileFn  func(ctx context.Context, userID uuid.UUID) (*model.PatientProfile, error)
}

func (s *stubPatientRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Patient, error) {
	return s.getByUserIDFn(ctx, userID)
}

func (s *stubPatientRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*model.PatientProfile, error) {
	return s.getProfileFn(ctx, userID)
}

func (s *stubPatientRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdatePatientProfileRequest) ([]string, error) {
	panic("not expected")
}

func (s *stubPatientRepo) List(ctx context.Context) ([]*model.PatientInfo, error) {
	panic("not expected")
}

func (s *stubPatientRepo) Count(ctx context.Context) (int, error) {
	panic("not expected")
}

type stubAppointmentRepo struct {
	listForPatientFn func(ctx context.Context, patientID uuid.UUID) ([]*model.PatientAppointmentView, error)
}

func (s *stubAppointmentRepo) Create(ctx context.Context, appointment *model.Appointment) error {
	panic("not expected")
}

func (s *stubAppointmentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	panic("not expected")
}

func (s *stubAppointmentRepo) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.PatientAppointmentView, error) {
	return s.listForPatientFn(ctx, patientID)
}

func (s *stubAppointmentRepo) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.DoctorAppointmentView, error) {
	panic("not expected")
}

func (s *stubAppointmentRepo) StatsForDoctor(ctx context.Context, doctorID uuid.UUID) (*model.AppointmentStats, error) {
	panic("not expected")
}

func (s *stubAppointmentRepo) Recent(ctx context.Context, limit int) ([]*model.ActivityEntry, error) {
	panic("not expected")
}

func (s *stubAppointmentRepo) Count(ctx context.Context) (int, error) {
	panic("not expected")
}

func newTestRouter(t *testing.T, appointmentRepo *stubAppointmentRepo, patientRepo *stubPatientRepo) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtSvc := pkgauth.NewJWTService("test-secret")
	token, err := jwtSvc.Generate(&model.User{ID: uuid.New(), Email: "alice@example.com", Role: model.RolePatient})
	require.NoError(t, err)

	h := NewHandler(appointmentService.NewService(appointmentRepo, patientRepo))
	r := gin.New()
	h.RegisterRoutes(r.Group(""), middleware.NewAuthMiddleware(jwtSvc))
	return r, token
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	return w
}

func TestListMineEchoesInternalError(t *testing.T) {
	patientRepo := &stubPatientRepo{
		getByUserIDFn: func(ctx context.Context, userID uuid.UUID) (*model.Patient, error) {
			return &model.Patient{ID: uuid.New(), UserID: userID}, nil
		},
	}
	appointmentRepo := &stubAppointmentRepo{
		listForPatientFn: func(ctx context.Context, patientID uuid.UUID) ([]*model.PatientAppointmentView, error) {
			return nil, errors.New("pq: connection reset by peer")
		},
	}
	r, token := newTestRouter(t, appointmentRepo, patientRepo)

	w := get(r, "/appointments/my", token)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch appointments", body["message"])
	assert.Equal(t, "pq: connection reset by peer", body["error"])
}

func TestListMineKeepsExpectedErrorMapping(t *testing.T) {
	patientRepo := &stubPatientRepo{
		getByUserIDFn: func(ctx context.Context, userID uuid.UUID) (*model.Patient, error) {
			return nil, apperror.NotFound("patient profile")
		},
	}
	r, token := newTestRouter(t, &stubAppointmentRepo{}, patientRepo)

	w := get(r, "/appointments/my", token)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "patient profile not found", body["message"])
	assert.NotContains(t, body, "error")
}

func TestProfileInternalErrorStaysGeneric(t *testing.T) {
	patientRepo := &stubPatientRepo{
		getProfileFn: func(ctx context.Context, userID uuid.UUID) (*model.PatientProfile, error) {
			return nil, errors.New("pq: relation does not exist")
		},
	}
	r, token := newTestRouter(t, &stubAppointmentRepo{}, patientRepo)

	w := get(r, "/appointments/profile", token)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	// the driver message stays out of every body except /appointments/my
	assert.NotContains(t, w.Body.String(), "pq:")
}
