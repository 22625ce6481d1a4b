package http

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/metrics"
	"github.com/MKhiriev/go-wellness/internal/service"
	"github.com/MKhiriev/go-wellness/models"
)

// ─────────────────────────────────────────────
// Function-field fakes of the service layer.
// A nil field returns zero values.
// ─────────────────────────────────────────────

type fakeAuthService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.User, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if f.registerFn == nil {
		return models.User{}, nil
	}
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if f.loginFn == nil {
		return models.User{}, nil
	}
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	return models.User{ID: userID}, nil
}

type fakeTokenService struct {
	issueFn func(ctx context.Context, userID int64) (models.Token, error)
}

func (f *fakeTokenService) Issue(ctx context.Context, userID int64) (models.Token, error) {
	if f.issueFn == nil {
		return models.Token{}, nil
	}
	return f.issueFn(ctx, userID)
}

func (f *fakeTokenService) Verify(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

type fakeSessionResolver struct {
	resolveFn func(ctx context.Context, header string) (models.User, error)
}

func (f *fakeSessionResolver) Resolve(ctx context.Context, header string) (models.User, error) {
	if f.resolveFn == nil {
		return models.User{}, service.ErrMissingCredential
	}
	return f.resolveFn(ctx, header)
}

type fakeCheckInService struct {
	createFn func(ctx context.Context, userID int64, req models.CreateCheckInRequest) (models.CheckIn, error)
	listFn   func(ctx context.Context, userID int64) ([]models.CheckIn, error)
	getFn    func(ctx context.Context, userID, checkInID int64) (models.CheckIn, error)
	deleteFn func(ctx context.Context, userID, checkInID int64) error
}

func (f *fakeCheckInService) Create(ctx context.Context, userID int64, req models.CreateCheckInRequest) (models.CheckIn, error) {
	if f.createFn == nil {
		return models.CheckIn{}, nil
	}
	return f.createFn(ctx, userID, req)
}

func (f *fakeCheckInService) List(ctx context.Context, userID int64) ([]models.CheckIn, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, userID)
}

func (f *fakeCheckInService) Get(ctx context.Context, userID, checkInID int64) (models.CheckIn, error) {
	if f.getFn == nil {
		return models.CheckIn{}, nil
	}
	return f.getFn(ctx, userID, checkInID)
}

func (f *fakeCheckInService) Delete(ctx context.Context, userID, checkInID int64) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, userID, checkInID)
}

type fakeStatsService struct {
	statsFn func(ctx context.Context, userID int64) (models.Stats, error)
}

func (f *fakeStatsService) Stats(ctx context.Context, userID int64) (models.Stats, error) {
	if f.statsFn == nil {
		return models.Stats{}, nil
	}
	return f.statsFn(ctx, userID)
}

type fakeChatService struct {
	sendFn      func(ctx context.Context, userID int64, message string) (models.ChatReply, error)
	contextFn   func(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error)
	clearFn     func(ctx context.Context, userID int64) error
	suggestedFn func(ctx context.Context, userID int64) (models.SuggestedQuestions, error)
}

func (f *fakeChatService) SendMessage(ctx context.Context, userID int64, message string) (models.ChatReply, error) {
	if f.sendFn == nil {
		return models.ChatReply{}, nil
	}
	return f.sendFn(ctx, userID, message)
}

func (f *fakeChatService) Context(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error) {
	if f.contextFn == nil {
		return nil, nil
	}
	return f.contextFn(ctx, userID, limit)
}

func (f *fakeChatService) ClearContext(ctx context.Context, userID int64) error {
	if f.clearFn == nil {
		return nil
	}
	return f.clearFn(ctx, userID)
}

func (f *fakeChatService) SuggestedQuestions(ctx context.Context, userID int64) (models.SuggestedQuestions, error) {
	if f.suggestedFn == nil {
		return models.SuggestedQuestions{}, nil
	}
	return f.suggestedFn(ctx, userID)
}

type fakeAppInfoService struct {
	health models.HealthResponse
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string { return "test-version" }

func (f *fakeAppInfoService) Info(_ context.Context) models.InfoResponse {
	return models.InfoResponse{Message: "Wellness API", Version: "test-version"}
}

func (f *fakeAppInfoService) Health(_ context.Context) models.HealthResponse {
	return f.health
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const validAuthHeader = "Bearer good-token"

// testUser is the user the fake session resolver authenticates.
var testUser = models.User{ID: 7, Email: "alice@example.com", PasswordHash: "secret-hash", IsActive: true}

// newTestServices returns fakes for every service. The session resolver
// accepts validAuthHeader only.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:  &fakeAuthService{},
		TokenService: &fakeTokenService{},
		SessionResolver: &fakeSessionResolver{resolveFn: func(_ context.Context, header string) (models.User, error) {
			if header == validAuthHeader {
				return testUser, nil
			}
			return models.User{}, service.ErrMissingCredential
		}},
		CheckInService: &fakeCheckInService{},
		StatsService:   &fakeStatsService{},
		ChatService:    &fakeChatService{},
		AppInfoService: &fakeAppInfoService{health: models.HealthResponse{Status: "ok", Message: "Wellness API is running"}},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, metrics.New(), nil, logger.Nop())
}

// serve sends one request through the full router.
func serve(t *testing.T, h *Handler, method, path, body, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

