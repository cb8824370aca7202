// internal/tests/leave_api_test.go
package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/config"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/database"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/i18n"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/router"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/services"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/store"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/utils"
)

type LeaveAPITestSuite struct {
	suite.Suite
	cfg    *config.Config
	store  *store.GormStore
	mailer *recordingMailer
	router *router.Router

	studentToken string
	adminToken   string
}

func (suite *LeaveAPITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(i18n.Initialize("en"))
}

func (suite *LeaveAPITestSuite) SetupTest() {
	ctx := context.Background()
	suite.cfg = testConfig()

	db, err := database.Initialize(suite.cfg.Database)
	suite.Require().NoError(err)
	suite.Require().NoError(database.RunMigrations(db))
	suite.store = store.NewGormStore(db, store.WithClock(steppingClock(time.Now().UTC(), time.Second)))

	suite.Require().NoError(suite.store.SaveStudentProfile(ctx, &models.StudentProfile{
		ID: studentID, Name: studentName, Email: studentEmail, ParentEmail: parentEmail,
	}))

	authService := services.NewAuthService(suite.store, suite.cfg)
	_, err = authService.CreateAccount(ctx, &services.CreateAccountRequest{
		Email: studentEmail, Password: accountPassword, Role: models.RoleStudent, StudentID: studentID,
	})
	suite.Require().NoError(err)
	_, err = authService.CreateAccount(ctx, &services.CreateAccountRequest{
		Email: adminEmail, Password: accountPassword, Role: models.RoleAdmin,
	})
	suite.Require().NoError(err)

	suite.mailer = &recordingMailer{configured: true}
	notifier := services.NewNotificationService(services.NewEmailComposer(stubGenerator{}), suite.mailer, nil)

	suite.router = router.Initialize(suite.cfg, router.Dependencies{
		AuthService:    authService,
		StudentService: services.NewStudentService(suite.store),
		LeaveService:   services.NewLeaveService(suite.store, notifier),
		Verifier:       services.JWTVerifier{},
	})

	suite.studentToken = suite.login(studentEmail)
	suite.adminToken = suite.login(adminEmail)
}

func (suite *LeaveAPITestSuite) TearDownTest() {
	suite.router.Close()
	suite.NoError(suite.store.Close())
}

func (suite *LeaveAPITestSuite) login(email string) string {
	w := doRequest(suite.router.Engine, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email": email, "password": accountPassword,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	env, err := decodeEnvelope(w)
	suite.Require().NoError(err)
	var data struct {
		Token string `json:"token"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &data))
	suite.Require().NotEmpty(data.Token)
	return data.Token
}

func validLeave() map[string]string {
	return map[string]string{
		"leaveType": "Sick Leave",
		"startDate": "2025-03-01",
		"endDate":   "2025-03-03",
		"reason":    "Flu, need rest for three days.",
	}
}

func (suite *LeaveAPITestSuite) submit(body interface{}) (int, services.SubmissionResult, envelope) {
	w := doRequest(suite.router.Engine, http.MethodPost, "/v1/leave-applications", suite.studentToken, body)
	env, err := decodeEnvelope(w)
	suite.Require().NoError(err)

	var result services.SubmissionResult
	if env.Success {
		suite.Require().NoError(json.Unmarshal(env.Data, &result))
	}
	return w.Code, result, env
}

func (suite *LeaveAPITestSuite) TestHealth() {
	w := doRequest(suite.router.Engine, http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "healthy")
}

func (suite *LeaveAPITestSuite) TestLoginRejectsWrongPassword() {
	w := doRequest(suite.router.Engine, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email": studentEmail, "password": "nope",
	})
	suite.Equal(http.StatusUnauthorized, w.Code)

	env, err := decodeEnvelope(w)
	suite.Require().NoError(err)
	suite.False(env.Success)
	suite.Equal("Invalid email or password", env.Error.Message)
}

func (suite *LeaveAPITestSuite) TestIdentity() {
	w := doRequest(suite.router.Engine, http.MethodGet, "/v1/auth/me", suite.studentToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"studentId":"stu-1"`)
}

func (suite *LeaveAPITestSuite) TestSubmitRequiresAuthentication() {
	w := doRequest(suite.router.Engine, http.MethodPost, "/v1/leave-applications", "", validLeave())
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = doRequest(suite.router.Engine, http.MethodPost, "/v1/leave-applications", "", validLeave(), "Accept-Language", "hi-IN,hi;q=0.9")
	env, err := decodeEnvelope(w)
	suite.Require().NoError(err)
	suite.Equal("प्रमाणीकरण आवश्यक है", env.Error.Message)
}

func (suite *LeaveAPITestSuite) TestSubmitStoresAndNotifies() {
	code, result, _ := suite.submit(validLeave())
	suite.Require().Equal(http.StatusCreated, code)

	suite.True(result.Success)
	suite.NotEmpty(result.ApplicationID)
	suite.True(result.NotificationSent)
	suite.Contains(result.Message, "submitted successfully")
	suite.Require().Len(suite.mailer.sent, 1)
	suite.Equal(parentEmail, suite.mailer.sent[0].To)

	app, err := suite.store.GetLeaveApplication(context.Background(), result.ApplicationID)
	suite.Require().NoError(err)
	suite.Equal(models.LeaveStatusPending, app.Status)
	suite.Equal(studentName, app.StudentName)
}

func (suite *LeaveAPITestSuite) TestSubmitEndBeforeStartIsRejected() {
	body := validLeave()
	body["endDate"] = "2025-02-28"

	code, _, env := suite.submit(body)
	suite.Equal(http.StatusBadRequest, code)
	suite.False(env.Success)
	suite.Equal("VALIDATION_ERROR", env.Error.Code)

	var details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
	suite.Require().NoError(json.Unmarshal(env.Error.Details, &details))
	suite.Require().Len(details, 1)
	suite.Equal("endDate", details[0].Field)
	suite.Equal("end date cannot be before start date", details[0].Message)

	apps, err := suite.store.ListLeaveApplicationsByStudent(context.Background(), studentID)
	suite.Require().NoError(err)
	suite.Empty(apps)
}

func (suite *LeaveAPITestSuite) TestSubmitWithoutMailerStillSucceeds() {
	suite.mailer.setConfigured(false)

	code, result, _ := suite.submit(validLeave())
	suite.Require().Equal(http.StatusCreated, code)
	suite.True(result.Success)
	suite.False(result.NotificationSent)
	suite.Contains(result.Message, "could not be sent")

	apps, err := suite.store.ListLeaveApplicationsByStudent(context.Background(), studentID)
	suite.Require().NoError(err)
	suite.Len(apps, 1)
}

func (suite *LeaveAPITestSuite) TestListMineNewestFirst() {
	var ids []string
	for i := 0; i < 3; i++ {
		code, result, _ := suite.submit(validLeave())
		suite.Require().Equal(http.StatusCreated, code)
		ids = append(ids, result.ApplicationID)
	}

	w := doRequest(suite.router.Engine, http.MethodGet, "/v1/leave-applications", suite.studentToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	env, err := decodeEnvelope(w)
	suite.Require().NoError(err)

	var apps []models.LeaveApplication
	suite.Require().NoError(json.Unmarshal(env.Data, &apps))
	suite.Require().Len(apps, 3)
	suite.Equal([]string{ids[2], ids[1], ids[0]}, []string{apps[0].ID, apps[1].ID, apps[2].ID})
	suite.EqualValues(3, env.Meta["count"])
}

func (suite *LeaveAPITestSuite) TestStudentProfile() {
	w := doRequest(suite.router.Engine, http.MethodGet, "/v1/students/me", suite.studentToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), studentName)

	w = doRequest(suite.router.Engine, http.MethodGet, "/v1/students/me", suite.adminToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *LeaveAPITestSuite) TestAdminReview() {
	_, result, _ := suite.submit(validLeave())
	id := result.ApplicationID

	w := doRequest(suite.router.Engine, http.MethodGet, "/v1/admin/leave-applications?status=Pending", suite.studentToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = doRequest(suite.router.Engine, http.MethodGet, "/v1/admin/leave-applications?status=Pending", suite.adminToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), id)

	w = doRequest(suite.router.Engine, http.MethodGet, "/v1/admin/leave-applications?status=Archived", suite.adminToken, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = doRequest(suite.router.Engine, http.MethodPut, "/v1/admin/leave-applications/"+id+"/reject", suite.adminToken, map[string]string{})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = doRequest(suite.router.Engine, http.MethodPut, "/v1/admin/leave-applications/"+id+"/approve", suite.adminToken, map[string]string{"remarks": "Get well soon"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Contains(w.Body.String(), `"status":"Approved"`)

	w = doRequest(suite.router.Engine, http.MethodPut, "/v1/admin/leave-applications/"+id+"/approve", suite.adminToken, nil)
	suite.Equal(http.StatusConflict, w.Code)

	w = doRequest(suite.router.Engine, http.MethodPut, "/v1/admin/leave-applications/missing/approve", suite.adminToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestLeaveAPISuite(t *testing.T) {
	suite.Run(t, new(LeaveAPITestSuite))
}

type failingStore struct {
	store.Store
	listErr error
}

func (s failingStore) ListLeaveApplicationsByStudent(context.Context, string) ([]models.LeaveApplication, error) {
	return nil, s.listErr
}

func TestStoreFailuresMapToStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, i18n.Initialize("en"))

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"index missing", &store.IndexMissingError{Query: "leaveApplications by studentId", Detail: "create it"}, http.StatusPreconditionFailed, "INDEX_MISSING"},
		{"permission denied", store.ErrPermissionDenied, http.StatusForbidden, "PERMISSION_DENIED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			st := failingStore{listErr: tc.err}
			r := router.Initialize(cfg, router.Dependencies{
				StudentService: services.NewStudentService(st),
				LeaveService:   services.NewLeaveService(st, nil),
				Verifier:       services.JWTVerifier{},
			})
			defer r.Close()

			token, err := utils.GenerateJWT("uid-1", studentEmail, string(models.RoleStudent), studentID, 1)
			require.NoError(t, err)

			w := doRequest(r.Engine, http.MethodGet, "/v1/leave-applications", token, nil)
			assert.Equal(t, tc.status, w.Code, w.Body.String())

			env, err := decodeEnvelope(w)
			require.NoError(t, err)
			require.NotNil(t, env.Error)
			assert.Equal(t, tc.code, env.Error.Code)
		})
	}
}
