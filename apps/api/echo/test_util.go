package echoapi

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/cnam2653/canvas-assignment-calendar/core"
	"github.com/cnam2653/canvas-assignment-calendar/core/course"
	"github.com/cnam2653/canvas-assignment-calendar/core/credential"
	"github.com/cnam2653/canvas-assignment-calendar/storage/inmem"
)

type (
	httpTest struct {
		name     string
		method   string
		path     string
		body     []byte
		wantCode int
		wantData []byte
	}

	// stubCanvasClient fakes the remote LMS for handler tests.
	stubCanvasClient struct {
		courses     []course.Course
		coursesErr  error
		assignments map[int][]course.RemoteAssignment
		fetchErr    map[int]error
	}

	nopLogger struct{}
)

func (c *stubCanvasClient) FetchCourses(_ context.Context, _ string) ([]course.Course, error) {
	return c.courses, c.coursesErr
}

func (c *stubCanvasClient) FetchAssignments(_ context.Context, courseID int, _ string) ([]course.RemoteAssignment, error) {
	if err, ok := c.fetchErr[courseID]; ok {
		return nil, err
	}
	return c.assignments[courseID], nil
}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// initServer wires a full server around a stubbed Canvas client and a fresh
// in-memory credential store.
func initServer(client course.Client) (Server, credential.Repository) {
	db, _ := inmemdb.Open()
	credRepo := inmemdb.NewCredentialRepository(db)
	svc := course.NewService(testConf(), client, credRepo, course.NewTermSelector(), nopLogger{})

	srv := NewServer(&Options{
		Address:        ":0",
		DisableReqLogs: true,
		CourseSvc:      svc,
		CredentialRepo: credRepo,
		Logger:         nopLogger{},
	})
	return srv, credRepo
}

func testConf() *core.Config {
	conf := *core.Conf
	conf.Canvas.MaxCourseFetches = 2
	return &conf
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}
