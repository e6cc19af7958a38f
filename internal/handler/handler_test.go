package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rich-Wilkyness/social-media-api/shared/cqrs"
	"github.com/Rich-Wilkyness/social-media-api/shared/models"
	"github.com/gin-gonic/gin"
)

// ---- mock implementations ----

type mockAccountCommander struct {
	registerFn func(cqrs.RegisterAccountCommand) (*models.Account, error)
}

func (m *mockAccountCommander) RegisterAccount(_ context.Context, cmd cqrs.RegisterAccountCommand) (*models.Account, error) {
	if m.registerFn != nil {
		return m.registerFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}

type mockAccountQuerier struct {
	loginFn func(cqrs.LoginQuery) (*models.Account, error)
}

func (m *mockAccountQuerier) Login(_ context.Context, q cqrs.LoginQuery) (*models.Account, error) {
	if m.loginFn != nil {
		return m.loginFn(q)
	}
	return nil, fmt.Errorf("not configured")
}

type mockMessageCommander struct {
	createFn func(cqrs.CreateMessageCommand) (*models.Message, error)
	updateFn func(cqrs.UpdateMessageCommand) (*models.Message, error)
	deleteFn func(cqrs.DeleteMessageCommand) (*models.Message, error)
}

func (m *mockMessageCommander) CreateMessage(_ context.Context, cmd cqrs.CreateMessageCommand) (*models.Message, error) {
	if m.createFn != nil {
		return m.createFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockMessageCommander) UpdateMessage(_ context.Context, cmd cqrs.UpdateMessageCommand) (*models.Message, error) {
	if m.updateFn != nil {
		return m.updateFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockMessageCommander) DeleteMessage(_ context.Context, cmd cqrs.DeleteMessageCommand) (*models.Message, error) {
	if m.deleteFn != nil {
		return m.deleteFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}

type mockMessageQuerier struct {
	getFn         func(cqrs.GetMessageQuery) (*models.Message, error)
	listFn        func(cqrs.ListMessagesQuery) ([]models.Message, error)
	listAccountFn func(cqrs.ListAccountMessagesQuery) ([]models.Message, error)
}

func (m *mockMessageQuerier) GetMessage(_ context.Context, q cqrs.GetMessageQuery) (*models.Message, error) {
	if m.getFn != nil {
		return m.getFn(q)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockMessageQuerier) ListMessages(_ context.Context, q cqrs.ListMessagesQuery) ([]models.Message, error) {
	if m.listFn != nil {
		return m.listFn(q)
	}
	return []models.Message{}, nil
}
func (m *mockMessageQuerier) ListAccountMessages(_ context.Context, q cqrs.ListAccountMessagesQuery) ([]models.Message, error) {
	if m.listAccountFn != nil {
		return m.listAccountFn(q)
	}
	return []models.Message{}, nil
}

// ---- helpers ----

type testDeps struct {
	accountCmds *mockAccountCommander
	accountQrys *mockAccountQuerier
	messageCmds *mockMessageCommander
	messageQrys *mockMessageQuerier
}

func newTestRouter(d testDeps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if d.accountCmds == nil {
		d.accountCmds = &mockAccountCommander{}
	}
	if d.accountQrys == nil {
		d.accountQrys = &mockAccountQuerier{}
	}
	if d.messageCmds == nil {
		d.messageCmds = &mockMessageCommander{}
	}
	if d.messageQrys == nil {
		d.messageQrys = &mockMessageQuerier{}
	}
	r := gin.New()
	RegisterRoutes(r,
		NewAccountHandler(d.accountCmds, d.accountQrys),
		NewMessageHandler(d.messageCmds, d.messageQrys),
	)
	return r
}

func doRequest(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	switch b := body.(type) {
	case nil:
	case string:
		req, _ = http.NewRequest(method, url, strings.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		raw, _ := json.Marshal(b)
		req, _ = http.NewRequest(method, url, strings.NewReader(string(raw)))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ---- test data ----

var testAccount = &models.Account{AccountID: 1, Username: "bob", Password: "1234"}

var testMessage = &models.Message{MessageID: 1, PostedBy: 1, MessageText: "hello", TimePostedEpoch: 1669947792}

func assertEmptyBody(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
}
