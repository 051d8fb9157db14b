package relay

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwrites/ledgerbot/internal/model"
	"github.com/mwrites/ledgerbot/internal/pipeline"
	"github.com/mwrites/ledgerbot/internal/service"
)

type fakeProcessor struct {
	result   service.ProcessResult
	messages []model.Message
}

func (f *fakeProcessor) Process(_ context.Context, msg model.Message) service.ProcessResult {
	f.messages = append(f.messages, msg)
	return f.result
}

type fakeStore struct {
	users map[string]*model.User
}

func newFakeStore(ids ...string) *fakeStore {
	store := &fakeStore{users: make(map[string]*model.User)}
	for i, id := range ids {
		store.users[id] = &model.User{ID: int64(i + 1), TelegramID: id, CreatedAt: time.Now().UTC()}
	}
	return store
}

func (f *fakeStore) CreateUser(_ context.Context, telegramID string) (*model.User, error) {
	if u, ok := f.users[telegramID]; ok {
		return u, nil
	}
	u := &model.User{ID: int64(len(f.users) + 1), TelegramID: telegramID, CreatedAt: time.Now().UTC()}
	f.users[telegramID] = u
	return u, nil
}

func (f *fakeStore) UserByTelegramID(_ context.Context, telegramID string) (*model.User, error) {
	return f.users[telegramID], nil
}

func (f *fakeStore) SaveExpense(context.Context, *model.Expense) error { return nil }
func (f *fakeStore) ExpensesByUser(context.Context, int64) ([]model.Expense, error) {
	return nil, nil
}
func (f *fakeStore) Migrate(context.Context) error { return nil }
func (f *fakeStore) Close() error                  { return nil }

func newTestServer(processor service.Processor, store service.Storage) *httptest.Server {
	srv := NewServer(processor, store, slog.Default())
	return httptest.NewServer(srv.Router())
}

func TestHealth(t *testing.T) {
	ts := newTestServer(&fakeProcessor{}, newFakeStore())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestProcessMessage(t *testing.T) {
	processor := &fakeProcessor{result: service.ProcessResult{
		Success:      true,
		ExpenseAdded: true,
		Category:     model.CategoryFood,
		Message:      "Food expense added ✅",
	}}
	ts := newTestServer(processor, newFakeStore())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/process-message", "application/json",
		strings.NewReader(`{"message": "Pizza $20", "telegram_id": "12345"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body ProcessMessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.True(t, body.ExpenseAdded)
	assert.Equal(t, "Food", body.Category)
	assert.Equal(t, "Food expense added ✅", body.Message)

	require.Len(t, processor.messages, 1)
	assert.Equal(t, "Pizza $20", processor.messages[0].Text)
	assert.Equal(t, "12345", processor.messages[0].SenderID)
}

func TestProcessMessageBadRequest(t *testing.T) {
	processor := &fakeProcessor{}
	ts := newTestServer(processor, newFakeStore())
	defer ts.Close()

	for _, body := range []string{
		`{}`,
		`{"message": "Pizza $20"}`,
		`{"telegram_id": "12345"}`,
		`not json`,
	} {
		resp, err := http.Post(ts.URL+"/process-message", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q", body)
	}
	assert.Empty(t, processor.messages)
}

func TestAddUser(t *testing.T) {
	store := newFakeStore()
	ts := newTestServer(&fakeProcessor{}, store)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/add-user", "application/json",
		strings.NewReader(`{"telegram_id": "12345"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, store.users, "12345")
}

func TestAddUserBadRequest(t *testing.T) {
	ts := newTestServer(&fakeProcessor{}, newFakeStore())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/add-user", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetUser(t *testing.T) {
	ts := newTestServer(&fakeProcessor{}, newFakeStore("12345"))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/users/12345")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/users/99999")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClientRoundTrip(t *testing.T) {
	processor := &fakeProcessor{result: service.ProcessResult{
		Success:      true,
		ExpenseAdded: true,
		Category:     model.CategoryTransportation,
		Message:      "Transportation expense added ✅",
	}}
	ts := newTestServer(processor, newFakeStore())
	defer ts.Close()

	client := NewClient(ts.URL, slog.Default())
	got := client.Process(context.Background(), model.Message{SenderID: "12345", Text: "taxi $12.50"})

	assert.True(t, got.Success)
	assert.True(t, got.ExpenseAdded)
	assert.Equal(t, model.CategoryTransportation, got.Category)
	assert.Equal(t, "Transportation expense added ✅", got.Message)
}

func TestClientAbsorbsFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", slog.Default())
	got := client.Process(context.Background(), model.Message{SenderID: "12345", Text: "Pizza $20"})

	assert.False(t, got.Success)
	assert.Equal(t, pipeline.RelayFailureResponse, got.Message)
}
