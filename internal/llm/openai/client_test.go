package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/constants"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/llm"
)

func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "sk-test", BaseURL: srv.URL}, nil)
}

func TestExtractFields(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o-mini", body["model"])

		w.Write([]byte(chatResponse("```json\n{\"SỐ HĐ\": \"00000788\", \"NGÀY\": \"05/06/2023\"}\n```")))
	})

	fields, raw, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		DocType: constants.DocTypeInvoice,
		Texts:   []string{"Số (No.): 00000788"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "00000788", fields[constants.KeyInvoiceNumber])
	assert.Equal(t, "05/06/2023", fields[constants.KeyInvoiceDate])
	assert.Equal(t, "", fields[constants.KeyIssuerName])
	assert.JSONEq(t, `{"SỐ HĐ": "00000788", "NGÀY": "05/06/2023"}`, string(raw))
}

func TestExtractFieldsCredentialOverride(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(chatResponse(`{}`)))
	})

	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		DocType:    constants.DocTypeInvoice,
		Texts:      []string{"x"},
		Credential: "sk-override",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-override", gotAuth)
}

func TestExtractFieldsNoAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	c := NewClient(Config{BaseURL: "http://unused.invalid"}, nil)

	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		DocType: constants.DocTypeInvoice,
		Texts:   []string{"x"},
	})
	assert.ErrorContains(t, err, "api key")
}

func TestExtractFieldsHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "rate limited"}}`, http.StatusTooManyRequests)
	})

	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		DocType: constants.DocTypeInvoice,
		Texts:   []string{"x"},
	})
	assert.ErrorContains(t, err, "status 429")
}

func TestExtractFieldsNoChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	})

	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		DocType: constants.DocTypeInvoice,
		Texts:   []string{"x"},
	})
	assert.ErrorContains(t, err, "no choices")
}

func TestExtractFieldsRejectsNonObjectPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatResponse(`["not", "an", "object"]`)))
	})

	_, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		DocType: constants.DocTypeInvoice,
		Texts:   []string{"x"},
	})
	assert.ErrorContains(t, err, "schema validation failed")
}
