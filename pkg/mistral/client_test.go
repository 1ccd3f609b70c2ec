package mistral

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plouvier/facture/pkg/entity"
)

type fakeWorkspace struct {
	customers map[string]entity.Customer
	settings  entity.Settings
}

func (f *fakeWorkspace) AllCustomers() (map[string]entity.Customer, error) {
	return f.customers, nil
}

func (f *fakeWorkspace) Settings() (entity.Settings, error) {
	return f.settings, nil
}

func testWorkspace() *fakeWorkspace {
	return &fakeWorkspace{
		customers: map[string]entity.Customer{
			"king_sarl": {Name: "King SARL"},
			"foo_sas":   {Name: "Foo SAS"},
		},
		settings: entity.Settings{
			LLMInstruct:   "invoices in french",
			MistralAPIKey: "settings-key",
		},
	}
}

func TestBuildRequest(t *testing.T) {
	c := NewClient("", "")

	body, key, err := c.buildRequest(testWorkspace(), "3 days of development for King")
	require.NoError(t, err)

	assert.Equal(t, "settings-key", key)
	assert.NotContains(t, body, "{{")
	assert.Contains(t, body, "foo_sas, king_sarl")
	assert.Contains(t, body, "3 days of development for King")
	assert.Contains(t, body, "invoices in french")

	// the substituted template must still be valid JSON
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Equal(t, "ministral-8b-latest", payload["model"])
}

func TestBuildRequestEscapesPrompt(t *testing.T) {
	c := NewClient("", "client-key")

	body, key, err := c.buildRequest(testWorkspace(), "a \"quoted\"\nprompt")
	require.NoError(t, err)

	assert.Equal(t, "client-key", key)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
}

func TestExtractInvoice(t *testing.T) {
	content := `{
		"title": "Development",
		"customer_id": "king_sarl",
		"date": {"day": "14", "month": "03", "year": "2015"},
		"products": [{"description": "day of development", "quantity": 3, "price": 500}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "Bearer settings-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		sent, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(sent), "king_sarl")

		answer := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(answer))
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	inv, err := c.ExtractInvoice(testWorkspace(), "3 days of development for King")
	require.NoError(t, err)

	assert.Equal(t, entity.Date{Day: "14", Month: "03", Year: "2015"}, inv.Date)
	assert.Equal(t, "king_sarl", inv.CustomerID)
	assert.Equal(t, "Development", inv.Title)
	assert.Empty(t, inv.DayID)
	require.Len(t, inv.Products, 1)
	assert.Equal(t, entity.Product{Description: "day of development", Quantity: 3, Price: 500}, inv.Products[0])
}

func TestExtractInvoiceServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid api key"))
	}))
	defer server.Close()

	c := NewClient(server.URL, "bad-key")
	_, err := c.ExtractInvoice(testWorkspace(), "anything")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestExtractInvoiceBadDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		answer := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"title": "x", "customer_id": "king_sarl", "date": {"day": "40", "month": "03", "year": "2015"}, "products": []}`}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(answer))
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	_, err := c.ExtractInvoice(testWorkspace(), "anything")
	assert.ErrorIs(t, err, entity.ErrInvalidDay)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", "")
	assert.Equal(t, DefaultAPIURL, c.apiURL)
}
