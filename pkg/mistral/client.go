// Package mistral extracts invoice parameters from a free-text description
// through the Mistral chat-completions API. A JSON schema in the request
// constrains the model output to an invoice document.
package mistral

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/plouvier/facture/pkg/entity"
)

// DefaultAPIURL is the production chat-completions endpoint.
const DefaultAPIURL = "https://api.mistral.ai/v1/chat/completions"

// Workspace is the slice of the store the extraction needs: the customer
// ids the model may pick from and the settings carrying the user context.
type Workspace interface {
	AllCustomers() (map[string]entity.Customer, error)
	Settings() (entity.Settings, error)
}

// Client provides access to the Mistral API.
type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Mistral client. An empty apiURL falls back to the
// production endpoint. An empty apiKey defers to the key stored in the
// workspace settings at request time.
func NewClient(apiURL, apiKey string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type invoiceDocument struct {
	Title      string `json:"title"`
	CustomerID string `json:"customer_id"`
	Date       struct {
		Day   string `json:"day"`
		Month string `json:"month"`
		Year  string `json:"year"`
	} `json:"date"`
	Products []entity.Product `json:"products"`
}

// ExtractInvoice sends the description to the model and parses its answer
// into an invoice. The result carries no day id; the store allocates one
// when the invoice is persisted.
func (c *Client) ExtractInvoice(ws Workspace, prompt string) (entity.Invoice, error) {
	body, key, err := c.buildRequest(ws, prompt)
	if err != nil {
		return entity.Invoice{}, err
	}

	slog.Debug("Mistral request body", "body", body)

	req, err := http.NewRequest("POST", c.apiURL, strings.NewReader(body))
	if err != nil {
		return entity.Invoice{}, err
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("failed to call Mistral API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		return entity.Invoice{}, fmt.Errorf("error response from server, status %s: %s", resp.Status, string(text))
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return entity.Invoice{}, fmt.Errorf("failed to decode API response: %w", err)
	}
	if len(apiResp.Choices) == 0 {
		return entity.Invoice{}, fmt.Errorf("empty response from server")
	}

	return parseInvoice(apiResp.Choices[0].Message.Content)
}

// buildRequest substitutes the placeholders of the compiled-in template and
// resolves the API key, preferring the one the client was built with over
// the one stored in settings.
func (c *Client) buildRequest(ws Workspace, prompt string) (body, key string, err error) {
	customers, err := ws.AllCustomers()
	if err != nil {
		return "", "", err
	}
	ids := make([]string, 0, len(customers))
	for id := range customers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	settings, err := ws.Settings()
	if err != nil {
		return "", "", err
	}

	key = c.apiKey
	if key == "" {
		key = settings.MistralAPIKey
	}

	body = strings.NewReplacer(
		customerListKey, jsonText(strings.Join(ids, ", ")),
		userPromptKey, jsonText(prompt),
		currentDateKey, time.Now().Format("2006-01-02"),
		userPreferenceKey, jsonText(settings.LLMInstruct),
	).Replace(requestBodyTemplate)
	return body, key, nil
}

func parseInvoice(content string) (entity.Invoice, error) {
	var doc invoiceDocument
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return entity.Invoice{}, fmt.Errorf("failed to parse invoice from model answer: %w", err)
	}

	day, err := entity.NewDay(doc.Date.Day)
	if err != nil {
		return entity.Invoice{}, err
	}
	month, err := entity.NewMonth(doc.Date.Month)
	if err != nil {
		return entity.Invoice{}, err
	}
	year, err := entity.NewYear(doc.Date.Year)
	if err != nil {
		return entity.Invoice{}, err
	}

	return entity.Invoice{
		Date:       entity.Date{Day: day, Month: month, Year: year},
		CustomerID: doc.CustomerID,
		Title:      doc.Title,
		Products:   doc.Products,
	}, nil
}

// jsonText escapes a value for inline substitution inside a JSON string.
func jsonText(s string) string {
	quoted, _ := json.Marshal(s)
	return string(quoted[1 : len(quoted)-1])
}
