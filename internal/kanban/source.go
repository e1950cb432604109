package kanban

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
)

// HTTPSource talks to the CRM REST API with a bearer token.
type HTTPSource struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

// NewHTTPSource returns a source for the API rooted at baseURL, e.g. "http://localhost:8080/api/v1".
func NewHTTPSource(baseURL, token string) *HTTPSource {
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

var _ Source = (*HTTPSource)(nil)

func (s *HTTPSource) LoadColumns(ctx context.Context) (domain.KanbanColumns, error) {
	req, err := s.newRequest(ctx, http.MethodGet, "/sales-funnel/kanban", nil)
	if err != nil {
		return nil, err
	}
	var cols domain.KanbanColumns
	if err := s.do(req, &cols); err != nil {
		return nil, fmt.Errorf("load kanban columns: %w", err)
	}
	return cols, nil
}

func (s *HTTPSource) MoveStage(ctx context.Context, itemID string, stage domain.Stage) error {
	body, err := json.Marshal(map[string]domain.Stage{"stage": stage})
	if err != nil {
		return err
	}
	req, err := s.newRequest(ctx, http.MethodPatch, "/sales-funnel/"+itemID+"/stage", body)
	if err != nil {
		return err
	}
	if err := s.do(req, nil); err != nil {
		return fmt.Errorf("move %s to %s: %w", itemID, stage, err)
	}
	return nil
}

func (s *HTTPSource) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	return req, nil
}

func (s *HTTPSource) do(req *http.Request, out any) error {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("server returned %s: %s", resp.Status, apiErr.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// StageMover is the subset of the opportunity service the board needs.
type StageMover interface {
	KanbanColumns(ctx context.Context) (domain.KanbanColumns, error)
	MoveStage(ctx context.Context, actorID, id string, stage domain.Stage) (*domain.Opportunity, error)
}

// ServiceSource drives the board in-process through the opportunity service.
type ServiceSource struct {
	Service StageMover
	ActorID string
}

var _ Source = ServiceSource{}

func (s ServiceSource) LoadColumns(ctx context.Context) (domain.KanbanColumns, error) {
	return s.Service.KanbanColumns(ctx)
}

func (s ServiceSource) MoveStage(ctx context.Context, itemID string, stage domain.Stage) error {
	_, err := s.Service.MoveStage(ctx, s.ActorID, itemID, stage)
	return err
}
