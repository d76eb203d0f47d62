//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"
)

type stateResponse struct {
	State struct {
		ClickPower  int64 `json:"click_power"`
		TotalClicks int64 `json:"total_clicks"`
	} `json:"state"`
	Breakdown struct {
		TotalMultiplier     float64 `json:"total_multiplier"`
		EffectiveClickPower int64   `json:"effective_click_power"`
	} `json:"breakdown"`
	RebirthCost int64 `json:"rebirth_cost"`
}

func TestGetState(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/state", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var state stateResponse
	if err := json.Unmarshal(body, &state); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if state.State.ClickPower < 1 {
		t.Errorf("Expected click power >= 1, got %d", state.State.ClickPower)
	}
	if state.Breakdown.TotalMultiplier < 1 {
		t.Errorf("Expected total multiplier >= 1, got %f", state.Breakdown.TotalMultiplier)
	}
	if state.RebirthCost < 1_000_000 {
		t.Errorf("Expected rebirth cost >= 1M, got %d", state.RebirthCost)
	}
}

func TestClick(t *testing.T) {
	resp, body := makeRequest(t, "POST", "/api/v1/click", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var result struct {
		Earned int64 `json:"earned"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if result.Earned < 1 {
		t.Errorf("Expected earned >= 1, got %d", result.Earned)
	}
}

func TestGetChat(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/chat/", nil)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestUnknownUpgradeRejected(t *testing.T) {
	resp, _ := makeRequest(t, "POST", "/api/v1/upgrade", map[string]string{"upgrade_id": "does_not_exist"})

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestAdminEventRequiresKey(t *testing.T) {
	if os.Getenv("ADMIN_KEY") != "" {
		t.Skip("ADMIN_KEY set, request would be authorized")
	}

	resp, _ := makeRequest(t, "POST", "/api/v1/admin/event", map[string]interface{}{
		"name": "Double Studs", "type": "currency", "multiplier": 2, "duration_seconds": 10,
	})

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}
