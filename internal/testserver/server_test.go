package testserver_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"shramikadmin/internal/testserver"
)

func do(t *testing.T, method, url, token, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()

	resp, body := do(t, http.MethodGet, srv.URL()+"/api/specializations", "", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["success"] != false {
		t.Fatalf("body = %v", body)
	}

	resp, _ = do(t, http.MethodGet, srv.URL()+"/api/specializations", "garbage", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad token status = %d", resp.StatusCode)
	}
}

func TestLoginIssuesUsableToken(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()

	creds := `{"email":"` + testserver.AdminEmail + `","password":"` + testserver.AdminPassword + `"}`
	resp, body := do(t, http.MethodPost, srv.URL()+"/api/auth/login", "", creds)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d (%v)", resp.StatusCode, body)
	}
	data, _ := body["data"].(map[string]any)
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatalf("no token in %v", body)
	}

	resp, _ = do(t, http.MethodGet, srv.URL()+"/api/question-sets", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status with token = %d", resp.StatusCode)
	}

	srv.RevokeTokens()
	resp, _ = do(t, http.MethodGet, srv.URL()+"/api/question-sets", token, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status after revoke = %d", resp.StatusCode)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()

	resp, body := do(t, http.MethodPost, srv.URL()+"/api/auth/login", "",
		`{"email":"`+testserver.AdminEmail+`","password":"nope"}`)
	if resp.StatusCode != http.StatusUnauthorized || body["message"] != "Invalid email or password" {
		t.Fatalf("got %d %v", resp.StatusCode, body)
	}
}

func TestServeNextAndRequestCount(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	token := srv.IssueToken()

	srv.ServeNext(http.StatusInternalServerError, `{"success":false,"message":"down"}`)
	resp, body := do(t, http.MethodGet, srv.URL()+"/api/coin-pricing/jobSeeker", token, "")
	if resp.StatusCode != http.StatusInternalServerError || body["message"] != "down" {
		t.Fatalf("canned reply not served: %d %v", resp.StatusCode, body)
	}

	resp, _ = do(t, http.MethodGet, srv.URL()+"/api/coin-pricing/jobSeeker", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("second call status = %d", resp.StatusCode)
	}
	if srv.Requests() != 2 {
		t.Fatalf("requests = %d", srv.Requests())
	}
}

func TestUnknownCategory(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()

	resp, _ := do(t, http.MethodGet, srv.URL()+"/api/coin-pricing/admins", srv.IssueToken(), "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}
