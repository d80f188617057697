package synapseadmin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQueryUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/_synapse/admin/v2/users/@admin:localhost" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"name":"@admin:localhost","admin":true,"deactivated":false}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	user, err := client.QueryUser(context.Background(), "@admin:localhost")
	if err != nil {
		t.Fatalf("QueryUser() error = %v", err)
	}
	if user["name"] != "@admin:localhost" {
		t.Errorf("name = %v", user["name"])
	}
	if user["admin"] != true {
		t.Errorf("admin = %v, want true", user["admin"])
	}
}

func TestQueryUser_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"User not found"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.QueryUser(context.Background(), "@ghost:localhost")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "User not found" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestDeactivateUser(t *testing.T) {
	tests := []struct {
		name      string
		opts      []DeactivateOption
		wantErase bool
	}{
		{"default", nil, false},
		{"with erase", []DeactivateOption{WithErase()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var call recordedCall

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				call = recordedCall{Method: r.Method, Path: r.URL.Path}
				json.NewDecoder(r.Body).Decode(&call.Body)
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)

			if err := client.DeactivateUser(context.Background(), "@bob:localhost", tt.opts...); err != nil {
				t.Fatalf("DeactivateUser() error = %v", err)
			}

			if call.Method != "POST" || call.Path != "/_synapse/admin/v1/deactivate/@bob:localhost" {
				t.Errorf("request = %s %s", call.Method, call.Path)
			}
			if call.Body["erase"] != tt.wantErase {
				t.Errorf("body.erase = %v, want %v", call.Body["erase"], tt.wantErase)
			}
		})
	}
}

func TestResetPassword(t *testing.T) {
	tests := []struct {
		name       string
		opts       []ResetPasswordOption
		wantLogout bool
	}{
		{"default logs out devices", nil, true},
		{"keep devices", []ResetPasswordOption{WithKeepDevices()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var call recordedCall

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				call = recordedCall{Method: r.Method, Path: r.URL.Path}
				json.NewDecoder(r.Body).Decode(&call.Body)
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)

			if err := client.ResetPassword(context.Background(), "@bob:localhost", "hunter2", tt.opts...); err != nil {
				t.Fatalf("ResetPassword() error = %v", err)
			}

			if call.Path != "/_synapse/admin/v1/reset_password/@bob:localhost" {
				t.Errorf("path = %s", call.Path)
			}
			if call.Body["new_password"] != "hunter2" {
				t.Errorf("body.new_password = %v", call.Body["new_password"])
			}
			if call.Body["logout_devices"] != tt.wantLogout {
				t.Errorf("body.logout_devices = %v, want %v", call.Body["logout_devices"], tt.wantLogout)
			}
		})
	}
}

func TestIsUserAdmin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/_synapse/admin/v1/users/@bob:localhost/admin" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"admin":true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	admin, err := client.IsUserAdmin(context.Background(), "@bob:localhost")
	if err != nil {
		t.Fatalf("IsUserAdmin() error = %v", err)
	}
	if !admin {
		t.Error("admin = false, want true")
	}
}

func TestSetUserAdmin(t *testing.T) {
	var call recordedCall

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call = recordedCall{Method: r.Method, Path: r.URL.Path}
		json.NewDecoder(r.Body).Decode(&call.Body)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	if err := client.SetUserAdmin(context.Background(), "@bob:localhost", true); err != nil {
		t.Fatalf("SetUserAdmin() error = %v", err)
	}

	if call.Method != "PUT" || call.Path != "/_synapse/admin/v1/users/@bob:localhost/admin" {
		t.Errorf("request = %s %s", call.Method, call.Path)
	}
	if call.Body["admin"] != true {
		t.Errorf("body.admin = %v, want true", call.Body["admin"])
	}
}
