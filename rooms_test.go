package synapseadmin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJoinUserToRoom(t *testing.T) {
	var call recordedCall

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call = recordedCall{Method: r.Method, Path: r.URL.Path}
		json.NewDecoder(r.Body).Decode(&call.Body)
		// Response body is discarded by the client.
		w.Write([]byte(`{"room_id":"room1"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	if err := client.JoinUserToRoom(context.Background(), "room1", "@u:x"); err != nil {
		t.Fatalf("JoinUserToRoom() error = %v", err)
	}

	if call.Method != "POST" || call.Path != "/_synapse/admin/v1/join/room1" {
		t.Errorf("request = %s %s, want POST /_synapse/admin/v1/join/room1", call.Method, call.Path)
	}
	if call.Body["user_id"] != "@u:x" {
		t.Errorf("body.user_id = %v, want @u:x", call.Body["user_id"])
	}
}

func TestJoinUserToRoom_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"unknown room"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.JoinUserToRoom(context.Background(), "room1", "@u:x")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestRoomMembers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/_synapse/admin/v1/rooms/!room:localhost/members" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"members":["@a:x","@b:x"],"total":2}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	members, err := client.RoomMembers(context.Background(), "!room:localhost")
	if err != nil {
		t.Fatalf("RoomMembers() error = %v", err)
	}
	if members["total"] != float64(2) {
		t.Errorf("total = %v, want 2", members["total"])
	}
	list, ok := members["members"].([]any)
	if !ok || len(list) != 2 {
		t.Errorf("members = %v, want 2 entries", members["members"])
	}
}
