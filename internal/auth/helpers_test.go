// Copyright (c) 2025 Portal
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"portal/cli/internal/backend"
	"portal/cli/internal/store"
)

type apiCall struct {
	Method string
	Path   string
	Body   any
}

// fakeAPI answers every request through respond and records the calls.
type fakeAPI struct {
	mu      sync.Mutex
	calls   []apiCall
	respond func(method, path string, body any) (*backend.Response, error)
}

func (f *fakeAPI) do(method, path string, body any) (*backend.Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, apiCall{Method: method, Path: path, Body: body})
	f.mu.Unlock()
	return f.respond(method, path, body)
}

func (f *fakeAPI) PostData(_ context.Context, path string, body any) (*backend.Response, error) {
	return f.do(http.MethodPost, path, body)
}

func (f *fakeAPI) PutData(_ context.Context, path string, body any) (*backend.Response, error) {
	return f.do(http.MethodPut, path, body)
}

func (f *fakeAPI) GetVersion(context.Context) (string, error) { return "test", nil }

func (f *fakeAPI) Calls() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiCall(nil), f.calls...)
}

func respondWith(data map[string]any) func(string, string, any) (*backend.Response, error) {
	return func(string, string, any) (*backend.Response, error) {
		return &backend.Response{StatusCode: http.StatusOK, Data: data}, nil
	}
}

func respondErr(err error) func(string, string, any) (*backend.Response, error) {
	return func(string, string, any) (*backend.Response, error) {
		return nil, err
	}
}

// recordingStore counts writes and can be told to fail them.
type recordingStore struct {
	*store.Memory
	mu         sync.Mutex
	sets       int
	removes    int
	failSet    error
	failRemove error
}

func newRecordingStore() *recordingStore {
	return &recordingStore{Memory: store.NewMemory()}
}

func (r *recordingStore) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	r.sets++
	fail := r.failSet
	r.mu.Unlock()
	if fail != nil {
		return fail
	}
	return r.Memory.Set(ctx, key, value)
}

func (r *recordingStore) Remove(ctx context.Context, key string) error {
	r.mu.Lock()
	r.removes++
	fail := r.failRemove
	r.mu.Unlock()
	if fail != nil {
		return fail
	}
	return r.Memory.Remove(ctx, key)
}

func (r *recordingStore) Sets() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sets
}

func mustGet(t *testing.T, s store.Store, key string) string {
	t.Helper()
	v, err := s.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("store.Get(%q) error = %v", key, err)
	}
	return v
}

func assertMissing(t *testing.T, s store.Store, key string) {
	t.Helper()
	if _, err := s.Get(context.Background(), key); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("store.Get(%q) error = %v, want store.ErrNotFound", key, err)
	}
}

func decodeUser(t *testing.T, raw string) User {
	t.Helper()
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatalf("stored user is not JSON: %v", err)
	}
	return u
}
