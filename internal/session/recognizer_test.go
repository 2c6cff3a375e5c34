package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"sessions-service/internal/store"
)

func seedStore(t *testing.T, st *store.State) *store.FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessions.json")
	fs := store.NewFileStore(path)
	if err := fs.Save(context.Background(), st); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return fs
}

func TestParseCookieHeader(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"single", "session_id=42", map[string]string{"session_id": "42"}},
		{"multiple", "session_id=42; foo=bar", map[string]string{"session_id": "42", "foo": "bar"}},
		{"double equals dropped", "session_id=42=43", map[string]string{}},
		{"no equals dropped", "garbage; foo=bar", map[string]string{"foo": "bar"}},
		{"malformed pair does not poison rest", "a=1; b=2=3; c=4", map[string]string{"a": "1", "c": "4"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseCookieHeader(tc.header)
			if len(got) != len(tc.want) {
				t.Fatalf("got %#v, want %#v", got, tc.want)
			}
			for k, v := range tc.want {
				if got[k] != v {
					t.Fatalf("got %#v, want %#v", got, tc.want)
				}
			}
		})
	}
}

func TestRecognizeKnownToken(t *testing.T) {
	st := store.NewState()
	st.Users["alice"] = store.User{PasswordHash: "x", SessionID: 42}
	st.Sessions["42"] = "alice"
	rec := NewRecognizer(seedStore(t, st))

	id, err := rec.Recognize(context.Background(), "session_id=42; foo=bar")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if !id.Authenticated || id.Username != "alice" || id.SessionID != 42 {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestRecognizeNegativeOutcomes(t *testing.T) {
	st := store.NewState()
	st.Users["alice"] = store.User{PasswordHash: "x", SessionID: 42}
	st.Sessions["42"] = "alice"
	rec := NewRecognizer(seedStore(t, st))

	headers := []string{
		"",
		"foo=bar",
		"session_id=999",
		"session_id=42=43",
		"session_id=",
	}
	for _, header := range headers {
		id, err := rec.Recognize(context.Background(), header)
		if err != nil {
			t.Fatalf("Recognize(%q): %v", header, err)
		}
		if id.Authenticated {
			t.Fatalf("Recognize(%q) authenticated unexpectedly", header)
		}
	}
}

func TestRecognizeIdempotent(t *testing.T) {
	st := store.NewState()
	st.Users["alice"] = store.User{PasswordHash: "x", SessionID: 7}
	st.Sessions["7"] = "alice"
	rec := NewRecognizer(seedStore(t, st))

	first, err := rec.Recognize(context.Background(), "session_id=7")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := rec.Recognize(context.Background(), "session_id=7")
		if err != nil {
			t.Fatalf("Recognize: %v", err)
		}
		if again != first {
			t.Fatalf("recognition not idempotent: %+v vs %+v", again, first)
		}
	}
}

func TestRecognizeStoreUnavailable(t *testing.T) {
	// No file behind the store: loading must fail, not authenticate.
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	rec := NewRecognizer(fs)

	id, err := rec.Recognize(context.Background(), "session_id=42")
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if id.Authenticated {
		t.Fatal("authenticated despite unavailable store")
	}
}
