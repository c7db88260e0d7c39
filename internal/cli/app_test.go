package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irisrec/irisctl/internal/models"
)

type fakeStore struct {
	sess models.Session
}

func (f *fakeStore) Save(ctx context.Context, s models.Session) error { f.sess = s; return nil }
func (f *fakeStore) Current(ctx context.Context) (models.Session, error) {
	return f.sess, nil
}
func (f *fakeStore) Token(ctx context.Context) (string, error) { return f.sess.Token, nil }
func (f *fakeStore) IsAuthenticated(ctx context.Context) bool { return f.sess.Email != "" }
func (f *fakeStore) IsAdmin(ctx context.Context) bool { return f.sess.Role == "admin" }
func (f *fakeStore) Clear(ctx context.Context) error {
	f.sess = models.Session{}
	return nil
}

func testApp(input string) (*App, *bytes.Buffer, *fakeStore) {
	var out bytes.Buffer
	store := &fakeStore{}
	a := &App{
		store:  store,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
	}
	return a, &out, store
}

func TestGetStatus(t *testing.T) {
	a, _, store := testApp("")

	require.Equal(t, "(non connecté)", a.getStatus())

	store.sess = models.Session{Email: "alice@example.com", Role: "user"}
	require.Equal(t, "(alice@example.com)", a.getStatus())

	store.sess = models.Session{Email: "root@example.com", Role: "admin"}
	require.Equal(t, "(root@example.com admin)", a.getStatus())
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"o\n", true},
		{"oui\n", true},
		{"y\n", true},
		{"n\n", false},
		{"non\n", false},
		{"\n", false},
	}

	for _, tc := range tests {
		a, out, _ := testApp(tc.input)
		got := a.Confirm("Continuer ?")
		require.Equal(t, tc.expected, got, "input %q", tc.input)
		require.Contains(t, out.String(), "Continuer ? (o/n)")
	}
}

func TestIsLoggedIn(t *testing.T) {
	a, _, store := testApp("")

	require.False(t, a.isLoggedIn())
	store.sess = models.Session{Email: "alice@example.com"}
	require.True(t, a.isLoggedIn())
}
