package handlers

import (
	"testing"

	"github.com/danielhkuo/pollboard/auth"
	"github.com/danielhkuo/pollboard/middleware"
	"github.com/danielhkuo/pollboard/models"
	"github.com/danielhkuo/pollboard/store/inmemory"
	"github.com/danielhkuo/pollboard/testutil"
)

func TestUserDirectory(t *testing.T) {
	st := inmemory.New()
	sessions := auth.NewSessionManager()
	handler := NewUserHandler(st, sessions)

	testutil.SeedUser(t, st, "alice", "secret", true)
	testutil.SeedUser(t, st, "bob", "secret", false)
	testutil.SeedUser(t, st, "carol", "secret", true)
	testutil.SeedUser(t, st, "dave", "secret", false)

	cookie := testutil.LoginCookie(t, sessions, "alice")
	req := testutil.FormRequest("GET", "/users", nil)
	req.AddCookie(cookie)
	w := testutil.Serve(sessions, handler.Directory, req)

	var directory models.UserDirectory
	testutil.AssertJSON(t, w, &directory)

	staff := usernames(directory.Staff)
	nonStaff := usernames(directory.NonStaff)
	if len(staff) != 2 || staff[0] != "alice" || staff[1] != "carol" {
		t.Errorf("Unexpected staff list: %v", staff)
	}
	if len(nonStaff) != 2 || nonStaff[0] != "bob" || nonStaff[1] != "dave" {
		t.Errorf("Unexpected non-staff list: %v", nonStaff)
	}
}

func TestUserDirectoryEmpty(t *testing.T) {
	st := inmemory.New()
	sessions := auth.NewSessionManager()
	handler := NewUserHandler(st, sessions)

	cookie := testutil.LoginCookie(t, sessions, "alice")
	req := testutil.FormRequest("GET", "/users", nil)
	req.AddCookie(cookie)
	w := testutil.Serve(sessions, handler.Directory, req)

	var directory models.UserDirectory
	testutil.AssertJSON(t, w, &directory)

	// Empty lists serialize as [], not null.
	if directory.Staff == nil || directory.NonStaff == nil {
		t.Error("Expected empty lists, got nil")
	}
}

func TestUserDirectoryRequiresAuthentication(t *testing.T) {
	st := inmemory.New()
	sessions := auth.NewSessionManager()
	handler := NewUserHandler(st, sessions)
	guarded := middleware.RequireUser(sessions, handler.Directory)

	req := testutil.FormRequest("GET", "/users", nil)
	w := testutil.Serve(sessions, guarded, req)

	testutil.AssertRedirect(t, w, "/login")
}

func usernames(users []models.User) []string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Username
	}
	return names
}
