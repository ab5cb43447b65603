package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/getgradient/gradient/core/user"
)

func Test_userApi_register(t *testing.T) {
	tests := []httpTest{
		{
			name:     "valid signup",
			body:     []byte(`{"name": "Ken Bos", "email": "ken@test.com", "password": "LePassw0rd", "password_confirm": "LePassw0rd"}`),
			wantCode: http.StatusCreated,
		},
		{
			name:     "password mismatch",
			body:     []byte(`{"name": "Jane Doe", "email": "jane@test.com", "password": "LePassw0rd", "password_confirm": "nope"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing email",
			body:     []byte(`{"name": "Jane Doe", "password": "LePassw0rd", "password_confirm": "LePassw0rd"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "duplicate email",
			body:     []byte(`{"name": "Ken Again", "email": "ken@test.com", "password": "LePassw0rd", "password_confirm": "LePassw0rd"}`),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/users/register", tt.body)
			app.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("code = %v; want %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantCode != http.StatusCreated {
				return
			}

			var resp struct {
				Token string    `json:"token"`
				User  user.User `json:"user"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Token == "" {
				t.Error("expected a token")
			}
			if resp.User.Email != "ken@test.com" || resp.User.IsAdmin {
				t.Errorf("unexpected user: %+v", resp.User)
			}
		})
	}
}

func Test_userApi_login(t *testing.T) {
	createUser(t, "Login Guy", "login@test.com", "LePassw0rd", false, true)
	createUser(t, "Sleeping Guy", "inactive@test.com", "LePassw0rd", false, false)

	tests := []httpTest{
		{
			name:     "valid credentials",
			body:     []byte(`{"email": "login@test.com", "password": "LePassw0rd"}`),
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong password",
			body:     []byte(`{"email": "login@test.com", "password": "nope"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown email",
			body:     []byte(`{"email": "who@test.com", "password": "LePassw0rd"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "deactivated account",
			body:     []byte(`{"email": "inactive@test.com", "password": "LePassw0rd"}`),
			wantCode: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/users/login", tt.body)
			app.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("code = %v; want %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}

			var resp struct {
				Token string `json:"token"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Token == "" {
				t.Error("expected a token")
			}
		})
	}
}

func Test_userApi_me(t *testing.T) {
	usr := createUser(t, "Me Guy", "me@test.com", "LePassw0rd", false, true)

	tests := []httpTest{
		{name: "auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "own profile", token: getToken(t, usr), wantCode: http.StatusOK, wantData: marchallObj(t, usr)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, "/v1/users/me", tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_userApi_tokenRefresh(t *testing.T) {
	usr := createUser(t, "Refresh Guy", "refresh@test.com", "LePassw0rd", false, true)

	req, rec := newAuthRequest(http.MethodPost, "/v1/users/token-refresh", getToken(t, usr))
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" {
		t.Error("expected a refreshed token")
	}
}

func Test_userApi_query_adminOnly(t *testing.T) {
	usr := createUser(t, "Pleb", "pleb@test.com", "LePassw0rd", false, true)
	admin := createUser(t, "Boss", "boss@test.com", "LePassw0rd", true, true)

	tests := []httpTest{
		{name: "auth required", wantCode: http.StatusUnauthorized},
		{name: "admin required", token: getToken(t, usr), wantCode: http.StatusForbidden},
		{name: "admin ok", token: getToken(t, admin), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, "/v1/users", tt.token)
			app.ServeHTTP(rec, req)
			if rec.Code != tt.wantCode {
				t.Errorf("code = %v; want %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}
}

func Test_userApi_passwordReset(t *testing.T) {
	createUser(t, "Forgetful", "forgot@test.com", "LePassw0rd", false, true)

	// the response is identical whether or not the account exists
	for _, email := range []string{"forgot@test.com", "nobody@test.com"} {
		req, rec := newRequest(http.MethodPost, "/v1/users/password-reset", []byte(`{"email": "`+email+`"}`))
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("code = %v; body %s", rec.Code, rec.Body.String())
		}
	}
}

func Test_userApi_update_ownProfile(t *testing.T) {
	usr := createUser(t, "Old Name", "rename@test.com", "LePassw0rd", false, true)

	body := []byte(`{"name": "New Name"}`)
	req, rec := newAuthRequest(http.MethodPut, "/v1/users/"+usr.ID, getToken(t, usr), body)
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
	}
	var resp user.User
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Name != "New Name" {
		t.Errorf("name = %q; want %q", resp.Name, "New Name")
	}

	// non-admin cannot deactivate themselves
	req, rec = newAuthRequest(http.MethodPut, "/v1/users/"+usr.ID, getToken(t, usr), []byte(`{"is_active": false}`))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("code = %v; want %v", rec.Code, http.StatusForbidden)
	}
}

func Test_userApi_destroy(t *testing.T) {
	victim := createUser(t, "Victim", "victim@test.com", "LePassw0rd", false, true)
	admin := createUser(t, "Destroyer", "destroyer@test.com", "LePassw0rd", true, true)

	// admin cannot delete themselves
	req, rec := newAuthRequest(http.MethodDelete, "/v1/users/"+admin.ID, getToken(t, admin))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("self-delete: code = %v; want %v", rec.Code, http.StatusForbidden)
	}

	req, rec = newAuthRequest(http.MethodDelete, "/v1/users/"+victim.ID, getToken(t, admin))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("code = %v; want %v; body %s", rec.Code, http.StatusNoContent, rec.Body.String())
	}
}
