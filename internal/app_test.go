package app_test

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"uni-seeder/internal/apptest"
	"uni-seeder/internal/dto"
	"uni-seeder/internal/model"
)

type response struct {
	status int
	body   []byte
}

func call(t *testing.T, method, url, token string, body any) response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return response{resp.StatusCode, raw}
}

func register(t *testing.T, base string, req dto.RegisterRequest) dto.AuthResponse {
	t.Helper()
	resp := call(t, http.MethodPost, base+"/auth/register", "", req)
	require.Equal(t, http.StatusCreated, resp.status, string(resp.body))
	var out dto.AuthResponse
	require.NoError(t, json.Unmarshal(resp.body, &out))
	return out
}

func TestRehearsalAPI_Auth(t *testing.T) {
	srv := apptest.Start(t)

	out := register(t, srv.URL, dto.RegisterRequest{
		Email: "student1@uni54.edu", Name: "Alice Johnson", Password: "password123",
		Role: model.RoleStudent, University: "54", Degree: "Computer Science", OpenToContact: true,
	})
	require.Equal(t, model.ID("1"), out.User.ID)
	require.Equal(t, model.ID("54"), out.User.UniversityID)
	require.NotEmpty(t, out.Token)

	cases := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{name: "RegisterDuplicate", path: "/auth/register", body: dto.RegisterRequest{Email: "student1@uni54.edu", Name: "X", Password: "p"}, status: http.StatusBadRequest},
		{name: "RegisterMissingFields", path: "/auth/register", body: map[string]string{"email": "a@b"}, status: http.StatusBadRequest},
		{name: "LoginMissingFields", path: "/auth/login", body: map[string]string{}, status: http.StatusBadRequest},
		{name: "LoginWrongPassword", path: "/auth/login", body: dto.LoginRequest{Email: "student1@uni54.edu", Password: "nope"}, status: http.StatusUnauthorized},
		{name: "LoginOK", path: "/auth/login", body: dto.LoginRequest{Email: "student1@uni54.edu", Password: "password123"}, status: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := call(t, http.MethodPost, srv.URL+tc.path, "", tc.body)
			require.Equal(t, tc.status, resp.status, string(resp.body))
		})
	}
}

func TestRehearsalAPI_UndecodableBody(t *testing.T) {
	srv := apptest.Start(t)

	for _, path := range []string{"/auth/register", "/auth/login", "/country"} {
		resp := call(t, http.MethodPost, srv.URL+path, "", "not an object")
		require.Equal(t, http.StatusBadRequest, resp.status, path)
		require.JSONEq(t, `{"error":"bad request"}`, string(resp.body), path)
	}
}

func TestRehearsalAPI_Forum(t *testing.T) {
	srv := apptest.Start(t)
	token := register(t, srv.URL, dto.RegisterRequest{Email: "a@uni54.edu", Name: "A", Password: "p"}).Token

	topicReq := dto.CreateTopicRequest{Title: "Tips", Category: "General", InitialPost: "Hello"}

	resp := call(t, http.MethodPost, srv.URL+"/forum/university/54/topics", "", topicReq)
	require.Equal(t, http.StatusUnauthorized, resp.status)

	resp = call(t, http.MethodPost, srv.URL+"/forum/university/54/topics", token, topicReq)
	require.Equal(t, http.StatusCreated, resp.status, string(resp.body))
	var topic model.Topic
	require.NoError(t, json.Unmarshal(resp.body, &topic))
	require.Equal(t, "Tips", topic.Title)
	require.Len(t, topic.Posts, 1)

	resp = call(t, http.MethodPost, srv.URL+"/forum/topic/"+topic.ID.String()+"/posts", token, dto.CreatePostRequest{Content: "Reply"})
	require.Equal(t, http.StatusCreated, resp.status)

	resp = call(t, http.MethodPost, srv.URL+"/forum/topic/999/posts", token, dto.CreatePostRequest{Content: "Reply"})
	require.Equal(t, http.StatusNotFound, resp.status)

	resp = call(t, http.MethodPost, srv.URL+"/forum/topic/abc/posts", token, dto.CreatePostRequest{Content: "Reply"})
	require.Equal(t, http.StatusBadRequest, resp.status)

	resp = call(t, http.MethodGet, srv.URL+"/forum/university/54/topics", "", nil)
	require.Equal(t, http.StatusOK, resp.status)
	var topics []model.Entity
	require.NoError(t, json.Unmarshal(resp.body, &topics))
	require.Len(t, topics, 1)

	resp = call(t, http.MethodGet, srv.URL+"/forum/university/7/topics", "", nil)
	require.JSONEq(t, `[]`, string(resp.body))
}

func TestRehearsalAPI_Reference(t *testing.T) {
	srv := apptest.Start(t, apptest.UniqueNames)

	resp := call(t, http.MethodPost, srv.URL+"/country", "", dto.CreateCountryRequest{Name: "Testland", Code: "TL"})
	require.Equal(t, http.StatusCreated, resp.status)
	resp = call(t, http.MethodPost, srv.URL+"/country", "", dto.CreateCountryRequest{Name: "Testland", Code: "TL"})
	require.Equal(t, http.StatusConflict, resp.status)

	resp = call(t, http.MethodPost, srv.URL+"/city", "", dto.CreateCityRequest{Name: "Testville", CountryID: "9", Latitude: 1.5})
	require.Equal(t, http.StatusNotFound, resp.status)
	resp = call(t, http.MethodPost, srv.URL+"/city", "", dto.CreateCityRequest{Name: "Testville", CountryID: ""})
	require.Equal(t, http.StatusBadRequest, resp.status)
	resp = call(t, http.MethodPost, srv.URL+"/city", "", dto.CreateCityRequest{Name: "Testville", CountryID: "1", Latitude: 1.5, Longitude: "east"})
	require.Equal(t, http.StatusCreated, resp.status, string(resp.body))

	resp = call(t, http.MethodPost, srv.URL+"/university", "", dto.CreateUniversityRequest{Name: "Uni A", CountryID: "1", CityID: "2"})
	require.Equal(t, http.StatusNotFound, resp.status)
	resp = call(t, http.MethodPost, srv.URL+"/university", "", dto.CreateUniversityRequest{Name: "Uni A", CountryID: "1", CityID: "1", IsPublic: true})
	require.Equal(t, http.StatusCreated, resp.status)

	for path, want := range map[string]string{
		"/country":    `[{"id":1,"name":"Testland","code":"TL"}]`,
		"/city":       `[{"id":1,"name":"Testville","countryId":1,"latitude":1.5,"longitude":"east"}]`,
		"/university": `[{"id":1,"name":"Uni A","countryId":1,"cityId":1,"isPublic":true}]`,
	} {
		resp = call(t, http.MethodGet, srv.URL+path, "", nil)
		require.Equal(t, http.StatusOK, resp.status)
		require.JSONEq(t, want, string(resp.body), path)
	}
}

func TestRehearsalAPI_RequireAdmin(t *testing.T) {
	srv := apptest.Start(t, apptest.RequireAdmin)
	student := register(t, srv.URL, dto.RegisterRequest{Email: "s@x", Name: "S", Password: "p", Role: model.RoleStudent}).Token
	admin := register(t, srv.URL, dto.RegisterRequest{Email: "a@x", Name: "A", Password: "p", Role: model.RoleAdmin}).Token

	body := dto.CreateCountryRequest{Name: "Testland", Code: "TL"}
	require.Equal(t, http.StatusUnauthorized, call(t, http.MethodPost, srv.URL+"/country", "", body).status)
	require.Equal(t, http.StatusForbidden, call(t, http.MethodPost, srv.URL+"/country", student, body).status)
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, srv.URL+"/country", admin, body).status)
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, srv.URL+"/country", "", nil).status)
}
