package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irisrec/irisctl/internal/api"
	"github.com/irisrec/irisctl/internal/logging"
	"github.com/irisrec/irisctl/internal/models"
)

func TestUserService_All(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"success","total":2,"users":[
			{"id":1,"email":"a@b.co","nom":"Dupont","prenom":"Claire","role":"admin"},
			{"id":2,"email":"c@d.fr","nom":"Martin","prenom":"Paul","role":"user"}
		]}`))
	})

	svc := NewUserService(client, logging.NewDiscardLogger())
	resp, err := svc.All(context.Background())
	require.NoError(t, err)
	require.True(t, resp.OK())
	require.Len(t, resp.Users, 2)
	require.Equal(t, "Dupont", resp.Users[0].Surname)
	require.Equal(t, "Paul", resp.Users[1].Name)
}

func TestUserService_CheckEmail(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/check-email", r.URL.Path)
		require.Equal(t, "new.user@exemple.fr", r.URL.Query().Get("email"))
		_, _ = w.Write([]byte(`{"status":"success","exists":true,"email":"new.user@exemple.fr"}`))
	})

	svc := NewUserService(client, logging.NewDiscardLogger())
	exists, err := svc.CheckEmail(context.Background(), "new.user@exemple.fr")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestUserService_Enroll_SendsAllFields(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/iris/enroll", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(10<<20))

		require.Equal(t, "Dupont", r.FormValue("nom"))
		require.Equal(t, "Claire", r.FormValue("prenom"))
		require.Equal(t, "claire@exemple.fr", r.FormValue("email"))
		require.Equal(t, "user", r.FormValue("role"), "role defaults to user")
		require.Empty(t, r.FormValue("motDePasse"), "password omitted when unset")

		_, header, err := r.FormFile("irisImage")
		require.NoError(t, err)
		require.Equal(t, "iris.png", header.Filename)

		_ = json.NewEncoder(w).Encode(models.EnrollResponse{
			StatusResponse: models.StatusResponse{Status: "success"},
		})
	})

	svc := NewUserService(client, logging.NewDiscardLogger())
	resp, err := svc.Enroll(context.Background(), models.EnrollmentDraft{
		Surname: "Dupont",
		Name:    "Claire",
		Email:   "claire@exemple.fr",
	}, "iris.png", []byte("image-bytes"))
	require.NoError(t, err)
	require.True(t, resp.OK())
}

func TestUserService_Enroll_PasswordIncludedWhenSet(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		require.Equal(t, "s3cret", r.FormValue("motDePasse"))
		require.Equal(t, "admin", r.FormValue("role"))
		_, _ = w.Write([]byte(`{"status":"success"}`))
	})

	svc := NewUserService(client, logging.NewDiscardLogger())
	_, err := svc.Enroll(context.Background(), models.EnrollmentDraft{
		Surname:  "Dupont",
		Name:     "Claire",
		Email:    "claire@exemple.fr",
		Role:     "admin",
		Password: "s3cret",
	}, "iris.png", []byte("x"))
	require.NoError(t, err)
}

func TestUserService_Enroll_DuplicateImageRewrite(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"status":"error","message":"Duplicate entry for key 'code_unique'"}`))
	})

	svc := NewUserService(client, logging.NewDiscardLogger())
	_, err := svc.Enroll(context.Background(), models.EnrollmentDraft{
		Surname: "Dupont", Name: "Claire", Email: "claire@exemple.fr",
	}, "iris.png", []byte("x"))
	require.EqualError(t, err, api.MsgDuplicateImage)
}

func TestUserService_UpdateAndDelete(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/users/7":
			var u models.User
			require.NoError(t, json.NewDecoder(r.Body).Decode(&u))
			require.Equal(t, "Nouveau", u.Surname)
			_, _ = w.Write([]byte(`{"status":"success","message":"Utilisateur mis à jour avec succès"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/users/7":
			_, _ = w.Write([]byte(`{"status":"success","message":"Utilisateur supprimé avec succès"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{}`))
		}
	})

	svc := NewUserService(client, logging.NewDiscardLogger())

	upd, err := svc.Update(context.Background(), 7, models.User{Surname: "Nouveau"})
	require.NoError(t, err)
	require.True(t, upd.OK())

	del, err := svc.Delete(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, del.OK())
}
