package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mohitt09/Counselling/models"
)

func newCredentialsRouter(cc *CredentialsController) *gin.Engine {
	r := gin.New()
	g := r.Group("/api/credentials")
	g.POST("", cc.Create)
	g.POST("/login", cc.Login)
	return r
}

func seedCredentials(t *testing.T, db *gorm.DB, username, password string, credType int, profileID string) models.Credentials {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	credentials := models.Credentials{
		Username:  username,
		Password:  string(hashed),
		Type:      credType,
		ProfileID: profileID,
	}
	if err := db.Create(&credentials).Error; err != nil {
		t.Fatalf("seed credentials: %v", err)
	}
	return credentials
}

func TestCredentialsCreate(t *testing.T) {
	db := newTestDB(t)
	r := newCredentialsRouter(NewCredentialsController(db, testJWTSecret))

	w := doJSON(t, r, http.MethodPost, "/api/credentials", gin.H{
		"username":  "drhouse",
		"password":  "vicodin",
		"type":      models.CredentialDoctor,
		"profileId": "doc-1",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if _, ok := body["password"]; ok {
		t.Error("password must never appear in responses")
	}
	if body["profileId"] != "doc-1" {
		t.Errorf("profileId = %v", body["profileId"])
	}

	var stored models.Credentials
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("read credentials: %v", err)
	}
	if stored.Password == "vicodin" {
		t.Error("password must be stored hashed")
	}
}

func TestCredentialsCreateValidation(t *testing.T) {
	db := newTestDB(t)
	r := newCredentialsRouter(NewCredentialsController(db, testJWTSecret))

	w := doJSON(t, r, http.MethodPost, "/api/credentials", gin.H{
		"username": "drhouse",
		"password": "vicodin",
		"type":     models.CredentialDoctor,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if msgs := validationMessages(t, w); !containsMessage(msgs, "Doctor ID is required") {
		t.Errorf("missing profileId message in %v", msgs)
	}
}

func TestCredentialsLoginAdminType(t *testing.T) {
	db := newTestDB(t)
	r := newCredentialsRouter(NewCredentialsController(db, testJWTSecret))
	seedCredentials(t, db, "reception", "letmein", models.CredentialAdmin, "admin-1")

	w := doJSON(t, r, http.MethodPost, "/api/credentials/login", gin.H{
		"username": "reception",
		"password": "letmein",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["token"] == nil || body["token"] == "" {
		t.Error("admin login must issue a token")
	}
	if body["type"] != float64(models.CredentialAdmin) || body["profileId"] != "admin-1" {
		t.Errorf("unexpected response: %v", body)
	}
}

func TestCredentialsLoginDoctorType(t *testing.T) {
	db := newTestDB(t)
	r := newCredentialsRouter(NewCredentialsController(db, testJWTSecret))
	seedCredentials(t, db, "drhouse", "vicodin", models.CredentialDoctor, "doc-1")

	w := doJSON(t, r, http.MethodPost, "/api/credentials/login", gin.H{
		"username": "drhouse",
		"password": "vicodin",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["docToken"] == nil || body["docToken"] == "" {
		t.Error("doctor login must issue a docToken")
	}
	if _, ok := body["token"]; ok {
		t.Error("doctor login must not issue an admin token")
	}
	if body["profileId"] != "doc-1" {
		t.Errorf("profileId = %v", body["profileId"])
	}
}

func TestCredentialsLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	r := newCredentialsRouter(NewCredentialsController(db, testJWTSecret))
	seedCredentials(t, db, "drhouse", "vicodin", models.CredentialDoctor, "doc-1")

	w := doJSON(t, r, http.MethodPost, "/api/credentials/login", gin.H{
		"username": "drhouse",
		"password": "ibuprofen",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["message"] != "Invalid password" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestCredentialsLoginUnknownUser(t *testing.T) {
	db := newTestDB(t)
	r := newCredentialsRouter(NewCredentialsController(db, testJWTSecret))

	w := doJSON(t, r, http.MethodPost, "/api/credentials/login", gin.H{
		"username": "nobody",
		"password": "whatever",
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["error"] != "Credentials not found" {
		t.Errorf("error = %v", body["error"])
	}
}
