package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/trhieu-dev/tablebooking/controllers"
	"github.com/trhieu-dev/tablebooking/models"
)

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	userCtrl := controllers.NewUserController(db)

	router.POST("/register", userCtrl.Register)
	router.POST("/login", userCtrl.Login)

	auth := router.Group("/", fakeAuth(1, "user"))
	auth.GET("/profile", userCtrl.GetProfile)
	auth.PATCH("/profile", userCtrl.UpdateProfile)
	return router
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	router := setupUserRouter(db)

	payload, _ := json.Marshal(gin.H{
		"full_name": "Nguyễn Văn A",
		"phone":     "0901234567",
		"email":     "a@example.com",
		"password":  "secret123",
	})
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Password tersimpan dalam bentuk hash
	var user models.User
	assert.NoError(t, db.Where("email = ?", "a@example.com").First(&user).Error)
	assert.NotEqual(t, "secret123", user.Password)
	assert.Equal(t, "user", user.Role)

	login, _ := json.Marshal(gin.H{"email": "a@example.com", "password": "secret123"})
	req, _ = http.NewRequest("POST", "/login", bytes.NewBuffer(login))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "user", data["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.User{FullName: "A", Email: "a@example.com", Password: string(hashed), Role: "user"})

	router := setupUserRouter(db)
	login, _ := json.Marshal(gin.H{"email": "a@example.com", "password": "wrong"})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(login))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.User{FullName: "A", Email: "a@example.com", Password: "x", Role: "user"})

	router := setupUserRouter(db)
	payload, _ := json.Marshal(gin.H{"full_name": "B", "phone": "0909999999"})
	req, _ := http.NewRequest("PATCH", "/profile", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var fresh models.User
	db.First(&fresh, 1)
	assert.Equal(t, "B", fresh.FullName)
	assert.Equal(t, "0909999999", fresh.Phone)
}
