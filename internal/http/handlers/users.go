package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	intconfig "fleetops/internal/config"
	"fleetops/internal/domain/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const userSelect = `
	SELECT id, name, username, email, COALESCE(phone,''), role, status, created_at, updated_at
	FROM users
`

// GET /api/users
func GetUsers(c *gin.Context) {
	rows, err := intconfig.DB.Query(userSelect + ` ORDER BY id`)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch users", err)
		return
	}
	defer rows.Close()

	list := []models.PublicUser{}
	for rows.Next() {
		var u models.PublicUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to scan user", err)
			return
		}
		list = append(list, u)
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}

	var u models.PublicUser
	err = intconfig.DB.QueryRow(userSelect+` WHERE id = ? LIMIT 1`, id).
		Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondError(c, http.StatusNotFound, "user not found", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to fetch user", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type userPayload struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var payload userPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if strings.TrimSpace(payload.Password) == "" {
		RespondError(c, http.StatusBadRequest, "password is required", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	role := strings.TrimSpace(payload.Role)
	if role == "" {
		role = "staff"
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = "active"
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, payload.Name, payload.Username, payload.Email, payload.Phone, string(hash), role, status)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create user", err)
		return
	}
	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"message": "user created", "id": id})
}

// PUT /api/users/:id
func UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	var payload userPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	sets := []string{"name = ?", "username = ?", "email = ?", "phone = ?", "updated_at = NOW()"}
	args := []any{payload.Name, payload.Username, payload.Email, payload.Phone}
	if strings.TrimSpace(payload.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
			return
		}
		sets = append(sets, "password_hash = ?")
		args = append(args, string(hash))
	}
	if strings.TrimSpace(payload.Role) != "" {
		sets = append(sets, "role = ?")
		args = append(args, payload.Role)
	}
	if strings.TrimSpace(payload.Status) != "" {
		sets = append(sets, "status = ?")
		args = append(args, payload.Status)
	}
	args = append(args, id)

	res, err := intconfig.DB.Exec(`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update user", err)
		return
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		RespondError(c, http.StatusNotFound, "user not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated"})
}

// DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	res, err := intconfig.DB.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete user", err)
		return
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		RespondError(c, http.StatusNotFound, "user not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
