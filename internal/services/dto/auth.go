package dto

import (
	"encoding/json"
	"time"

	"tutorlux_backend/internal/models"
)

// SignUpRequest - sign-up body. Field checks run in the service so each
// failure carries its own code.
type SignUpRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// UnmarshalJSON treats a field of the wrong type as absent, so the ordered
// checks still report it by name. A numeric phone is kept as its digits.
func (r *SignUpRequest) UnmarshalJSON(data []byte) error {
	fields, err := decodeFields(data)
	if err != nil {
		return err
	}
	r.Email = fields.text("email")
	r.FirstName = fields.text("firstName")
	r.LastName = fields.text("lastName")
	r.Password = fields.text("password")
	r.Phone = fields.scalar("phone")
	return nil
}

// SignInRequest - sign-in body
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignInRequest) UnmarshalJSON(data []byte) error {
	fields, err := decodeFields(data)
	if err != nil {
		return err
	}
	r.Email = fields.text("email")
	r.Password = fields.text("password")
	return nil
}

type rawFields map[string]json.RawMessage

func decodeFields(data []byte) (rawFields, error) {
	var fields rawFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// text is the string value of key, or "" when missing or not a string.
func (f rawFields) text(key string) string {
	var s string
	if raw, ok := f[key]; ok && json.Unmarshal(raw, &s) == nil {
		return s
	}
	return ""
}

// scalar is like text but also accepts a JSON number.
func (f rawFields) scalar(key string) string {
	if s := f.text(key); s != "" {
		return s
	}
	var n json.Number
	if raw, ok := f[key]; ok && json.Unmarshal(raw, &n) == nil {
		return n.String()
	}
	return ""
}

// UserResponse - public user shape. Phone is null when absent.
type UserResponse struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse - returned by sign-up and sign-in
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
