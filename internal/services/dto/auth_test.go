package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want SignUpRequest
	}{
		{
			name: "all strings",
			body: `{"email":"a@b.com","firstName":"ann","lastName":"lee","password":"secret1","phone":"555"}`,
			want: SignUpRequest{Email: "a@b.com", FirstName: "ann", LastName: "lee", Password: "secret1", Phone: "555"},
		},
		{
			name: "numeric email is absent",
			body: `{"email":123,"firstName":"ann","lastName":"lee","password":"secret1"}`,
			want: SignUpRequest{FirstName: "ann", LastName: "lee", Password: "secret1"},
		},
		{
			name: "object and null fields are absent",
			body: `{"email":"a@b.com","firstName":{"x":1},"lastName":null,"password":["secret1"]}`,
			want: SignUpRequest{Email: "a@b.com"},
		},
		{
			name: "numeric phone keeps its digits",
			body: `{"email":"a@b.com","phone":5551234}`,
			want: SignUpRequest{Email: "a@b.com", Phone: "5551234"},
		},
		{
			name: "boolean phone is absent",
			body: `{"email":"a@b.com","phone":true}`,
			want: SignUpRequest{Email: "a@b.com"},
		},
		{
			name: "null body",
			body: `null`,
			want: SignUpRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got SignUpRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignUpRequest_UnmarshalJSONRejectsNonObjects(t *testing.T) {
	var req SignUpRequest
	assert.Error(t, json.Unmarshal([]byte(`["a@b.com"]`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"email":`), &req))
}

func TestSignInRequest_UnmarshalJSON(t *testing.T) {
	var req SignInRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email":false,"password":"secret1"}`), &req))
	assert.Equal(t, SignInRequest{Password: "secret1"}, req)
}
