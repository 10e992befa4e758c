package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func customerClaims() *utils.Claims {
	return &utils.Claims{UserID: "cust-1", Email: "rahul@example.com", Role: models.RoleCustomer}
}

func sellerClaims() *utils.Claims {
	return &utils.Claims{UserID: "sell-1", Email: "anita@example.com", Role: models.RoleSeller}
}

// authedRequest builds a request carrying claims in the context, the way
// AuthMiddleware would after validating a token.
func authedRequest(t *testing.T, method, target string, body interface{}, claims *utils.Claims) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, claims))
	}
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}
