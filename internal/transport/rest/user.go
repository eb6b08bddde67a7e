package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abgdnv/bookstore/internal/user"
	"github.com/abgdnv/bookstore/pkg/web"
)

// Signup registers a new user with the identity provider.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	var dto user.SignupDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		h.respondValidationError(w, r, mLogger, err)
		return
	}

	created, err := h.users.Register(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserAlreadyExists):
			web.RespondError(w, mLogger, http.StatusBadRequest, "User already exists")
		case errors.Is(err, user.ErrInvalidUserData):
			web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid user data")
		default:
			mLogger.ErrorContext(r.Context(), "Error during signup", "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}
	mLogger.InfoContext(r.Context(), "User registered", "ID", created.ID)
	web.RespondJSON(w, mLogger, http.StatusCreated, map[string]any{"user": created})
}
