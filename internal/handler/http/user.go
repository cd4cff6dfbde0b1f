package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-account-auth/internal/utils"
	"github.com/MKhiriev/go-account-auth/models"
)

func (h *Handler) getMyProfile(w http.ResponseWriter, r *http.Request) {
	account, err := accountFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, account.Public(), "Profile Fetched successfully", http.StatusOK)
}

func (h *Handler) getUserByEmail(w http.ResponseWriter, r *http.Request) {
	account, err := h.services.AccountService.GetByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, account, "User fetched successfully.", http.StatusOK)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	account, err := h.services.AccountService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, account, "User fetched successfully.", http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	caller, err := accountFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateProfileRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.UpdateProfile(r.Context(), caller, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, account, "User updated successfully.", http.StatusOK)
}

// accountFromRequest returns the account stored by the auth middleware.
func accountFromRequest(r *http.Request) (models.Account, error) {
	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		return models.Account{}, ErrNoAccountInContext
	}
	return *account, nil
}
