package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, account, "User Registered Successfully.", http.StatusCreated)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Verify(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, true, "User Verified Successfully.", http.StatusOK)
}

func (h *Handler) resendOTP(w http.ResponseWriter, r *http.Request) {
	var req models.ResendOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ResendOTP(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, true, "OTP resend to your email.", http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("func", "*Handler.login").Str("account_id", result.User.ID).Msg("user successfully logged in")
	writeData(w, r, result, "Login Successful", http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	account, err := accountFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ChangePasswordRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.ChangePassword(r.Context(), account, req); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, true, "Password reset successful", http.StatusOK)
}
