package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/marmita-api/internal/logger"
	"github.com/MKhiriev/marmita-api/internal/utils"
	"github.com/MKhiriev/marmita-api/models"
)

const (
	loginSuccessMessage  = "login successful"
	profileAccessMessage = "you are accessing a protected route"
)

// register creates an account.
//
//	201 {id, name, email}
//	400 invalid body, validation failure or email already in use
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.NewRegisterResponse(registeredUser), http.StatusCreated); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing register response")
	}
}

// login exchanges credentials for an access token.
//
//	200 {message, user: {id, name, email, role}, token}
//	404 unknown email
//	401 wrong password
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.TokenService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	resp := models.LoginResponse{
		Message: loginSuccessMessage,
		User: models.LoginUser{
			ID:    foundUser.ID,
			Name:  foundUser.Name,
			Email: foundUser.Email,
			Role:  foundUser.Principal().Role,
		},
		Token: token.String(),
	}
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}

// profile returns the identity from the token alongside the current account
// record. It must be mounted behind the auth middleware.
//
//	200 {message, userFromToken, userDetails}
//	404 account deleted after the token was issued
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoPrincipal)
		return
	}

	user, err := h.services.AuthService.GetUser(r.Context(), principal.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.ProfileResponse{
		Message:       profileAccessMessage,
		UserFromToken: principal,
		UserDetails:   models.NewUserDetails(user),
	}
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing profile response")
	}
}
