package user

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gogram/internal/common"
	"gogram/internal/dbmongo"
	"gogram/internal/dbmysql"
)

// MediaUploader stores profile images. Satisfied by dbmongo.MediaStorage.
type MediaUploader interface {
	UploadFile(ctx context.Context, filename, mimeType string, uploaderID uint64, content io.Reader) (*dbmongo.MediaFile, error)
}

const maxProfileImageBytes = 5 << 20 // 5 MB

type Handler struct {
	UserSvc UserService
	Media   MediaUploader
}

func NewHandler(svc UserService, media MediaUploader) *Handler {
	return &Handler{UserSvc: svc, Media: media}
}

// RegisterPublicRoutes mounts register/login, reachable without a token.
func (h *Handler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/users/register", h.Register).Methods("POST")
	r.HandleFunc("/users/login", h.Login).Methods("POST")
}

// RegisterProtectedRoutes mounts the profile routes on an authenticated
// subrouter. /users/profile must come before /users/{id}.
func (h *Handler) RegisterProtectedRoutes(r *mux.Router) {
	r.HandleFunc("/users/profile", h.Profile).Methods("GET")
	r.HandleFunc("/users/profile", h.UpdateProfile).Methods("PUT")
	r.HandleFunc("/users/{id}", h.GetUserByID).Methods("GET")
}

type authResponse struct {
	User  *dbmysql.User `json:"user"`
	Token string        `json:"token"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteErrorList(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	user, token, err := h.UserSvc.Register(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteErrorList(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	user, token, err := h.UserSvc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.CurrentUser(r.Context())
	if !ok {
		common.WriteErrorList(w, http.StatusUnauthorized, "authorization required")
		return
	}

	user, err := h.UserSvc.Profile(r.Context(), caller.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

// UpdateProfile accepts a multipart form: name and bio fields plus an
// optional profileImage file that is stored and referenced by file id.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.CurrentUser(r.Context())
	if !ok {
		common.WriteErrorList(w, http.StatusUnauthorized, "authorization required")
		return
	}

	if err := r.ParseMultipartForm(maxProfileImageBytes); err != nil {
		common.WriteErrorList(w, http.StatusUnprocessableEntity, "invalid multipart form")
		return
	}

	var profileImage string
	if file, header, err := r.FormFile("profileImage"); err == nil {
		defer file.Close()
		media, err := h.Media.UploadFile(r.Context(), header.Filename, header.Header.Get("Content-Type"), caller.UserID, file)
		if err != nil {
			common.WriteError(w, err)
			return
		}
		profileImage = media.ID
	}

	user, err := h.UserSvc.UpdateProfile(r.Context(), caller.UserID, r.FormValue("name"), r.FormValue("bio"), profileImage)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteErrorList(w, http.StatusUnprocessableEntity, "invalid user id")
		return
	}

	user, err := h.UserSvc.GetUserByID(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}
