package photo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gogram/internal/common"
	"gogram/internal/dbmongo"
)

// MediaUploader stores uploaded image bytes. Satisfied by
// dbmongo.MediaStorage.
type MediaUploader interface {
	UploadFile(ctx context.Context, filename, mimeType string, uploaderID uint64, content io.Reader) (*dbmongo.MediaFile, error)
}

const maxUploadBytes = 10 << 20 // 10 MB

type PhotoHandlers struct {
	PhotoSvc PhotoUsecase
	Media    MediaUploader
}

func NewPhotoHandlers(svc PhotoUsecase, media MediaUploader) *PhotoHandlers {
	return &PhotoHandlers{PhotoSvc: svc, Media: media}
}

// RegisterRoutes mounts the photo routes on an authenticated subrouter.
// The search route is registered before /photos/{id} so mux matches it
// first.
func (h *PhotoHandlers) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/photos", h.CreatePhoto).Methods("POST")
	r.HandleFunc("/photos", h.ListPhotos).Methods("GET")
	r.HandleFunc("/photos/search", h.SearchPhotos).Methods("GET")
	r.HandleFunc("/photos/user/{id}", h.ListUserPhotos).Methods("GET")
	r.HandleFunc("/photos/{id}", h.GetPhoto).Methods("GET")
	r.HandleFunc("/photos/{id}", h.UpdatePhoto).Methods("PUT")
	r.HandleFunc("/photos/{id}", h.DeletePhoto).Methods("DELETE")
	r.HandleFunc("/photos/{id}/like", h.LikePhoto).Methods("PUT")
	r.HandleFunc("/photos/{id}/comment", h.CommentPhoto).Methods("PUT")
}

// CreatePhoto handles the multipart create: title field + image file. The
// image is streamed into media storage first, then the photo document is
// created carrying the returned file id.
func (h *PhotoHandlers) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.CurrentUser(r.Context())
	if !ok {
		common.WriteErrorList(w, http.StatusUnauthorized, "authorization required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.WriteErrorList(w, http.StatusUnprocessableEntity, "invalid multipart form")
		return
	}

	title := r.FormValue("title")
	file, header, err := r.FormFile("image")

	var fieldErrors []string
	if verr := common.ValidatePhotoTitle(title); verr != nil {
		fieldErrors = append(fieldErrors, verr.Errors...)
	}
	if err != nil {
		fieldErrors = append(fieldErrors, "image is required")
	}
	if len(fieldErrors) > 0 {
		common.WriteErrorList(w, http.StatusUnprocessableEntity, fieldErrors...)
		return
	}
	defer file.Close()

	media, err := h.Media.UploadFile(r.Context(), header.Filename, header.Header.Get("Content-Type"), caller.UserID, file)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	p, err := h.PhotoSvc.CreatePhoto(r.Context(), caller.UserID, title, media.ID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, p)
}

func (h *PhotoHandlers) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.PhotoSvc.ListPhotos(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, photos)
}

func (h *PhotoHandlers) ListUserPhotos(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteErrorList(w, http.StatusUnprocessableEntity, "invalid user id")
		return
	}

	photos, err := h.PhotoSvc.ListUserPhotos(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, photos)
}

func (h *PhotoHandlers) SearchPhotos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	photos, err := h.PhotoSvc.SearchPhotos(r.Context(), q)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, photos)
}

func (h *PhotoHandlers) GetPhoto(w http.ResponseWriter, r *http.Request) {
	p, err := h.PhotoSvc.GetPhoto(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, p)
}

func (h *PhotoHandlers) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.CurrentUser(r.Context())
	if !ok {
		common.WriteErrorList(w, http.StatusUnauthorized, "authorization required")
		return
	}

	var body struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteErrorList(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	p, err := h.PhotoSvc.UpdateTitle(r.Context(), mux.Vars(r)["id"], caller.UserID, body.Title)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"photo":   p,
		"message": "photo updated successfully",
	})
}

func (h *PhotoHandlers) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.CurrentUser(r.Context())
	if !ok {
		common.WriteErrorList(w, http.StatusUnauthorized, "authorization required")
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.PhotoSvc.DeletePhoto(r.Context(), id, caller.UserID); err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"id":      id,
		"message": "photo deleted successfully",
	})
}

func (h *PhotoHandlers) LikePhoto(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.CurrentUser(r.Context())
	if !ok {
		common.WriteErrorList(w, http.StatusUnauthorized, "authorization required")
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.PhotoSvc.LikePhoto(r.Context(), id, caller.UserID); err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"photoId": id,
		"userId":  caller.UserID,
		"message": "photo liked",
	})
}

func (h *PhotoHandlers) CommentPhoto(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.CurrentUser(r.Context())
	if !ok {
		common.WriteErrorList(w, http.StatusUnauthorized, "authorization required")
		return
	}

	var body struct {
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.WriteErrorList(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	c, err := h.PhotoSvc.CommentPhoto(r.Context(), mux.Vars(r)["id"], caller.UserID, body.Comment)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"comment": c,
		"message": "comment added successfully",
	})
}
