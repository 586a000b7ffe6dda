package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/api/metrics"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/infrastructure/storage"
)

const (
	maxUploadBytes = 50 << 20 // 50 MiB per file
	maxBatchFiles  = 10
)

// allowedMIMETypes is the upload allowlist: images, video and PDF. The check
// uses the client-declared Content-Type of the multipart part.
var allowedMIMETypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"image/webp":      {},
	"image/svg+xml":   {},
	"video/mp4":       {},
	"video/webm":      {},
	"application/pdf": {},
}

// UploadHandler handles media uploads for the admin panel. All routes are
// admin only; the stored files themselves are served statically.
type UploadHandler struct {
	store   ports.FileStore
	baseURL string
}

func NewUploadHandler(store ports.FileStore, baseURL string) *UploadHandler {
	return &UploadHandler{store: store, baseURL: strings.TrimSuffix(baseURL, "/")}
}

type uploadedFileResponse struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

type batchUploadResponse struct {
	Files []uploadedFileResponse `json:"files"`
}

// Upload stores a single file from a multipart form.
//
// @Summary      Upload a file
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file    formData  file    true   "File to upload"
// @Param        folder  formData  string  false  "Target folder under the uploads root"
// @Success      201  {object}  uploadedFileResponse
// @Failure      400  {object}  map[string]string
// @Failure      413  {object}  map[string]string
// @Failure      415  {object}  map[string]string
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file field is required")
	}

	resp, err := h.saveOne(c, fh, c.FormValue("folder"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, resp)
}

// UploadMultiple stores up to ten files from one multipart form. The batch is
// all-or-nothing on validation: any oversized or disallowed file rejects the
// whole request before anything is written.
//
// @Summary      Upload multiple files
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        files   formData  file    true   "Files to upload"
// @Param        folder  formData  string  false  "Target folder under the uploads root"
// @Success      201  {object}  batchUploadResponse
// @Failure      400  {object}  map[string]string
// @Failure      413  {object}  map[string]string
// @Failure      415  {object}  map[string]string
// @Router       /api/upload/multiple [post]
func (h *UploadHandler) UploadMultiple(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart form is required")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "files field is required")
	}
	if len(files) > maxBatchFiles {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("at most %d files per request", maxBatchFiles))
	}

	for _, fh := range files {
		if err := checkFile(fh); err != nil {
			return err
		}
	}

	folder := c.FormValue("folder")
	resp := batchUploadResponse{Files: make([]uploadedFileResponse, 0, len(files))}
	for _, fh := range files {
		one, err := h.saveOne(c, fh, folder)
		if err != nil {
			return err
		}
		resp.Files = append(resp.Files, *one)
	}

	return c.JSON(http.StatusCreated, resp)
}

// List returns the files stored under a folder.
//
// @Summary      List uploaded files
// @Tags         uploads
// @Produce      json
// @Security     BearerAuth
// @Param        folder  query  string  false  "Folder under the uploads root"
// @Success      200  {array}  uploadedFileResponse
// @Router       /api/upload [get]
func (h *UploadHandler) List(c echo.Context) error {
	files, err := h.store.List(c.Request().Context(), c.QueryParam("folder"))
	if err != nil {
		return h.storageError(err)
	}

	resp := make([]uploadedFileResponse, 0, len(files))
	for _, f := range files {
		resp = append(resp, uploadedFileResponse{
			Path: f.Path,
			Name: f.Name,
			Size: f.Size,
			URL:  h.fileURL(f.Path),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete removes a stored file by its relative path.
//
// @Summary      Delete an uploaded file
// @Tags         uploads
// @Security     BearerAuth
// @Param        path  path  string  true  "File path relative to the uploads root"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/upload/{path} [delete]
func (h *UploadHandler) Delete(c echo.Context) error {
	rel, err := url.PathUnescape(c.Param("*"))
	if err != nil || rel == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "file path is required")
	}

	if err := h.store.Delete(c.Request().Context(), rel); err != nil {
		return h.storageError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UploadHandler) saveOne(c echo.Context, fh *multipart.FileHeader, folder string) (*uploadedFileResponse, error) {
	if err := checkFile(fh); err != nil {
		return nil, err
	}

	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	stored, err := h.store.Save(c.Request().Context(), folder, fh.Filename, src)
	if err != nil {
		return nil, h.storageError(err)
	}

	metrics.UploadsTotal.Inc()
	return &uploadedFileResponse{
		Path: stored.Path,
		Name: stored.Name,
		Size: stored.Size,
		URL:  h.fileURL(stored.Path),
	}, nil
}

func (h *UploadHandler) fileURL(rel string) string {
	return h.baseURL + "/uploads/" + path.Clean(rel)
}

func (h *UploadHandler) storageError(err error) error {
	if errors.Is(err, storage.ErrInvalidPath) {
		return echo.NewHTTPError(http.StatusForbidden, "path outside uploads root")
	}
	return err
}

func checkFile(fh *multipart.FileHeader) error {
	if fh.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file exceeds the 50MB limit")
	}

	ctype := fh.Header.Get("Content-Type")
	if i := strings.IndexByte(ctype, ';'); i >= 0 {
		ctype = ctype[:i]
	}
	if _, ok := allowedMIMETypes[strings.TrimSpace(ctype)]; !ok {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "file type not allowed")
	}
	return nil
}
