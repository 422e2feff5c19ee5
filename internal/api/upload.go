package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/khlau/dsenotes/internal/upload"
)

// uploadField is the multipart form field carrying the document.
const uploadField = "ebook"

// multipart framing overhead on top of the file size limit.
const uploadBodyLimit = upload.MaxFileSize + (1 << 20)

// Upload handles POST /api/upload (multipart/form-data, field "ebook").
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, uploadBodyLimit)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("沒有上傳文件"))
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.uploads.Save(uploadField, header.Filename, file, header.Size)
	if err != nil {
		var verr *upload.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, errorBody(verr.Msg))
			return
		}
		slog.Error("upload failed", slog.String("file", header.Filename), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("文件上傳失敗"))
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Success:  true,
		FileName: result.FileName,
		FilePath: result.FilePath,
		Content:  result.Content,
		Message:  "文件上傳成功",
	})
}
