package validators

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

var (
	ErrNoFile                 = errors.New("no file provided")
	ErrNoFileName             = errors.New("no file name provided")
	ErrPictureTooLarge        = errors.New("picture too large")
	ErrPictureTypeUnsupported = errors.New("unsupported picture type")
)

var allowedExts = []string{"png", "jpg", "jpeg", "gif"}

// extAllowed checks the part after the last dot, case-insensitively.
// Names without an extension fail.
func extAllowed(name string) bool {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return false
	}

	ext := strings.ToLower(name[i+1:])
	for _, e := range allowedExts {
		if ext == e {
			return true
		}
	}

	return false
}

// PictureValidator checks an uploaded profile picture. The extension check
// is cheap and catches honest mistakes, the content sniff catches clients
// that renamed something else to .png. Returns the opened file rewound to
// the start, or a status code and error to send back.
func PictureValidator(fh *multipart.FileHeader) (int, multipart.File, error) {
	if fh == nil {
		return http.StatusBadRequest, nil, ErrNoFile
	}

	if fh.Filename == "" {
		return http.StatusBadRequest, nil, ErrNoFileName
	}

	if !extAllowed(fh.Filename) {
		return http.StatusBadRequest, nil, ErrPictureTypeUnsupported
	}

	if fh.Size > viper.GetInt64("upload.max_size") {
		return http.StatusRequestEntityTooLarge, nil, ErrPictureTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return http.StatusInternalServerError, nil, err
	}

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, err
	}

	if !mime.Is("image/png") && !mime.Is("image/jpeg") && !mime.Is("image/gif") {
		f.Close()
		return http.StatusBadRequest, nil, ErrPictureTypeUnsupported
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, err
	}

	return 0, f, nil
}
