package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

type formFile struct {
	field string
	file  types.UploadFile
}

// multipartForm keeps parts in insertion order; the backend reads them by
// name, but a stable order keeps request dumps comparable.
type multipartForm struct {
	files  []formFile
	fields [][2]string
}

func (f *multipartForm) addFile(field string, file types.UploadFile) {
	f.files = append(f.files, formFile{field: field, file: file})
}

func (f *multipartForm) addField(name, value string) {
	f.fields = append(f.fields, [2]string{name, value})
}

// encode buffers the whole form so a request can be rebuilt on retry.
func (f *multipartForm) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, ff := range f.files {
		if ff.file.Content == nil {
			return nil, "", fmt.Errorf("file %q has no content", ff.file.Name)
		}
		part, err := w.CreateFormFile(ff.field, ff.file.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, ff.file.Content); err != nil {
			return nil, "", fmt.Errorf("read %q: %w", ff.file.Name, err)
		}
	}
	for _, kv := range f.fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
