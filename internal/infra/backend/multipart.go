package backend

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"path/filepath"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"

	"github.com/pkg/errors"
)

type formField struct {
	name  string
	value string
}

func orderedFields(keys []string, values map[string]string) []formField {
	fields := make([]formField, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, formField{name: k, value: values[k]})
	}

	return fields
}

// multipartBody renders fields plus one file part into a replayable body
func multipartBody(fields []formField, fileField string, file *entity.ImageFile) ([]byte, string, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, "", errors.WithStack(domainerrors.ErrInvalidImage)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", errors.Wrapf(err, "write field %s", field.name)
		}
	}

	filename := filepath.Base(file.Filename)
	if filename == "." || filename == "/" || filename == "" {
		filename = fileField
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", errors.Wrapf(err, "create %s part", fileField)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, "", errors.Wrapf(err, "write %s part", fileField)
	}
	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart writer")
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
