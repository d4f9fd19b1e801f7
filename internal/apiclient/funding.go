package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"fjacquet/creditlens/internal/models"
	"fjacquet/creditlens/internal/session"
)

// SubmitFundingApplication posts app as multipart/form-data. An anonymous
// session submits as a guest.
func (c *Client) SubmitFundingApplication(ctx context.Context, sess session.Session, app models.FundingApplication) error {
	body, contentType, err := encodeApplication(app)
	if err != nil {
		return err
	}

	header := http.Header{}
	header.Set("Content-Type", contentType)
	return c.do(ctx, sess, http.MethodPost, FundingPath, header, body, nil)
}

func encodeApplication(app models.FundingApplication) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range app.FormFields() {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", f.Name, err)
		}
	}

	if app.CreditReportPath != "" {
		if err := attachFile(w, models.FieldCreditReport, app.CreditReportPath); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func attachFile(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create form file %s: %w", field, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy %s: %w", path, err)
	}
	return nil
}
