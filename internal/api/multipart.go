package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/irisrec/irisctl/internal/common"
)

// User-facing copy substituted for raw backend messages on upload failures.
const (
	MsgAuthMismatch   = "Échec de l'authentification : Les images ne correspondent pas"
	MsgIrisNotFound   = "Iris non reconnu : Aucune correspondance trouvée"
	MsgDuplicateImage = "Cette image a déjà été enregistrée pour un autre utilisateur. Veuillez utiliser une image différente."
)

// FilePart is one file attached to a multipart request.
type FilePart struct {
	Field   string
	Name    string
	Content []byte
}

// PostForm performs a multipart POST with the given form fields and files.
//
// Unlike the JSON verbs it sets no content-type header itself (the multipart
// writer provides one with the boundary), attaches only the bearer header,
// and always decodes the JSON body — including on error, to extract the
// server-provided message, which is then rewritten per RewriteMessage. On
// success the body is decoded into out.
func (c *Client) PostForm(ctx context.Context, endpoint string, fields map[string]string, files []FilePart, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return fmt.Errorf("create part %s: %w", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return fmt.Errorf("write part %s: %w", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := c.authorize(ctx, req); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(payload, &envelope)

		return &Error{
			Message: RewriteMessage(resp.StatusCode, envelope.Message),
			Status:  resp.StatusCode,
			Payload: json.RawMessage(payload),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// RewriteMessage maps a backend upload failure to user-facing copy.
//
// Rules, in order (401 wins over the duplicate checks):
//   - 401 with the "Aucune correspondance" phrase: images do not match.
//   - 401 with the "reconnu" phrase: iris not recognized.
//   - 409, or a duplicate/unique-constraint marker in the message: the
//     image is already registered to another user.
//   - 400 mentioning "email": the original message prefixed with "❌ ".
//   - Otherwise the server message, or the generic HTTP error when the
//     body carried none.
func RewriteMessage(status int, serverMsg string) string {
	msg := serverMsg
	if msg == "" {
		msg = fmt.Sprintf("Erreur HTTP: %d", status)
	}

	switch {
	case status == http.StatusUnauthorized:
		if strings.Contains(msg, "Aucune correspondance") {
			return MsgAuthMismatch
		}
		if strings.Contains(msg, "reconnu") {
			return MsgIrisNotFound
		}
		return msg
	case status == http.StatusConflict,
		strings.Contains(msg, "Duplicate"),
		strings.Contains(msg, "code_unique"),
		strings.Contains(msg, "déjà été enregistrée"):
		return MsgDuplicateImage
	case status == http.StatusBadRequest && strings.Contains(msg, "email"):
		return "❌ " + msg
	default:
		return msg
	}
}
