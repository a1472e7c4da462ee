package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
)

// AuthCookieName - имя cookie, которую ожидает сервер.
const AuthCookieName = "auth_token"

// Do отправляет запрос; payload (если не nil) кодируется в JSON.
// Непустой token передаётся как auth cookie. Тело ответа читается целиком.
func Do(ctx context.Context, method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return send(req, token)
}

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as auth cookie.
func PostJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	return Do(ctx, http.MethodPost, url, payload, token)
}

// GetJSON выполняет GET с auth cookie.
func GetJSON(ctx context.Context, url, token string) (*http.Response, []byte, error) {
	return Do(ctx, http.MethodGet, url, nil, token)
}

// Delete выполняет DELETE с auth cookie.
func Delete(ctx context.Context, url, token string) (*http.Response, []byte, error) {
	return Do(ctx, http.MethodDelete, url, nil, token)
}

// PostMultipartImage отправляет metadata (JSON-поле формы) и файл imagePath в поле image.
func PostMultipartImage(ctx context.Context, url string, metadata any, imagePath, token string) (*http.Response, []byte, error) {
	if imagePath == "" {
		return nil, nil, errors.New("empty image path")
	}
	meta, err := json.Marshal(metadata)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("metadata", string(meta)); err != nil {
		return nil, nil, err
	}

	ct := mime.TypeByExtension(filepath.Ext(imagePath))
	if ct == "" {
		ct = "application/octet-stream"
	}
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filepath.Base(imagePath)))
	hdr.Set("Content-Type", ct)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return send(req, token)
}

func send(req *http.Request, token string) (*http.Response, []byte, error) {
	if token != "" {
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("read response: %w", err)
	}
	return resp, bytes.TrimSpace(body), nil
}
