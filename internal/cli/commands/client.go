package commands

import (
	"Nuremento/internal/cli/api"
	fsrepo "Nuremento/internal/cli/repo/fs"
	"Nuremento/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnauthorized - сервер отверг сохранённый токен.
var ErrUnauthorized = errors.New("unauthorized: stored token was rejected, log in again")

// serverError - тело ошибки, которое отдаёт сервер
type serverError struct {
	Error  string `json:"error"`
	Field  string `json:"field"`
	OpenOn string `json:"openOn"`
}

func tokenStore(cfg *config.Config) fsrepo.AuthFSStore {
	return fsrepo.NewAuthFSStore(cfg.TokenFile)
}

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// callAPI выполняет запрос с сохранённым токеном и декодирует успешный ответ в out.
func callAPI(ctx context.Context, cfg *config.Config, method, path string, payload, out any) error {
	token, err := tokenStore(cfg).Load()
	if err != nil {
		return err
	}
	resp, body, err := api.Do(ctx, method, endpoint(cfg, path), payload, token)
	if err != nil {
		return err
	}
	return decodeResponse(resp.StatusCode, body, out)
}

func decodeResponse(status int, body []byte, out any) error {
	if status >= 200 && status < 300 {
		if out == nil || len(body) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		return nil
	}

	var se serverError
	_ = json.Unmarshal(body, &se)
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return errors.New("not found")
	case http.StatusLocked:
		return fmt.Errorf("capsule is locked until %s", se.OpenOn)
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		if se.Field != "" {
			return fmt.Errorf("%s: %s", se.Field, se.Error)
		}
		if se.Error != "" {
			return errors.New(se.Error)
		}
	}
	return fmt.Errorf("server status %d: %s", status, strings.TrimSpace(string(body)))
}
