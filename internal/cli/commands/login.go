package commands

import (
	"Nuremento/internal/cli/api"
	"Nuremento/internal/config"
	"Nuremento/internal/middleware"
	"context"
	"errors"
	"fmt"
	"strings"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Store an access token issued by the identity provider" }
func (loginCmd) Usage() string       { return "login <token>" }

// Run проверяет токен запросом к серверу и только потом сохраняет его
func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return ErrUsage
	}
	token := strings.TrimSpace(args[0])

	resp, body, err := api.GetJSON(ctx, endpoint(cfg, "/api/time-capsules"), token)
	if err != nil {
		return err
	}
	if err := decodeResponse(resp.StatusCode, body, nil); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return errors.New("token was rejected by the server")
		}
		return err
	}

	if err := tokenStore(cfg).Save(token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := tokenStore(cfg).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

// devTokenCmd подписывает токен локальным AUTH_SECRET; для разработки без провайдера
type devTokenCmd struct{}

func (devTokenCmd) Name() string        { return "dev-token" }
func (devTokenCmd) Description() string { return "Sign a token with AUTH_SECRET and store it (development)" }
func (devTokenCmd) Usage() string       { return "dev-token <owner-id>" }

func (devTokenCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return ErrUsage
	}
	token, err := middleware.IssueToken(strings.TrimSpace(args[0]), cfg.AuthSecret, middleware.TokenTTL)
	if err != nil {
		return err
	}
	if err := tokenStore(cfg).Save(token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	fmt.Fprintf(Out, "Token for %s stored in %s\n", args[0], cfg.TokenFile)
	return nil
}

func init() {
	RegisterSection("Account", loginCmd{}, logoutCmd{}, devTokenCmd{})
}
