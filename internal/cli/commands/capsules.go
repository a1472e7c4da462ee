package commands

import (
	"Nuremento/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type capsuleView struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Message  string     `json:"message"`
	OpenOn   string     `json:"openOn"`
	OpenedAt *time.Time `json:"openedAt"`
	Locked   bool       `json:"locked"`
}

type capsulesCmd struct{}

func (capsulesCmd) Name() string        { return "capsules" }
func (capsulesCmd) Description() string { return "List time capsules" }
func (capsulesCmd) Usage() string       { return "capsules" }

func (capsulesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var resp struct {
		Capsules []capsuleView `json:"capsules"`
	}
	if err := callAPI(ctx, cfg, http.MethodGet, "/api/time-capsules", nil, &resp); err != nil {
		return err
	}
	if len(resp.Capsules) == 0 {
		fmt.Fprintln(Out, "No time capsules yet.")
		return nil
	}
	for _, c := range resp.Capsules {
		state := "ready"
		switch {
		case c.Locked:
			state = "locked"
		case c.OpenedAt != nil:
			state = "opened"
		}
		fmt.Fprintf(Out, "%s  %-6s  %s  [%s]\n", c.OpenOn, state, c.Title, c.ID)
	}
	return nil
}

type capsuleAddCmd struct{}

func (capsuleAddCmd) Name() string        { return "capsule-add" }
func (capsuleAddCmd) Description() string { return "Seal a message until a date (YYYY-MM-DD)" }
func (capsuleAddCmd) Usage() string       { return "capsule-add <title> <open-on> <message>" }

// Run: сообщение - все аргументы после даты, склеенные пробелом
func (capsuleAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	payload := map[string]string{
		"title":   args[0],
		"openOn":  args[1],
		"message": strings.Join(args[2:], " "),
	}
	var resp struct {
		Capsule capsuleView `json:"capsule"`
	}
	if err := callAPI(ctx, cfg, http.MethodPost, "/api/time-capsules", payload, &resp); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Capsule sealed until %s: %s\n", resp.Capsule.OpenOn, resp.Capsule.ID)
	return nil
}

type capsuleOpenCmd struct{}

func (capsuleOpenCmd) Name() string        { return "capsule-open" }
func (capsuleOpenCmd) Description() string { return "Open a time capsule whose date has come" }
func (capsuleOpenCmd) Usage() string       { return "capsule-open <id>" }

func (capsuleOpenCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	var resp struct {
		Capsule capsuleView `json:"capsule"`
	}
	if err := callAPI(ctx, cfg, http.MethodGet, "/api/time-capsules/"+args[0], nil, &resp); err != nil {
		return err
	}
	fmt.Fprintf(Out, "%s (sealed until %s)\n\n%s\n", resp.Capsule.Title, resp.Capsule.OpenOn, resp.Capsule.Message)
	return nil
}

type capsuleDeleteCmd struct{}

func (capsuleDeleteCmd) Name() string        { return "capsule-delete" }
func (capsuleDeleteCmd) Description() string { return "Delete a time capsule" }
func (capsuleDeleteCmd) Usage() string       { return "capsule-delete <id>" }

func (capsuleDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := callAPI(ctx, cfg, http.MethodDelete, "/api/time-capsules/"+args[0], nil, nil); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Capsule deleted")
	return nil
}

func init() {
	RegisterSection("Time capsules", capsulesCmd{}, capsuleAddCmd{}, capsuleOpenCmd{}, capsuleDeleteCmd{})
}
