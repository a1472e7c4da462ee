package commands

import (
	"Nuremento/internal/config"
	"context"
	"fmt"
	"net/http"
)

type lakeNoteView struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type lakeCmd struct{}

func (lakeCmd) Name() string        { return "lake" }
func (lakeCmd) Description() string { return "Fish today's note out of the lake (once a day)" }
func (lakeCmd) Usage() string       { return "lake" }

func (lakeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var resp struct {
		Note *lakeNoteView `json:"note"`
	}
	if err := callAPI(ctx, cfg, http.MethodGet, "/api/lake-notes/today", nil, &resp); err != nil {
		return err
	}
	if resp.Note == nil {
		fmt.Fprintln(Out, "The lake is still today. Come back tomorrow.")
		return nil
	}
	fmt.Fprintf(Out, "%s  [%s]\n  %s\n", resp.Note.Title, resp.Note.ID, resp.Note.Message)
	return nil
}

type lakeAddCmd struct{}

func (lakeAddCmd) Name() string        { return "lake-add" }
func (lakeAddCmd) Description() string { return "Drop a note into the lake" }
func (lakeAddCmd) Usage() string       { return "lake-add <title> <message>" }

func (lakeAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	var resp struct {
		Note lakeNoteView `json:"note"`
	}
	payload := map[string]string{"title": args[0], "message": args[1]}
	if err := callAPI(ctx, cfg, http.MethodPost, "/api/lake-notes", payload, &resp); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Note dropped: %s\n", resp.Note.ID)
	return nil
}

type lakeDeleteCmd struct{}

func (lakeDeleteCmd) Name() string        { return "lake-delete" }
func (lakeDeleteCmd) Description() string { return "Remove a note from the lake" }
func (lakeDeleteCmd) Usage() string       { return "lake-delete <id>" }

func (lakeDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := callAPI(ctx, cfg, http.MethodDelete, "/api/lake-notes/"+args[0], nil, nil); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Note removed")
	return nil
}

func init() {
	RegisterSection("Lake", lakeCmd{}, lakeAddCmd{}, lakeDeleteCmd{})
}
