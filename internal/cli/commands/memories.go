package commands

import (
	"Nuremento/internal/cli/api"
	"Nuremento/internal/config"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

type memoryView struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Mood         *string `json:"mood"`
	Location     *string `json:"location"`
	OccurredOn   *string `json:"occurredOn"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

func printMemory(m memoryView) {
	fmt.Fprintf(Out, "%s  [%s]\n", m.Title, m.ID)
	var meta []string
	if m.OccurredOn != nil {
		meta = append(meta, *m.OccurredOn)
	}
	if m.Location != nil {
		meta = append(meta, *m.Location)
	}
	if m.Mood != nil {
		meta = append(meta, *m.Mood)
	}
	if len(meta) > 0 {
		fmt.Fprintf(Out, "  %s\n", strings.Join(meta, " · "))
	}
	fmt.Fprintf(Out, "  %s\n", m.Description)
	if m.ThumbnailURL != nil {
		fmt.Fprintf(Out, "  photo: %s\n", *m.ThumbnailURL)
	}
}

type todayCmd struct{}

func (todayCmd) Name() string        { return "today" }
func (todayCmd) Description() string { return "Show the memory of the day" }
func (todayCmd) Usage() string       { return "today" }

func (todayCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var resp struct {
		Memory *memoryView `json:"memory"`
	}
	if err := callAPI(ctx, cfg, http.MethodGet, "/api/memories/daily", nil, &resp); err != nil {
		return err
	}
	if resp.Memory == nil {
		fmt.Fprintln(Out, "No memories yet. Add one with memory-add.")
		return nil
	}
	printMemory(*resp.Memory)
	return nil
}

type recentCmd struct{}

func (recentCmd) Name() string        { return "recent" }
func (recentCmd) Description() string { return "List the latest memories" }
func (recentCmd) Usage() string       { return "recent [limit]" }

func (recentCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	path := "/api/memories/recent"
	if len(args) == 1 {
		if _, err := strconv.Atoi(args[0]); err != nil {
			return ErrUsage
		}
		path += "?limit=" + args[0]
	}
	var resp struct {
		Memories []memoryView `json:"memories"`
	}
	if err := callAPI(ctx, cfg, http.MethodGet, path, nil, &resp); err != nil {
		return err
	}
	if len(resp.Memories) == 0 {
		fmt.Fprintln(Out, "No memories yet.")
		return nil
	}
	for _, m := range resp.Memories {
		printMemory(m)
	}
	return nil
}

type memoryAddCmd struct{}

func (memoryAddCmd) Name() string        { return "memory-add" }
func (memoryAddCmd) Description() string { return "Add a memory, optionally with a photo" }
func (memoryAddCmd) Usage() string       { return "memory-add <title> <description> [image-path]" }

func (memoryAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	payload := map[string]string{"title": args[0], "description": args[1]}

	var resp struct {
		Memory memoryView `json:"memory"`
	}
	if len(args) == 3 {
		token, err := tokenStore(cfg).Load()
		if err != nil {
			return err
		}
		r, body, err := api.PostMultipartImage(ctx, endpoint(cfg, "/api/memories"), payload, args[2], token)
		if err != nil {
			return err
		}
		if err := decodeResponse(r.StatusCode, body, &resp); err != nil {
			return err
		}
	} else if err := callAPI(ctx, cfg, http.MethodPost, "/api/memories", payload, &resp); err != nil {
		return err
	}

	fmt.Fprintf(Out, "Memory saved: %s\n", resp.Memory.ID)
	return nil
}

type memoryDeleteCmd struct{}

func (memoryDeleteCmd) Name() string        { return "memory-delete" }
func (memoryDeleteCmd) Description() string { return "Delete a memory and its photo" }
func (memoryDeleteCmd) Usage() string       { return "memory-delete <id>" }

func (memoryDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := callAPI(ctx, cfg, http.MethodDelete, "/api/memories/"+args[0], nil, nil); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Memory deleted")
	return nil
}

func init() {
	RegisterSection("Memories", todayCmd{}, recentCmd{}, memoryAddCmd{}, memoryDeleteCmd{})
}
