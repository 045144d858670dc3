package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/proyectmyvet/myvet/internal/core/api"
	"github.com/proyectmyvet/myvet/internal/core/config"
	"github.com/proyectmyvet/myvet/internal/core/history"
	"github.com/proyectmyvet/myvet/internal/core/store"
	"github.com/proyectmyvet/myvet/internal/core/triage"
)

// SymptomTriageArgs defines arguments for the symptom_triage tool
type SymptomTriageArgs struct {
	Symptoms string `json:"symptoms" jsonschema:"description=Free-text symptom description,required"`
	Species  string `json:"species,omitempty" jsonschema:"description=Animal species (perro, gato, ...)"`
	Age      string `json:"age,omitempty" jsonschema:"description=Animal age"`
	Context  string `json:"context,omitempty" jsonschema:"description=Extra context such as vaccines or diet"`
}

// ListHistoryArgs defines arguments for the list_history tool
type ListHistoryArgs struct {
	Limit int `json:"limit,omitempty" jsonschema:"description=Max entries to return (default: 20)"`
}

// AppointmentSummary is an appointment in tool output
type AppointmentSummary struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
	State  string `json:"state,omitempty"`
	Pet    string `json:"pet,omitempty"`
	Owner  string `json:"owner,omitempty"`
}

// HistoryEntry is a local visit record in tool output
type HistoryEntry struct {
	ID     int64  `json:"id"`
	Pet    string `json:"pet"`
	Reason string `json:"reason"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// StartServer starts the MCP server over stdio. Tools reuse the session
// stored by 'myvet login'; they fail cleanly when no one is logged in.
func StartServer(dataPath, serverOverride string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serverOverride != "" {
		cfg.ServerURL = serverOverride
	}

	kv, err := store.Open(dataPath)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer func() {
		_ = kv.Close()
	}()

	sessions := store.NewSession(kv)
	client := api.New(cfg.ServerURL, sessions)
	cache := history.New(kv)

	s := server.NewMCPServer(
		"MyVet",
		"1.0.0",
	)

	appointmentsTool := mcp.NewTool("list_appointments",
		mcp.WithDescription("List the logged-in user's veterinary appointments. Owners see their own bookings; veterinarians see the whole clinic schedule."),
	)
	s.AddTool(appointmentsTool, makeListAppointmentsHandler(client, sessions))

	historyTool := mcp.NewTool("list_history",
		mcp.WithDescription("List locally recorded clinic visits, newest first. This is the device-local log, independent of the backend."),
		mcp.WithNumber("limit",
			mcp.Description("Max entries to return (default: 20)")),
	)
	s.AddTool(historyTool, makeListHistoryHandler(cache))

	triageTool := mcp.NewTool("symptom_triage",
		mcp.WithDescription("Ask the clinic's AI agent about a pet's symptoms. Returns recommendations, red flags, confidence, and sources. Guidance only, not a diagnosis."),
		mcp.WithString("symptoms",
			mcp.Required(),
			mcp.Description("Free-text symptom description")),
		mcp.WithString("species",
			mcp.Description("Animal species (perro, gato, ...)")),
		mcp.WithString("age",
			mcp.Description("Animal age")),
		mcp.WithString("context",
			mcp.Description("Extra context such as vaccines or diet")),
	)
	s.AddTool(triageTool, makeTriageHandler(client, cfg))

	return server.ServeStdio(s)
}

func makeListAppointmentsHandler(client *api.Client, sessions *store.Session) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		role, err := sessions.Role()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("session read failed: %v", err)), nil
		}

		var results []AppointmentSummary
		if role == api.RoleVet {
			appointments, err := client.VetAppointments(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
			}
			for _, appt := range appointments {
				results = append(results, AppointmentSummary{
					ID:     appt.ID,
					Date:   appt.Date,
					Reason: appt.Reason,
					State:  appt.State,
					Pet:    appt.PetName,
					Owner:  appt.OwnerName,
				})
			}
		} else {
			appointments, err := client.ListAppointments(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
			}
			for _, appt := range appointments {
				results = append(results, AppointmentSummary{
					ID:     appt.ID,
					Date:   appt.Date,
					Reason: appt.Reason,
					State:  appt.State,
				})
			}
		}

		resultJSON, err := json.Marshal(map[string]interface{}{
			"appointments": results,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}

func makeListHistoryHandler(cache *history.Cache) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ListHistoryArgs
		argsBytes, _ := json.Marshal(request.Params.Arguments)
		if err := json.Unmarshal(argsBytes, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		limit := args.Limit
		if limit <= 0 {
			limit = 20
		}

		entries, err := cache.All()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("history read failed: %v", err)), nil
		}
		if len(entries) > limit {
			entries = entries[:limit]
		}

		var results []HistoryEntry
		for _, entry := range entries {
			results = append(results, HistoryEntry{
				ID:     entry.ID,
				Pet:    entry.Pet,
				Reason: entry.Reason,
				Date:   entry.Date,
				Time:   entry.Time,
			})
		}

		resultJSON, err := json.Marshal(map[string]interface{}{
			"entries": results,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}

func makeTriageHandler(client *api.Client, cfg *config.Config) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args SymptomTriageArgs
		argsBytes, _ := json.Marshal(request.Params.Arguments)
		if err := json.Unmarshal(argsBytes, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Symptoms == "" {
			return mcp.NewToolResultError("symptoms is required"), nil
		}

		req := triage.BuildRequest(cfg.TriageTemplate, triage.Input{
			Symptoms: args.Symptoms,
			Species:  args.Species,
			Age:      args.Age,
			Context:  args.Context,
		})

		resp, err := client.Prediagnose(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("triage failed: %v", err)), nil
		}

		return mcp.NewToolResultText(triage.Format(resp)), nil
	}
}
