package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// SheetWriter writes rows into a spreadsheet tab, clearing it first.
type SheetWriter interface {
	ReplaceValues(spreadsheetID, sheetTab string, values [][]interface{}) error
}

// PublishLineupParams configures a lineup publish.
type PublishLineupParams struct {
	// EventID selects the lineup scope; empty publishes the whole-roster
	// lineup.
	EventID       string
	SpreadsheetID string
	SheetTab      string
}

// PublishLineup writes the current lineup of one scope to the club's
// shared spreadsheet: one header row per canoe followed by its six
// seats, open seats left blank.
func PublishLineup(ctx context.Context, store RosterStore, sheets SheetWriter, logger *zap.Logger, params PublishLineupParams) error {
	roster, err := GetRoster(ctx, store, logger, params.EventID)
	if err != nil {
		return err
	}

	names := make(map[string]string, len(roster.Paddlers))
	for _, p := range roster.Paddlers {
		names[p.ID] = p.FirstName + " " + p.LastName
	}

	var rows [][]interface{}
	for _, canoe := range roster.Canoes {
		label := canoe.Name
		if canoe.Designation != "" {
			label = fmt.Sprintf("%s (%s)", canoe.Name, canoe.Designation)
		}
		rows = append(rows, []interface{}{label, string(canoe.Status)})
		for _, seat := range canoe.Seats {
			rows = append(rows, []interface{}{fmt.Sprintf("Seat %d", seat.Seat), names[seat.PaddlerID]})
		}
		rows = append(rows, []interface{}{})
	}

	if err := sheets.ReplaceValues(params.SpreadsheetID, params.SheetTab, rows); err != nil {
		return fmt.Errorf("failed to publish lineup: %w", err)
	}

	logger.Info("Lineup published",
		zap.String("event_id", params.EventID),
		zap.String("spreadsheet_id", params.SpreadsheetID),
		zap.Int("canoes", len(roster.Canoes)))

	return nil
}
