package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kaiolohia/roster/internal/config"
	"github.com/kaiolohia/roster/pkg/clients/gmailclient"
	"github.com/kaiolohia/roster/pkg/clients/sheetsclient"
	"github.com/kaiolohia/roster/pkg/core/lineup"
	"github.com/kaiolohia/roster/pkg/core/services"
	"github.com/kaiolohia/roster/pkg/postgres"
	"github.com/kaiolohia/roster/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg          *config.Config
	database     *postgres.DB
	sheetsClient *sheetsclient.Client
	gmailClient  *gmailclient.Client
	logger       *zap.Logger
	ctx          context.Context
}

var app *App

func main() {
	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster CLI - Manage paddlers, canoes, and seat assignments",
		Long:  `A CLI tool for managing an outrigger canoe club roster: paddlers, canoes, events, attendance, and seat lineups.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.database != nil {
					app.database.Close()
				}
				if app.logger != nil {
					app.logger.Sync()
				}
			}
		},
	}

	// Add all commands
	rootCmd.AddCommand(addPaddlerCmd())
	rootCmd.AddCommand(updatePaddlerCmd())
	rootCmd.AddCommand(deletePaddlerCmd())
	rootCmd.AddCommand(listRosterCmd())
	rootCmd.AddCommand(addCanoeCmd())
	rootCmd.AddCommand(deleteCanoeCmd())
	rootCmd.AddCommand(moveCmd())
	rootCmd.AddCommand(assignOptimalCmd())
	rootCmd.AddCommand(defineEventsCmd())
	rootCmd.AddCommand(listEventsCmd())
	rootCmd.AddCommand(setAttendanceCmd())
	rootCmd.AddCommand(publishLineupCmd())
	rootCmd.AddCommand(notifyAttendeesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, and database
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger("roster")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application")

	app.cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	app.database, err = postgres.NewDB(app.ctx, app.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := app.database.RunMigrations(app.ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.logger.Info("Database initialized successfully")

	return nil
}

// initGoogleClients sets up the sheets and gmail clients on demand.
// Only the publishLineup and notifyAttendees commands need them, so the
// OAuth flow is not forced on every invocation.
func initGoogleClients() error {
	if app.sheetsClient != nil {
		return nil
	}

	oauthCfg, err := config.LoadOAuthClient()
	if err != nil {
		return fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	app.sheetsClient, err = sheetsclient.NewClient(app.ctx, oauthCfg)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}

	app.gmailClient, err = gmailclient.NewClient(app.ctx, oauthCfg, app.sheetsClient.Token())
	if err != nil {
		return fmt.Errorf("failed to create gmail client: %w", err)
	}

	return nil
}

// Command definitions

func addPaddlerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addPaddler <first_name> <last_name> <gender> <type> <ability>",
		Short: "Add a paddler to the roster",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			ability, err := strconv.Atoi(args[4])
			if err != nil {
				return fmt.Errorf("ability must be a number: %w", err)
			}

			seatPref, _ := cmd.Flags().GetString("seats")
			email, _ := cmd.Flags().GetString("email")

			paddler, err := services.CreatePaddler(app.ctx, app.database, app.logger, services.PaddlerInput{
				FirstName:      args[0],
				LastName:       args[1],
				Gender:         args[2],
				Type:           args[3],
				Ability:        ability,
				SeatPreference: seatPref,
				Email:          email,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Paddler created!\n\n")
			fmt.Printf("ID:      %s\n", paddler.ID)
			fmt.Printf("Name:    %s %s\n", paddler.FirstName, paddler.LastName)
			fmt.Printf("Ability: %d\n\n", paddler.Ability)

			return nil
		},
	}

	cmd.Flags().String("seats", "", "Seat preference encoding, e.g. 612000")
	cmd.Flags().String("email", "", "Email address for lineup notifications")

	return cmd
}

func updatePaddlerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updatePaddler <paddler_id> <first_name> <last_name> <gender> <type> <ability>",
		Short: "Update a paddler's details",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			ability, err := strconv.Atoi(args[5])
			if err != nil {
				return fmt.Errorf("ability must be a number: %w", err)
			}

			seatPref, _ := cmd.Flags().GetString("seats")
			email, _ := cmd.Flags().GetString("email")

			paddler, err := services.UpdatePaddler(app.ctx, app.database, app.logger, args[0], services.PaddlerInput{
				FirstName:      args[1],
				LastName:       args[2],
				Gender:         args[3],
				Type:           args[4],
				Ability:        ability,
				SeatPreference: seatPref,
				Email:          email,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Paddler %s updated.\n\n", paddler.ID)
			return nil
		},
	}

	cmd.Flags().String("seats", "", "Seat preference encoding, e.g. 612000")
	cmd.Flags().String("email", "", "Email address for lineup notifications")

	return cmd
}

func deletePaddlerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deletePaddler <paddler_id>",
		Short: "Delete a paddler and all of their assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeletePaddler(app.ctx, app.database, app.logger, args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Paddler %s deleted.\n\n", args[0])
			return nil
		},
	}
}

func listRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Show the roster with canoe lineups and staging area",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, _ := cmd.Flags().GetString("event")

			roster, err := services.GetRoster(app.ctx, app.database, app.logger, eventID)
			if err != nil {
				return err
			}

			printRoster(roster)
			return nil
		},
	}

	cmd.Flags().String("event", "", "Event ID (omit for the whole-roster lineup)")

	return cmd
}

func printRoster(roster *services.RosterResult) {
	names := make(map[string]string, len(roster.Paddlers))
	for _, p := range roster.Paddlers {
		names[p.ID] = fmt.Sprintf("%s %s", p.FirstName, p.LastName)
	}

	for _, canoe := range roster.Canoes {
		label := canoe.Name
		if canoe.Designation != "" {
			label = fmt.Sprintf("%s (%s)", canoe.Name, canoe.Designation)
		}
		fmt.Printf("\n%s [%s]\n", label, canoe.Status)

		for _, seat := range canoe.Seats {
			occupant := "-"
			if seat.PaddlerID != "" {
				occupant = names[seat.PaddlerID]
			}
			fmt.Printf("  Seat %d: %s\n", seat.Seat, occupant)
		}
	}

	var staged []string
	for _, p := range roster.Paddlers {
		if p.AssignedCanoe == "" {
			staged = append(staged, fmt.Sprintf("%s %s", p.FirstName, p.LastName))
		}
	}
	if len(staged) > 0 {
		fmt.Printf("\nStaging area (%d):\n", len(staged))
		for _, name := range staged {
			fmt.Printf("  %s\n", name)
		}
	}
	fmt.Println()
}

func addCanoeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addCanoe <name>",
		Short: "Add a canoe to the fleet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			designation, _ := cmd.Flags().GetString("designation")

			canoe, err := services.CreateCanoe(app.ctx, app.database, app.logger, services.CanoeInput{
				Name:        args[0],
				Designation: designation,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Canoe %s created (%s).\n\n", canoe.Name, canoe.ID)
			return nil
		},
	}

	cmd.Flags().String("designation", "", "Canoe designation, e.g. OC6 #2")

	return cmd
}

func deleteCanoeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deleteCanoe <canoe_id>",
		Short: "Delete a canoe (must be empty in every lineup)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeleteCanoe(app.ctx, app.database, app.logger, args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Canoe %s deleted.\n\n", args[0])
			return nil
		},
	}
}

func moveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <paddler_id> <zone> [canoe_id] [seat]",
		Short: "Move a paddler: zone is seat, staging, trash, or edit",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, _ := cmd.Flags().GetString("event")
			locked, _ := cmd.Flags().GetStringSlice("lock")

			req := services.MoveRequest{
				EventID:        eventID,
				PaddlerID:      args[0],
				Zone:           lineup.DropZone(args[1]),
				LockedCanoeIDs: locked,
			}

			if req.Zone == lineup.DropSeat {
				if len(args) < 4 {
					return fmt.Errorf("seat moves need a canoe_id and seat number")
				}
				seat, err := strconv.Atoi(args[3])
				if err != nil {
					return fmt.Errorf("seat must be a number: %w", err)
				}
				req.CanoeID = args[2]
				req.Seat = seat
			}

			result, err := services.HandleMove(app.ctx, app.database, app.logger, req)
			if err != nil {
				return err
			}

			if !result.Applied {
				fmt.Println("\nNothing to do - the move was a no-op.")
				return nil
			}

			fmt.Printf("\n✓ Move applied.\n")
			for _, a := range result.Assigned {
				fmt.Printf("  %s -> canoe %s seat %d\n", a.PaddlerID, a.CanoeID, a.Seat)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("event", "", "Event ID (omit for the whole-roster lineup)")
	cmd.Flags().StringSlice("lock", nil, "Canoe IDs to lock against changes")

	return cmd
}

func assignOptimalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignOptimal",
		Short: "Recompute the lineup from the priority-ordered criteria",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, _ := cmd.Flags().GetString("event")
			locked, _ := cmd.Flags().GetStringSlice("lock")
			priorityFlag, _ := cmd.Flags().GetString("priority")
			policyFlag, _ := cmd.Flags().GetString("policy")

			priorityNames := app.cfg.DefaultPriority
			if priorityFlag != "" {
				priorityNames = strings.Split(priorityFlag, ",")
			}
			priority, err := lineup.ParsePriority(priorityNames)
			if err != nil {
				return err
			}

			policy := lineup.FillPolicy(app.cfg.FillPolicy)
			if policyFlag != "" {
				policy = lineup.FillPolicy(policyFlag)
			}
			if !policy.IsValid() {
				return fmt.Errorf("unknown fill policy %q", policyFlag)
			}

			result, err := services.AssignOptimal(app.ctx, app.database, app.logger, services.AssignOptimalParams{
				EventID:        eventID,
				Priority:       priority,
				LockedCanoeIDs: locked,
				Policy:         policy,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Lineup recomputed: %d paddlers seated", len(result.Assignments))
			if len(result.Unassigned) > 0 {
				fmt.Printf(", %d left in staging", len(result.Unassigned))
			}
			fmt.Printf(".\n\n")

			return nil
		},
	}

	cmd.Flags().String("event", "", "Event ID (omit for the whole-roster lineup)")
	cmd.Flags().StringSlice("lock", nil, "Canoe IDs to leave untouched")
	cmd.Flags().String("priority", "", "Comma-separated criteria, e.g. ability,gender,type,seatPreference")
	cmd.Flags().String("policy", "", "Fill policy: sequential or round-robin")

	return cmd
}

func defineEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defineEvents <title> <date> <event_type>",
		Short: "Create an event, or a recurring series with --freq",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeOfDay, _ := cmd.Flags().GetString("time")
			location, _ := cmd.Flags().GetString("location")
			freq, _ := cmd.Flags().GetString("freq")
			weekdays, _ := cmd.Flags().GetStringSlice("weekdays")
			monthDays, _ := cmd.Flags().GetIntSlice("monthdays")
			until, _ := cmd.Flags().GetString("until")

			events, err := services.DefineEvents(app.ctx, app.database, app.logger, services.EventInput{
				Title:     args[0],
				Date:      args[1],
				EventType: args[2],
				Time:      timeOfDay,
				Location:  location,
				Freq:      services.RecurrenceFreq(freq),
				Weekdays:  weekdays,
				MonthDays: monthDays,
				Until:     until,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %d event(s) created:\n", len(events))
			for _, e := range events {
				fmt.Printf("  %s  %s\n", e.Date, e.Title)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("time", "", "Start time, e.g. 17:30")
	cmd.Flags().String("location", "", "Event location")
	cmd.Flags().String("freq", "none", "Recurrence: none, weekly, or monthly")
	cmd.Flags().StringSlice("weekdays", nil, "Weekly recurrence days, e.g. tuesday,thursday")
	cmd.Flags().IntSlice("monthdays", nil, "Monthly recurrence days, e.g. 1,15")
	cmd.Flags().String("until", "", "Inclusive series end date (required for recurring)")

	return cmd
}

func listEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listEvents",
		Short: "List all events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.database.GetEvents(app.ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d events:\n\n", len(events))
			for _, e := range events {
				fmt.Printf("- %s  %s [%s] (%s)\n", e.Date, e.Title, e.EventType, e.ID)
			}
			fmt.Println()

			return nil
		},
	}
}

func setAttendanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setAttendance <paddler_id> <event_id> <attending>",
		Short: "Record whether a paddler attends an event (true/false)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			attending, err := strconv.ParseBool(args[2])
			if err != nil {
				return fmt.Errorf("attending must be true or false: %w", err)
			}

			if err := services.SetAttendance(app.ctx, app.database, app.logger, args[0], args[1], attending); err != nil {
				return err
			}

			fmt.Printf("\n✓ Attendance recorded.\n\n")
			return nil
		},
	}
}

func publishLineupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishLineup",
		Short: "Publish the current lineup to the club spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initGoogleClients(); err != nil {
				return err
			}

			eventID, _ := cmd.Flags().GetString("event")

			err := services.PublishLineup(app.ctx, app.database, app.sheetsClient, app.logger, services.PublishLineupParams{
				EventID:       eventID,
				SpreadsheetID: app.cfg.LineupSheetID,
				SheetTab:      app.cfg.LineupTab,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Lineup published to sheet %s.\n\n", app.cfg.LineupSheetID)
			return nil
		},
	}

	cmd.Flags().String("event", "", "Event ID (omit for the whole-roster lineup)")

	return cmd
}

func notifyAttendeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notifyAttendees <event_id>",
		Short: "Email each attending paddler their seat for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initGoogleClients(); err != nil {
				return err
			}

			result, err := services.NotifyAttendees(app.ctx, app.database, app.gmailClient, app.logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Sent %d notifications.\n", result.Sent)
			if len(result.Failed) > 0 {
				fmt.Printf("⚠️  Failed to reach %d paddlers:\n", len(result.Failed))
				for _, f := range result.Failed {
					fmt.Printf("  ✗ %s (%s): %s\n", f.PaddlerID, f.Email, f.Error)
				}
			}
			fmt.Println()

			return nil
		},
	}
}
