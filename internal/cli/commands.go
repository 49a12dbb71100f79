package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/reenu-kutty/dear-diary/models"
	"github.com/spf13/cobra"
)

// Command-local flags
var (
	entryTitle    string
	entryPrompt   string
	listSearch    string
	listFavorites bool
	rangeStart    string
	rangeEnd      string
)

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(entryCmd)
	rootCmd.AddCommand(emotionsCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(versionCmd)

	entryCmd.AddCommand(entryAddCmd)
	entryCmd.AddCommand(entryListCmd)
	entryCmd.AddCommand(entryDeleteCmd)

	emotionsCmd.AddCommand(emotionsClearCmd)
	themesCmd.AddCommand(themesClearCmd)

	entryAddCmd.Flags().StringVar(&entryTitle, "title", "", "Entry title")
	entryAddCmd.Flags().StringVar(&entryPrompt, "prompt", "", "Writing prompt the entry answers")
	entryListCmd.Flags().StringVar(&listSearch, "search", "", "Filter entries by title/content substring")
	entryListCmd.Flags().BoolVar(&listFavorites, "favorites", false, "Show only favorite entries")

	for _, cmd := range []*cobra.Command{emotionsCmd, themesCmd} {
		cmd.Flags().StringVar(&rangeStart, "start", "", "Range start date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&rangeEnd, "end", "", "Range end date (YYYY-MM-DD)")
	}
}

var registerCmd = &cobra.Command{
	Use:   "register <login>",
	Short: "Create a new account and print its bearer token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newAdapter()
		if err != nil {
			return err
		}

		password, err := readPassword()
		if err != nil {
			return err
		}

		if _, err := srv.Register(cmd.Context(), models.User{Login: args[0], Password: password}); err != nil {
			return err
		}

		fmt.Println(srv.Token())
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <login>",
	Short: "Authenticate and print a bearer token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newAdapter()
		if err != nil {
			return err
		}

		password, err := readPassword()
		if err != nil {
			return err
		}

		if _, err := srv.Login(cmd.Context(), models.User{Login: args[0], Password: password}); err != nil {
			return err
		}

		fmt.Println(srv.Token())
		return nil
	},
}

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage journal entries",
}

var entryAddCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Save a new journal entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newAdapter()
		if err != nil {
			return err
		}

		resp, err := srv.CreateEntry(cmd.Context(), models.EntryCreateRequest{
			Title:   entryTitle,
			Content: args[0],
			Prompt:  entryPrompt,
		})
		if err != nil {
			return err
		}

		return printJSON(resp)
	},
}

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newAdapter()
		if err != nil {
			return err
		}

		entries, err := srv.ListEntries(cmd.Context(), models.EntryFilter{
			Search:        listSearch,
			FavoritesOnly: listFavorites,
		})
		if err != nil {
			return err
		}

		return printJSON(entries)
	},
}

var entryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a journal entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newAdapter()
		if err != nil {
			return err
		}

		return srv.DeleteEntry(cmd.Context(), args[0])
	},
}

var emotionsCmd = &cobra.Command{
	Use:   "emotions",
	Short: "Run per-day emotional analysis over a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newAdapter()
		if err != nil {
			return err
		}

		start, end, err := parseRange()
		if err != nil {
			return err
		}

		analyses, err := srv.AnalyzeEmotions(cmd.Context(), start, end)
		if err != nil {
			return err
		}

		return printJSON(analyses)
	},
}

var emotionsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop the account's cached per-day emotion records",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newAdapter()
		if err != nil {
			return err
		}

		return srv.ClearEmotionCache(cmd.Context())
	},
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Run theme analysis for the month a date range falls in",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newAdapter()
		if err != nil {
			return err
		}

		start, end, err := parseRange()
		if err != nil {
			return err
		}

		themes, err := srv.AnalyzeThemes(cmd.Context(), start, end)
		if err != nil {
			return err
		}

		return printJSON(themes)
	},
}

var themesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop the account's cached monthly theme blobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newAdapter()
		if err != nil {
			return err
		}

		return srv.ClearThemeCache(cmd.Context())
	},
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fetch today's reflective journaling question",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newAdapter()
		if err != nil {
			return err
		}

		question, err := srv.DailyPrompt(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(question)
		return nil
	},
}

var contactCmd = &cobra.Command{
	Use:   "contact <email>",
	Short: "Set the emergency contact email (empty string clears it)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newAdapter()
		if err != nil {
			return err
		}

		return srv.SetEmergencyContact(cmd.Context(), args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the server version",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := newAdapter()
		if err != nil {
			return err
		}

		version, err := srv.ServerVersion(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(version)
		return nil
	},
}

// parseRange converts the --start/--end flags into a closed UTC timestamp
// range covering whole days.
func parseRange() (time.Time, time.Time, error) {
	if rangeStart == "" || rangeEnd == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("both --start and --end are required")
	}

	start, err := time.ParseInLocation("2006-01-02", rangeStart, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --start: %w", err)
	}

	end, err := time.ParseInLocation("2006-01-02", rangeEnd, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --end: %w", err)
	}

	// include the whole end day
	end = end.Add(24*time.Hour - time.Nanosecond)

	return start, end, nil
}

// readPassword takes the password from $DEARCTL_PASSWORD to keep it out of
// shell history and process listings.
func readPassword() (string, error) {
	password := os.Getenv("DEARCTL_PASSWORD")
	if password == "" {
		return "", fmt.Errorf("set DEARCTL_PASSWORD to the account password")
	}
	return password, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
