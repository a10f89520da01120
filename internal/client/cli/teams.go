package cli

import (
	"context"
	"strconv"
)

// listTeams prints the cached team list with selection numbers.
func (a *App) listTeams() {
	if len(a.teams) == 0 {
		a.printf("No teams yet.\n")
		return
	}
	for i, t := range a.teams {
		desc := t.Description
		if desc == "" {
			desc = "(no description)"
		}
		a.printf("%2d. %s — %s\n", i+1, t.Name, desc)
	}
}

// createTeam prompts for a name and description and creates the team.
// An empty name is a validation reject before any request is sent.
func (a *App) createTeam(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Team name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		a.printf("A team needs a name.\n")
		return nil
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	team, err := a.CreateTeam(ctx, name, description)
	if err != nil {
		a.printf("Could not create team: %v\n", err)
		return err
	}
	a.printf("Team %q created (id %s).\n", team.Name, team.ID)
	return nil
}

// openTeam parses the 1-based selection and enters the detail screen.
func (a *App) openTeam(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		a.printf("Usage: open <number>\n")
		return nil
	}
	if err := a.OpenTeam(ctx, n-1); err != nil {
		a.printf("%v\n", err)
		return err
	}
	team, _ := a.CurrentTeam()
	a.printf("Opened %s: %d photos, %d messages, budget $%.2f\n",
		team.Name, len(a.gallery.Photos()), len(a.chatEngine.Messages()), a.chatEngine.Total())
	return nil
}
