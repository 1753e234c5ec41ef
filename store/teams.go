// Package store persists saved parties and trainers, either as a JSON teams file or in SQLite.
package store

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/nathanieltooley/klefki/owned"
	"github.com/samber/lo"
)

var ErrNoSuchTeam = errors.New("no such team exists")

// SavedTeams maps team names to parties
type SavedTeams map[string]owned.SavedParty

// SaveTeam adds or replaces a team in the teams file at filePath.
// Parties larger than owned.PARTY_SIZE are cut down.
func SaveTeam(filePath string, name string, party owned.SavedParty) error {
	teams, err := LoadTeamMap(filePath)
	if err != nil {
		return err
	}

	if len(party) > owned.PARTY_SIZE {
		internalLogger.Info("team is too large, extra pokemon are dropped", "team", name, "size", len(party))
		party = party[:owned.PARTY_SIZE]
	}

	teams[name] = party
	return writeTeamMap(filePath, teams)
}

func LoadTeam(filePath string, name string) (owned.SavedParty, error) {
	teams, err := LoadTeamMap(filePath)
	if err != nil {
		return nil, err
	}

	team, ok := teams[name]
	if !ok {
		return nil, ErrNoSuchTeam
	}

	// This should only happen if a user manually edits the teams file
	if len(team) > owned.PARTY_SIZE {
		team = team[:owned.PARTY_SIZE]
	}

	return team, nil
}

func DeleteTeam(filePath string, name string) error {
	teams, err := LoadTeamMap(filePath)
	if err != nil {
		return err
	}

	if _, ok := teams[name]; !ok {
		return ErrNoSuchTeam
	}

	delete(teams, name)
	return writeTeamMap(filePath, teams)
}

// TeamNames lists every team in the file in sorted order
func TeamNames(filePath string) ([]string, error) {
	teams, err := LoadTeamMap(filePath)
	if err != nil {
		return nil, err
	}

	names := lo.Keys(teams)
	slices.Sort(names)
	return names, nil
}

// LoadTeamMap reads the teams file, creating it if it doesn't exist.
// A file that can't be parsed is treated as empty.
func LoadTeamMap(filePath string) (SavedTeams, error) {
	teamFile, err := os.Open(filePath)
	// If there is an error, assume the file doesn't exist
	if err != nil {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o777); err != nil {
			return nil, err
		}

		teamFile, err = os.Create(filePath)
		// If we still have errors, then bail
		if err != nil {
			return nil, err
		}
	}
	defer teamFile.Close()

	teamFileBytes, err := io.ReadAll(teamFile)
	if err != nil {
		return nil, err
	}

	teams := make(SavedTeams)
	if len(teamFileBytes) == 0 {
		return teams, nil
	}

	if err := json.Unmarshal(teamFileBytes, &teams); err != nil {
		internalLogger.Error(err, "teams file is invalid, treating it as empty", "path", filePath)
		teams = make(SavedTeams)
	}

	return teams, nil
}

func writeTeamMap(filePath string, teams SavedTeams) error {
	teamsJson, err := json.MarshalIndent(teams, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, teamsJson, 0o666)
}
