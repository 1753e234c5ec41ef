package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/nathanieltooley/klefki/core"
)

const csvColumns = 10

// LoadSpeciesCSV takes in the bytes of a csv file with the following columns:
// PokedexNumber, Name, Type1, Type2, HP, Attack, Defense, SpecialAttack, SpecialDefense, Speed
// in that order. The first row is a header and is skipped. Type2 may be empty.
//
// Species from the csv only carry their number, name, types and base stats.
func LoadSpeciesCSV(fileBytes []byte) ([]core.Species, error) {
	csvReader := csv.NewReader(bytes.NewBuffer(fileBytes))
	csvReader.FieldsPerRecord = csvColumns
	if _, err := csvReader.Read(); err != nil {
		return nil, fmt.Errorf("invalid csv header: %w", err)
	}

	rows, err := csvReader.ReadAll()
	if err != nil {
		internalLogger.Error(err, "invalid csv data")
		return nil, err
	}

	speciesList := make([]core.Species, 0, len(rows))
	for line, row := range rows {
		species, err := parseSpeciesRow(row)
		if err != nil {
			internalLogger.WithName("species_parsing").Error(err, "invalid species row", "line", line+2)
			return nil, fmt.Errorf("line %d: %w", line+2, err)
		}

		internalLogger.WithName("load_species").V(2).Info("loaded species", "pokedex", species.ID, "name", species.Name, "base", species.Base)
		speciesList = append(speciesList, species)
	}

	internalLogger.Info("Loaded species csv", "count", len(speciesList))
	return speciesList, nil
}

func parseSpeciesRow(row []string) (core.Species, error) {
	pokedexNumber, err := strconv.ParseUint(strings.TrimSpace(row[0]), 10, 16)
	if err != nil {
		return core.Species{}, fmt.Errorf("invalid pokedex number: %w", err)
	}

	primary, err := core.ParsePokemonType(strings.TrimSpace(row[2]))
	if err != nil {
		return core.Species{}, err
	}

	types := core.NewTypes(primary)
	if secondaryName := strings.TrimSpace(row[3]); secondaryName != "" {
		secondary, err := core.ParsePokemonType(secondaryName)
		if err != nil {
			return core.Species{}, err
		}
		types = core.NewTypes(primary, secondary)
	}

	var base core.StatSet
	for i, stat := range []core.StatType{core.STAT_HP, core.STAT_ATTACK, core.STAT_DEFENSE, core.STAT_SPATTACK, core.STAT_SPDEFENSE, core.STAT_SPEED} {
		value, err := strconv.ParseUint(strings.TrimSpace(row[4+i]), 10, 8)
		if err != nil {
			return core.Species{}, fmt.Errorf("invalid %s: %w", stat, err)
		}
		base.Set(stat, uint8(value))
	}

	return core.Species{
		ID:       core.SpeciesID(pokedexNumber),
		Name:     strings.TrimSpace(row[1]),
		Types:    types,
		Base:     base,
		Training: core.Training{Growth: core.GROWTH_MEDIUM},
	}, nil
}
