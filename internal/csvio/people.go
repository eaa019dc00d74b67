package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"groupassign/pkg/assign"
)

func ReadPeople(file string) ([]assign.Person, error) {
	reader, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read participants file: %v", err)
	}

	people := make([]assign.Person, 0, len(records))
	for i, record := range records {
		if i == 0 { // header
			continue
		}
		if len(record) != 3 {
			return nil, fmt.Errorf("invalid participants row %v: expected 3 columns, got %v", i+1, len(record))
		}

		maxGroups, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid membership quota on participants row %v: %v", i+1, err)
		}

		allowedGroups := lo.FilterMap(strings.Split(record[1], ";"), func(groupName string, _ int) (string, bool) {
			trimmed := strings.TrimSpace(groupName)
			return trimmed, trimmed != ""
		})

		people = append(people, assign.Person{
			Name:          strings.TrimSpace(record[0]),
			AllowedGroups: allowedGroups,
			MaxGroups:     maxGroups,
		})
	}

	return people, nil
}
