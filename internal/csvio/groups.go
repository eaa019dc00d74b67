// Package csvio reads group and participant definitions from delimited text
// files and writes result tables, using the column layouts the engine's
// results are exchanged in: groups as GroupName,MinSize,MaxSize, participants
// as Name,AllowedGroups,MaxGroups with a semicolon-separated group list.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"groupassign/pkg/assign"
)

func ReadGroups(file string) (map[string]assign.GroupConstraint, error) {
	reader, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read groups file: %v", err)
	}

	groups := make(map[string]assign.GroupConstraint, len(records))
	for i, record := range records {
		if i == 0 { // header
			continue
		}
		if len(record) != 3 {
			return nil, fmt.Errorf("invalid groups row %v: expected 3 columns, got %v", i+1, len(record))
		}

		minSize, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid minimum size on groups row %v: %v", i+1, err)
		}
		maxSize, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid maximum size on groups row %v: %v", i+1, err)
		}

		groups[strings.TrimSpace(record[0])] = assign.GroupConstraint{
			MinSize: minSize,
			MaxSize: maxSize,
		}
	}

	return groups, nil
}
