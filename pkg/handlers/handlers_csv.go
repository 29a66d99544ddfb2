package handlers

import (
	"encoding/csv"
	"io"
	"net/http"
	"strings"

	"github.com/dugoutapps/lineup-api-go/pkg/lineup"
	"github.com/dugoutapps/lineup-api-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// GenerateLineupCSV handles roster CSV uploads for lineup generation.
// Expected columns: name, positions (pipe-separated labels), attending
// (true/false, blank means attending).
func (h *Handler) GenerateLineupCSV(c *gin.Context) {
	rosterFile, _ := c.FormFile("roster_file")
	if rosterFile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roster_file is required"})
		return
	}

	file, err := rosterFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open roster file"})
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read roster header"})
		return
	}
	cols := make(map[string]int)
	for i, name := range header {
		cols[name] = i
	}

	input := models.GenerateInput{
		Capabilities: make(map[string][]string),
		Attendance:   make(map[string]bool),
	}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		name := record[cols["name"]]
		input.Roster = append(input.Roster, name)

		if idx, ok := cols["positions"]; ok && record[idx] != "" {
			var labels []string
			for _, label := range strings.Split(record[idx], "|") {
				labels = append(labels, strings.TrimSpace(label))
			}
			input.Capabilities[name] = labels
		}
		if idx, ok := cols["attending"]; ok && record[idx] != "" {
			input.Attendance[name] = strings.EqualFold(strings.TrimSpace(record[idx]), "true")
		}
	}

	gen, attending, err := buildGenerator(&input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := gen.Generate()
	h.RecordUsage(c, 1, len(attending))

	// Export lineup as CSV: one row per position, then the bench rows.
	var outCSV strings.Builder
	writer := csv.NewWriter(&outCSV)
	writer.Write([]string{"row", "inning_1", "inning_2", "inning_3", "inning_4", "inning_5", "inning_6"})

	writeRow := func(key string) {
		record := make([]string, 0, models.Innings+1)
		record = append(record, key)
		record = append(record, result.Lineup[key]...)
		writer.Write(record)
	}
	for _, pos := range models.Positions {
		writeRow(string(pos))
	}
	for k := 1; ; k++ {
		key := lineup.SittingKey(k)
		if _, ok := result.Lineup[key]; !ok {
			break
		}
		writeRow(key)
	}
	writer.Flush()

	c.JSON(http.StatusOK, gin.H{
		"csv":        outCSV.String(),
		"validation": result.Validation,
	})
}
