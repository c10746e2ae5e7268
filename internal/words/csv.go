package words

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
)

// FromCSV loads a word list from a file of "word,difficulty" records.
// Records with an unknown difficulty are kept with the difficulty left as-is;
// short or empty records are skipped with a log line.
func FromCSV(filePath string) ([]Word, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", filePath, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse word list %s: %w", filePath, err)
	}

	var list []Word
	for _, record := range records {
		if len(record) < 2 || record[0] == "" {
			log.Println("[FromCSV] skipping invalid record:", record)
			continue
		}
		list = append(list, Word{
			Text:       record[0],
			Difficulty: Difficulty(record[1]),
		})
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("word list %s contains no usable words", filePath)
	}
	return list, nil
}
