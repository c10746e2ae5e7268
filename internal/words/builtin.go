package words

// Builtin returns the default word list, used when no CSV file or database
// source is configured.
func Builtin() []Word {
	list := make([]Word, 0, len(easyWords)+len(mediumWords)+len(hardWords))
	for _, w := range easyWords {
		list = append(list, Word{Text: w, Difficulty: DifficultyEasy})
	}
	for _, w := range mediumWords {
		list = append(list, Word{Text: w, Difficulty: DifficultyMedium})
	}
	for _, w := range hardWords {
		list = append(list, Word{Text: w, Difficulty: DifficultyHard})
	}
	return list
}

var easyWords = []string{
	"casa", "gatto", "sole", "auto", "libro",
	"cane", "pizza", "mare", "fiore", "bici",
}

var mediumWords = []string{
	"astronauta", "chitarra", "elefante", "computer", "ombrello",
	"telefono", "montagna", "biblioteca", "supermercato", "aeroplano",
}

var hardWords = []string{
	"pescivendolo", "architetto", "paleontologia", "microscopia", "filosofia",
	"ingegneria", "astronomia", "neurologia", "botanica", "archeologia",
}
